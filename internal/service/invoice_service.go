package service

import (
	"errors"
	"fmt"

	"go-invsys/internal/model"
	"go-invsys/internal/repository"
	"go-invsys/internal/ws"
	"go-invsys/pkg/logger"
	"go-invsys/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type InvoiceService interface {
	Create(req *CreateInvoiceRequest, creatorID uuid.UUID) (*model.Invoice, error)
	GetByID(id uuid.UUID) (*InvoiceDetailResponse, error)
	GetAll() ([]model.Invoice, error)
}

type InvoiceLineRequest struct {
	ItemID    uuid.UUID       `json:"item_id" validate:"uuid_required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CreateInvoiceRequest struct {
	WarehouseID   uuid.UUID            `json:"warehouse_id" validate:"uuid_required"`
	CustomerID    uuid.UUID            `json:"customer_id" validate:"uuid_required"`
	PaymentMethod model.PaymentMethod  `json:"payment_method" validate:"required,oneof=cash deferred"`
	InvoiceDate   string               `json:"invoice_date" validate:"required"` // YYYY-MM-DD
	Discount      decimal.Decimal      `json:"discount"`
	Lines         []InvoiceLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// InvoiceDetailResponse carries the invoice with its remaining balance.
// The balance is always derived at read time from the collections on
// record, never stored.
type InvoiceDetailResponse struct {
	model.Invoice
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

type invoiceService struct {
	invoiceRepo    repository.InvoiceRepository
	collectionRepo repository.CollectionRepository
	stockRepo      repository.StockRepository
	warehouseRepo  repository.WarehouseRepository
	customerRepo   repository.CustomerRepository
	db             *gorm.DB
	wsHub          *ws.Hub
}

func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	collectionRepo repository.CollectionRepository,
	stockRepo repository.StockRepository,
	warehouseRepo repository.WarehouseRepository,
	customerRepo repository.CustomerRepository,
	db *gorm.DB,
	hub *ws.Hub,
) InvoiceService {
	return &invoiceService{
		invoiceRepo:    invoiceRepo,
		collectionRepo: collectionRepo,
		stockRepo:      stockRepo,
		warehouseRepo:  warehouseRepo,
		customerRepo:   customerRepo,
		db:             db,
		wsHub:          hub,
	}
}

// Create is a point-of-sale write: the stock debit happens here, not at
// a later completion step. Everything below runs in one transaction;
// any failure leaves no invoice, no lines, no stock change and no
// collection behind.
func (s *invoiceService) Create(req *CreateInvoiceRequest, creatorID uuid.UUID) (*model.Invoice, error) {
	// 1. Validate request before any write
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Message: validator.Message(errs)}
	}
	if req.Discount.IsNegative() {
		return nil, validationErrf("discount cannot be negative")
	}
	for i := range req.Lines {
		if req.Lines[i].UnitPrice.IsNegative() {
			return nil, validationErrf("unit price cannot be negative on line %d", i+1)
		}
	}
	invoiceDate, err := parseDate(req.InvoiceDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.warehouseRepo.FindByID(req.WarehouseID); err != nil {
		return nil, ErrWarehouseNotFound
	}
	if _, err := s.customerRepo.FindByID(req.CustomerID); err != nil {
		return nil, ErrCustomerNotFound
	}

	// 2. Initial status follows the payment method
	status := model.InvoiceStatusPendingPayment
	if req.PaymentMethod == model.PaymentCash {
		status = model.InvoiceStatusSettled
	}

	invoice := &model.Invoice{
		WarehouseID:   req.WarehouseID,
		CustomerID:    req.CustomerID,
		InvoiceDate:   invoiceDate,
		PaymentMethod: req.PaymentMethod,
		Discount:      req.Discount,
		Status:        status,
		CreatedBy:     &creatorID,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// 3. Verify availability for every line up front so the caller
		// learns which item is short
		for _, line := range req.Lines {
			qty, err := s.stockRepo.Quantity(tx, req.WarehouseID, line.ItemID)
			if err != nil {
				return err
			}
			if qty < line.Quantity {
				return &repository.InsufficientStockError{
					WarehouseID: req.WarehouseID,
					ItemID:      line.ItemID,
					Requested:   line.Quantity,
					Available:   qty,
				}
			}
		}

		// 4. Persist header + lines, recompute totals from what was stored
		if err := s.invoiceRepo.Create(tx, invoice); err != nil {
			return err
		}
		lines := make([]model.InvoiceLine, len(req.Lines))
		for i, line := range req.Lines {
			lines[i] = model.InvoiceLine{
				InvoiceID: invoice.ID,
				ItemID:    line.ItemID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				LineTotal: line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
			}
		}
		if err := s.invoiceRepo.CreateLines(tx, lines); err != nil {
			return err
		}
		subtotal := model.InvoiceSubtotal(lines)
		if req.Discount.GreaterThan(subtotal) {
			return validationErrf("discount %s exceeds subtotal %s", req.Discount.StringFixed(2), subtotal.StringFixed(2))
		}
		total := subtotal.Sub(req.Discount)
		if err := s.invoiceRepo.UpdateTotals(tx, invoice.ID, subtotal, total); err != nil {
			return err
		}
		invoice.Subtotal = subtotal
		invoice.Total = total

		// 5. Debit the stock per line, under the row locks
		for _, line := range req.Lines {
			if err := s.stockRepo.Debit(tx, req.WarehouseID, line.ItemID, line.Quantity); err != nil {
				return err
			}
		}

		// 6. Cash settles immediately: record a collection for the full total
		if req.PaymentMethod == model.PaymentCash {
			collection := &model.Collection{
				InvoiceID:      invoice.ID,
				Amount:         total,
				CollectionDate: invoiceDate,
				CreatedBy:      &creatorID,
			}
			if err := s.collectionRepo.Create(tx, collection); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().WithFields(logrus.Fields{
		"invoice_id":   invoice.ID,
		"warehouse_id": invoice.WarehouseID,
		"total":        invoice.Total.StringFixed(2),
		"status":       invoice.Status,
	}).Info("invoice created")

	if s.wsHub != nil {
		go s.wsHub.BroadcastEvent(ws.StockEvent{
			Type:        "stock_update",
			Action:      "invoice_created",
			EntityID:    invoice.ID.String(),
			WarehouseID: invoice.WarehouseID.String(),
			Message:     fmt.Sprintf("invoice %s debited warehouse %s", invoice.ID, invoice.WarehouseID),
		})
	}

	detail, err := s.invoiceRepo.FindByIDWithDetails(invoice.ID)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *invoiceService) GetByID(id uuid.UUID) (*InvoiceDetailResponse, error) {
	invoice, err := s.invoiceRepo.FindByIDWithDetails(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}
	collected := model.CollectedTotal(invoice.Collections)
	return &InvoiceDetailResponse{
		Invoice:          *invoice,
		RemainingBalance: invoice.Total.Sub(collected),
	}, nil
}

func (s *invoiceService) GetAll() ([]model.Invoice, error) {
	return s.invoiceRepo.FindAll()
}
