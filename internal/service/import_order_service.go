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

type ImportOrderService interface {
	Create(req *CreateImportOrderRequest) (*model.ImportOrder, error)
	Complete(id uuid.UUID) (*model.ImportOrder, error)
	Cancel(id uuid.UUID) (*model.ImportOrder, error)
	GetByID(id uuid.UUID) (*model.ImportOrder, error)
	GetAll() ([]model.ImportOrder, error)
}

type ImportOrderLineRequest struct {
	ItemID    uuid.UUID       `json:"item_id" validate:"uuid_required"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CreateImportOrderRequest struct {
	WarehouseID uuid.UUID                `json:"warehouse_id" validate:"uuid_required"`
	VendorID    uuid.UUID                `json:"vendor_id" validate:"uuid_required"`
	OrderDate   string                   `json:"order_date" validate:"required"` // YYYY-MM-DD
	Lines       []ImportOrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type importOrderService struct {
	orderRepo     repository.ImportOrderRepository
	stockRepo     repository.StockRepository
	warehouseRepo repository.WarehouseRepository
	vendorRepo    repository.VendorRepository
	itemRepo      repository.ItemRepository
	db            *gorm.DB
	wsHub         *ws.Hub
}

func NewImportOrderService(
	orderRepo repository.ImportOrderRepository,
	stockRepo repository.StockRepository,
	warehouseRepo repository.WarehouseRepository,
	vendorRepo repository.VendorRepository,
	itemRepo repository.ItemRepository,
	db *gorm.DB,
	hub *ws.Hub,
) ImportOrderService {
	return &importOrderService{
		orderRepo:     orderRepo,
		stockRepo:     stockRepo,
		warehouseRepo: warehouseRepo,
		vendorRepo:    vendorRepo,
		itemRepo:      itemRepo,
		db:            db,
		wsHub:         hub,
	}
}

func (s *importOrderService) Create(req *CreateImportOrderRequest) (*model.ImportOrder, error) {
	// 1. Validate request before any write
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Message: validator.Message(errs)}
	}
	for i := range req.Lines {
		if req.Lines[i].UnitPrice.IsNegative() {
			return nil, validationErrf("unit price cannot be negative on line %d", i+1)
		}
	}
	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		return nil, err
	}

	// 2. Referenced entities must exist
	if _, err := s.warehouseRepo.FindByID(req.WarehouseID); err != nil {
		return nil, ErrWarehouseNotFound
	}
	if _, err := s.vendorRepo.FindByID(req.VendorID); err != nil {
		return nil, ErrVendorNotFound
	}
	if err := s.checkItemsExist(req.Lines); err != nil {
		return nil, err
	}

	// 3. Persist order + lines and recompute the total in one transaction.
	// total_cost is derived from the persisted lines, never trusted
	// from input.
	order := &model.ImportOrder{
		WarehouseID: req.WarehouseID,
		VendorID:    req.VendorID,
		OrderDate:   orderDate,
		Status:      model.OrderStatusPending,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(tx, order); err != nil {
			return err
		}
		lines := make([]model.ImportOrderLine, len(req.Lines))
		for i, line := range req.Lines {
			lines[i] = model.ImportOrderLine{
				ImportOrderID: order.ID,
				ItemID:        line.ItemID,
				Quantity:      line.Quantity,
				UnitPrice:     line.UnitPrice,
			}
		}
		if err := s.orderRepo.CreateLines(tx, lines); err != nil {
			return err
		}
		persisted, err := s.orderRepo.FindLines(tx, order.ID)
		if err != nil {
			return err
		}
		return s.orderRepo.UpdateTotalCost(tx, order.ID, model.ImportOrderTotal(persisted))
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.FindByIDWithLines(order.ID)
}

// Complete transitions pending -> completed and credits the warehouse
// stock for every line. The stock effect and the transition commit or
// roll back together; a replay on a terminal order is a no-op.
func (s *importOrderService) Complete(id uuid.UUID) (*model.ImportOrder, error) {
	var warehouseID uuid.UUID
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindForUpdate(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		if order.Status != model.OrderStatusPending {
			return ErrInvalidTransition
		}
		warehouseID = order.WarehouseID

		lines, err := s.orderRepo.FindLines(tx, id)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if err := s.stockRepo.Credit(tx, order.WarehouseID, line.ItemID, line.Quantity); err != nil {
				return err
			}
		}

		ok, err := s.orderRepo.TransitionFromPending(tx, id, model.OrderStatusCompleted)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().WithFields(logrus.Fields{
		"import_order_id": id,
		"warehouse_id":    warehouseID,
	}).Info("import order completed")

	if s.wsHub != nil {
		go s.wsHub.BroadcastEvent(ws.StockEvent{
			Type:        "stock_update",
			Action:      "import_order_completed",
			EntityID:    id.String(),
			WarehouseID: warehouseID.String(),
			Message:     fmt.Sprintf("import order %s completed", id),
		})
	}

	return s.orderRepo.FindByIDWithLines(id)
}

// Cancel transitions pending -> cancelled with no stock effect
func (s *importOrderService) Cancel(id uuid.UUID) (*model.ImportOrder, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindForUpdate(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		if err != nil {
			return err
		}
		if order.Status != model.OrderStatusPending {
			return ErrInvalidTransition
		}
		ok, err := s.orderRepo.TransitionFromPending(tx, id, model.OrderStatusCancelled)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.orderRepo.FindByIDWithLines(id)
}

func (s *importOrderService) GetByID(id uuid.UUID) (*model.ImportOrder, error) {
	order, err := s.orderRepo.FindByIDWithLines(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

func (s *importOrderService) GetAll() ([]model.ImportOrder, error) {
	return s.orderRepo.FindAll()
}

func (s *importOrderService) checkItemsExist(lines []ImportOrderLineRequest) error {
	ids := make([]uuid.UUID, len(lines))
	for i := range lines {
		ids[i] = lines[i].ItemID
	}
	items, err := s.itemRepo.FindByIDs(s.db, ids)
	if err != nil {
		return err
	}
	known := make(map[uuid.UUID]bool, len(items))
	for i := range items {
		known[items[i].ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return ErrItemNotFound
		}
	}
	return nil
}
