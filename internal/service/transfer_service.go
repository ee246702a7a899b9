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
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TransferService interface {
	Create(req *CreateTransferRequest, creatorID uuid.UUID) (*model.TransferRequest, error)
	Complete(id uuid.UUID) (*model.TransferRequest, error)
	Cancel(id uuid.UUID) (*model.TransferRequest, error)
	GetByID(id uuid.UUID) (*model.TransferRequest, error)
	GetAll() ([]model.TransferRequest, error)
}

type TransferLineRequest struct {
	ItemID   uuid.UUID `json:"item_id" validate:"uuid_required"`
	Quantity int       `json:"quantity" validate:"required,gt=0"`
}

type CreateTransferRequest struct {
	FromWarehouseID uuid.UUID             `json:"from_warehouse_id" validate:"uuid_required"`
	ToWarehouseID   uuid.UUID             `json:"to_warehouse_id" validate:"uuid_required"`
	Lines           []TransferLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type transferService struct {
	transferRepo  repository.TransferRepository
	stockRepo     repository.StockRepository
	warehouseRepo repository.WarehouseRepository
	itemRepo      repository.ItemRepository
	db            *gorm.DB
	wsHub         *ws.Hub
}

func NewTransferService(
	transferRepo repository.TransferRepository,
	stockRepo repository.StockRepository,
	warehouseRepo repository.WarehouseRepository,
	itemRepo repository.ItemRepository,
	db *gorm.DB,
	hub *ws.Hub,
) TransferService {
	return &transferService{
		transferRepo:  transferRepo,
		stockRepo:     stockRepo,
		warehouseRepo: warehouseRepo,
		itemRepo:      itemRepo,
		db:            db,
		wsHub:         hub,
	}
}

// Create records the movement intent only. Source availability is not
// checked or reserved here; completion re-verifies it authoritatively,
// so a request that looked satisfiable can still fail later.
func (s *transferService) Create(req *CreateTransferRequest, creatorID uuid.UUID) (*model.TransferRequest, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Message: validator.Message(errs)}
	}
	if req.FromWarehouseID == req.ToWarehouseID {
		return nil, validationErrf("source and destination warehouse must differ")
	}

	if _, err := s.warehouseRepo.FindByID(req.FromWarehouseID); err != nil {
		return nil, ErrWarehouseNotFound
	}
	if _, err := s.warehouseRepo.FindByID(req.ToWarehouseID); err != nil {
		return nil, ErrWarehouseNotFound
	}
	if err := s.checkItemsExist(req.Lines); err != nil {
		return nil, err
	}

	request := &model.TransferRequest{
		FromWarehouseID: req.FromWarehouseID,
		ToWarehouseID:   req.ToWarehouseID,
		Status:          model.OrderStatusPending,
		CreatedBy:       &creatorID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.transferRepo.Create(tx, request); err != nil {
			return err
		}
		lines := make([]model.TransferLine, len(req.Lines))
		for i, line := range req.Lines {
			lines[i] = model.TransferLine{
				TransferRequestID: request.ID,
				ItemID:            line.ItemID,
				Quantity:          line.Quantity,
			}
		}
		return s.transferRepo.CreateLines(tx, lines)
	})
	if err != nil {
		return nil, err
	}

	return s.transferRepo.FindByIDWithLines(request.ID)
}

// Complete debits the source and credits the destination for every
// line in one transaction. A shortfall on any line fails the whole
// transition with InsufficientStockError and leaves both warehouses
// untouched.
func (s *transferService) Complete(id uuid.UUID) (*model.TransferRequest, error) {
	var fromID, toID uuid.UUID
	err := s.db.Transaction(func(tx *gorm.DB) error {
		request, err := s.transferRepo.FindForUpdate(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTransferNotFound
		}
		if err != nil {
			return err
		}
		if request.Status != model.OrderStatusPending {
			return ErrInvalidTransition
		}
		fromID, toID = request.FromWarehouseID, request.ToWarehouseID

		lines, err := s.transferRepo.FindLines(tx, id)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if err := s.stockRepo.Debit(tx, request.FromWarehouseID, line.ItemID, line.Quantity); err != nil {
				return err
			}
			if err := s.stockRepo.Credit(tx, request.ToWarehouseID, line.ItemID, line.Quantity); err != nil {
				return err
			}
		}

		ok, err := s.transferRepo.TransitionFromPending(tx, id, model.OrderStatusCompleted)
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
		"transfer_request_id": id,
		"from_warehouse_id":   fromID,
		"to_warehouse_id":     toID,
	}).Info("transfer request completed")

	if s.wsHub != nil {
		go s.wsHub.BroadcastEvent(ws.StockEvent{
			Type:        "stock_update",
			Action:      "transfer_completed",
			EntityID:    id.String(),
			WarehouseID: fromID.String(),
			Message:     fmt.Sprintf("transfer %s moved stock to warehouse %s", id, toID),
		})
	}

	return s.transferRepo.FindByIDWithLines(id)
}

// Cancel transitions pending -> cancelled with no stock effect
func (s *transferService) Cancel(id uuid.UUID) (*model.TransferRequest, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		request, err := s.transferRepo.FindForUpdate(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTransferNotFound
		}
		if err != nil {
			return err
		}
		if request.Status != model.OrderStatusPending {
			return ErrInvalidTransition
		}
		ok, err := s.transferRepo.TransitionFromPending(tx, id, model.OrderStatusCancelled)
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
	return s.transferRepo.FindByIDWithLines(id)
}

func (s *transferService) GetByID(id uuid.UUID) (*model.TransferRequest, error) {
	request, err := s.transferRepo.FindByIDWithLines(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransferNotFound
	}
	return request, err
}

func (s *transferService) GetAll() ([]model.TransferRequest, error) {
	return s.transferRepo.FindAll()
}

func (s *transferService) checkItemsExist(lines []TransferLineRequest) error {
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
