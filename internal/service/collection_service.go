package service

import (
	"errors"

	"go-invsys/internal/model"
	"go-invsys/internal/repository"
	"go-invsys/pkg/logger"
	"go-invsys/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CollectionService interface {
	Create(req *CreateCollectionRequest, creatorID uuid.UUID) (*model.Collection, error)
	GetAll() ([]model.Collection, error)
}

type CreateCollectionRequest struct {
	InvoiceID      uuid.UUID       `json:"invoice_id" validate:"uuid_required"`
	Amount         decimal.Decimal `json:"amount"`
	CollectionDate string          `json:"collection_date" validate:"required"` // YYYY-MM-DD
}

type collectionService struct {
	collectionRepo repository.CollectionRepository
	invoiceRepo    repository.InvoiceRepository
	db             *gorm.DB
}

func NewCollectionService(
	collectionRepo repository.CollectionRepository,
	invoiceRepo repository.InvoiceRepository,
	db *gorm.DB,
) CollectionService {
	return &collectionService{
		collectionRepo: collectionRepo,
		invoiceRepo:    invoiceRepo,
		db:             db,
	}
}

// Create appends a payment and recomputes the invoice status in one
// transaction. The invoice row is locked first, so two concurrent
// payments serialize: the second one re-reads the collected sum after
// the first committed and fails with OverCollectionError if it would
// overshoot the total.
func (s *collectionService) Create(req *CreateCollectionRequest, creatorID uuid.UUID) (*model.Collection, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Message: validator.Message(errs)}
	}
	if !req.Amount.GreaterThan(decimal.Zero) {
		return nil, validationErrf("amount must be greater than zero")
	}
	collectionDate, err := parseDate(req.CollectionDate)
	if err != nil {
		return nil, err
	}

	collection := &model.Collection{
		InvoiceID:      req.InvoiceID,
		Amount:         req.Amount,
		CollectionDate: collectionDate,
		CreatedBy:      &creatorID,
	}
	var newStatus model.InvoiceStatus
	err = s.db.Transaction(func(tx *gorm.DB) error {
		invoice, err := s.invoiceRepo.FindForUpdate(tx, req.InvoiceID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvoiceNotFound
		}
		if err != nil {
			return err
		}

		existing, err := s.collectionRepo.FindByInvoice(tx, req.InvoiceID)
		if err != nil {
			return err
		}
		collected := model.CollectedTotal(existing)
		remaining := invoice.Total.Sub(collected)

		// Strict check: amount == remaining settles the invoice,
		// anything above fails
		if req.Amount.GreaterThan(remaining) {
			return &OverCollectionError{
				InvoiceID: req.InvoiceID,
				Amount:    req.Amount,
				Remaining: remaining,
			}
		}

		if err := s.collectionRepo.Create(tx, collection); err != nil {
			return err
		}

		newStatus = model.SettlementStatus(invoice.Total, collected.Add(req.Amount))
		return s.invoiceRepo.UpdateStatus(tx, req.InvoiceID, newStatus)
	})
	if err != nil {
		return nil, err
	}

	logger.Get().WithFields(logrus.Fields{
		"invoice_id":    req.InvoiceID,
		"collection_id": collection.ID,
		"amount":        req.Amount.StringFixed(2),
		"status":        newStatus,
	}).Info("collection recorded")

	return collection, nil
}

func (s *collectionService) GetAll() ([]model.Collection, error) {
	return s.collectionRepo.FindAll()
}
