package repository

import (
	"go-invsys/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransferRepository interface {
	Create(tx *gorm.DB, request *model.TransferRequest) error
	CreateLines(tx *gorm.DB, lines []model.TransferLine) error
	FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.TransferRequest, error)
	FindLines(tx *gorm.DB, requestID uuid.UUID) ([]model.TransferLine, error)
	TransitionFromPending(tx *gorm.DB, id uuid.UUID, to model.OrderStatus) (bool, error)
	FindByIDWithLines(id uuid.UUID) (*model.TransferRequest, error)
	FindAll() ([]model.TransferRequest, error)
}

type transferRepo struct {
	db *gorm.DB
}

func NewTransferRepo(db *gorm.DB) TransferRepository {
	return &transferRepo{db}
}

func (r *transferRepo) Create(tx *gorm.DB, request *model.TransferRequest) error {
	return tx.Create(request).Error
}

func (r *transferRepo) CreateLines(tx *gorm.DB, lines []model.TransferLine) error {
	return tx.Create(&lines).Error
}

func (r *transferRepo) FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.TransferRequest, error) {
	var request model.TransferRequest
	if err := forUpdate(tx).First(&request, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *transferRepo) FindLines(tx *gorm.DB, requestID uuid.UUID) ([]model.TransferLine, error) {
	var lines []model.TransferLine
	if err := tx.Where("transfer_request_id = ?", requestID).Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *transferRepo) TransitionFromPending(tx *gorm.DB, id uuid.UUID, to model.OrderStatus) (bool, error) {
	res := tx.Model(&model.TransferRequest{}).
		Where("id = ? AND status = ?", id, model.OrderStatusPending).
		Update("status", to)
	return res.RowsAffected > 0, res.Error
}

func (r *transferRepo) FindByIDWithLines(id uuid.UUID) (*model.TransferRequest, error) {
	var request model.TransferRequest
	err := r.db.Preload("FromWarehouse").Preload("ToWarehouse").Preload("Creator").
		Preload("Lines").Preload("Lines.Item").
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *transferRepo) FindAll() ([]model.TransferRequest, error) {
	var requests []model.TransferRequest
	err := r.db.Preload("FromWarehouse").Preload("ToWarehouse").Preload("Creator").
		Order("created_at DESC").Find(&requests).Error
	return requests, err
}
