package repository

import (
	"go-invsys/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ImportOrderRepository interface {
	Create(tx *gorm.DB, order *model.ImportOrder) error
	CreateLines(tx *gorm.DB, lines []model.ImportOrderLine) error
	UpdateTotalCost(tx *gorm.DB, id uuid.UUID, total decimal.Decimal) error
	FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.ImportOrder, error)
	FindLines(tx *gorm.DB, orderID uuid.UUID) ([]model.ImportOrderLine, error)
	TransitionFromPending(tx *gorm.DB, id uuid.UUID, to model.OrderStatus) (bool, error)
	FindByIDWithLines(id uuid.UUID) (*model.ImportOrder, error)
	FindAll() ([]model.ImportOrder, error)
}

type importOrderRepo struct {
	db *gorm.DB
}

func NewImportOrderRepo(db *gorm.DB) ImportOrderRepository {
	return &importOrderRepo{db}
}

func (r *importOrderRepo) Create(tx *gorm.DB, order *model.ImportOrder) error {
	return tx.Create(order).Error
}

func (r *importOrderRepo) CreateLines(tx *gorm.DB, lines []model.ImportOrderLine) error {
	return tx.Create(&lines).Error
}

func (r *importOrderRepo) UpdateTotalCost(tx *gorm.DB, id uuid.UUID, total decimal.Decimal) error {
	return tx.Model(&model.ImportOrder{}).Where("id = ?", id).Update("total_cost", total).Error
}

// FindForUpdate loads the order row locked for the rest of the caller's
// transaction, so two concurrent transitions serialize here.
func (r *importOrderRepo) FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.ImportOrder, error) {
	var order model.ImportOrder
	if err := forUpdate(tx).First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *importOrderRepo) FindLines(tx *gorm.DB, orderID uuid.UUID) ([]model.ImportOrderLine, error) {
	var lines []model.ImportOrderLine
	if err := tx.Where("import_order_id = ?", orderID).Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// TransitionFromPending fires the transition only while the stored
// status is still pending; a replay matches zero rows and reports false.
func (r *importOrderRepo) TransitionFromPending(tx *gorm.DB, id uuid.UUID, to model.OrderStatus) (bool, error) {
	res := tx.Model(&model.ImportOrder{}).
		Where("id = ? AND status = ?", id, model.OrderStatusPending).
		Update("status", to)
	return res.RowsAffected > 0, res.Error
}

func (r *importOrderRepo) FindByIDWithLines(id uuid.UUID) (*model.ImportOrder, error) {
	var order model.ImportOrder
	err := r.db.Preload("Warehouse").Preload("Vendor").Preload("Lines").Preload("Lines.Item").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *importOrderRepo) FindAll() ([]model.ImportOrder, error) {
	var orders []model.ImportOrder
	err := r.db.Preload("Warehouse").Preload("Vendor").Order("created_at DESC").Find(&orders).Error
	return orders, err
}
