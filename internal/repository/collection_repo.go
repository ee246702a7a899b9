package repository

import (
	"go-invsys/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CollectionRepository interface {
	Create(tx *gorm.DB, collection *model.Collection) error
	FindByInvoice(tx *gorm.DB, invoiceID uuid.UUID) ([]model.Collection, error)
	FindAll() ([]model.Collection, error)
}

type collectionRepo struct {
	db *gorm.DB
}

func NewCollectionRepo(db *gorm.DB) CollectionRepository {
	return &collectionRepo{db}
}

func (r *collectionRepo) Create(tx *gorm.DB, collection *model.Collection) error {
	return tx.Create(collection).Error
}

// FindByInvoice loads the rows so the collected sum is computed with
// decimal arithmetic in Go, not database float aggregation.
func (r *collectionRepo) FindByInvoice(tx *gorm.DB, invoiceID uuid.UUID) ([]model.Collection, error) {
	var collections []model.Collection
	if err := tx.Where("invoice_id = ?", invoiceID).Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *collectionRepo) FindAll() ([]model.Collection, error) {
	var collections []model.Collection
	err := r.db.Preload("Invoice").Preload("Invoice.Customer").Preload("Creator").
		Order("collection_date DESC").Find(&collections).Error
	return collections, err
}
