package repository

import (
	"go-invsys/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(tx *gorm.DB, invoice *model.Invoice) error
	CreateLines(tx *gorm.DB, lines []model.InvoiceLine) error
	UpdateTotals(tx *gorm.DB, id uuid.UUID, subtotal, total decimal.Decimal) error
	UpdateStatus(tx *gorm.DB, id uuid.UUID, status model.InvoiceStatus) error
	FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Invoice, error)
	FindByIDWithDetails(id uuid.UUID) (*model.Invoice, error)
	FindAll() ([]model.Invoice, error)
}

type invoiceRepo struct {
	db *gorm.DB
}

func NewInvoiceRepo(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db}
}

func (r *invoiceRepo) Create(tx *gorm.DB, invoice *model.Invoice) error {
	return tx.Create(invoice).Error
}

func (r *invoiceRepo) CreateLines(tx *gorm.DB, lines []model.InvoiceLine) error {
	return tx.Create(&lines).Error
}

func (r *invoiceRepo) UpdateTotals(tx *gorm.DB, id uuid.UUID, subtotal, total decimal.Decimal) error {
	return tx.Model(&model.Invoice{}).Where("id = ?", id).Updates(map[string]interface{}{
		"subtotal": subtotal,
		"total":    total,
	}).Error
}

func (r *invoiceRepo) UpdateStatus(tx *gorm.DB, id uuid.UUID, status model.InvoiceStatus) error {
	return tx.Model(&model.Invoice{}).Where("id = ?", id).Update("status", status).Error
}

// FindForUpdate locks the invoice row; the collection ledger relies on
// this so the remaining-balance check and insert cannot interleave.
func (r *invoiceRepo) FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := forUpdate(tx).First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepo) FindByIDWithDetails(id uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	err := r.db.Preload("Warehouse").Preload("Customer").Preload("Creator").
		Preload("Lines").Preload("Lines.Item").
		Preload("Collections", func(db *gorm.DB) *gorm.DB {
			return db.Order("collection_date DESC")
		}).
		Preload("Collections.Creator").
		First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepo) FindAll() ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.Preload("Warehouse").Preload("Customer").Preload("Creator").
		Order("created_at DESC").Find(&invoices).Error
	return invoices, err
}
