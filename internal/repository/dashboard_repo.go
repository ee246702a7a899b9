package repository

import (
	"go-invsys/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardStats for the admin overview
type DashboardStats struct {
	TotalItems             int64           `json:"total_items"`
	TotalWarehouses        int64           `json:"total_warehouses"`
	PendingImportOrders    int64           `json:"pending_import_orders"`
	PendingTransfers       int64           `json:"pending_transfers"`
	StockValuation         decimal.Decimal `json:"stock_valuation"`
	OutstandingReceivables decimal.Decimal `json:"outstanding_receivables"`
}

type DashboardRepository interface {
	GetStats() (*DashboardStats, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db}
}

func (r *dashboardRepo) GetStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Item{}).Count(&stats.TotalItems).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Warehouse{}).Count(&stats.TotalWarehouses).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.ImportOrder{}).
		Where("status = ?", model.OrderStatusPending).
		Count(&stats.PendingImportOrders).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.TransferRequest{}).
		Where("status = ?", model.OrderStatusPending).
		Count(&stats.PendingTransfers).Error; err != nil {
		return nil, err
	}

	// Total valuation (SUM of quantity * item price)
	if err := r.db.Model(&model.StockEntry{}).
		Select("COALESCE(SUM(warehouse_stock.quantity_in_stock * items.item_price), 0)").
		Joins("LEFT JOIN items ON items.id = warehouse_stock.item_id").
		Scan(&stats.StockValuation).Error; err != nil {
		return nil, err
	}

	// Receivables still open on unsettled invoices
	if err := r.db.Raw(`
		SELECT COALESCE(SUM(i.total - COALESCE(c.paid, 0)), 0)
		FROM invoices i
		LEFT JOIN (
			SELECT invoice_id, SUM(amount) AS paid
			FROM collections
			GROUP BY invoice_id
		) c ON c.invoice_id = i.id
		WHERE i.status IN (?, ?)
	`, model.InvoiceStatusPendingPayment, model.InvoiceStatusPartiallySettled).
		Scan(&stats.OutstandingReceivables).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
