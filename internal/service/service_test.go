package service

import (
	"testing"

	"go-invsys/internal/model"
	"go-invsys/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv wires the full service stack against an in-memory database
type testEnv struct {
	db          *gorm.DB
	stockRepo   repository.StockRepository
	orders      ImportOrderService
	transfers   TransferService
	invoices    InvoiceService
	collections CollectionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive and
	// serializes access
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.Warehouse{},
		&model.Vendor{},
		&model.Customer{},
		&model.StockEntry{},
		&model.ImportOrder{},
		&model.ImportOrderLine{},
		&model.TransferRequest{},
		&model.TransferLine{},
		&model.Invoice{},
		&model.InvoiceLine{},
		&model.Collection{},
	))

	stockRepo := repository.NewStockRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)
	vendorRepo := repository.NewVendorRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	itemRepo := repository.NewItemRepo(db)
	orderRepo := repository.NewImportOrderRepo(db)
	transferRepo := repository.NewTransferRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)
	collectionRepo := repository.NewCollectionRepo(db)

	return &testEnv{
		db:          db,
		stockRepo:   stockRepo,
		orders:      NewImportOrderService(orderRepo, stockRepo, warehouseRepo, vendorRepo, itemRepo, db, nil),
		transfers:   NewTransferService(transferRepo, stockRepo, warehouseRepo, itemRepo, db, nil),
		invoices:    NewInvoiceService(invoiceRepo, collectionRepo, stockRepo, warehouseRepo, customerRepo, db, nil),
		collections: NewCollectionService(collectionRepo, invoiceRepo, db),
	}
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	value, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return value
}

func (e *testEnv) seedWarehouse(t *testing.T, name string) *model.Warehouse {
	t.Helper()
	warehouse := &model.Warehouse{Name: name}
	require.NoError(t, e.db.Create(warehouse).Error)
	return warehouse
}

func (e *testEnv) seedVendor(t *testing.T, name string) *model.Vendor {
	t.Helper()
	vendor := &model.Vendor{Name: name}
	require.NoError(t, e.db.Create(vendor).Error)
	return vendor
}

func (e *testEnv) seedCustomer(t *testing.T, name string) *model.Customer {
	t.Helper()
	customer := &model.Customer{Name: name}
	require.NoError(t, e.db.Create(customer).Error)
	return customer
}

func (e *testEnv) seedItem(t *testing.T, name, price string) *model.Item {
	t.Helper()
	item := &model.Item{Name: name, ItemPrice: dec(t, price)}
	require.NoError(t, e.db.Create(item).Error)
	return item
}

func (e *testEnv) seedStock(t *testing.T, warehouse *model.Warehouse, item *model.Item, qty int) {
	t.Helper()
	require.NoError(t, e.stockRepo.Credit(e.db, warehouse.ID, item.ID, qty))
}

func (e *testEnv) quantity(t *testing.T, warehouse *model.Warehouse, item *model.Item) int {
	t.Helper()
	qty, err := e.stockRepo.Quantity(e.db, warehouse.ID, item.ID)
	require.NoError(t, err)
	return qty
}
