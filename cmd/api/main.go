package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-invsys/internal/handler"
	"go-invsys/internal/middleware"
	"go-invsys/internal/model"
	"go-invsys/internal/repository"
	"go-invsys/internal/service"
	"go-invsys/internal/ws"
	"go-invsys/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (use a dedicated migration tool in production)
	db.AutoMigrate(
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
	)

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	itemRepo := repository.NewItemRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)
	vendorRepo := repository.NewVendorRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	stockRepo := repository.NewStockRepo(db)
	orderRepo := repository.NewImportOrderRepo(db)
	transferRepo := repository.NewTransferRepo(db)
	invoiceRepo := repository.NewInvoiceRepo(db)
	collectionRepo := repository.NewCollectionRepo(db)
	dashboardRepo := repository.NewDashboardRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	orderService := service.NewImportOrderService(orderRepo, stockRepo, warehouseRepo, vendorRepo, itemRepo, db, wsHub)
	transferService := service.NewTransferService(transferRepo, stockRepo, warehouseRepo, itemRepo, db, wsHub)
	invoiceService := service.NewInvoiceService(invoiceRepo, collectionRepo, stockRepo, warehouseRepo, customerRepo, db, wsHub)
	collectionService := service.NewCollectionService(collectionRepo, invoiceRepo, db)
	dashboardService := service.NewDashboardService(dashboardRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	itemHandler := handler.NewItemHandler(itemRepo)
	warehouseHandler := handler.NewWarehouseHandler(warehouseRepo, stockRepo)
	vendorHandler := handler.NewVendorHandler(vendorRepo)
	customerHandler := handler.NewCustomerHandler(customerRepo)
	orderHandler := handler.NewImportOrderHandler(orderService)
	transferHandler := handler.NewTransferHandler(transferService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	collectionHandler := handler.NewCollectionHandler(collectionService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Warehouse Invoicing v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Request logging
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)

	// Reference data
	protected.Get("/items", itemHandler.GetAll)
	protected.Get("/items/:id", itemHandler.GetByID)
	protected.Post("/items", itemHandler.Create)
	protected.Put("/items/:id", itemHandler.Update)

	protected.Get("/warehouses", warehouseHandler.GetAll)
	protected.Get("/warehouses/:id", warehouseHandler.GetByID)
	protected.Get("/warehouses/:id/stock", warehouseHandler.GetStock)
	protected.Post("/warehouses", warehouseHandler.Create)
	protected.Put("/warehouses/:id", warehouseHandler.Update)

	protected.Get("/vendors", vendorHandler.GetAll)
	protected.Get("/vendors/:id", vendorHandler.GetByID)
	protected.Post("/vendors", vendorHandler.Create)
	protected.Put("/vendors/:id", vendorHandler.Update)

	protected.Get("/customers", customerHandler.GetAll)
	protected.Get("/customers/:id", customerHandler.GetByID)
	protected.Post("/customers", customerHandler.Create)
	protected.Put("/customers/:id", customerHandler.Update)

	// Import orders
	protected.Get("/import-orders", orderHandler.GetAll)
	protected.Get("/import-orders/:id", orderHandler.GetByID)
	protected.Post("/import-orders", orderHandler.Create)
	protected.Post("/import-orders/:id/complete", orderHandler.Complete)
	protected.Post("/import-orders/:id/cancel", orderHandler.Cancel)

	// Transfers
	protected.Get("/transfers", transferHandler.GetAll)
	protected.Get("/transfers/:id", transferHandler.GetByID)
	protected.Post("/transfers", transferHandler.Create)
	protected.Post("/transfers/:id/complete", transferHandler.Complete)
	protected.Post("/transfers/:id/cancel", transferHandler.Cancel)

	// Invoices and collections
	protected.Get("/invoices", invoiceHandler.GetAll)
	protected.Get("/invoices/:id", invoiceHandler.GetByID)
	protected.Post("/invoices", invoiceHandler.Create)
	protected.Get("/collections", collectionHandler.GetAll)
	protected.Post("/collections", collectionHandler.Create)

	// Admin only
	protected.Get("/dashboard/stats", middleware.RequireAdmin(), dashboardHandler.GetStats)
	protected.Get("/users", middleware.RequireAdmin(), userHandler.GetAll)
	protected.Get("/users/:id", middleware.RequireAdmin(), userHandler.GetByID)
	protected.Post("/users", middleware.RequireAdmin(), userHandler.Create)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin account on first boot
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByUsername("admin"); err == nil {
		return
	}

	admin := &model.User{
		Username: "admin",
		Role:     model.RoleAdmin,
	}
	if err := admin.SetPassword("password"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
		return
	}
	log.Println("Admin user created: admin / password")
}
