package handler

import (
	"go-invsys/internal/model"
	"go-invsys/internal/repository"
	"go-invsys/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type WarehouseHandler struct {
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.StockRepository
}

func NewWarehouseHandler(warehouseRepo repository.WarehouseRepository, stockRepo repository.StockRepository) *WarehouseHandler {
	return &WarehouseHandler{warehouseRepo: warehouseRepo, stockRepo: stockRepo}
}

// POST /api/v1/warehouses
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var warehouse model.Warehouse
	if err := c.BodyParser(&warehouse); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&warehouse); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.Message(errs)})
	}

	if err := h.warehouseRepo.Create(&warehouse); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create warehouse"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Warehouse created", "data": warehouse})
}

// GET /api/v1/warehouses
func (h *WarehouseHandler) GetAll(c *fiber.Ctx) error {
	warehouses, err := h.warehouseRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(warehouses)
}

// GET /api/v1/warehouses/:id
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	warehouse, err := h.warehouseRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Warehouse not found"})
	}
	return c.JSON(warehouse)
}

// PUT /api/v1/warehouses/:id
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	warehouse, err := h.warehouseRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Warehouse not found"})
	}

	var req model.Warehouse
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.Message(errs)})
	}

	warehouse.Name = req.Name
	warehouse.UserID = req.UserID
	if err := h.warehouseRepo.Update(warehouse); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update warehouse"})
	}
	return c.JSON(fiber.Map{"message": "Warehouse updated", "data": warehouse})
}

// GetStock returns the current per-item quantities for one warehouse
// GET /api/v1/warehouses/:id/stock
func (h *WarehouseHandler) GetStock(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	if _, err := h.warehouseRepo.FindByID(id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Warehouse not found"})
	}

	stock, err := h.stockRepo.ListForWarehouse(id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(stock)
}
