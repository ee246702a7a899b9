package handler

import (
	"go-invsys/internal/model"
	"go-invsys/internal/repository"
	"go-invsys/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	itemRepo repository.ItemRepository
}

func NewItemHandler(itemRepo repository.ItemRepository) *ItemHandler {
	return &ItemHandler{itemRepo: itemRepo}
}

// POST /api/v1/items
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var item model.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&item); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.Message(errs)})
	}
	if item.ItemPrice.IsNegative() {
		return c.Status(400).JSON(fiber.Map{"error": "item_price cannot be negative"})
	}

	if err := h.itemRepo.Create(&item); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create item"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Item created", "data": item})
}

// GET /api/v1/items
func (h *ItemHandler) GetAll(c *fiber.Ctx) error {
	items, err := h.itemRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(items)
}

// GET /api/v1/items/:id
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	item, err := h.itemRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Item not found"})
	}
	return c.JSON(item)
}

// PUT /api/v1/items/:id
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	item, err := h.itemRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Item not found"})
	}

	var req model.Item
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.Message(errs)})
	}
	if req.ItemPrice.IsNegative() {
		return c.Status(400).JSON(fiber.Map{"error": "item_price cannot be negative"})
	}

	// Price changes only affect lines created afterwards
	item.Name = req.Name
	item.ItemPrice = req.ItemPrice
	if err := h.itemRepo.Update(item); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update item"})
	}
	return c.JSON(fiber.Map{"message": "Item updated", "data": item})
}
