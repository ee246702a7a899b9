package handler

import (
	"go-invsys/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ImportOrderHandler struct {
	orderService service.ImportOrderService
}

func NewImportOrderHandler(orderService service.ImportOrderService) *ImportOrderHandler {
	return &ImportOrderHandler{orderService: orderService}
}

// POST /api/v1/import-orders
func (h *ImportOrderHandler) Create(c *fiber.Ctx) error {
	var req service.CreateImportOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.orderService.Create(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Import order created", "data": order})
}

// Complete receives the ordered goods into the warehouse
// POST /api/v1/import-orders/:id/complete
func (h *ImportOrderHandler) Complete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid import order ID"})
	}

	order, err := h.orderService.Complete(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Import order completed", "data": order})
}

// POST /api/v1/import-orders/:id/cancel
func (h *ImportOrderHandler) Cancel(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid import order ID"})
	}

	order, err := h.orderService.Cancel(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Import order cancelled", "data": order})
}

// GET /api/v1/import-orders
func (h *ImportOrderHandler) GetAll(c *fiber.Ctx) error {
	orders, err := h.orderService.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// GET /api/v1/import-orders/:id
func (h *ImportOrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid import order ID"})
	}

	order, err := h.orderService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}
