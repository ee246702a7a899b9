package handler

import (
	"go-invsys/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransferHandler struct {
	transferService service.TransferService
}

func NewTransferHandler(transferService service.TransferService) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// POST /api/v1/transfers
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var req service.CreateTransferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	creatorID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	transfer, err := h.transferService.Create(&req, creatorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Transfer request created", "data": transfer})
}

// Complete moves the stock between the two warehouses
// POST /api/v1/transfers/:id/complete
func (h *TransferHandler) Complete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transfer ID"})
	}

	transfer, err := h.transferService.Complete(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transfer completed", "data": transfer})
}

// POST /api/v1/transfers/:id/cancel
func (h *TransferHandler) Cancel(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transfer ID"})
	}

	transfer, err := h.transferService.Cancel(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Transfer cancelled", "data": transfer})
}

// GET /api/v1/transfers
func (h *TransferHandler) GetAll(c *fiber.Ctx) error {
	transfers, err := h.transferService.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transfers)
}

// GET /api/v1/transfers/:id
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transfer ID"})
	}

	transfer, err := h.transferService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transfer)
}
