package handler

import (
	"go-invsys/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// POST /api/v1/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var req service.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	creatorID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	invoice, err := h.invoiceService.Create(&req, creatorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Invoice created", "data": invoice})
}

// GET /api/v1/invoices
func (h *InvoiceHandler) GetAll(c *fiber.Ctx) error {
	invoices, err := h.invoiceService.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoices)
}

// GET /api/v1/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	invoice, err := h.invoiceService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(invoice)
}
