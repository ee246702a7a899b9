package handler

import (
	"go-invsys/internal/model"
	"go-invsys/internal/repository"
	"go-invsys/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type VendorHandler struct {
	vendorRepo repository.VendorRepository
}

func NewVendorHandler(vendorRepo repository.VendorRepository) *VendorHandler {
	return &VendorHandler{vendorRepo: vendorRepo}
}

// POST /api/v1/vendors
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var vendor model.Vendor
	if err := c.BodyParser(&vendor); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&vendor); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.Message(errs)})
	}

	if err := h.vendorRepo.Create(&vendor); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create vendor"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Vendor created", "data": vendor})
}

// GET /api/v1/vendors
func (h *VendorHandler) GetAll(c *fiber.Ctx) error {
	vendors, err := h.vendorRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(vendors)
}

// GET /api/v1/vendors/:id
func (h *VendorHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vendor ID"})
	}

	vendor, err := h.vendorRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Vendor not found"})
	}
	return c.JSON(vendor)
}

// PUT /api/v1/vendors/:id
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid vendor ID"})
	}

	vendor, err := h.vendorRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Vendor not found"})
	}

	var req model.Vendor
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.Message(errs)})
	}

	vendor.Name = req.Name
	vendor.Address = req.Address
	vendor.MobileNumber = req.MobileNumber
	if err := h.vendorRepo.Update(vendor); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update vendor"})
	}
	return c.JSON(fiber.Map{"message": "Vendor updated", "data": vendor})
}
