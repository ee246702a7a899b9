package handler

import (
	"go-invsys/internal/model"
	"go-invsys/internal/repository"
	"go-invsys/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerHandler(customerRepo repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customerRepo: customerRepo}
}

// POST /api/v1/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&customer); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.Message(errs)})
	}

	if err := h.customerRepo.Create(&customer); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create customer"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Customer created", "data": customer})
}

// GET /api/v1/customers
func (h *CustomerHandler) GetAll(c *fiber.Ctx) error {
	customers, err := h.customerRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(customers)
}

// GET /api/v1/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	customer, err := h.customerRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Customer not found"})
	}
	return c.JSON(customer)
}

// PUT /api/v1/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	customer, err := h.customerRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Customer not found"})
	}

	var req model.Customer
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.Message(errs)})
	}

	customer.Name = req.Name
	customer.Mobile = req.Mobile
	customer.Address = req.Address
	if err := h.customerRepo.Update(customer); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update customer"})
	}
	return c.JSON(fiber.Map{"message": "Customer updated", "data": customer})
}
