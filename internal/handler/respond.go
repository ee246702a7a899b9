package handler

import (
	"errors"

	"go-invsys/internal/repository"
	"go-invsys/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserID reads the authenticated user from the context
// (set by the auth middleware)
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil, errors.New("no authenticated user in context")
	}
	return uuid.Parse(raw)
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// respondError maps domain errors onto HTTP statuses: bad input is 400,
// missing entities 404, and rejected state changes 409.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *service.ValidationError
	var stockErr *repository.InsufficientStockError
	var overErr *service.OverCollectionError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(400).JSON(fiber.Map{"error": validationErr.Message})
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrTransferNotFound),
		errors.Is(err, service.ErrInvoiceNotFound),
		errors.Is(err, service.ErrWarehouseNotFound),
		errors.Is(err, service.ErrVendorNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrUsernameExists),
		errors.As(err, &stockErr),
		errors.As(err, &overErr):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}
