package handler

import (
	"go-invsys/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CollectionHandler struct {
	collectionService service.CollectionService
}

func NewCollectionHandler(collectionService service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// POST /api/v1/collections
func (h *CollectionHandler) Create(c *fiber.Ctx) error {
	var req service.CreateCollectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	creatorID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	collection, err := h.collectionService.Create(&req, creatorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Collection recorded", "data": collection})
}

// GET /api/v1/collections
func (h *CollectionHandler) GetAll(c *fiber.Ctx) error {
	collections, err := h.collectionService.GetAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(collections)
}
