package handler

import (
	"github.com/chigozie9/WareHouse/internal/model"
	"github.com/chigozie9/WareHouse/internal/service"
	"github.com/chigozie9/WareHouse/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// GetItems handles GET /api/v1/warehouses/:id/items
func (h *InventoryHandler) GetItems(c *fiber.Ctx) error {
	warehouseID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	items, err := h.service.ListItems(warehouseID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}

// AddItem handles POST /api/v1/warehouses/:id/items
func (h *InventoryHandler) AddItem(c *fiber.Ctx) error {
	warehouseID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	var item model.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&item); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.Message(errs)})
	}

	stored, err := h.service.AddItem(warehouseID, &item, getUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Item stored", "data": stored})
}

// UpdateItem handles PUT /api/v1/warehouses/:id/items/:itemId
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	warehouseID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}
	itemID, err := parseUUID(c.Params("itemId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var item model.InventoryItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&item); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.Message(errs)})
	}

	updated, err := h.service.UpdateItem(warehouseID, itemID, &item, getUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Item updated", "data": updated})
}

// DeleteItem handles DELETE /api/v1/warehouses/:id/items/:itemId
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	warehouseID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}
	itemID, err := parseUUID(c.Params("itemId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	if err := h.service.DeleteItem(warehouseID, itemID, getUserID(c)); err != nil {
		return fail(c, err)
	}

	return c.SendStatus(204)
}
