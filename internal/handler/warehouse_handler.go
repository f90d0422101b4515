package handler

import (
	"github.com/chigozie9/WareHouse/internal/model"
	"github.com/chigozie9/WareHouse/internal/service"
	"github.com/chigozie9/WareHouse/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type WarehouseHandler struct {
	service service.WarehouseService
}

func NewWarehouseHandler(s service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{service: s}
}

// GetWarehouses handles GET /api/v1/warehouses
func (h *WarehouseHandler) GetWarehouses(c *fiber.Ctx) error {
	warehouses, err := h.service.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(warehouses)
}

// GetWarehouse handles GET /api/v1/warehouses/:id
func (h *WarehouseHandler) GetWarehouse(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	warehouse, err := h.service.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(warehouse)
}

// CreateWarehouse handles POST /api/v1/warehouses
func (h *WarehouseHandler) CreateWarehouse(c *fiber.Ctx) error {
	var warehouse model.Warehouse
	if err := c.BodyParser(&warehouse); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&warehouse); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.Message(errs)})
	}

	created, err := h.service.Create(&warehouse, getUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Warehouse created", "data": created})
}

// UpdateWarehouse handles PUT /api/v1/warehouses/:id
func (h *WarehouseHandler) UpdateWarehouse(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	var warehouse model.Warehouse
	if err := c.BodyParser(&warehouse); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&warehouse); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.Message(errs)})
	}

	updated, err := h.service.Update(id, &warehouse, getUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Warehouse updated", "data": updated})
}

// DeleteWarehouse handles DELETE /api/v1/warehouses/:id
func (h *WarehouseHandler) DeleteWarehouse(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	if err := h.service.Delete(id, getUserID(c)); err != nil {
		return fail(c, err)
	}

	return c.SendStatus(204)
}
