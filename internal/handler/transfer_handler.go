package handler

import (
	"github.com/chigozie9/WareHouse/internal/model"
	"github.com/chigozie9/WareHouse/internal/service"
	"github.com/chigozie9/WareHouse/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type TransferHandler struct {
	service service.TransferService
}

func NewTransferHandler(s service.TransferService) *TransferHandler {
	return &TransferHandler{service: s}
}

// Transfer handles POST /api/v1/transfers
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	var req model.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validator.Message(errs)})
	}

	if err := h.service.Transfer(&req, getUserID(c)); err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Transfer completed successfully."})
}

// GetTransfers handles GET /api/v1/transfers
func (h *TransferHandler) GetTransfers(c *fiber.Ctx) error {
	logs, err := h.service.History()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(logs)
}
