package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/merchanthaus/crm-api/internal/application/sop"
)

// SOPHandler contenido estático de procedimientos operativos.
type SOPHandler struct{}

// NewSOPHandler construye el handler.
func NewSOPHandler() *SOPHandler {
	return &SOPHandler{}
}

// Get GET /api/sop
func (h *SOPHandler) Get(c *fiber.Ctx) error {
	return c.JSON(sop.Get())
}
