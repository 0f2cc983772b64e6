package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/merchanthaus/crm-api/internal/application/dto"
	"github.com/merchanthaus/crm-api/internal/application/tasks"
	"github.com/merchanthaus/crm-api/internal/domain"
)

// TaskHandler maneja las peticiones HTTP del tracker de tareas (protegido).
type TaskHandler struct {
	tracker *tasks.Tracker
}

// NewTaskHandler construye el handler.
func NewTaskHandler(tracker *tasks.Tracker) *TaskHandler {
	return &TaskHandler{tracker: tracker}
}

// List GET /api/tasks
func (h *TaskHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.tracker.All())
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Assignee) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y assignee son requeridos"})
	}
	if in.CreatedBy == "" {
		in.CreatedBy = GetEmail(c)
	}
	task := h.tracker.Add(in)
	return c.Status(fiber.StatusCreated).JSON(task)
}

// EnsureSLA POST /api/tasks/ensure-sla
// Crea la tarea SLA de la oportunidad solo si no hay ya una abierta. El salto
// idempotente responde 200 con created=false; la creación responde 201.
func (h *TaskHandler) EnsureSLA(c *fiber.Ctx) error {
	var in dto.EnsureSLATaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CreatedBy == "" {
		in.CreatedBy = GetEmail(c)
	}
	task, created, err := h.tracker.EnsureSLA(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "related_opportunity_id es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !created {
		return c.JSON(fiber.Map{"created": false})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"created": true, "task": task})
}

// UpdateStatus PATCH /api/tasks/:id/status
// Id desconocido es un no-op (200 igualmente), como en el tracker.
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.tracker.UpdateStatus(c.Params("id"), in.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser open, in_progress o done"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ForOpportunity GET /api/tasks/opportunity/:id
func (h *TaskHandler) ForOpportunity(c *fiber.Ctx) error {
	return c.JSON(h.tracker.ForOpportunity(c.Params("id")))
}
