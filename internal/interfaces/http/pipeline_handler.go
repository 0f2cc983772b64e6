package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/merchanthaus/crm-api/internal/application/dto"
	"github.com/merchanthaus/crm-api/internal/application/pipeline"
	"github.com/merchanthaus/crm-api/internal/domain"
	"github.com/merchanthaus/crm-api/internal/domain/entity"
)

// PipelineHandler maneja las peticiones HTTP del tablero de oportunidades (protegido).
type PipelineHandler struct {
	model *pipeline.Model
	pdfUC *pipeline.PDFUseCase
}

// NewPipelineHandler construye el handler.
func NewPipelineHandler(model *pipeline.Model, pdfUC *pipeline.PDFUseCase) *PipelineHandler {
	return &PipelineHandler{model: model, pdfUC: pdfUC}
}

// List GET /api/opportunities
// Recarga el espejo desde el store y devuelve el listado completo del tablero.
// Si la carga falla, el espejo queda en su último estado bueno y se reporta el error.
func (h *PipelineHandler) List(c *fiber.Ctx) error {
	list, err := h.model.Load()
	if err != nil {
		var loadErr *pipeline.LoadError
		if errors.As(err, &loadErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "LOAD_FAILED", Message: "no se pudo cargar el tablero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Create POST /api/opportunities
// Intake de una aplicación nueva: cuenta + contacto + oportunidad en una transacción.
func (h *PipelineHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateApplicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	opp, err := h.model.CreateApplication(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_name y first_name son requeridos"})
		}
		if errors.Is(err, domain.ErrInvalidAssignee) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "assigned_to debe ser miembro del equipo"})
		}
		var createErr *pipeline.CreateError
		if errors.As(err, &createErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CREATE_FAILED", Message: "no se pudo registrar la aplicación"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(opp)
}

// Get GET /api/opportunities/:id
func (h *PipelineHandler) Get(c *fiber.Ctx) error {
	opp, err := h.model.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "oportunidad no encontrada"})
	}
	return c.JSON(opp)
}

// UpdateStage PATCH /api/opportunities/:id/stage
// Resultado de soltar la tarjeta en otra columna: exactamente un cambio de etapa.
func (h *PipelineHandler) UpdateStage(c *fiber.Ctx) error {
	var in dto.UpdateStageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	opp, err := h.model.UpdateStage(c.Params("id"), entity.Stage(in.Stage))
	if err != nil {
		return h.updateError(c, err)
	}
	return c.JSON(opp)
}

// UpdateAssignment PATCH /api/opportunities/:id/assignment
func (h *PipelineHandler) UpdateAssignment(c *fiber.Ctx) error {
	var in dto.UpdateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	opp, err := h.model.UpdateAssignment(c.Params("id"), in.AssignedTo)
	if err != nil {
		return h.updateError(c, err)
	}
	return c.JSON(opp)
}

// PDF GET /api/opportunities/:id/pdf
// Resumen imprimible de la aplicación.
func (h *PipelineHandler) PDF(c *fiber.Ctx) error {
	data, err := h.pdfUC.Generate(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "oportunidad no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: "no se pudo generar el PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="application-summary.pdf"`)
	return c.Send(data)
}

func (h *PipelineHandler) updateError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidStage):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "etapa desconocida"})
	case errors.Is(err, domain.ErrInvalidAssignee):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "assigned_to debe ser miembro del equipo o vacío"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "oportunidad no encontrada"})
	}
	var updateErr *pipeline.UpdateError
	if errors.As(err, &updateErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "UPDATE_FAILED", Message: "no se pudo actualizar la oportunidad"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
