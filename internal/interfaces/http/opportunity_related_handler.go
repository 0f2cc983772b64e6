package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/merchanthaus/crm-api/internal/application/dto"
	"github.com/merchanthaus/crm-api/internal/application/usecase"
	"github.com/merchanthaus/crm-api/internal/domain"
)

// OpportunityRelatedHandler documentos y actividades de una oportunidad
// (tabs del modal de detalle; protegido).
type OpportunityRelatedHandler struct {
	docUC *usecase.DocumentUseCase
	actUC *usecase.ActivityUseCase
}

// NewOpportunityRelatedHandler construye el handler.
func NewOpportunityRelatedHandler(docUC *usecase.DocumentUseCase, actUC *usecase.ActivityUseCase) *OpportunityRelatedHandler {
	return &OpportunityRelatedHandler{docUC: docUC, actUC: actUC}
}

// ListDocuments GET /api/opportunities/:id/documents
func (h *OpportunityRelatedHandler) ListDocuments(c *fiber.Ctx) error {
	list, err := h.docUC.ListByOpportunity(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// AddDocument POST /api/opportunities/:id/documents
func (h *OpportunityRelatedHandler) AddDocument(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doc, err := h.docUC.Add(c.Params("id"), GetEmail(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y url son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// ListActivities GET /api/opportunities/:id/activities
func (h *OpportunityRelatedHandler) ListActivities(c *fiber.Ctx) error {
	list, err := h.actUC.ListByOpportunity(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// AddActivity POST /api/opportunities/:id/activities
func (h *OpportunityRelatedHandler) AddActivity(c *fiber.Ctx) error {
	var in dto.CreateActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	activity, err := h.actUC.Add(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(activity)
}
