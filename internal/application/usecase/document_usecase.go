package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/merchanthaus/crm-api/internal/application/dto"
	"github.com/merchanthaus/crm-api/internal/domain"
	"github.com/merchanthaus/crm-api/internal/domain/entity"
	"github.com/merchanthaus/crm-api/internal/domain/repository"
)

// DocumentUseCase documentos ligados a una oportunidad (tab Documents del detalle).
type DocumentUseCase struct {
	repo repository.DocumentRepository
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(repo repository.DocumentRepository) *DocumentUseCase {
	return &DocumentUseCase{repo: repo}
}

// Add registra un documento (nombre y URL obligatorios). uploadedBy es el email
// del usuario autenticado, si lo hay.
func (uc *DocumentUseCase) Add(opportunityID, uploadedBy string, in dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.URL) == "" {
		return nil, domain.ErrInvalidInput
	}
	doc := &entity.Document{
		ID:            uuid.New().String(),
		OpportunityID: opportunityID,
		Name:          in.Name,
		URL:           in.URL,
		UploadedBy:    uploadedBy,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// ListByOpportunity lista los documentos de la oportunidad (más antiguo primero).
func (uc *DocumentUseCase) ListByOpportunity(opportunityID string) (*dto.DocumentListResponse, error) {
	list, err := uc.repo.ListByOpportunity(opportunityID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDocumentResponse(d))
	}
	return &dto.DocumentListResponse{Items: items}, nil
}

// List listado global de documentos con paginación (más reciente primero),
// que alimenta la página Documents.
func (uc *DocumentUseCase) List(limit, offset int) (*dto.DocumentPageResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDocumentResponse(d))
	}
	return &dto.DocumentPageResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:            d.ID,
		OpportunityID: d.OpportunityID,
		Name:          d.Name,
		URL:           d.URL,
		UploadedBy:    d.UploadedBy,
		CreatedAt:     d.CreatedAt,
	}
}
