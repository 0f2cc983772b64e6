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

// ActivityUseCase actividades registradas sobre una oportunidad (tab Activity del detalle).
type ActivityUseCase struct {
	repo repository.ActivityRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// Add registra una actividad (tipo obligatorio, descripción opcional).
func (uc *ActivityUseCase) Add(opportunityID string, in dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	if strings.TrimSpace(in.Type) == "" {
		return nil, domain.ErrInvalidInput
	}
	activity := &entity.Activity{
		ID:            uuid.New().String(),
		OpportunityID: opportunityID,
		Type:          in.Type,
		Description:   in.Description,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(activity); err != nil {
		return nil, err
	}
	return toActivityResponse(activity), nil
}

// ListByOpportunity lista las actividades de la oportunidad (más antigua primero).
func (uc *ActivityUseCase) ListByOpportunity(opportunityID string) (*dto.ActivityListResponse, error) {
	list, err := uc.repo.ListByOpportunity(opportunityID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toActivityResponse(a))
	}
	return &dto.ActivityListResponse{Items: items}, nil
}

func toActivityResponse(a *entity.Activity) *dto.ActivityResponse {
	if a == nil {
		return nil
	}
	return &dto.ActivityResponse{
		ID:            a.ID,
		OpportunityID: a.OpportunityID,
		Type:          a.Type,
		Description:   a.Description,
		CreatedAt:     a.CreatedAt,
	}
}
