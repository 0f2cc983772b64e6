package repository

import (
	"time"

	"github.com/merchanthaus/crm-api/internal/domain/entity"
)

// OpportunityRepository define el puerto de persistencia para Opportunity.
// ListJoined y GetJoined devuelven la oportunidad con Account y Contact
// denormalizados (join), que es la forma que consume el modelo de pipeline.
type OpportunityRepository interface {
	Create(opportunity *entity.Opportunity) error
	GetJoined(id string) (*entity.Opportunity, error)
	ListJoined() ([]*entity.Opportunity, error)
	UpdateStage(id string, stage entity.Stage, enteredAt time.Time) error
	UpdateAssignment(id, assignee string) error
}
