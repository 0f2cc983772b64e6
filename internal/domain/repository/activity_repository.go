package repository

import "github.com/merchanthaus/crm-api/internal/domain/entity"

// ActivityRepository define el puerto de persistencia para Activity.
type ActivityRepository interface {
	Create(activity *entity.Activity) error
	ListByOpportunity(opportunityID string) ([]*entity.Activity, error)
}
