package repository

import "github.com/merchanthaus/crm-api/internal/domain/entity"

// DocumentRepository define el puerto de persistencia para Document.
type DocumentRepository interface {
	Create(doc *entity.Document) error
	ListByOpportunity(opportunityID string) ([]*entity.Document, error)
	List(limit, offset int) ([]*entity.Document, error)
}
