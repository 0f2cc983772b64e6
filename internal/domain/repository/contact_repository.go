package repository

import "github.com/merchanthaus/crm-api/internal/domain/entity"

// ContactRepository define el puerto de persistencia para Contact.
type ContactRepository interface {
	Create(contact *entity.Contact) error
	GetByID(id string) (*entity.Contact, error)
	List(limit, offset int) ([]*entity.Contact, error)
	ListByAccount(accountID string) ([]*entity.Contact, error)
}
