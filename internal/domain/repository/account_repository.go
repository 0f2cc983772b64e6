package repository

import "github.com/merchanthaus/crm-api/internal/domain/entity"

// AccountRepository define el puerto de persistencia para Account.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByID(id string) (*entity.Account, error)
	List(limit, offset int) ([]*entity.Account, error)
	Update(account *entity.Account) error
}
