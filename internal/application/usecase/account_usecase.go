package usecase

import (
	"time"

	"github.com/merchanthaus/crm-api/internal/application/dto"
	"github.com/merchanthaus/crm-api/internal/domain"
	"github.com/merchanthaus/crm-api/internal/domain/entity"
	"github.com/merchanthaus/crm-api/internal/domain/repository"
)

// AccountUseCase casos de uso de la página Accounts. El alta de cuentas no está
// aquí: las cuentas nacen solamente vía el intake de aplicaciones (pipeline).
type AccountUseCase struct {
	repo repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// GetByID obtiene una cuenta por ID.
func (uc *AccountUseCase) GetByID(id string) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	return toAccountResponse(account), nil
}

// List lista cuentas con paginación, ordenadas por nombre.
func (uc *AccountUseCase) List(limit, offset int) (*dto.AccountListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAccountResponse(a))
	}
	return &dto.AccountListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualización parcial de la cuenta (incluye marcar status active/dead).
func (uc *AccountUseCase) Update(id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		account.Name = *in.Name
	}
	if in.Status != nil {
		if *in.Status != entity.StatusActive && *in.Status != entity.StatusDead {
			return nil, domain.ErrInvalidInput
		}
		account.Status = *in.Status
	}
	if in.Address1 != nil {
		account.Address1 = *in.Address1
	}
	if in.Address2 != nil {
		account.Address2 = *in.Address2
	}
	if in.City != nil {
		account.City = *in.City
	}
	if in.State != nil {
		account.State = *in.State
	}
	if in.Zip != nil {
		account.Zip = *in.Zip
	}
	if in.Country != nil {
		account.Country = *in.Country
	}
	if in.Website != nil {
		account.Website = *in.Website
	}
	account.UpdatedAt = time.Now()
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Status:    a.Status,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		State:     a.State,
		Zip:       a.Zip,
		Country:   a.Country,
		Website:   a.Website,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
