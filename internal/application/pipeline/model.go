// Package pipeline implementa el modelo del tablero: espejo en memoria del
// listado de oportunidades y mediación de cambios de etapa/asignación contra
// el store remoto (escritura remota primero, actualización local solo si hubo éxito).
package pipeline

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/merchanthaus/crm-api/internal/application/dto"
	"github.com/merchanthaus/crm-api/internal/domain"
	"github.com/merchanthaus/crm-api/internal/domain/entity"
	"github.com/merchanthaus/crm-api/internal/domain/repository"
)

// TxRunner ejecuta el intake (cuenta → contacto → oportunidad) dentro de una
// transacción, con los repos atados a la tx. Si cualquier paso falla, todo se revierte.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		accountRepo repository.AccountRepository,
		contactRepo repository.ContactRepository,
		opportunityRepo repository.OpportunityRepository,
	) error) error
}

// Model espejo autoritativo en memoria de las oportunidades del tablero.
// Solo los métodos de Model mutan el espejo; lecturas concurrentes son seguras.
type Model struct {
	repo repository.OpportunityRepository
	tx   TxRunner

	mu   sync.RWMutex
	opps []*entity.Opportunity // orden remoto: más reciente primero
}

// NewModel construye el modelo. El espejo arranca vacío hasta el primer Load.
func NewModel(repo repository.OpportunityRepository, tx TxRunner) *Model {
	return &Model{repo: repo, tx: tx}
}

// Load trae todas las oportunidades con cuenta y contacto unidos y reemplaza el
// espejo. Si la lectura falla devuelve *LoadError y el espejo queda como estaba
// (vacío si era la primera carga).
func (m *Model) Load() (*dto.OpportunityListResponse, error) {
	list, err := m.repo.ListJoined()
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	m.mu.Lock()
	m.opps = list
	m.mu.Unlock()

	return m.listResponse(), nil
}

// CreateApplication ejecuta el intake de una aplicación nueva: inserta Account,
// luego Contact (con el id de la cuenta) y luego Opportunity (con ambos ids,
// etapa inicial fija y agree_to_terms=true), las tres dentro de una transacción.
// En éxito la oportunidad unida se antepone al espejo; en falla devuelve
// *CreateError y no se agrega estado local parcial.
func (m *Model) CreateApplication(in dto.CreateApplicationRequest) (*dto.OpportunityResponse, error) {
	if strings.TrimSpace(in.CompanyName) == "" || strings.TrimSpace(in.FirstName) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.AssignedTo != "" && !entity.ValidTeamMember(in.AssignedTo) {
		return nil, domain.ErrInvalidAssignee
	}

	now := time.Now()
	account := &entity.Account{
		ID:        uuid.New().String(),
		Name:      in.CompanyName,
		Status:    entity.StatusActive,
		Address1:  in.Address1,
		Address2:  in.Address2,
		City:      in.City,
		State:     in.State,
		Zip:       in.Zip,
		Country:   in.Country,
		Website:   in.Website,
		CreatedAt: now,
		UpdatedAt: now,
	}
	contact := &entity.Contact{
		ID:        uuid.New().String(),
		AccountID: account.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Fax:       in.Fax,
		CreatedAt: now,
		UpdatedAt: now,
	}
	opp := &entity.Opportunity{
		ID:                 uuid.New().String(),
		AccountID:          account.ID,
		ContactID:          contact.ID,
		Stage:              entity.InitialStage,
		Status:             entity.StatusActive,
		ReferralSource:     in.ReferralSource,
		Username:           in.Username,
		ProcessingServices: in.ProcessingServices,
		AgreeToTerms:       true,
		Timezone:           in.Timezone,
		Language:           in.Language,
		AssignedTo:         in.AssignedTo,
		MonthlyVolume:      in.MonthlyVolume,
		StageEnteredAt:     now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// Tres inserciones estrictamente secuenciales (cada una depende del id
	// anterior) dentro de una sola transacción: una falla intermedia no deja
	// cuentas huérfanas en el store.
	step := StepAccount
	err := m.tx.Run(context.Background(), func(
		accountRepo repository.AccountRepository,
		contactRepo repository.ContactRepository,
		opportunityRepo repository.OpportunityRepository,
	) error {
		if err := accountRepo.Create(account); err != nil {
			return err
		}
		step = StepContact
		if err := contactRepo.Create(contact); err != nil {
			return err
		}
		step = StepOpportunity
		return opportunityRepo.Create(opp)
	})
	if err != nil {
		return nil, &CreateError{Step: step, Err: err}
	}

	opp.Account = account
	opp.Contact = contact

	m.mu.Lock()
	m.opps = append([]*entity.Opportunity{opp}, m.opps...)
	resp := toOpportunityResponse(opp)
	m.mu.Unlock()

	return resp, nil
}

// UpdateStage cambia la etapa de una oportunidad: escritura remota primero,
// espejo después. Soltar la tarjeta en su misma columna es un no-op. No se
// valida ningún orden de transición entre etapas: el tablero permite arrastrar
// a cualquier columna.
func (m *Model) UpdateStage(id string, stage entity.Stage) (*dto.OpportunityResponse, error) {
	if !stage.Valid() {
		return nil, domain.ErrInvalidStage
	}

	m.mu.RLock()
	cur := m.find(id)
	if cur == nil {
		m.mu.RUnlock()
		return nil, domain.ErrNotFound
	}
	if cur.Stage == stage {
		resp := toOpportunityResponse(cur)
		m.mu.RUnlock()
		return resp, nil
	}
	m.mu.RUnlock()

	enteredAt := time.Now()
	if err := m.repo.UpdateStage(id, stage, enteredAt); err != nil {
		return nil, &UpdateError{Field: "stage", ID: id, Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	opp := m.find(id)
	if opp == nil {
		// Desapareció del espejo entre la escritura y esta actualización
		// (p.ej. un Load concurrente); el remoto ya quedó consistente.
		return nil, domain.ErrNotFound
	}
	opp.Stage = stage
	opp.StageEnteredAt = enteredAt
	opp.UpdatedAt = enteredAt
	return toOpportunityResponse(opp), nil
}

// UpdateAssignment cambia el dueño de una oportunidad. assignee vacío la deja
// sin asignar; si no, debe ser miembro del equipo fijo. Mismo contrato que
// UpdateStage: remoto primero, espejo solo en éxito.
func (m *Model) UpdateAssignment(id, assignee string) (*dto.OpportunityResponse, error) {
	if assignee != "" && !entity.ValidTeamMember(assignee) {
		return nil, domain.ErrInvalidAssignee
	}

	m.mu.RLock()
	if m.find(id) == nil {
		m.mu.RUnlock()
		return nil, domain.ErrNotFound
	}
	m.mu.RUnlock()

	if err := m.repo.UpdateAssignment(id, assignee); err != nil {
		return nil, &UpdateError{Field: "assigned_to", ID: id, Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	opp := m.find(id)
	if opp == nil {
		return nil, domain.ErrNotFound
	}
	opp.AssignedTo = assignee
	opp.UpdatedAt = time.Now()
	return toOpportunityResponse(opp), nil
}

// Snapshot devuelve el contenido actual del espejo (copia, orden del tablero).
func (m *Model) Snapshot() *dto.OpportunityListResponse {
	return m.listResponse()
}

// Get devuelve una oportunidad del espejo por id, o ErrNotFound.
func (m *Model) Get(id string) (*dto.OpportunityResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	opp := m.find(id)
	if opp == nil {
		return nil, domain.ErrNotFound
	}
	return toOpportunityResponse(opp), nil
}

// find busca en el espejo. El caller debe sostener m.mu.
func (m *Model) find(id string) *entity.Opportunity {
	for _, o := range m.opps {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (m *Model) listResponse() *dto.OpportunityListResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := make([]dto.OpportunityResponse, 0, len(m.opps))
	for _, o := range m.opps {
		items = append(items, *toOpportunityResponse(o))
	}
	return &dto.OpportunityListResponse{Items: items}
}

func toOpportunityResponse(o *entity.Opportunity) *dto.OpportunityResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OpportunityResponse{
		ID:                 o.ID,
		AccountID:          o.AccountID,
		ContactID:          o.ContactID,
		Stage:              string(o.Stage),
		StageLabel:         o.Stage.Label(),
		Status:             o.Status,
		ReferralSource:     o.ReferralSource,
		Username:           o.Username,
		ProcessingServices: append([]string(nil), o.ProcessingServices...),
		AgreeToTerms:       o.AgreeToTerms,
		Timezone:           o.Timezone,
		Language:           o.Language,
		AssignedTo:         o.AssignedTo,
		MonthlyVolume:      o.MonthlyVolume,
		StageEnteredAt:     o.StageEnteredAt,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
	if o.Account != nil {
		resp.Account = toAccountResponse(o.Account)
	}
	if o.Contact != nil {
		resp.Contact = toContactResponse(o.Contact)
	}
	return resp
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

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	if c == nil {
		return nil
	}
	return &dto.ContactResponse{
		ID:        c.ID,
		AccountID: c.AccountID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Fax:       c.Fax,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
