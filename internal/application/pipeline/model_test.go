package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchanthaus/crm-api/internal/application/dto"
	"github.com/merchanthaus/crm-api/internal/application/pipeline"
	"github.com/merchanthaus/crm-api/internal/domain"
	"github.com/merchanthaus/crm-api/internal/domain/entity"
	"github.com/merchanthaus/crm-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria — un store in-memory que implementa los puertos de
// persistencia y el TxRunner, con puntos de falla inyectables por paso.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	accounts      []*entity.Account
	contacts      []*entity.Contact
	opportunities []*entity.Opportunity

	failList        error // ListJoined
	failAccount     error // Create account
	failContact     error // Create contact
	failOpportunity error // Create opportunity
	failUpdate      error // UpdateStage / UpdateAssignment
}

// --- OpportunityRepository ---

func (s *fakeStore) Create(o *entity.Opportunity) error {
	if s.failOpportunity != nil {
		return s.failOpportunity
	}
	cp := *o
	s.opportunities = append(s.opportunities, &cp)
	return nil
}

func (s *fakeStore) GetJoined(id string) (*entity.Opportunity, error) {
	for _, o := range s.opportunities {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *fakeStore) ListJoined() ([]*entity.Opportunity, error) {
	if s.failList != nil {
		return nil, s.failList
	}
	out := make([]*entity.Opportunity, 0, len(s.opportunities))
	for _, o := range s.opportunities {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeStore) UpdateStage(id string, stage entity.Stage, enteredAt time.Time) error {
	if s.failUpdate != nil {
		return s.failUpdate
	}
	for _, o := range s.opportunities {
		if o.ID == id {
			o.Stage = stage
			o.StageEnteredAt = enteredAt
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *fakeStore) UpdateAssignment(id, assignee string) error {
	if s.failUpdate != nil {
		return s.failUpdate
	}
	for _, o := range s.opportunities {
		if o.ID == id {
			o.AssignedTo = assignee
			return nil
		}
	}
	return domain.ErrNotFound
}

// --- AccountRepository / ContactRepository (solo lo que usa el intake) ---

type fakeAccountRepo struct{ s *fakeStore }

func (r *fakeAccountRepo) Create(a *entity.Account) error {
	if r.s.failAccount != nil {
		return r.s.failAccount
	}
	cp := *a
	r.s.accounts = append(r.s.accounts, &cp)
	return nil
}
func (r *fakeAccountRepo) GetByID(string) (*entity.Account, error) { return nil, domain.ErrNotFound }
func (r *fakeAccountRepo) List(int, int) ([]*entity.Account, error) { return nil, nil }
func (r *fakeAccountRepo) Update(*entity.Account) error             { return nil }

type fakeContactRepo struct{ s *fakeStore }

func (r *fakeContactRepo) Create(c *entity.Contact) error {
	if r.s.failContact != nil {
		return r.s.failContact
	}
	cp := *c
	r.s.contacts = append(r.s.contacts, &cp)
	return nil
}
func (r *fakeContactRepo) GetByID(string) (*entity.Contact, error) { return nil, domain.ErrNotFound }
func (r *fakeContactRepo) List(int, int) ([]*entity.Contact, error) { return nil, nil }
func (r *fakeContactRepo) ListByAccount(string) ([]*entity.Contact, error) { return nil, nil }

// --- TxRunner ---

// fakeTxRunner simula la transacción: ejecuta fn sobre una copia del store y
// solo publica los cambios si fn no falla (rollback = descartar la copia).
type fakeTxRunner struct{ s *fakeStore }

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	accountRepo repository.AccountRepository,
	contactRepo repository.ContactRepository,
	opportunityRepo repository.OpportunityRepository,
) error) error {
	scratch := *tx.s
	scratch.accounts = append([]*entity.Account(nil), tx.s.accounts...)
	scratch.contacts = append([]*entity.Contact(nil), tx.s.contacts...)
	scratch.opportunities = append([]*entity.Opportunity(nil), tx.s.opportunities...)

	err := fn(&fakeAccountRepo{s: &scratch}, &fakeContactRepo{s: &scratch}, &scratch)
	if err != nil {
		return err
	}
	tx.s.accounts = scratch.accounts
	tx.s.contacts = scratch.contacts
	tx.s.opportunities = scratch.opportunities
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newTestModel(s *fakeStore) *pipeline.Model {
	return pipeline.NewModel(s, &fakeTxRunner{s: s})
}

func acmeRequest() dto.CreateApplicationRequest {
	return dto.CreateApplicationRequest{
		CompanyName:        "Acme Inc",
		City:               "Cape Town",
		Country:            "ZA",
		FirstName:          "Jo",
		LastName:           "Lee",
		Email:              "jo@acme.example",
		ProcessingServices: []string{"gateway", "merchant_account"},
		AssignedTo:         "Taryn",
	}
}

func seedOpportunity(s *fakeStore, id string, stage entity.Stage) {
	s.opportunities = append(s.opportunities, &entity.Opportunity{
		ID:        id,
		Stage:     stage,
		Status:    entity.StatusActive,
		Account:   &entity.Account{ID: "acc-" + id, Name: "Seed Co"},
		Contact:   &entity.Contact{ID: "con-" + id, FirstName: "Sam"},
		CreatedAt: time.Now(),
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Load
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_ReemplazaElEspejo(t *testing.T) {
	s := &fakeStore{}
	seedOpportunity(s, "opp-1", entity.StageDiscovery)
	seedOpportunity(s, "opp-2", entity.StageQualified)

	m := newTestModel(s)
	list, err := m.Load()
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)

	// Get lee del espejo, no del store.
	got, err := m.Get("opp-1")
	require.NoError(t, err)
	assert.Equal(t, string(entity.StageDiscovery), got.Stage)
	assert.Equal(t, "Seed Co", got.Account.Name, "el join debe venir denormalizado")
}

func TestLoad_FallaDejaElEspejoComoEstaba(t *testing.T) {
	s := &fakeStore{}
	seedOpportunity(s, "opp-1", entity.StageDiscovery)

	m := newTestModel(s)
	_, err := m.Load()
	require.NoError(t, err)

	// La siguiente lectura remota falla: el espejo mantiene el último estado bueno.
	s.failList = errors.New("conexión rechazada")
	_, err = m.Load()

	var loadErr *pipeline.LoadError
	require.ErrorAs(t, err, &loadErr, "la falla de lectura debe tiparse como LoadError")

	snap := m.Snapshot()
	assert.Len(t, snap.Items, 1, "el espejo no debe vaciarse por una carga fallida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateApplication — intake transaccional
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateApplication_HappyPath(t *testing.T) {
	s := &fakeStore{}
	m := newTestModel(s)

	resp, err := m.CreateApplication(acmeRequest())
	require.NoError(t, err)

	assert.Equal(t, string(entity.InitialStage), resp.Stage, "toda aplicación nueva entra en la etapa inicial")
	assert.True(t, resp.AgreeToTerms, "el intake siempre registra agree_to_terms")
	assert.Equal(t, "Taryn", resp.AssignedTo)
	require.NotNil(t, resp.Account)
	require.NotNil(t, resp.Contact)
	assert.Equal(t, "Acme Inc", resp.Account.Name)
	assert.Equal(t, "Jo", resp.Contact.FirstName)
	assert.Equal(t, resp.Account.ID, resp.Contact.AccountID, "el contacto debe colgar de la cuenta creada")

	// Las tres filas quedaron en el store y la oportunidad encabeza el espejo.
	assert.Len(t, s.accounts, 1)
	assert.Len(t, s.contacts, 1)
	assert.Len(t, s.opportunities, 1)
	snap := m.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, resp.ID, snap.Items[0].ID)
}

func TestCreateApplication_SeAnteponeAlEspejo(t *testing.T) {
	s := &fakeStore{}
	seedOpportunity(s, "opp-viejo", entity.StageQualified)
	m := newTestModel(s)
	_, err := m.Load()
	require.NoError(t, err)

	resp, err := m.CreateApplication(acmeRequest())
	require.NoError(t, err)

	snap := m.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, resp.ID, snap.Items[0].ID, "la aplicación nueva va primera en el tablero")
}

func TestCreateApplication_CamposObligatorios(t *testing.T) {
	m := newTestModel(&fakeStore{})

	in := acmeRequest()
	in.CompanyName = "  "
	_, err := m.CreateApplication(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "company name es obligatorio")

	in = acmeRequest()
	in.FirstName = ""
	_, err = m.CreateApplication(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "first name es obligatorio")
}

func TestCreateApplication_AsignadoDebeSerDelEquipo(t *testing.T) {
	m := newTestModel(&fakeStore{})

	in := acmeRequest()
	in.AssignedTo = "Nadie"
	_, err := m.CreateApplication(in)
	assert.ErrorIs(t, err, domain.ErrInvalidAssignee)

	in.AssignedTo = "" // sin asignar está permitido
	_, err = m.CreateApplication(in)
	assert.NoError(t, err)
}

// Falla el insert del contacto → rollback total: ni cuenta huérfana ni estado local.
func TestCreateApplication_FallaContacto_RollbackTotal(t *testing.T) {
	s := &fakeStore{failContact: errors.New("violación de constraint")}
	m := newTestModel(s)

	_, err := m.CreateApplication(acmeRequest())

	var createErr *pipeline.CreateError
	require.ErrorAs(t, err, &createErr)
	assert.Equal(t, pipeline.StepContact, createErr.Step, "el error debe señalar el paso que falló")

	assert.Empty(t, s.accounts, "la cuenta insertada antes de la falla debe revertirse")
	assert.Empty(t, s.contacts)
	assert.Empty(t, s.opportunities)
	assert.Empty(t, m.Snapshot().Items, "nada debe quedar en el espejo")
}

func TestCreateApplication_FallaOportunidad_RollbackTotal(t *testing.T) {
	s := &fakeStore{failOpportunity: errors.New("disco lleno")}
	m := newTestModel(s)

	_, err := m.CreateApplication(acmeRequest())

	var createErr *pipeline.CreateError
	require.ErrorAs(t, err, &createErr)
	assert.Equal(t, pipeline.StepOpportunity, createErr.Step)
	assert.Empty(t, s.accounts)
	assert.Empty(t, s.contacts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateStage — transiciones libres, remoto primero
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStage_TransicionLibre(t *testing.T) {
	s := &fakeStore{}
	seedOpportunity(s, "opp-1", entity.StageApplicationStarted)
	m := newTestModel(s)
	_, err := m.Load()
	require.NoError(t, err)

	// De la primera columna directo a closed_won: no hay orden impuesto.
	resp, err := m.UpdateStage("opp-1", entity.StageClosedWon)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StageClosedWon), resp.Stage)
	assert.False(t, resp.StageEnteredAt.IsZero(), "stage_entered_at debe reiniciarse")

	// El remoto también quedó actualizado.
	assert.Equal(t, entity.StageClosedWon, s.opportunities[0].Stage)
}

func TestUpdateStage_MismaColumnaEsNoOp(t *testing.T) {
	s := &fakeStore{}
	seedOpportunity(s, "opp-1", entity.StageDiscovery)
	m := newTestModel(s)
	_, err := m.Load()
	require.NoError(t, err)

	before, err := m.Get("opp-1")
	require.NoError(t, err)

	resp, err := m.UpdateStage("opp-1", entity.StageDiscovery)
	require.NoError(t, err)
	assert.Equal(t, before.StageEnteredAt, resp.StageEnteredAt,
		"soltar la tarjeta en su columna no reinicia stage_entered_at")
}

func TestUpdateStage_EtapaInvalida(t *testing.T) {
	m := newTestModel(&fakeStore{})
	_, err := m.UpdateStage("opp-1", entity.Stage("limbo"))
	assert.ErrorIs(t, err, domain.ErrInvalidStage)
}

func TestUpdateStage_IdDesconocido(t *testing.T) {
	s := &fakeStore{}
	m := newTestModel(s)
	_, err := m.Load()
	require.NoError(t, err)

	_, err = m.UpdateStage("no-existe", entity.StageDiscovery)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Falla la escritura remota → el espejo NO se toca (remoto primero, local después).
func TestUpdateStage_FallaRemota_EspejoIntacto(t *testing.T) {
	s := &fakeStore{}
	seedOpportunity(s, "opp-1", entity.StageDiscovery)
	m := newTestModel(s)
	_, err := m.Load()
	require.NoError(t, err)

	s.failUpdate = errors.New("timeout")
	_, err = m.UpdateStage("opp-1", entity.StageQualified)

	var updErr *pipeline.UpdateError
	require.ErrorAs(t, err, &updErr)
	assert.Equal(t, "stage", updErr.Field)

	got, err := m.Get("opp-1")
	require.NoError(t, err)
	assert.Equal(t, string(entity.StageDiscovery), got.Stage,
		"ante falla remota la tarjeta no debe moverse localmente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateAssignment
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateAssignment_AsignaYDesasigna(t *testing.T) {
	s := &fakeStore{}
	seedOpportunity(s, "opp-1", entity.StageDiscovery)
	m := newTestModel(s)
	_, err := m.Load()
	require.NoError(t, err)

	resp, err := m.UpdateAssignment("opp-1", "Darryn")
	require.NoError(t, err)
	assert.Equal(t, "Darryn", resp.AssignedTo)

	resp, err = m.UpdateAssignment("opp-1", "")
	require.NoError(t, err)
	assert.Empty(t, resp.AssignedTo, "assignee vacío deja la oportunidad sin asignar")
}

func TestUpdateAssignment_FueraDelEquipo(t *testing.T) {
	s := &fakeStore{}
	seedOpportunity(s, "opp-1", entity.StageDiscovery)
	m := newTestModel(s)
	_, err := m.Load()
	require.NoError(t, err)

	_, err = m.UpdateAssignment("opp-1", "Desconocido")
	assert.ErrorIs(t, err, domain.ErrInvalidAssignee)
}

func TestUpdateAssignment_FallaRemota_EspejoIntacto(t *testing.T) {
	s := &fakeStore{}
	seedOpportunity(s, "opp-1", entity.StageDiscovery)
	m := newTestModel(s)
	_, err := m.Load()
	require.NoError(t, err)

	s.failUpdate = errors.New("timeout")
	_, err = m.UpdateAssignment("opp-1", "Jamie")

	var updErr *pipeline.UpdateError
	require.ErrorAs(t, err, &updErr)
	assert.Equal(t, "assigned_to", updErr.Field)

	got, err := m.Get("opp-1")
	require.NoError(t, err)
	assert.Empty(t, got.AssignedTo)
}
