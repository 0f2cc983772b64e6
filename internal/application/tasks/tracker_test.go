package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchanthaus/crm-api/internal/application/dto"
	"github.com/merchanthaus/crm-api/internal/application/tasks"
	"github.com/merchanthaus/crm-api/internal/domain"
	"github.com/merchanthaus/crm-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testOppA = "opp-aaaa"
	testOppB = "opp-bbbb"
)

func slaRequest(oppID string) dto.EnsureSLATaskRequest {
	return dto.EnsureSLATaskRequest{
		Title:                "Follow up: nueva aplicación",
		Description:          "Revisar la aplicación dentro del SLA",
		Assignee:             "Taryn",
		CreatedBy:            "system",
		RelatedOpportunityID: oppID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests EnsureSLA — invariante: a lo sumo una tarea SLA abierta por oportunidad
// ──────────────────────────────────────────────────────────────────────────────

// Primer EnsureSLA de una oportunidad crea la tarea con estado open y source sla.
func TestEnsureSLA_PrimeraLlamadaCrea(t *testing.T) {
	tr := tasks.NewTracker()

	task, created, err := tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err)
	assert.True(t, created, "la primera llamada debe crear la tarea")
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, entity.TaskStatusOpen, task.Status)
	assert.Equal(t, entity.TaskSourceSLA, task.Source)
	assert.Equal(t, testOppA, task.RelatedOpportunityID)
}

// Segundo EnsureSLA con la SLA vigente aún abierta no crea nada y NO es error.
func TestEnsureSLA_SegundaLlamadaEsNoOpIdempotente(t *testing.T) {
	tr := tasks.NewTracker()

	_, created, err := tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err)
	require.True(t, created)

	task, created, err := tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err, "el skip idempotente no debe ser un error")
	assert.False(t, created, "no debe crearse una segunda SLA abierta")
	assert.Empty(t, task.ID, "el skip devuelve el valor cero")

	assert.Len(t, tr.All().Items, 1, "el ledger debe tener exactamente una tarea")
}

// Una SLA en in_progress sigue contando como abierta: EnsureSLA sigue en no-op.
func TestEnsureSLA_InProgressSigueAbierta(t *testing.T) {
	tr := tasks.NewTracker()

	task, _, err := tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err)
	require.NoError(t, tr.UpdateStatus(task.ID, entity.TaskStatusInProgress))

	_, created, err := tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err)
	assert.False(t, created, "in_progress no es done: la SLA sigue abierta")
}

// Completada la SLA vigente, EnsureSLA vuelve a crear una nueva.
func TestEnsureSLA_RearmaTrasCompletar(t *testing.T) {
	tr := tasks.NewTracker()

	first, _, err := tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err)
	require.NoError(t, tr.UpdateStatus(first.ID, entity.TaskStatusDone))

	second, created, err := tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err)
	assert.True(t, created, "completada la SLA vigente, debe poder crearse otra")
	assert.NotEqual(t, first.ID, second.ID)

	assert.Len(t, tr.All().Items, 2, "ambas tareas quedan en la historia")
}

// El invariante es por oportunidad: una SLA abierta en A no bloquea a B.
func TestEnsureSLA_InvarianteEsPorOportunidad(t *testing.T) {
	tr := tasks.NewTracker()

	_, createdA, err := tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err)
	_, createdB, err := tr.EnsureSLA(slaRequest(testOppB))
	require.NoError(t, err)

	assert.True(t, createdA)
	assert.True(t, createdB, "oportunidades distintas tienen SLAs independientes")
}

// Sin oportunidad relacionada no hay contra qué sostener el invariante: error.
func TestEnsureSLA_SinOportunidad_RetornaError(t *testing.T) {
	tr := tasks.NewTracker()

	_, created, err := tr.EnsureSLA(dto.EnsureSLATaskRequest{
		Title:    "Follow up",
		Assignee: "Taryn",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, created)
}

// Reabrir una SLA terminada mientras otra está abierta deja dos abiertas; al
// completarlas una por una, EnsureSLA solo se rearma cuando no queda ninguna.
func TestEnsureSLA_ReabrirTerminadaMantieneElIndice(t *testing.T) {
	tr := tasks.NewTracker()

	first, _, err := tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err)
	require.NoError(t, tr.UpdateStatus(first.ID, entity.TaskStatusDone))

	second, created, err := tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err)
	require.True(t, created)

	// Reabrir la primera: ahora hay dos SLAs abiertas para la misma oportunidad.
	require.NoError(t, tr.UpdateStatus(first.ID, entity.TaskStatusOpen))

	_, created, err = tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err)
	assert.False(t, created, "con SLAs abiertas no debe crearse otra")

	// Cerrar solo una no basta.
	require.NoError(t, tr.UpdateStatus(second.ID, entity.TaskStatusDone))
	_, created, err = tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err)
	assert.False(t, created, "queda una SLA abierta, EnsureSLA sigue en no-op")

	// Cerrar la última sí rearma.
	require.NoError(t, tr.UpdateStatus(first.ID, entity.TaskStatusDone))
	_, created, err = tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err)
	assert.True(t, created, "sin SLAs abiertas, EnsureSLA debe crear de nuevo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Add / UpdateStatus / consultas
// ──────────────────────────────────────────────────────────────────────────────

// Add siempre crea, incluso con una SLA abierta para la misma oportunidad:
// el invariante aplica solo a tareas de origen sla.
func TestAdd_ManualNoParticipaDelInvarianteSLA(t *testing.T) {
	tr := tasks.NewTracker()

	_, _, err := tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err)

	manual := tr.Add(dto.CreateTaskRequest{
		Title:                "Llamar al comercio",
		Assignee:             "Darryn",
		RelatedOpportunityID: testOppA,
	})
	assert.Equal(t, entity.TaskSourceManual, manual.Source)
	assert.Len(t, tr.All().Items, 2)
}

// Las tareas nuevas se anteponen: All devuelve la más reciente primero.
func TestAdd_AnteponeAlLedger(t *testing.T) {
	tr := tasks.NewTracker()

	tr.Add(dto.CreateTaskRequest{Title: "primera", Assignee: "Jamie"})
	tr.Add(dto.CreateTaskRequest{Title: "segunda", Assignee: "Jamie"})

	items := tr.All().Items
	require.Len(t, items, 2)
	assert.Equal(t, "segunda", items[0].Title)
	assert.Equal(t, "primera", items[1].Title)
}

// UpdateStatus con estado desconocido → ErrInvalidInput.
func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	tr := tasks.NewTracker()
	task := tr.Add(dto.CreateTaskRequest{Title: "x", Assignee: "Wesley"})

	err := tr.UpdateStatus(task.ID, "archivado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// UpdateStatus con id desconocido es un no-op silencioso.
func TestUpdateStatus_IdDesconocidoEsNoOp(t *testing.T) {
	tr := tasks.NewTracker()
	tr.Add(dto.CreateTaskRequest{Title: "x", Assignee: "Wesley"})

	err := tr.UpdateStatus("no-existe", entity.TaskStatusDone)
	assert.NoError(t, err, "id desconocido no debe ser un error")

	items := tr.All().Items
	require.Len(t, items, 1)
	assert.Equal(t, entity.TaskStatusOpen, items[0].Status, "nada debe cambiar")
}

// ForOpportunity filtra por oportunidad e incluye cualquier estado y origen.
func TestForOpportunity_FiltraPorOportunidad(t *testing.T) {
	tr := tasks.NewTracker()

	sla, _, err := tr.EnsureSLA(slaRequest(testOppA))
	require.NoError(t, err)
	require.NoError(t, tr.UpdateStatus(sla.ID, entity.TaskStatusDone))
	tr.Add(dto.CreateTaskRequest{Title: "manual A", Assignee: "Yaseen", RelatedOpportunityID: testOppA})
	tr.Add(dto.CreateTaskRequest{Title: "manual B", Assignee: "Yaseen", RelatedOpportunityID: testOppB})
	tr.Add(dto.CreateTaskRequest{Title: "suelta", Assignee: "Yaseen"})

	items := tr.ForOpportunity(testOppA).Items
	require.Len(t, items, 2, "debe incluir la SLA terminada y la manual de A")
	assert.Equal(t, "manual A", items[0].Title)
	assert.Equal(t, entity.TaskSourceSLA, items[1].Source)
}
