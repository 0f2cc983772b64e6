// Package tasks implementa el ledger en memoria de tareas de seguimiento
// (manuales y SLA). Es volátil: vive lo que vive el proceso, sin persistencia.
// Invariante central: a lo sumo una tarea SLA abierta por oportunidad.
package tasks

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/merchanthaus/crm-api/internal/application/dto"
	"github.com/merchanthaus/crm-api/internal/domain"
	"github.com/merchanthaus/crm-api/internal/domain/entity"
)

// Tracker dueño exclusivo de la lista de tareas. Ningún otro componente la
// muta directamente; todas las operaciones pasan por aquí, que es lo que
// sostiene el invariante SLA.
type Tracker struct {
	mu    sync.RWMutex
	tasks []entity.Task // orden: más reciente primero (Add antepone)

	// Índice oportunidad → ids de sus tareas SLA abiertas, para que EnsureSLA
	// sea O(1) en vez de un scan lineal por cada verificación. Es un conjunto
	// porque reabrir una tarea SLA terminada puede dejar más de una abierta
	// (las transiciones de estado son libres y no re-validan el invariante).
	openSLA map[string]map[string]struct{}
}

// NewTracker construye un tracker vacío.
func NewTracker() *Tracker {
	return &Tracker{openSLA: make(map[string]map[string]struct{})}
}

// Add crea una tarea manual con id fresco, estado open y createdAt=ahora, y la
// antepone a la lista. Operación puramente en memoria: nunca falla.
func (t *Tracker) Add(in dto.CreateTaskRequest) dto.TaskResponse {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.add(in, entity.TaskSourceManual)
}

// EnsureSLA crea la tarea SLA de una oportunidad solo si no existe ya una
// abierta (estado ≠ done) para ella. Si ya existe devuelve (cero, false): es un
// resultado de éxito idempotente, no un error. Tras completarse la tarea SLA
// vigente, una nueva llamada vuelve a crear una (el invariante es "a lo sumo
// una abierta", no "a lo sumo una en la historia").
func (t *Tracker) EnsureSLA(in dto.EnsureSLATaskRequest) (dto.TaskResponse, bool, error) {
	if strings.TrimSpace(in.RelatedOpportunityID) == "" {
		return dto.TaskResponse{}, false, domain.ErrInvalidInput
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.openSLA[in.RelatedOpportunityID]) > 0 {
		return dto.TaskResponse{}, false, nil
	}
	created := t.add(dto.CreateTaskRequest{
		Title:                in.Title,
		Description:          in.Description,
		Assignee:             in.Assignee,
		CreatedBy:            in.CreatedBy,
		DueAt:                in.DueAt,
		RelatedOpportunityID: in.RelatedOpportunityID,
		Comments:             in.Comments,
	}, entity.TaskSourceSLA)
	return created, true, nil
}

// UpdateStatus reemplaza el estado de la tarea con ese id. Id desconocido es un
// no-op; no se valida orden de transición (cualquier estado alcanza cualquier otro).
func (t *Tracker) UpdateStatus(id, status string) error {
	if !entity.ValidTaskStatus(status) {
		return domain.ErrInvalidInput
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.tasks {
		if t.tasks[i].ID != id {
			continue
		}
		t.tasks[i].Status = status
		t.reindexSLA(&t.tasks[i])
		return nil
	}
	return nil
}

// ForOpportunity devuelve todas las tareas (cualquier estado y origen) de la
// oportunidad, en el orden actual del tracker (más reciente primero).
func (t *Tracker) ForOpportunity(opportunityID string) dto.TaskListResponse {
	t.mu.RLock()
	defer t.mu.RUnlock()
	items := make([]dto.TaskResponse, 0)
	for _, task := range t.tasks {
		if task.RelatedOpportunityID == opportunityID {
			items = append(items, toTaskResponse(task))
		}
	}
	return dto.TaskListResponse{Items: items}
}

// All devuelve el ledger completo (más reciente primero).
func (t *Tracker) All() dto.TaskListResponse {
	t.mu.RLock()
	defer t.mu.RUnlock()
	items := make([]dto.TaskResponse, 0, len(t.tasks))
	for _, task := range t.tasks {
		items = append(items, toTaskResponse(task))
	}
	return dto.TaskListResponse{Items: items}
}

// add construye y antepone la tarea. El caller debe sostener t.mu.
func (t *Tracker) add(in dto.CreateTaskRequest, source string) dto.TaskResponse {
	task := entity.Task{
		ID:                   uuid.New().String(),
		Title:                in.Title,
		Description:          in.Description,
		Assignee:             in.Assignee,
		CreatedBy:            in.CreatedBy,
		CreatedAt:            time.Now(),
		Status:               entity.TaskStatusOpen,
		DueAt:                in.DueAt,
		RelatedOpportunityID: in.RelatedOpportunityID,
		RelatedContactID:     in.RelatedContactID,
		Comments:             in.Comments,
		Source:               source,
	}
	t.tasks = append([]entity.Task{task}, t.tasks...)
	if source == entity.TaskSourceSLA && task.RelatedOpportunityID != "" {
		t.markOpenSLA(task.RelatedOpportunityID, task.ID)
	}
	return toTaskResponse(task)
}

// reindexSLA mantiene el índice de SLA abiertas tras un cambio de estado.
// El caller debe sostener t.mu.
func (t *Tracker) reindexSLA(task *entity.Task) {
	if task.Source != entity.TaskSourceSLA || task.RelatedOpportunityID == "" {
		return
	}
	if task.Open() {
		t.markOpenSLA(task.RelatedOpportunityID, task.ID)
		return
	}
	ids := t.openSLA[task.RelatedOpportunityID]
	delete(ids, task.ID)
	if len(ids) == 0 {
		delete(t.openSLA, task.RelatedOpportunityID)
	}
}

func (t *Tracker) markOpenSLA(opportunityID, taskID string) {
	ids := t.openSLA[opportunityID]
	if ids == nil {
		ids = make(map[string]struct{})
		t.openSLA[opportunityID] = ids
	}
	ids[taskID] = struct{}{}
}

func toTaskResponse(task entity.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:                   task.ID,
		Title:                task.Title,
		Description:          task.Description,
		Assignee:             task.Assignee,
		CreatedBy:            task.CreatedBy,
		CreatedAt:            task.CreatedAt,
		Status:               task.Status,
		DueAt:                task.DueAt,
		RelatedOpportunityID: task.RelatedOpportunityID,
		RelatedContactID:     task.RelatedContactID,
		Comments:             task.Comments,
		Source:               task.Source,
	}
}
