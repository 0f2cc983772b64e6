package entity

import "time"

// Estados de una tarea. No se impone orden de transición entre ellos.
const (
	TaskStatusOpen       = "open"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Orígenes de una tarea.
const (
	TaskSourceManual = "manual"
	TaskSourceSLA    = "sla"
)

// Task representa una tarea de seguimiento (manual o SLA) ligada opcionalmente
// a una oportunidad o un contacto. Vive solo en memoria: el tracker es volátil.
type Task struct {
	ID                   string
	Title                string
	Description          string
	Assignee             string
	CreatedBy            string
	CreatedAt            time.Time
	Status               string // open, in_progress, done
	DueAt                *time.Time
	RelatedOpportunityID string
	RelatedContactID     string
	Comments             string
	Source               string // manual, sla
}

// ValidTaskStatus indica si s es un estado de tarea conocido.
func ValidTaskStatus(s string) bool {
	return s == TaskStatusOpen || s == TaskStatusInProgress || s == TaskStatusDone
}

// Open indica si la tarea está en un estado no terminal (≠ done).
func (t Task) Open() bool {
	return t.Status != TaskStatusDone
}
