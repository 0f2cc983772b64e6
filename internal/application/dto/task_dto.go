package dto

import "time"

// CreateTaskRequest alta manual de tarea.
type CreateTaskRequest struct {
	Title                string     `json:"title" validate:"required"`
	Description          string     `json:"description"`
	Assignee             string     `json:"assignee" validate:"required"`
	CreatedBy            string     `json:"created_by"`
	DueAt                *time.Time `json:"due_at"`
	RelatedOpportunityID string     `json:"related_opportunity_id"`
	RelatedContactID     string     `json:"related_contact_id"`
	Comments             string     `json:"comments"`
}

// EnsureSLATaskRequest alta condicional de tarea SLA; la oportunidad es obligatoria.
type EnsureSLATaskRequest struct {
	Title                string     `json:"title" validate:"required"`
	Description          string     `json:"description"`
	Assignee             string     `json:"assignee" validate:"required"`
	CreatedBy            string     `json:"created_by"`
	DueAt                *time.Time `json:"due_at"`
	RelatedOpportunityID string     `json:"related_opportunity_id" validate:"required"`
	Comments             string     `json:"comments"`
}

// UpdateTaskStatusRequest transición de estado (libre entre open/in_progress/done).
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// TaskResponse tarea del tracker.
type TaskResponse struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	Assignee             string     `json:"assignee"`
	CreatedBy            string     `json:"created_by,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	Status               string     `json:"status"`
	DueAt                *time.Time `json:"due_at,omitempty"`
	RelatedOpportunityID string     `json:"related_opportunity_id,omitempty"`
	RelatedContactID     string     `json:"related_contact_id,omitempty"`
	Comments             string     `json:"comments,omitempty"`
	Source               string     `json:"source"`
}

// TaskListResponse listado de tareas (orden: más reciente primero).
type TaskListResponse struct {
	Items []TaskResponse `json:"items"`
}
