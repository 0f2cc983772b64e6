package dto

import "time"

// UpdateAccountRequest actualización parcial de cuenta (página Accounts).
type UpdateAccountRequest struct {
	Name     *string `json:"name"`
	Status   *string `json:"status"`
	Address1 *string `json:"address1"`
	Address2 *string `json:"address2"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	Zip      *string `json:"zip"`
	Country  *string `json:"country"`
	Website  *string `json:"website"`
}

// AccountListResponse listado de cuentas.
type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ContactListResponse listado de contactos.
type ContactListResponse struct {
	Items []ContactResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateDocumentRequest alta de documento en una oportunidad (nombre y URL obligatorios).
type CreateDocumentRequest struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required"`
}

// DocumentResponse documento de una oportunidad.
type DocumentResponse struct {
	ID            string    `json:"id"`
	OpportunityID string    `json:"opportunity_id"`
	Name          string    `json:"name"`
	URL           string    `json:"url"`
	UploadedBy    string    `json:"uploaded_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// DocumentListResponse listado de documentos (orden: más antiguo primero, como el modal).
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
}

// DocumentPageResponse listado global de documentos (página Documents, paginado).
type DocumentPageResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// CreateActivityRequest alta de actividad (tipo obligatorio).
type CreateActivityRequest struct {
	Type        string `json:"type" validate:"required"`
	Description string `json:"description"`
}

// ActivityResponse actividad registrada sobre una oportunidad.
type ActivityResponse struct {
	ID            string    `json:"id"`
	OpportunityID string    `json:"opportunity_id"`
	Type          string    `json:"type"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ActivityListResponse listado de actividades (orden: más antiguo primero).
type ActivityListResponse struct {
	Items []ActivityResponse `json:"items"`
}
