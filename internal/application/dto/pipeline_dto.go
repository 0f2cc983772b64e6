package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateApplicationRequest formulario de nueva aplicación de comercio.
// Agrupa los tres bloques del intake: cuenta, contacto y oportunidad.
type CreateApplicationRequest struct {
	// Cuenta
	CompanyName string `json:"company_name" validate:"required"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Country     string `json:"country"`
	Website     string `json:"website"`

	// Contacto
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Fax       string `json:"fax"`

	// Oportunidad
	Username           string          `json:"username"`
	ProcessingServices []string        `json:"processing_services"`
	ReferralSource     string          `json:"referral_source"`
	Timezone           string          `json:"timezone"`
	Language           string          `json:"language"`
	MonthlyVolume      decimal.Decimal `json:"monthly_volume"`
	AssignedTo         string          `json:"assigned_to"`
}

// UpdateStageRequest cambio de etapa (drop de tarjeta en otra columna).
type UpdateStageRequest struct {
	Stage string `json:"stage" validate:"required"`
}

// UpdateAssignmentRequest cambio de asignación ("" = sin asignar).
type UpdateAssignmentRequest struct {
	AssignedTo string `json:"assigned_to"`
}

// AccountResponse cuenta denormalizada dentro de la oportunidad o en listados.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Address1  string    `json:"address1,omitempty"`
	Address2  string    `json:"address2,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Zip       string    `json:"zip,omitempty"`
	Country   string    `json:"country,omitempty"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactResponse contacto denormalizado.
type ContactResponse struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Fax       string    `json:"fax,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OpportunityResponse oportunidad con cuenta y contacto unidos.
type OpportunityResponse struct {
	ID                 string           `json:"id"`
	AccountID          string           `json:"account_id"`
	ContactID          string           `json:"contact_id"`
	Stage              string           `json:"stage"`
	StageLabel         string           `json:"stage_label"`
	Status             string           `json:"status"`
	ReferralSource     string           `json:"referral_source,omitempty"`
	Username           string           `json:"username,omitempty"`
	ProcessingServices []string         `json:"processing_services,omitempty"`
	AgreeToTerms       bool             `json:"agree_to_terms"`
	Timezone           string           `json:"timezone,omitempty"`
	Language           string           `json:"language,omitempty"`
	AssignedTo         string           `json:"assigned_to,omitempty"`
	MonthlyVolume      decimal.Decimal  `json:"monthly_volume"`
	StageEnteredAt     time.Time        `json:"stage_entered_at"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	Account            *AccountResponse `json:"account,omitempty"`
	Contact            *ContactResponse `json:"contact,omitempty"`
}

// OpportunityListResponse listado del tablero (orden: más reciente primero).
type OpportunityListResponse struct {
	Items []OpportunityResponse `json:"items"`
}
