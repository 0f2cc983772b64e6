package entity

import "time"

// Estados de Account y Opportunity.
const (
	StatusActive = "active"
	StatusDead   = "dead"
)

// Account representa la entidad de negocio (el comercio) asociada a una oportunidad.
type Account struct {
	ID        string
	Name      string
	Status    string // active, dead
	Address1  string
	Address2  string
	City      string
	State     string
	Zip       string
	Country   string
	Website   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
