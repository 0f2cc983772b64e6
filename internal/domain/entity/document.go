package entity

import "time"

// Document representa un documento (referencia por URL) ligado a una oportunidad.
type Document struct {
	ID            string
	OpportunityID string
	Name          string
	URL           string
	UploadedBy    string
	CreatedAt     time.Time
}
