package entity

import "time"

// Activity representa una actividad registrada sobre una oportunidad (llamada, email, nota...).
type Activity struct {
	ID            string
	OpportunityID string
	Type          string
	Description   string
	CreatedAt     time.Time
}
