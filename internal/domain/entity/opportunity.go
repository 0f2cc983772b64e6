package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Opportunity representa una aplicación de comercio moviéndose por el pipeline.
// Account y Contact se denormalizan al cargar (join); la fuente de verdad de
// created_at/updated_at es la base de datos.
type Opportunity struct {
	ID                 string
	AccountID          string
	ContactID          string
	Stage              Stage
	Status             string // active, dead
	ReferralSource     string
	Username           string
	ProcessingServices []string
	AgreeToTerms       bool
	Timezone           string
	Language           string
	AssignedTo         string // "" = sin asignar; si no, miembro del equipo fijo
	MonthlyVolume      decimal.Decimal
	StageEnteredAt     time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Datos denormalizados del join (nil si no se cargaron)
	Account *Account
	Contact *Contact
}
