package entity

import "time"

// Contact representa el contacto humano principal de una cuenta (1 cuenta → 1 contacto en esta app).
type Contact struct {
	ID        string
	AccountID string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Fax       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName nombre y apellido concatenados para presentación.
func (c Contact) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}
