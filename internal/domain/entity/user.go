package entity

import "time"

// Roles válidos para User. El rol admin se deriva de la configuración
// (conjunto de emails administradores), no de una tabla de roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User representa un usuario autenticable del CRM.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, member
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
