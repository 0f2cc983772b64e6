package pipeline

import "fmt"

// Taxonomía de errores del modelo de pipeline. Toda falla del store se captura
// en este borde y se convierte en uno de estos tipos; nunca es fatal y el
// estado local queda siempre en el último estado bueno conocido.

// LoadError falla al leer el listado remoto; el espejo local no se toca.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return fmt.Sprintf("cargar oportunidades: %v", e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// Pasos del intake de una aplicación, para diagnóstico en CreateError.
const (
	StepAccount     = "account"
	StepContact     = "contact"
	StepOpportunity = "opportunity"
)

// CreateError falla en una de las tres inserciones dependientes del intake.
// La transacción se revierte completa: no quedan filas huérfanas ni estado local parcial.
type CreateError struct {
	Step string // account, contact, opportunity
	Err  error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("crear aplicación (paso %s): %v", e.Step, e.Err)
}
func (e *CreateError) Unwrap() error { return e.Err }

// UpdateError falla al actualizar etapa o asignación; como no hay update
// optimista, el espejo local no requiere rollback.
type UpdateError struct {
	Field string // stage, assigned_to
	ID    string
	Err   error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("actualizar %s de oportunidad %s: %v", e.Field, e.ID, e.Err)
}
func (e *UpdateError) Unwrap() error { return e.Err }
