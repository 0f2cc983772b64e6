package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/merchanthaus/crm-api/internal/application/pipeline"
	"github.com/merchanthaus/crm-api/internal/domain/repository"
)

// Ensure TxRunner implements pipeline.TxRunner.
var _ pipeline.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos del intake atados a la
// tx y hace Commit o Rollback. Así una falla en el contacto o la oportunidad
// revierte también la cuenta ya insertada: no quedan filas huérfanas.
func (r *TxRunner) Run(ctx context.Context, fn func(
	accountRepo repository.AccountRepository,
	contactRepo repository.ContactRepository,
	opportunityRepo repository.OpportunityRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	accountRepo := NewAccountRepository(tx)
	contactRepo := NewContactRepository(tx)
	opportunityRepo := NewOpportunityRepository(tx)

	if err := fn(accountRepo, contactRepo, opportunityRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
