package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/merchanthaus/crm-api/internal/domain/entity"
	"github.com/merchanthaus/crm-api/internal/domain/repository"
)

var _ repository.OpportunityRepository = (*OpportunityRepo)(nil)

// OpportunityRepo implementación de OpportunityRepository (usable con pool o tx).
type OpportunityRepo struct {
	q Querier
}

// NewOpportunityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOpportunityRepository(q Querier) *OpportunityRepo {
	return &OpportunityRepo{q: q}
}

// joinedColumns columnas del select con cuenta y contacto unidos. El orden
// debe coincidir con scanJoined.
const joinedColumns = `
	o.id, o.account_id, o.contact_id, o.stage, o.status, o.referral_source, o.username,
	o.processing_services, o.agree_to_terms, o.timezone, o.language,
	COALESCE(o.assigned_to, ''), o.monthly_volume, o.stage_entered_at, o.created_at, o.updated_at,
	a.id, a.name, a.status, a.address1, a.address2, a.city, a.state, a.zip, a.country, a.website, a.created_at, a.updated_at,
	c.id, c.account_id, c.first_name, c.last_name, c.email, c.phone, c.fax, c.created_at, c.updated_at`

// Create persiste una nueva oportunidad (referencia a cuenta y contacto).
func (r *OpportunityRepo) Create(opp *entity.Opportunity) error {
	query := `
		INSERT INTO opportunities (id, account_id, contact_id, stage, status, referral_source, username,
			processing_services, agree_to_terms, timezone, language, assigned_to, monthly_volume,
			stage_entered_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		opp.ID, opp.AccountID, opp.ContactID, string(opp.Stage), opp.Status, opp.ReferralSource,
		opp.Username, opp.ProcessingServices, opp.AgreeToTerms, opp.Timezone, opp.Language,
		opp.AssignedTo, opp.MonthlyVolume, opp.StageEnteredAt, opp.CreatedAt, opp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert opportunity: %w", err)
	}
	return nil
}

// GetJoined obtiene una oportunidad por ID con cuenta y contacto unidos.
func (r *OpportunityRepo) GetJoined(id string) (*entity.Opportunity, error) {
	query := `
		SELECT ` + joinedColumns + `
		FROM opportunities o
		JOIN accounts a ON a.id = o.account_id
		JOIN contacts c ON c.id = o.contact_id
		WHERE o.id = $1`
	opp, err := scanJoined(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get opportunity: %w", err)
	}
	return opp, nil
}

// ListJoined lista todas las oportunidades con cuenta y contacto unidos,
// orden remoto del tablero: creación más reciente primero.
func (r *OpportunityRepo) ListJoined() ([]*entity.Opportunity, error) {
	query := `
		SELECT ` + joinedColumns + `
		FROM opportunities o
		JOIN accounts a ON a.id = o.account_id
		JOIN contacts c ON c.id = o.contact_id
		ORDER BY o.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Opportunity
	for rows.Next() {
		opp, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		list = append(list, opp)
	}
	return list, rows.Err()
}

// UpdateStage actualiza la etapa y resetea stage_entered_at.
func (r *OpportunityRepo) UpdateStage(id string, stage entity.Stage, enteredAt time.Time) error {
	query := `
		UPDATE opportunities SET stage = $2, stage_entered_at = $3, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, string(stage), enteredAt)
	if err != nil {
		return fmt.Errorf("update stage: %w", err)
	}
	return nil
}

// UpdateAssignment actualiza assigned_to ("" persiste como NULL).
func (r *OpportunityRepo) UpdateAssignment(id, assignee string) error {
	query := `
		UPDATE opportunities SET assigned_to = NULLIF($2, ''), updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, assignee)
	if err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}
	return nil
}

// scanJoined escanea una fila con los joinedColumns hacia la entidad denormalizada.
func scanJoined(row pgx.Row) (*entity.Opportunity, error) {
	var (
		o       entity.Opportunity
		a       entity.Account
		c       entity.Contact
		stage   string
	)
	err := row.Scan(
		&o.ID, &o.AccountID, &o.ContactID, &stage, &o.Status, &o.ReferralSource, &o.Username,
		&o.ProcessingServices, &o.AgreeToTerms, &o.Timezone, &o.Language,
		&o.AssignedTo, &o.MonthlyVolume, &o.StageEnteredAt, &o.CreatedAt, &o.UpdatedAt,
		&a.ID, &a.Name, &a.Status, &a.Address1, &a.Address2, &a.City, &a.State, &a.Zip,
		&a.Country, &a.Website, &a.CreatedAt, &a.UpdatedAt,
		&c.ID, &c.AccountID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Fax,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Stage = entity.Stage(stage)
	o.Account = &a
	o.Contact = &c
	return &o, nil
}
