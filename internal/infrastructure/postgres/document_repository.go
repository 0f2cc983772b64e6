package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/merchanthaus/crm-api/internal/domain/entity"
	"github.com/merchanthaus/crm-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste un nuevo documento.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	query := `
		INSERT INTO documents (id, opportunity_id, name, url, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.OpportunityID, doc.Name, doc.URL, doc.UploadedBy, doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// ListByOpportunity lista los documentos de una oportunidad (más antiguo primero).
func (r *DocumentRepo) ListByOpportunity(opportunityID string) ([]*entity.Document, error) {
	query := `
		SELECT id, opportunity_id, name, url, COALESCE(uploaded_by, ''), created_at
		FROM documents WHERE opportunity_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	return scanDocuments(rows)
}

// List lista documentos con paginación (página Documents, más reciente primero).
func (r *DocumentRepo) List(limit, offset int) ([]*entity.Document, error) {
	query := `
		SELECT id, opportunity_id, name, url, COALESCE(uploaded_by, ''), created_at
		FROM documents ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func scanDocuments(rows pgx.Rows) ([]*entity.Document, error) {
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.OpportunityID, &d.Name, &d.URL, &d.UploadedBy, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
