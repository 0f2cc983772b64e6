package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchanthaus/crm-api/internal/application/dto"
	"github.com/merchanthaus/crm-api/internal/application/usecase"
	"github.com/merchanthaus/crm-api/internal/domain"
	"github.com/merchanthaus/crm-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del puerto de documentos
// ──────────────────────────────────────────────────────────────────────────────

type fakeDocumentRepo struct {
	docs []*entity.Document

	gotLimit  int
	gotOffset int
	failList  error
}

func (r *fakeDocumentRepo) Create(doc *entity.Document) error {
	cp := *doc
	r.docs = append(r.docs, &cp)
	return nil
}

func (r *fakeDocumentRepo) ListByOpportunity(opportunityID string) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range r.docs {
		if d.OpportunityID == opportunityID {
			out = append(out, d)
		}
	}
	return out, nil
}

// List devuelve los documentos en orden inverso de inserción (más reciente
// primero), como hace la query real.
func (r *fakeDocumentRepo) List(limit, offset int) ([]*entity.Document, error) {
	if r.failList != nil {
		return nil, r.failList
	}
	r.gotLimit, r.gotOffset = limit, offset
	var out []*entity.Document
	for i := len(r.docs) - 1; i >= 0; i-- {
		out = append(out, r.docs[i])
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func seedDocs(t *testing.T, uc *usecase.DocumentUseCase, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := uc.Add("opp-1", "taryn@merchanthaus.io", dto.CreateDocumentRequest{
			Name: name,
			URL:  "https://files.example/" + name,
		})
		require.NoError(t, err)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List — página Documents (listado global paginado)
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentList_GlobalPaginado(t *testing.T) {
	repo := &fakeDocumentRepo{}
	uc := usecase.NewDocumentUseCase(repo)
	seedDocs(t, uc, "w9.pdf", "bank-letter.pdf", "voided-check.pdf")

	list, err := uc.List(2, 0)
	require.NoError(t, err)

	require.Len(t, list.Items, 2)
	assert.Equal(t, "voided-check.pdf", list.Items[0].Name, "el más reciente va primero")
	assert.Equal(t, "bank-letter.pdf", list.Items[1].Name)
	assert.Equal(t, 2, list.Page.Limit)
	assert.Equal(t, 0, list.Page.Offset)

	// La paginación llega tal cual al repositorio.
	assert.Equal(t, 2, repo.gotLimit)
	assert.Equal(t, 0, repo.gotOffset)

	list, err = uc.List(2, 2)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "w9.pdf", list.Items[0].Name)
}

func TestDocumentList_VacioDevuelveItemsVacios(t *testing.T) {
	uc := usecase.NewDocumentUseCase(&fakeDocumentRepo{})

	list, err := uc.List(20, 0)
	require.NoError(t, err)
	assert.NotNil(t, list.Items, "items debe serializar como [] y no como null")
	assert.Empty(t, list.Items)
}

func TestDocumentList_FallaDelStore(t *testing.T) {
	repo := &fakeDocumentRepo{failList: errors.New("conexión rechazada")}
	uc := usecase.NewDocumentUseCase(repo)

	_, err := uc.List(20, 0)
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Add
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentAdd_NombreYURLObligatorios(t *testing.T) {
	uc := usecase.NewDocumentUseCase(&fakeDocumentRepo{})

	_, err := uc.Add("opp-1", "", dto.CreateDocumentRequest{Name: " ", URL: "https://x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Add("opp-1", "", dto.CreateDocumentRequest{Name: "w9.pdf", URL: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentAdd_RegistraUploaderYFecha(t *testing.T) {
	repo := &fakeDocumentRepo{}
	uc := usecase.NewDocumentUseCase(repo)

	doc, err := uc.Add("opp-1", "taryn@merchanthaus.io", dto.CreateDocumentRequest{
		Name: "w9.pdf",
		URL:  "https://files.example/w9.pdf",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "opp-1", doc.OpportunityID)
	assert.Equal(t, "taryn@merchanthaus.io", doc.UploadedBy)
	assert.WithinDuration(t, time.Now(), doc.CreatedAt, time.Minute)
}
