package pipeline

import (
	"context"

	"github.com/merchanthaus/crm-api/internal/domain"
	"github.com/merchanthaus/crm-api/internal/domain/entity"
	"github.com/merchanthaus/crm-api/internal/domain/repository"
)

// SummaryPDFGenerator puerto de generación del PDF resumen de una aplicación.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, opp *entity.Opportunity) ([]byte, error)
}

// PDFUseCase genera el resumen imprimible de una aplicación (cuenta, contacto,
// etapa y servicios) para compartir con el procesador.
type PDFUseCase struct {
	repo      repository.OpportunityRepository
	generator SummaryPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(repo repository.OpportunityRepository, generator SummaryPDFGenerator) *PDFUseCase {
	return &PDFUseCase{repo: repo, generator: generator}
}

// Generate busca la oportunidad unida y renderiza el PDF.
func (uc *PDFUseCase) Generate(id string) ([]byte, error) {
	opp, err := uc.repo.GetJoined(id)
	if err != nil {
		return nil, err
	}
	if opp == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateSummaryPDF(context.Background(), opp)
}
