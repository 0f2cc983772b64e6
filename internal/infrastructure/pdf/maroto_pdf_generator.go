// Package pdf implementa el resumen imprimible de una aplicación de comercio.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del comercio  │  Etapa + Fecha de alta       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUENTA: Dirección / Website                                 │
//	│  CONTACTO: Nombre + Email + Teléfono                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  APLICACIÓN: Servicios / Volumen mensual / Referencia        │
//	│  FOOTER: Asignación + Leyenda interna                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/merchanthaus/crm-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa pipeline.SummaryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateSummaryPDF genera el PDF resumen y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSummaryPDF(_ context.Context, opp *entity.Opportunity) ([]byte, error) {
	companyName := "Unknown Business"
	if opp.Account != nil && opp.Account.Name != "" {
		companyName = opp.Account.Name
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Merchant Application Summary", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(opp, companyName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(accountRow(opp.Account))
	m.AddRows(contactRow(opp.Contact))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(applicationRows(opp)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(opp))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(opp *entity.Opportunity, companyName string) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New("Merchant Application Summary", props.Text{
				Top: 7, Size: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Stage: "+opp.Stage.Label(), props.Text{
				Size: 11, Style: fontstyle.Bold, Align: align.Right,
			}),
			text.New("Created: "+opp.CreatedAt.Format("2006-01-02"), props.Text{
				Top: 6, Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func accountRow(account *entity.Account) core.Row {
	if account == nil {
		return row.New(6).Add(col.New(12).Add(
			text.New("Account: —", props.Text{Size: 9, Color: colorGray}),
		))
	}
	address := strings.TrimSpace(strings.Join(nonEmpty(
		account.Address1, account.Address2, account.City, account.State, account.Zip, account.Country,
	), ", "))
	return row.New(12).Add(col.New(12).Add(
		text.New("ACCOUNT", props.Text{Size: 8, Style: fontstyle.Bold, Color: colorGray}),
		text.New(address, props.Text{Top: 4, Size: 9}),
		text.New(account.Website, props.Text{Top: 8, Size: 9, Color: colorPrimary}),
	))
}

func contactRow(contact *entity.Contact) core.Row {
	if contact == nil {
		return row.New(6).Add(col.New(12).Add(
			text.New("Contact: —", props.Text{Size: 9, Color: colorGray}),
		))
	}
	return row.New(12).Add(col.New(12).Add(
		text.New("CONTACT", props.Text{Size: 8, Style: fontstyle.Bold, Color: colorGray}),
		text.New(contact.FullName(), props.Text{Top: 4, Size: 9, Style: fontstyle.Bold}),
		text.New(strings.Join(nonEmpty(contact.Email, contact.Phone, contact.Fax), "  ·  "), props.Text{Top: 8, Size: 9}),
	))
}

func applicationRows(opp *entity.Opportunity) []core.Row {
	services := "—"
	if len(opp.ProcessingServices) > 0 {
		services = strings.Join(opp.ProcessingServices, ", ")
	}
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("APPLICATION", props.Text{Size: 8, Style: fontstyle.Bold, Color: colorGray}),
		)),
		labelValueRow("Processing services", services),
		labelValueRow("Monthly volume", opp.MonthlyVolume.StringFixed(2)),
		labelValueRow("Referral source", orDash(opp.ReferralSource)),
		labelValueRow("Username", orDash(opp.Username)),
		labelValueRow("Timezone / Language", orDash(strings.TrimSuffix(opp.Timezone+" / "+opp.Language, " / "))),
	}
	return rows
}

func labelValueRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(4).Add(text.New(label, props.Text{Size: 9, Color: colorGray})),
		col.New(8).Add(text.New(value, props.Text{Size: 9})),
	)
}

func footerRow(opp *entity.Opportunity) core.Row {
	assigned := "Unassigned"
	if opp.AssignedTo != "" {
		assigned = "Assigned to " + opp.AssignedTo
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(assigned, props.Text{Size: 9, Style: fontstyle.Bold}),
		text.New("Internal use only — Merchant Haus sales pipeline", props.Text{
			Top: 4, Size: 7, Color: colorGray,
		}),
	))
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
