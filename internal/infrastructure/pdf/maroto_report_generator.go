// Package pdf genera el relatório financeiro en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório Financeiro  │  Período + fecha de emisión │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: Entradas / Saídas / Lucro                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Mês | Entradas | Saídas | Saldo                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"time"

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

	"github.com/jhoicas/adega-api/internal/application/analytics"
	"github.com/jhoicas/adega-api/internal/application/dto"
	"github.com/jhoicas/adega-api/internal/domain/repository"
	"github.com/jhoicas/adega-api/pkg/money"
)

var _ analytics.FinancialReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 114, Green: 28, Blue: 36} // bordô
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa analytics.FinancialReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	storeName string
	now       func() time.Time
}

// NewMarotoReportGenerator construye el generador. storeName aparece en el encabezado.
func NewMarotoReportGenerator(storeName string) *MarotoReportGenerator {
	return &MarotoReportGenerator{storeName: storeName, now: time.Now}
}

// GenerateFinancialReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateFinancialReportPDF(
	_ context.Context,
	report *dto.FinancialReportResponse,
	period repository.Period,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Financeiro", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(monthRows(report.ByMonth)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la adega (izq) y período + emisión (der).
func (g *MarotoReportGenerator) headerRow(period repository.Period) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RELATÓRIO FINANCEIRO", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período: "+periodLabel(period), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Emitido em "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales del período.
func summaryRow(s dto.FinancialSummaryDTO) core.Row {
	block := func(label, value string, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 2}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: c, Top: 8}),
		)
	}
	profitColor := colorPrimary
	if s.Profit.IsNegative() {
		profitColor = colorRed
	}
	return row.New(18).Add(
		block("Total de entradas", money.BRL(s.TotalIn), colorPrimary),
		block("Total de saídas", money.BRL(s.TotalOut), colorRed),
		block("Lucro", money.BRL(s.Profit), profitColor),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Mês", 3, align.Left),
		h("Entradas", 3, align.Right),
		h("Saídas", 3, align.Right),
		h("Saldo", 3, align.Right),
	)
}

// monthRows: una fila por mes, en orden cronológico.
func monthRows(months map[string]dto.MonthTotalsDTO) []core.Row {
	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Nenhuma transação no período.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		))}
	}

	cell := func(s string, a align.Type) core.Col {
		return col.New(3).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	rows := make([]core.Row, 0, len(keys))
	for _, k := range keys {
		m := months[k]
		rows = append(rows, row.New(7).Add(
			cell(k, align.Left),
			cell(money.BRL(m.In), align.Right),
			cell(money.BRL(m.Out), align.Right),
			cell(money.BRL(m.In.Sub(m.Out)), align.Right),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func periodLabel(p repository.Period) string {
	from, to := "início", "hoje"
	if p.From != nil {
		from = p.From.Format("02/01/2006")
	}
	if p.To != nil {
		to = p.To.Format("02/01/2006")
	}
	return from + " a " + to
}
