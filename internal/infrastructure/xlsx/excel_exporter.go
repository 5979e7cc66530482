// Package xlsx exporta relatórios como planillas Excel.
package xlsx

import (
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/adega-api/internal/application/analytics"
	"github.com/jhoicas/adega-api/internal/application/dto"
	"github.com/jhoicas/adega-api/internal/domain/repository"
)

// SalesSheet nombre de la hoja del relatório de vendas.
const SalesSheet = "Vendas"

var _ analytics.SalesReportExporter = (*ExcelExporter)(nil)

// ExcelExporter implementa analytics.SalesReportExporter con excelize.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// ExportSalesReport escribe una fila por producto (orden alfabético) más la fila de totales.
func (e *ExcelExporter) ExportSalesReport(
	_ context.Context,
	report *dto.SalesReportResponse,
	period repository.Period,
) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SalesSheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	numFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	// Encabezados
	headers := []string{"Produto", "Quantidade", "Valor total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SalesSheet, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: encabezado: %w", err)
		}
	}
	if err := f.SetCellStyle(SalesSheet, "A1", "C1", bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}

	names := make([]string, 0, len(report.ByProduct))
	for name := range report.ByProduct {
		names = append(names, name)
	}
	sort.Strings(names)

	// Datos
	r := 2
	for _, name := range names {
		s := report.ByProduct[name]
		if err := setRow(f, r, name, s.Quantity, s.TotalValue.InexactFloat64()); err != nil {
			return nil, err
		}
		r++
	}
	if err := setRow(f, r, "Total", report.TotalItems, report.TotalSales.InexactFloat64()); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SalesSheet, fmt.Sprintf("A%d", r), fmt.Sprintf("B%d", r), bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo totales: %w", err)
	}
	if err := f.SetCellStyle(SalesSheet, "C2", fmt.Sprintf("C%d", r), moneyStyle); err != nil {
		return nil, fmt.Errorf("xlsx: estilo valores: %w", err)
	}
	if err := f.SetColWidth(SalesSheet, "A", "A", 32); err != nil {
		return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
	}

	if label := periodLabel(period); label != "" {
		if err := f.SetCellValue(SalesSheet, "E1", label); err != nil {
			return nil, fmt.Errorf("xlsx: período: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, r int, name string, qty int64, total float64) error {
	values := []interface{}{name, qty, total}
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, r)
		if err := f.SetCellValue(SalesSheet, cell, v); err != nil {
			return fmt.Errorf("xlsx: fila %d: %w", r, err)
		}
	}
	return nil
}

func periodLabel(p repository.Period) string {
	switch {
	case p.From != nil && p.To != nil:
		return fmt.Sprintf("Período: %s a %s", dto.FormatDate(*p.From), dto.FormatDate(*p.To))
	case p.From != nil:
		return "Desde " + dto.FormatDate(*p.From)
	case p.To != nil:
		return "Até " + dto.FormatDate(*p.To)
	}
	return ""
}
