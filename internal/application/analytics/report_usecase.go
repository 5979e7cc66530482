// Package analytics contiene los casos de uso de relatórios y del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/adega-api/internal/application/dto"
	"github.com/jhoicas/adega-api/internal/domain/inventory"
	"github.com/jhoicas/adega-api/internal/domain/ledger"
	"github.com/jhoicas/adega-api/internal/domain/repository"
)

// ReportUseCase arma los relatórios de vendas y financiero y sus exportaciones.
type ReportUseCase struct {
	outRepo  repository.StockOutRepository
	cashRepo repository.CashTransactionRepository
	pdf      FinancialReportPDFGenerator
	xlsx     SalesReportExporter
}

// NewReportUseCase construye el caso de uso. pdf y xlsx pueden ser nil si no se exporta.
func NewReportUseCase(
	outRepo repository.StockOutRepository,
	cashRepo repository.CashTransactionRepository,
	pdf FinancialReportPDFGenerator,
	xlsx SalesReportExporter,
) *ReportUseCase {
	return &ReportUseCase{outRepo: outRepo, cashRepo: cashRepo, pdf: pdf, xlsx: xlsx}
}

// SalesReport agrupa las salidas del período por producto.
func (uc *ReportUseCase) SalesReport(ctx context.Context, period repository.Period) (*dto.SalesReportResponse, error) {
	outs, err := uc.outRepo.List(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("relatório de vendas: %w", err)
	}
	summary := inventory.GroupSales(outs)

	byProduct := make(map[string]dto.ProductSalesDTO, len(summary.ByProduct))
	for name, s := range summary.ByProduct {
		byProduct[name] = dto.ProductSalesDTO{Quantity: s.Quantity, TotalValue: s.TotalValue}
	}
	return &dto.SalesReportResponse{
		ByProduct:  byProduct,
		TotalSales: summary.TotalValue,
		TotalItems: summary.TotalItems,
	}, nil
}

// FinancialReport resume las transacciones de caja del período y las agrupa por mes.
func (uc *ReportUseCase) FinancialReport(ctx context.Context, period repository.Period) (*dto.FinancialReportResponse, error) {
	txs, err := uc.cashRepo.List(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("relatório financeiro: %w", err)
	}
	sum := ledger.Summarize(txs)

	months := ledger.GroupByMonth(txs)
	byMonth := make(map[string]dto.MonthTotalsDTO, len(months))
	for key, m := range months {
		byMonth[key] = dto.MonthTotalsDTO{In: m.In, Out: m.Out}
	}
	return &dto.FinancialReportResponse{
		Summary: dto.FinancialSummaryDTO{
			TotalIn:  sum.In,
			TotalOut: sum.Out,
			Profit:   sum.Net(),
		},
		ByMonth: byMonth,
	}, nil
}

// FinancialReportPDF genera el relatório financeiro en PDF.
func (uc *ReportUseCase) FinancialReportPDF(ctx context.Context, period repository.Period) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("relatório financeiro pdf: gerador não configurado")
	}
	report, err := uc.FinancialReport(ctx, period)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateFinancialReportPDF(ctx, report, period)
	if err != nil {
		return nil, "", fmt.Errorf("relatório financeiro pdf: %w", err)
	}
	return b, "relatorio-financeiro" + periodSuffix(period) + ".pdf", nil
}

// SalesReportXLSX exporta el relatório de vendas como planilla.
func (uc *ReportUseCase) SalesReportXLSX(ctx context.Context, period repository.Period) ([]byte, string, error) {
	if uc.xlsx == nil {
		return nil, "", fmt.Errorf("relatório de vendas xlsx: exportador não configurado")
	}
	report, err := uc.SalesReport(ctx, period)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.xlsx.ExportSalesReport(ctx, report, period)
	if err != nil {
		return nil, "", fmt.Errorf("relatório de vendas xlsx: %w", err)
	}
	return b, "relatorio-vendas" + periodSuffix(period) + ".xlsx", nil
}

// periodSuffix "-2024-01-01_2024-01-31" según los límites presentes.
func periodSuffix(p repository.Period) string {
	s := ""
	if p.From != nil {
		s += "-" + dto.FormatDate(*p.From)
	}
	if p.To != nil {
		s += "_" + dto.FormatDate(*p.To)
	}
	return s
}
