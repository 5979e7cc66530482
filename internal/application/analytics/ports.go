package analytics

import (
	"context"

	"github.com/jhoicas/adega-api/internal/application/dto"
	"github.com/jhoicas/adega-api/internal/domain/repository"
)

// FinancialReportPDFGenerator genera el PDF del relatório financeiro.
// La implementación vive en infrastructure/pdf.
type FinancialReportPDFGenerator interface {
	GenerateFinancialReportPDF(ctx context.Context, report *dto.FinancialReportResponse, period repository.Period) ([]byte, error)
}

// SalesReportExporter genera la planilla .xlsx del relatório de vendas.
// La implementación vive en infrastructure/xlsx.
type SalesReportExporter interface {
	ExportSalesReport(ctx context.Context, report *dto.SalesReportResponse, period repository.Period) ([]byte, error)
}
