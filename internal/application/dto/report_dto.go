package dto

import "github.com/shopspring/decimal"

// ProductSalesDTO acumulado de ventas de un producto.
type ProductSalesDTO struct {
	Quantity   int64           `json:"quantidade"`
	TotalValue decimal.Decimal `json:"valor_total"`
}

// SalesReportResponse respuesta de GET /relatorios/vendas.
// vendas_por_produto se indexa por nombre del producto.
type SalesReportResponse struct {
	ByProduct  map[string]ProductSalesDTO `json:"vendas_por_produto"`
	TotalSales decimal.Decimal            `json:"total_vendas"`
	TotalItems int64                      `json:"total_itens_vendidos"`
}

// FinancialSummaryDTO totales del reporte financiero.
type FinancialSummaryDTO struct {
	TotalIn  decimal.Decimal `json:"total_entradas"`
	TotalOut decimal.Decimal `json:"total_saidas"`
	Profit   decimal.Decimal `json:"lucro"`
}

// MonthTotalsDTO entradas y salidas de un mes.
type MonthTotalsDTO struct {
	In  decimal.Decimal `json:"entradas"`
	Out decimal.Decimal `json:"saidas"`
}

// FinancialReportResponse respuesta de GET /relatorios/financeiro.
// vendas_por_mes se indexa por mes (YYYY-MM).
type FinancialReportResponse struct {
	Summary FinancialSummaryDTO       `json:"resumo"`
	ByMonth map[string]MonthTotalsDTO `json:"vendas_por_mes"`
}

// DashboardStatsDTO KPIs del dashboard.
type DashboardStatsDTO struct {
	TotalProducts int             `json:"total_produtos"`
	MonthlySales  decimal.Decimal `json:"vendas_mes"`
	CashBalance   decimal.Decimal `json:"saldo_caixa"`
	LowStockCount int             `json:"produtos_estoque_baixo"`
}

// LowStockDTO producto con estoque por debajo del umbral.
type LowStockDTO struct {
	Product ProductResponse `json:"produto"`
	OnHand  int64           `json:"estoque_atual"`
}

// DashboardResponse respuesta de GET /relatorios/dashboard.
type DashboardResponse struct {
	Stats              DashboardStatsDTO         `json:"estatisticas"`
	RecentTransactions []CashTransactionResponse `json:"ultimas_transacoes"`
	LowStock           []LowStockDTO             `json:"produtos_estoque_baixo"`
}
