package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/adega-api/internal/application/dto"
	"github.com/jhoicas/adega-api/internal/domain/entity"
	"github.com/jhoicas/adega-api/internal/domain/inventory"
	"github.com/jhoicas/adega-api/internal/domain/repository"
)

const dashboardRecentTransactions = 5 // transacciones en el widget del dashboard

// DashboardUseCase genera el resumen del dashboard: KPIs, últimas transacciones y estoque bajo.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	outRepo     repository.StockOutRepository
	cashRepo    repository.CashTransactionRepository
	levelRepo   repository.StockLevelRepository
	threshold   int
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso. threshold <= 0 usa el umbral por defecto;
// now nil usa time.Now.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	outRepo repository.StockOutRepository,
	cashRepo repository.CashTransactionRepository,
	levelRepo repository.StockLevelRepository,
	threshold int,
	now func() time.Time,
) *DashboardUseCase {
	if threshold <= 0 {
		threshold = inventory.DefaultLowStockThreshold
	}
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{
		productRepo: productRepo,
		outRepo:     outRepo,
		cashRepo:    cashRepo,
		levelRepo:   levelRepo,
		threshold:   threshold,
		now:         now,
	}
}

// GetSummary construye el DashboardResponse.
//
// Cinco consultas en paralelo:
//  1. Count de productos        → total_produtos
//  2. SalesTotal(mes en curso)  → vendas_mes
//  3. Totals(caixa completo)    → saldo_caixa
//  4. Recent(5)                 → ultimas_transacoes
//  5. CurrentLevels             → produtos_estoque_baixo
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type countResult struct {
		n   int
		err error
	}
	type amountResult struct {
		value decimal.Decimal
		err   error
	}
	type recentResult struct {
		txs []*entity.CashTransaction
		err error
	}
	type levelsResult struct {
		levels []entity.StockLevel
		err    error
	}

	countCh := make(chan countResult, 1)
	salesCh := make(chan amountResult, 1)
	balanceCh := make(chan amountResult, 1)
	recentCh := make(chan recentResult, 1)
	levelsCh := make(chan levelsResult, 1)

	go func() {
		n, err := uc.productRepo.Count(ctx)
		countCh <- countResult{n, err}
	}()
	go func() {
		v, err := uc.outRepo.SalesTotal(ctx, repository.Period{From: &monthStart})
		salesCh <- amountResult{v, err}
	}()
	go func() {
		in, out, err := uc.cashRepo.Totals(ctx, repository.Period{})
		balanceCh <- amountResult{in.Sub(out), err}
	}()
	go func() {
		txs, err := uc.cashRepo.Recent(ctx, dashboardRecentTransactions)
		recentCh <- recentResult{txs, err}
	}()
	go func() {
		levels, err := uc.levelRepo.CurrentLevels(ctx)
		levelsCh <- levelsResult{levels, err}
	}()

	count := <-countCh
	sales := <-salesCh
	balance := <-balanceCh
	recent := <-recentCh
	levels := <-levelsCh

	if count.err != nil {
		return nil, fmt.Errorf("dashboard: total de produtos: %w", count.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: vendas do mês: %w", sales.err)
	}
	if balance.err != nil {
		return nil, fmt.Errorf("dashboard: saldo do caixa: %w", balance.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: últimas transações: %w", recent.err)
	}
	if levels.err != nil {
		return nil, fmt.Errorf("dashboard: estoque atual: %w", levels.err)
	}

	low := inventory.LowStock(levels.levels, uc.threshold)
	lowDTO := make([]dto.LowStockDTO, 0, len(low))
	for _, item := range low {
		lowDTO = append(lowDTO, dto.LowStockDTO{
			Product: *dto.FromProduct(&item.Product),
			OnHand:  item.OnHand,
		})
	}

	return &dto.DashboardResponse{
		Stats: dto.DashboardStatsDTO{
			TotalProducts: count.n,
			MonthlySales:  sales.value,
			CashBalance:   balance.value,
			LowStockCount: len(lowDTO),
		},
		RecentTransactions: dto.FromCashTransactions(recent.txs),
		LowStock:           lowDTO,
	}, nil
}
