// Package cash contiene los casos de uso del livro caixa.
package cash

import (
	"context"
	"fmt"

	"github.com/jhoicas/adega-api/internal/application/dto"
	"github.com/jhoicas/adega-api/internal/domain/entity"
	"github.com/jhoicas/adega-api/internal/domain/ledger"
	"github.com/jhoicas/adega-api/internal/domain/repository"
)

// CashUseCase registra transacciones de caja y calcula saldos.
type CashUseCase struct {
	repo repository.CashTransactionRepository
}

// NewCashUseCase construye el caso de uso.
func NewCashUseCase(repo repository.CashTransactionRepository) *CashUseCase {
	return &CashUseCase{repo: repo}
}

// List devuelve todas las transacciones, la más reciente primero.
func (uc *CashUseCase) List(ctx context.Context) ([]dto.CashTransactionResponse, error) {
	list, err := uc.repo.List(ctx, repository.Period{})
	if err != nil {
		return nil, fmt.Errorf("listar transações: %w", err)
	}
	return dto.FromCashTransactions(list), nil
}

// Create valida y registra una transacción manual.
func (uc *CashUseCase) Create(ctx context.Context, in dto.CreateCashTransactionRequest) (*dto.CashTransactionResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	date, err := dto.ParseDate("data", in.Date)
	if err != nil {
		return nil, err
	}
	tx := &entity.CashTransaction{
		Kind:        in.Kind,
		Description: in.Description,
		Amount:      *in.Amount,
		Date:        date,
	}
	if err := uc.repo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("registrar transação: %w", err)
	}
	resp := dto.FromCashTransaction(tx)
	return &resp, nil
}

// Balance devuelve el saldo de todo el livro caixa.
func (uc *CashUseCase) Balance(ctx context.Context) (*dto.BalanceResponse, error) {
	in, out, err := uc.repo.Totals(ctx, repository.Period{})
	if err != nil {
		return nil, fmt.Errorf("calcular saldo: %w", err)
	}
	return &dto.BalanceResponse{In: in, Out: out, Balance: in.Sub(out)}, nil
}

// CashFlow devuelve las transacciones del período y su resumen.
func (uc *CashUseCase) CashFlow(ctx context.Context, period repository.Period) (*dto.CashFlowResponse, error) {
	list, err := uc.repo.List(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("fluxo de caixa: %w", err)
	}
	sum := ledger.Summarize(list)
	return &dto.CashFlowResponse{
		Transactions: dto.FromCashTransactions(list),
		Summary: dto.CashFlowSummary{
			In:      sum.In,
			Out:     sum.Out,
			Balance: sum.Net(),
		},
	}, nil
}
