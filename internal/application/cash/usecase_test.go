package cash_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/adega-api/internal/application/apptest"
	"github.com/jhoicas/adega-api/internal/application/cash"
	"github.com/jhoicas/adega-api/internal/application/dto"
	"github.com/jhoicas/adega-api/internal/domain"
	"github.com/jhoicas/adega-api/internal/domain/repository"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func day(s string) *time.Time {
	d, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return &d
}

func seed(t *testing.T, uc *cash.CashUseCase) {
	t.Helper()
	rows := []dto.CreateCashTransactionRequest{
		{Kind: "entrada", Description: "venda balcão", Amount: dec("100"), Date: "2024-01-10"},
		{Kind: "saida", Description: "aluguel", Amount: dec("40"), Date: "2024-01-15"},
		{Kind: "entrada", Description: "venda", Amount: dec("25.50"), Date: "2024-02-01"},
	}
	for _, r := range rows {
		_, err := uc.Create(context.Background(), r)
		require.NoError(t, err)
	}
}

func TestCashUseCase_Create_TipoInvalido(t *testing.T) {
	uc := cash.NewCashUseCase(apptest.NewStore().Cash())
	_, err := uc.Create(context.Background(), dto.CreateCashTransactionRequest{
		Kind: "deposito", Amount: dec("10"), Date: "2024-01-01",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tipo", verr.Field)
}

func TestCashUseCase_Create_ValorDebeSerPositivo(t *testing.T) {
	uc := cash.NewCashUseCase(apptest.NewStore().Cash())
	for _, v := range []string{"0", "-5", "0.001", "12.345"} {
		_, err := uc.Create(context.Background(), dto.CreateCashTransactionRequest{
			Kind: "saida", Amount: dec(v), Date: "2024-01-01",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "valor %s", v)
	}
}

func TestCashUseCase_Balance(t *testing.T) {
	uc := cash.NewCashUseCase(apptest.NewStore().Cash())
	seed(t, uc)

	b, err := uc.Balance(context.Background())
	require.NoError(t, err)
	assert.True(t, b.In.Equal(decimal.RequireFromString("125.50")))
	assert.True(t, b.Out.Equal(decimal.NewFromInt(40)))
	assert.True(t, b.Balance.Equal(decimal.RequireFromString("85.50")))
}

func TestCashUseCase_CashFlow_Periodo(t *testing.T) {
	uc := cash.NewCashUseCase(apptest.NewStore().Cash())
	seed(t, uc)

	flow, err := uc.CashFlow(context.Background(), repository.Period{From: day("2024-01-01"), To: day("2024-01-31")})
	require.NoError(t, err)
	require.Len(t, flow.Transactions, 2)
	assert.Equal(t, "2024-01-15", flow.Transactions[0].Date)
	assert.True(t, flow.Summary.Balance.Equal(flow.Summary.In.Sub(flow.Summary.Out)))
	assert.True(t, flow.Summary.Balance.Equal(decimal.NewFromInt(60)))
}

func TestCashUseCase_CashFlow_RangoVacioDevuelveCeros(t *testing.T) {
	uc := cash.NewCashUseCase(apptest.NewStore().Cash())
	seed(t, uc)

	flow, err := uc.CashFlow(context.Background(), repository.Period{From: day("2030-01-01")})
	require.NoError(t, err)
	assert.Empty(t, flow.Transactions)
	assert.NotNil(t, flow.Transactions)
	assert.True(t, flow.Summary.In.IsZero())
	assert.True(t, flow.Summary.Out.IsZero())
	assert.True(t, flow.Summary.Balance.IsZero())
}
