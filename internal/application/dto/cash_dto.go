package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/adega-api/internal/domain/entity"
)

// CreateCashTransactionRequest body para POST /caixa/transacoes.
type CreateCashTransactionRequest struct {
	Kind        string           `json:"tipo"` // entrada | saida
	Description string           `json:"descricao"`
	Amount      *decimal.Decimal `json:"valor"`
	Date        string           `json:"data"`
}

// Validate reglas de entrada para una transacción de caja.
func (r CreateCashTransactionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind, validation.Required, validation.In(entity.CashKindIn, entity.CashKindOut)),
		validation.Field(&r.Description, validation.Length(0, 200)),
		validation.Field(&r.Amount, validation.Required, positive, cents),
		validation.Field(&r.Date, validation.Required, validation.Date(DateLayout)),
	)
}

// CashTransactionResponse salida de una transacción de caja.
type CashTransactionResponse struct {
	ID          int64           `json:"id"`
	Kind        string          `json:"tipo"`
	Description string          `json:"descricao"`
	Amount      decimal.Decimal `json:"valor"`
	Date        string          `json:"data"`
}

// BalanceResponse saldo total del caixa (GET /caixa/saldo).
type BalanceResponse struct {
	In      decimal.Decimal `json:"entradas"`
	Out     decimal.Decimal `json:"saidas"`
	Balance decimal.Decimal `json:"saldo_total"`
}

// CashFlowSummary totales del período consultado.
type CashFlowSummary struct {
	In      decimal.Decimal `json:"entradas"`
	Out     decimal.Decimal `json:"saidas"`
	Balance decimal.Decimal `json:"saldo_periodo"`
}

// CashFlowResponse transacciones del período más su resumen (GET /caixa/fluxo).
type CashFlowResponse struct {
	Transactions []CashTransactionResponse `json:"transacoes"`
	Summary      CashFlowSummary           `json:"resumo"`
}

// FromCashTransaction convierte la entidad en respuesta.
func FromCashTransaction(t *entity.CashTransaction) CashTransactionResponse {
	return CashTransactionResponse{
		ID:          t.ID,
		Kind:        t.Kind,
		Description: t.Description,
		Amount:      t.Amount,
		Date:        FormatDate(t.Date),
	}
}

// FromCashTransactions convierte una lista; nunca devuelve nil.
func FromCashTransactions(list []*entity.CashTransaction) []CashTransactionResponse {
	out := make([]CashTransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromCashTransaction(t))
	}
	return out
}
