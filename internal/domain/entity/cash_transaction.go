package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de caja. Los valores son los del contrato HTTP.
const (
	CashKindIn  = "entrada"
	CashKindOut = "saida"
)

// CashTransaction representa un asiento del livro caixa. El monto es siempre positivo;
// el signo lo da Kind.
type CashTransaction struct {
	ID          int64
	Kind        string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// IsValidCashKind indica si kind es entrada o saida.
func IsValidCashKind(kind string) bool {
	return kind == CashKindIn || kind == CashKindOut
}

// SaleDescription arma la descripción de la transacción generada por una venta.
func SaleDescription(description string) string {
	if description == "" {
		description = "Produto"
	}
	return "Venda - " + description
}
