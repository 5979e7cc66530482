package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/adega-api/internal/domain/entity"
)

// CashTransactionRepository define el puerto de persistencia para el livro caixa.
type CashTransactionRepository interface {
	Create(ctx context.Context, tx *entity.CashTransaction) error
	// List devuelve las transacciones del período ordenadas por fecha descendente.
	List(ctx context.Context, period Period) ([]*entity.CashTransaction, error)
	// Recent devuelve las últimas `limit` transacciones por fecha descendente.
	Recent(ctx context.Context, limit int) ([]*entity.CashTransaction, error)
	// Totals suma los montos por tipo en el período. COALESCE a cero si no hay filas.
	Totals(ctx context.Context, period Period) (in, out decimal.Decimal, err error)
}
