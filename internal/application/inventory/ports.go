package inventory

import (
	"context"

	"github.com/jhoicas/adega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que una salida de estoque y su transacción de caja se confirmen juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		outRepo repository.StockOutRepository,
		cashRepo repository.CashTransactionRepository,
	) error) error
}
