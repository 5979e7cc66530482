package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/adega-api/internal/domain/entity"
)

// StockInRepository define el puerto de persistencia para entradas de estoque.
type StockInRepository interface {
	Create(ctx context.Context, in *entity.StockIn) error
	// List devuelve las entradas con el snapshot del producto (nil si fue eliminado).
	List(ctx context.Context) ([]*entity.StockIn, error)
}

// StockOutRepository define el puerto de persistencia para salidas de estoque.
type StockOutRepository interface {
	Create(ctx context.Context, out *entity.StockOut) error
	// List devuelve las salidas del período con el snapshot del producto.
	List(ctx context.Context, period Period) ([]*entity.StockOut, error)
	// SalesTotal suma valor_venda × quantidade de las salidas del período (cero si no hay filas).
	SalesTotal(ctx context.Context, period Period) (decimal.Decimal, error)
}

// StockLevelRepository consultas de lectura del estoque derivado.
type StockLevelRepository interface {
	// CurrentLevels devuelve una fila por producto con el total de entradas y salidas.
	CurrentLevels(ctx context.Context) ([]entity.StockLevel, error)
}
