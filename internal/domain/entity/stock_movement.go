package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockIn representa una entrada de estoque (compra a proveedor). Append-only.
type StockIn struct {
	ID            int64
	ProductID     int64
	Date          time.Time
	Quantity      int
	PurchaseValue decimal.Decimal // valor_compra tal como lo informa el usuario (total de la entrada)
	Product       *Product        // snapshot del producto; nil si ya no existe
}

// StockOut representa una salida de estoque (venta). Append-only.
// Cada StockOut genera una CashTransaction de tipo entrada en la misma transacción.
type StockOut struct {
	ID        int64
	ProductID int64
	Date      time.Time
	Quantity  int
	SalePrice decimal.Decimal // precio unitario de venta
	Product   *Product
}

// Total devuelve el valor de la venta (precio unitario × cantidad).
func (s *StockOut) Total() decimal.Decimal {
	return s.SalePrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
