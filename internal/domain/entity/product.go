package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una bebida del catálogo de la adega.
// El estoque no se guarda aquí; se deriva de StockIn/StockOut (ver StockLevel).
type Product struct {
	ID             int64
	Name           string
	BeverageType   string // cerveja, vinho, destilado, refrigerante...
	Supplier       string
	Cost           decimal.Decimal // costo de compra unitario
	SalePrice      decimal.Decimal // precio de venta unitario sugerido
	ExpirationDate *time.Time      // validade (opcional, solo fecha)
}
