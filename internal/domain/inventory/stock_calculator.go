package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/adega-api/internal/domain/entity"
)

// DefaultLowStockThreshold umbral de estoque bajo usado por el dashboard.
const DefaultLowStockThreshold = 10

// LowStockItem producto cuyo estoque actual está por debajo del umbral.
type LowStockItem struct {
	Product entity.Product
	OnHand  int64
}

// LowStock filtra los niveles con OnHand < threshold, preservando el orden de entrada.
func LowStock(levels []entity.StockLevel, threshold int) []LowStockItem {
	out := make([]LowStockItem, 0)
	for _, l := range levels {
		if onHand := l.OnHand(); onHand < int64(threshold) {
			out = append(out, LowStockItem{Product: l.Product, OnHand: onHand})
		}
	}
	return out
}

// ProductSales acumulado de ventas de un producto.
type ProductSales struct {
	Quantity   int64
	TotalValue decimal.Decimal
}

// SalesSummary ventas agrupadas por nombre de producto más los totales generales.
type SalesSummary struct {
	ByProduct  map[string]ProductSales
	TotalValue decimal.Decimal
	TotalItems int64
}

// GroupSales agrupa las salidas por nombre de producto. Si la salida no trae snapshot
// del producto se agrupa bajo "Produto ID {id}".
func GroupSales(outs []*entity.StockOut) SalesSummary {
	s := SalesSummary{ByProduct: make(map[string]ProductSales), TotalValue: decimal.Zero}
	for _, o := range outs {
		name := fmt.Sprintf("Produto ID %d", o.ProductID)
		if o.Product != nil {
			name = o.Product.Name
		}
		total := o.Total()

		g, ok := s.ByProduct[name]
		if !ok {
			g.TotalValue = decimal.Zero
		}
		g.Quantity += int64(o.Quantity)
		g.TotalValue = g.TotalValue.Add(total)
		s.ByProduct[name] = g

		s.TotalValue = s.TotalValue.Add(total)
		s.TotalItems += int64(o.Quantity)
	}
	return s
}
