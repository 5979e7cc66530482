package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/adega-api/internal/domain/entity"
	"github.com/jhoicas/adega-api/internal/domain/inventory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestLowStock_SoloProductosPorDebajoDelUmbral(t *testing.T) {
	levels := []entity.StockLevel{
		{Product: entity.Product{ID: 1, Name: "Skol"}, TotalIn: 24, TotalOut: 20},       // 4
		{Product: entity.Product{ID: 2, Name: "Brahma"}, TotalIn: 30, TotalOut: 20},     // 10, no entra
		{Product: entity.Product{ID: 3, Name: "Vinho"}, TotalIn: 0, TotalOut: 2},        // -2
		{Product: entity.Product{ID: 4, Name: "Cachaça"}, TotalIn: 100, TotalOut: 1},    // 99
	}

	low := inventory.LowStock(levels, inventory.DefaultLowStockThreshold)

	require.Len(t, low, 2)
	assert.Equal(t, int64(1), low[0].Product.ID)
	assert.Equal(t, int64(4), low[0].OnHand)
	assert.Equal(t, int64(3), low[1].Product.ID)
	assert.Equal(t, int64(-2), low[1].OnHand, "el estoque negativo también es bajo")
}

func TestLowStock_ListaVaciaNoEsNil(t *testing.T) {
	low := inventory.LowStock(nil, 10)
	assert.NotNil(t, low)
	assert.Empty(t, low)
}

func TestGroupSales_AgrupaPorNombreYTotaliza(t *testing.T) {
	skol := &entity.Product{ID: 1, Name: "Skol"}
	outs := []*entity.StockOut{
		{ProductID: 1, Quantity: 3, SalePrice: dec("5.50"), Product: skol},
		{ProductID: 1, Quantity: 2, SalePrice: dec("6.00"), Product: skol},
		{ProductID: 9, Quantity: 1, SalePrice: dec("40.00")},
	}

	s := inventory.GroupSales(outs)

	require.Len(t, s.ByProduct, 2)
	assert.Equal(t, int64(5), s.ByProduct["Skol"].Quantity)
	assert.True(t, dec("28.50").Equal(s.ByProduct["Skol"].TotalValue))
	assert.Equal(t, int64(1), s.ByProduct["Produto ID 9"].Quantity)
	assert.True(t, dec("68.50").Equal(s.TotalValue))
	assert.Equal(t, int64(6), s.TotalItems)

	sumGroups := decimal.Zero
	var sumQty int64
	for _, g := range s.ByProduct {
		sumGroups = sumGroups.Add(g.TotalValue)
		sumQty += g.Quantity
	}
	assert.True(t, sumGroups.Equal(s.TotalValue), "total_vendas = Σ valor_total")
	assert.Equal(t, sumQty, s.TotalItems, "total_itens_vendidos = Σ quantidade")
}

func TestGroupSales_SinVentas(t *testing.T) {
	s := inventory.GroupSales(nil)
	assert.Empty(t, s.ByProduct)
	assert.True(t, s.TotalValue.IsZero())
	assert.Zero(t, s.TotalItems)
}
