package entity

// StockLevel es el estoque actual derivado de un producto: total de entradas menos total de salidas.
// No se materializa en ninguna tabla.
type StockLevel struct {
	Product  Product
	TotalIn  int64
	TotalOut int64
}

// OnHand devuelve la cantidad disponible. Puede ser negativa (no se bloquea la sobreventa).
func (s StockLevel) OnHand() int64 {
	return s.TotalIn - s.TotalOut
}
