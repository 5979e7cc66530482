package postgres

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/adega-api/internal/domain/entity"
)

// productSnapshot destino de Scan para las columnas de produtos en un LEFT JOIN (todas nullable).
type productSnapshot struct {
	ID           *int64
	Name         *string
	BeverageType *string
	Supplier     *string
	Cost         decimal.NullDecimal
	SalePrice    decimal.NullDecimal
	Expiration   *time.Time
}

func (s *productSnapshot) dest() []any {
	return []any{&s.ID, &s.Name, &s.BeverageType, &s.Supplier, &s.Cost, &s.SalePrice, &s.Expiration}
}

// product devuelve nil si el JOIN no encontró el producto.
func (s *productSnapshot) product() *entity.Product {
	if s.ID == nil {
		return nil
	}
	p := &entity.Product{
		ID:             *s.ID,
		Cost:           s.Cost.Decimal,
		SalePrice:      s.SalePrice.Decimal,
		ExpirationDate: s.Expiration,
	}
	if s.Name != nil {
		p.Name = *s.Name
	}
	if s.BeverageType != nil {
		p.BeverageType = *s.BeverageType
	}
	if s.Supplier != nil {
		p.Supplier = *s.Supplier
	}
	return p
}
