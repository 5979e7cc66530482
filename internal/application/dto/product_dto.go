package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/adega-api/internal/domain/entity"
)

// CreateProductRequest body para POST /produtos.
type CreateProductRequest struct {
	Name           string           `json:"nome"`
	BeverageType   string           `json:"tipo_bebida"`
	Supplier       string           `json:"fornecedor"`
	Cost           *decimal.Decimal `json:"custo"`
	SalePrice      *decimal.Decimal `json:"valor_venda"`
	ExpirationDate string           `json:"validade"` // opcional, YYYY-MM-DD
}

// Validate reglas de entrada para crear un producto.
func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.BeverageType, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.Supplier, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Cost, validation.Required, nonNegative, cents),
		validation.Field(&r.SalePrice, validation.Required, nonNegative, cents),
		validation.Field(&r.ExpirationDate, validation.Date(DateLayout)),
	)
}

// UpdateProductRequest body para PUT /produtos/{id}. Solo se aplican los campos presentes.
type UpdateProductRequest struct {
	Name           *string          `json:"nome"`
	BeverageType   *string          `json:"tipo_bebida"`
	Supplier       *string          `json:"fornecedor"`
	Cost           *decimal.Decimal `json:"custo"`
	SalePrice      *decimal.Decimal `json:"valor_venda"`
	ExpirationDate *string          `json:"validade"` // vacío o ausente = sin cambios
}

// Validate reglas de entrada para actualizar un producto.
func (r UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.BeverageType, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&r.Supplier, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Cost, nonNegative, cents),
		validation.Field(&r.SalePrice, nonNegative, cents),
		validation.Field(&r.ExpirationDate, validation.Date(DateLayout)),
	)
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"nome"`
	BeverageType   string          `json:"tipo_bebida"`
	Supplier       string          `json:"fornecedor"`
	Cost           decimal.Decimal `json:"custo"`
	SalePrice      decimal.Decimal `json:"valor_venda"`
	ExpirationDate *string         `json:"validade"`
}

// FromProduct convierte la entidad en respuesta. nil -> nil.
func FromProduct(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	out := &ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		BeverageType: p.BeverageType,
		Supplier:     p.Supplier,
		Cost:         p.Cost,
		SalePrice:    p.SalePrice,
	}
	if p.ExpirationDate != nil {
		d := FormatDate(*p.ExpirationDate)
		out.ExpirationDate = &d
	}
	return out
}
