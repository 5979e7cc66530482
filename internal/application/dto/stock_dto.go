package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/adega-api/internal/domain/entity"
)

// CreateStockInRequest body para POST /estoque/entradas.
type CreateStockInRequest struct {
	ProductID     int64            `json:"produto_id"`
	Date          string           `json:"data"`
	Quantity      int              `json:"quantidade"`
	PurchaseValue *decimal.Decimal `json:"valor_compra"` // total pago por la entrada
}

// Validate reglas de entrada para una entrada de estoque.
func (r CreateStockInRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required, validation.Min(1)),
		validation.Field(&r.Date, validation.Required, validation.Date(DateLayout)),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&r.PurchaseValue, validation.Required, nonNegative, cents),
	)
}

// CreateStockOutRequest body para POST /estoque/saidas.
type CreateStockOutRequest struct {
	ProductID   int64            `json:"produto_id"`
	Date        string           `json:"data"`
	Quantity    int              `json:"quantidade"`
	SalePrice   *decimal.Decimal `json:"valor_venda"` // precio unitario, > 0: genera la entrada de caixa
	Description string           `json:"descricao"`   // opcional, va a la transacción de caja
}

// Validate reglas de entrada para una salida de estoque.
func (r CreateStockOutRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.Required, validation.Min(1)),
		validation.Field(&r.Date, validation.Required, validation.Date(DateLayout)),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&r.SalePrice, validation.Required, positive, cents),
		validation.Field(&r.Description, validation.Length(0, 180)),
	)
}

// StockInResponse salida de una entrada de estoque.
type StockInResponse struct {
	ID            int64            `json:"id"`
	ProductID     int64            `json:"produto_id"`
	Date          string           `json:"data"`
	Quantity      int              `json:"quantidade"`
	PurchaseValue decimal.Decimal  `json:"valor_compra"`
	Product       *ProductResponse `json:"produto"`
}

// StockOutResponse salida de una salida de estoque.
type StockOutResponse struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"produto_id"`
	Date      string           `json:"data"`
	Quantity  int              `json:"quantidade"`
	SalePrice decimal.Decimal  `json:"valor_venda"`
	Product   *ProductResponse `json:"produto"`
}

// StockLevelResponse estoque actual de un producto (GET /estoque/atual).
type StockLevelResponse struct {
	Product  ProductResponse `json:"produto"`
	OnHand   int64           `json:"quantidade_atual"`
	TotalIn  int64           `json:"total_entradas"`
	TotalOut int64           `json:"total_saidas"`
}

// FromStockIn convierte la entidad en respuesta.
func FromStockIn(in *entity.StockIn) StockInResponse {
	return StockInResponse{
		ID:            in.ID,
		ProductID:     in.ProductID,
		Date:          FormatDate(in.Date),
		Quantity:      in.Quantity,
		PurchaseValue: in.PurchaseValue,
		Product:       FromProduct(in.Product),
	}
}

// FromStockOut convierte la entidad en respuesta.
func FromStockOut(out *entity.StockOut) StockOutResponse {
	return StockOutResponse{
		ID:        out.ID,
		ProductID: out.ProductID,
		Date:      FormatDate(out.Date),
		Quantity:  out.Quantity,
		SalePrice: out.SalePrice,
		Product:   FromProduct(out.Product),
	}
}

// FromStockLevel convierte el nivel derivado en respuesta.
func FromStockLevel(l entity.StockLevel) StockLevelResponse {
	return StockLevelResponse{
		Product:  *FromProduct(&l.Product),
		OnHand:   l.OnHand(),
		TotalIn:  l.TotalIn,
		TotalOut: l.TotalOut,
	}
}
