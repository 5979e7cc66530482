package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/adega-api/internal/domain"
	"github.com/jhoicas/adega-api/internal/domain/entity"
	"github.com/jhoicas/adega-api/internal/domain/repository"
)

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

// StockOutRepo implementación de StockOutRepository sobre PostgreSQL (usable con pool o tx).
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository construye el adaptador de salidas. Pasar pool o tx (Querier).
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

// Create persiste una salida de estoque y asigna el ID generado.
func (r *StockOutRepo) Create(ctx context.Context, out *entity.StockOut) error {
	query := `
		INSERT INTO saidas_estoque (produto_id, data, quantidade, valor_venda)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, out.ProductID, out.Date, out.Quantity, out.SalePrice).Scan(&out.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert stock out: %w", err)
	}
	return nil
}

// List devuelve las salidas del período (más recientes primero) con el snapshot del producto.
func (r *StockOutRepo) List(ctx context.Context, period repository.Period) ([]*entity.StockOut, error) {
	where, args := periodClause("s.data", period)
	query := `
		SELECT s.id, s.produto_id, s.data, s.quantidade, s.valor_venda,
		       p.id, p.nome, p.tipo_bebida, p.fornecedor, p.custo, p.valor_venda, p.validade
		FROM saidas_estoque s
		LEFT JOIN produtos p ON p.id = s.produto_id` + where + `
		ORDER BY s.data DESC, s.id DESC`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock out: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.StockOut, 0)
	for rows.Next() {
		var out entity.StockOut
		var snap productSnapshot
		dest := append([]any{&out.ID, &out.ProductID, &out.Date, &out.Quantity, &out.SalePrice}, snap.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan stock out: %w", err)
		}
		out.Product = snap.product()
		list = append(list, &out)
	}
	return list, rows.Err()
}

// SalesTotal suma valor_venda × quantidade de las salidas del período.
func (r *StockOutRepo) SalesTotal(ctx context.Context, period repository.Period) (decimal.Decimal, error) {
	where, args := periodClause("data", period)
	query := `SELECT COALESCE(SUM(valor_venda * quantidade), 0) FROM saidas_estoque` + where
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum stock out: %w", err)
	}
	return total, nil
}
