package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/adega-api/internal/domain"
	"github.com/jhoicas/adega-api/internal/domain/entity"
	"github.com/jhoicas/adega-api/internal/domain/repository"
)

var _ repository.StockInRepository = (*StockInRepo)(nil)

// StockInRepo implementación de StockInRepository sobre PostgreSQL.
type StockInRepo struct {
	q Querier
}

// NewStockInRepository construye el adaptador de entradas. Pasar pool o tx (Querier).
func NewStockInRepository(q Querier) *StockInRepo {
	return &StockInRepo{q: q}
}

// Create persiste una entrada de estoque y asigna el ID generado.
func (r *StockInRepo) Create(ctx context.Context, in *entity.StockIn) error {
	query := `
		INSERT INTO entradas_estoque (produto_id, data, quantidade, valor_compra)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, in.ProductID, in.Date, in.Quantity, in.PurchaseValue).Scan(&in.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert stock in: %w", err)
	}
	return nil
}

// List devuelve todas las entradas (más recientes primero) con el snapshot del producto.
func (r *StockInRepo) List(ctx context.Context) ([]*entity.StockIn, error) {
	query := `
		SELECT e.id, e.produto_id, e.data, e.quantidade, e.valor_compra,
		       p.id, p.nome, p.tipo_bebida, p.fornecedor, p.custo, p.valor_venda, p.validade
		FROM entradas_estoque e
		LEFT JOIN produtos p ON p.id = e.produto_id
		ORDER BY e.data DESC, e.id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock in: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.StockIn, 0)
	for rows.Next() {
		var in entity.StockIn
		var snap productSnapshot
		dest := append([]any{&in.ID, &in.ProductID, &in.Date, &in.Quantity, &in.PurchaseValue}, snap.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan stock in: %w", err)
		}
		in.Product = snap.product()
		list = append(list, &in)
	}
	return list, rows.Err()
}
