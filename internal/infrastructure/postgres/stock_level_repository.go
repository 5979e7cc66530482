package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/adega-api/internal/domain/entity"
	"github.com/jhoicas/adega-api/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo consultas de solo lectura del estoque derivado.
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// CurrentLevels devuelve, para cada producto, la suma de entradas y de salidas.
// Las sumas se agregan antes del JOIN para no multiplicar filas entre ambas tablas.
func (r *StockLevelRepo) CurrentLevels(ctx context.Context) ([]entity.StockLevel, error) {
	const query = `
	SELECT
	    p.id, p.nome, p.tipo_bebida, p.fornecedor, p.custo, p.valor_venda, p.validade,
	    COALESCE(e.total, 0) AS total_entradas,
	    COALESCE(s.total, 0) AS total_saidas
	FROM produtos p
	LEFT JOIN (
	    SELECT produto_id, SUM(quantidade) AS total FROM entradas_estoque GROUP BY produto_id
	) e ON e.produto_id = p.id
	LEFT JOIN (
	    SELECT produto_id, SUM(quantidade) AS total FROM saidas_estoque GROUP BY produto_id
	) s ON s.produto_id = p.id
	ORDER BY p.id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stock.CurrentLevels: %w", err)
	}
	defer rows.Close()

	levels := make([]entity.StockLevel, 0)
	for rows.Next() {
		var l entity.StockLevel
		p := &l.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.BeverageType, &p.Supplier, &p.Cost, &p.SalePrice, &p.ExpirationDate,
			&l.TotalIn, &l.TotalOut,
		); err != nil {
			return nil, fmt.Errorf("stock.CurrentLevels scan: %w", err)
		}
		levels = append(levels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stock.CurrentLevels rows: %w", err)
	}
	return levels, nil
}
