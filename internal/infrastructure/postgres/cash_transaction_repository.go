package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/adega-api/internal/domain"
	"github.com/jhoicas/adega-api/internal/domain/entity"
	"github.com/jhoicas/adega-api/internal/domain/repository"
)

var _ repository.CashTransactionRepository = (*CashTransactionRepo)(nil)

const cashColumns = `id, tipo, COALESCE(descricao, ''), valor, data`

// CashTransactionRepo implementación del livro caixa sobre PostgreSQL (usable con pool o tx).
type CashTransactionRepo struct {
	q Querier
}

// NewCashTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCashTransactionRepository(q Querier) *CashTransactionRepo {
	return &CashTransactionRepo{q: q}
}

// Create persiste una transacción de caja y asigna el ID generado.
func (r *CashTransactionRepo) Create(ctx context.Context, t *entity.CashTransaction) error {
	query := `
		INSERT INTO transacoes_caixa (tipo, descricao, valor, data)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, t.Kind, t.Description, t.Amount, t.Date).Scan(&t.ID)
	if err != nil {
		if isCheckViolation(err) {
			if constraintName(err) == "transacoes_caixa_valor_check" {
				return domain.NewValidationError("valor", "deve ser maior que zero")
			}
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert cash transaction: %w", err)
	}
	return nil
}

// List devuelve las transacciones del período, más recientes primero.
func (r *CashTransactionRepo) List(ctx context.Context, period repository.Period) ([]*entity.CashTransaction, error) {
	where, args := periodClause("data", period)
	query := `SELECT ` + cashColumns + ` FROM transacoes_caixa` + where + ` ORDER BY data DESC, id DESC`
	return r.query(ctx, query, args...)
}

// Recent devuelve las últimas `limit` transacciones.
func (r *CashTransactionRepo) Recent(ctx context.Context, limit int) ([]*entity.CashTransaction, error) {
	query := `SELECT ` + cashColumns + ` FROM transacoes_caixa ORDER BY data DESC, id DESC LIMIT $1`
	return r.query(ctx, query, limit)
}

// Totals suma los montos por tipo en el período (cero si no hay filas).
func (r *CashTransactionRepo) Totals(ctx context.Context, period repository.Period) (in, out decimal.Decimal, err error) {
	where, args := periodClause("data", period)
	query := `
	SELECT
	    COALESCE(SUM(valor) FILTER (WHERE tipo = 'entrada'), 0) AS entradas,
	    COALESCE(SUM(valor) FILTER (WHERE tipo = 'saida'),   0) AS saidas
	FROM transacoes_caixa` + where

	if err = r.q.QueryRow(ctx, query, args...).Scan(&in, &out); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("cash.Totals: %w", err)
	}
	return in, out, nil
}

func (r *CashTransactionRepo) query(ctx context.Context, query string, args ...any) ([]*entity.CashTransaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cash transactions: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.CashTransaction, 0)
	for rows.Next() {
		var t entity.CashTransaction
		if err := rows.Scan(&t.ID, &t.Kind, &t.Description, &t.Amount, &t.Date); err != nil {
			return nil, fmt.Errorf("scan cash transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
