// Package ledger reglas puras del livro caixa: totales por tipo y agrupación mensual.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/adega-api/internal/domain/entity"
)

// MonthKeyLayout formato de la clave mensual (YYYY-MM).
const MonthKeyLayout = "2006-01"

// Summary totales de entradas y salidas de un conjunto de transacciones.
type Summary struct {
	In  decimal.Decimal
	Out decimal.Decimal
}

// Net devuelve entradas − salidas.
func (s Summary) Net() decimal.Decimal {
	return s.In.Sub(s.Out)
}

// Summarize suma los montos por tipo. Un conjunto vacío devuelve ceros.
func Summarize(txs []*entity.CashTransaction) Summary {
	s := Summary{In: decimal.Zero, Out: decimal.Zero}
	for _, t := range txs {
		switch t.Kind {
		case entity.CashKindIn:
			s.In = s.In.Add(t.Amount)
		case entity.CashKindOut:
			s.Out = s.Out.Add(t.Amount)
		}
	}
	return s
}

// GroupByMonth agrupa las transacciones por mes calendario (clave YYYY-MM).
func GroupByMonth(txs []*entity.CashTransaction) map[string]Summary {
	months := make(map[string]Summary)
	for _, t := range txs {
		key := t.Date.Format(MonthKeyLayout)
		m, ok := months[key]
		if !ok {
			m = Summary{In: decimal.Zero, Out: decimal.Zero}
		}
		switch t.Kind {
		case entity.CashKindIn:
			m.In = m.In.Add(t.Amount)
		case entity.CashKindOut:
			m.Out = m.Out.Add(t.Amount)
		}
		months[key] = m
	}
	return months
}
