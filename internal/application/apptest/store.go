// Package apptest implementa en memoria los puertos de repository y el TxRunner
// para tests de casos de uso y handlers.
package apptest

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/adega-api/internal/domain"
	"github.com/jhoicas/adega-api/internal/domain/entity"
	"github.com/jhoicas/adega-api/internal/domain/repository"
)

// Store guarda productos y movimientos en memoria. Seguro para uso concurrente.
type Store struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]entity.Product
	ins      []entity.StockIn
	outs     []entity.StockOut
	cash     []entity.CashTransaction

	// FailCashCreate, si no es nil, lo devuelve cada Create de transacciones de caja.
	FailCashCreate error
	// FailQueries, si no es nil, lo devuelven todas las consultas de lectura.
	FailQueries error
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{products: make(map[int64]entity.Product)}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// snapshot devuelve una copia del producto o nil si no existe. Requiere s.mu.
func (s *Store) snapshot(id int64) *entity.Product {
	p, ok := s.products[id]
	if !ok {
		return nil
	}
	return &p
}

// Products repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// StockIns repositorio de entradas.
func (s *Store) StockIns() *StockInRepo { return &StockInRepo{s: s} }

// StockOuts repositorio de salidas.
func (s *Store) StockOuts() *StockOutRepo { return &StockOutRepo{s: s} }

// Levels repositorio del estoque derivado.
func (s *Store) Levels() *StockLevelRepo { return &StockLevelRepo{s: s} }

// Cash repositorio del livro caixa.
func (s *Store) Cash() *CashRepo { return &CashRepo{s: s} }

// TxRunner runner que aplica las escrituras solo si fn termina sin error.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

// CashCount cantidad de transacciones de caja confirmadas.
func (s *Store) CashCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cash)
}

// OutCount cantidad de salidas confirmadas.
func (s *Store) OutCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.outs)
}

// ── Productos ────────────────────────────────────────────────────────────────

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementa repository.ProductRepository sobre el Store.
type ProductRepo struct{ s *Store }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.id()
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailQueries != nil {
		return nil, r.s.FailQueries
	}
	return r.s.snapshot(id), nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailQueries != nil {
		return nil, r.s.FailQueries
	}
	out := make([]*entity.Product, 0, len(r.s.products))
	for id := range r.s.products {
		out = append(out, r.s.snapshot(id))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProductRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailQueries != nil {
		return 0, r.s.FailQueries
	}
	return len(r.s.products), nil
}

// Delete se comporta como la FK RESTRICT de PostgreSQL.
func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	for _, in := range r.s.ins {
		if in.ProductID == id {
			return domain.ErrProductInUse
		}
	}
	for _, o := range r.s.outs {
		if o.ProductID == id {
			return domain.ErrProductInUse
		}
	}
	delete(r.s.products, id)
	return nil
}

// ── Movimientos ──────────────────────────────────────────────────────────────

var _ repository.StockInRepository = (*StockInRepo)(nil)

// StockInRepo implementa repository.StockInRepository sobre el Store.
type StockInRepo struct{ s *Store }

func (r *StockInRepo) Create(_ context.Context, in *entity.StockIn) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[in.ProductID]; !ok {
		return domain.ErrNotFound
	}
	in.ID = r.s.id()
	row := *in
	row.Product = nil
	r.s.ins = append(r.s.ins, row)
	return nil
}

func (r *StockInRepo) List(_ context.Context) ([]*entity.StockIn, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailQueries != nil {
		return nil, r.s.FailQueries
	}
	out := make([]*entity.StockIn, 0, len(r.s.ins))
	for _, in := range r.s.ins {
		row := in
		row.Product = r.s.snapshot(in.ProductID)
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

// StockOutRepo implementa repository.StockOutRepository. Dentro de un TxRunner
// las salidas quedan pendientes hasta el commit.
type StockOutRepo struct {
	s       *Store
	pending *[]entity.StockOut // no nil dentro de un TxRunner
}

func (r *StockOutRepo) Create(_ context.Context, o *entity.StockOut) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[o.ProductID]; !ok {
		return domain.ErrNotFound
	}
	o.ID = r.s.id()
	row := *o
	row.Product = nil
	if r.pending != nil {
		*r.pending = append(*r.pending, row)
		return nil
	}
	r.s.outs = append(r.s.outs, row)
	return nil
}

func (r *StockOutRepo) List(_ context.Context, period repository.Period) ([]*entity.StockOut, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailQueries != nil {
		return nil, r.s.FailQueries
	}
	out := make([]*entity.StockOut, 0, len(r.s.outs))
	for _, o := range r.s.outs {
		if !period.Contains(o.Date) {
			continue
		}
		row := o
		row.Product = r.s.snapshot(o.ProductID)
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *StockOutRepo) SalesTotal(_ context.Context, period repository.Period) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailQueries != nil {
		return decimal.Zero, r.s.FailQueries
	}
	total := decimal.Zero
	for _, o := range r.s.outs {
		if period.Contains(o.Date) {
			total = total.Add(o.Total())
		}
	}
	return total, nil
}

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo deriva el estoque de las entradas y salidas del Store.
type StockLevelRepo struct{ s *Store }

func (r *StockLevelRepo) CurrentLevels(_ context.Context) ([]entity.StockLevel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailQueries != nil {
		return nil, r.s.FailQueries
	}
	levels := make(map[int64]*entity.StockLevel, len(r.s.products))
	for id, p := range r.s.products {
		levels[id] = &entity.StockLevel{Product: p}
	}
	for _, in := range r.s.ins {
		if l, ok := levels[in.ProductID]; ok {
			l.TotalIn += int64(in.Quantity)
		}
	}
	for _, o := range r.s.outs {
		if l, ok := levels[o.ProductID]; ok {
			l.TotalOut += int64(o.Quantity)
		}
	}
	out := make([]entity.StockLevel, 0, len(levels))
	for _, l := range levels {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product.ID < out[j].Product.ID })
	return out, nil
}

// ── Caixa ────────────────────────────────────────────────────────────────────

var _ repository.CashTransactionRepository = (*CashRepo)(nil)

// CashRepo implementa repository.CashTransactionRepository. Replica el CHECK (valor > 0)
// de transacoes_caixa.
type CashRepo struct {
	s       *Store
	pending *[]entity.CashTransaction
}

func (r *CashRepo) Create(_ context.Context, t *entity.CashTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailCashCreate != nil {
		return r.s.FailCashCreate
	}
	if !t.Amount.IsPositive() {
		return domain.NewValidationError("valor", "deve ser maior que zero")
	}
	t.ID = r.s.id()
	if r.pending != nil {
		*r.pending = append(*r.pending, *t)
		return nil
	}
	r.s.cash = append(r.s.cash, *t)
	return nil
}

// sorted devuelve las transacciones del período, la más reciente primero. Requiere s.mu.
func (r *CashRepo) sorted(period repository.Period) []*entity.CashTransaction {
	out := make([]*entity.CashTransaction, 0, len(r.s.cash))
	for _, t := range r.s.cash {
		if period.Contains(t.Date) {
			row := t
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *CashRepo) List(_ context.Context, period repository.Period) ([]*entity.CashTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailQueries != nil {
		return nil, r.s.FailQueries
	}
	return r.sorted(period), nil
}

func (r *CashRepo) Recent(_ context.Context, limit int) ([]*entity.CashTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailQueries != nil {
		return nil, r.s.FailQueries
	}
	out := r.sorted(repository.Period{})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *CashRepo) Totals(_ context.Context, period repository.Period) (in, out decimal.Decimal, err error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailQueries != nil {
		return decimal.Zero, decimal.Zero, r.s.FailQueries
	}
	in, out = decimal.Zero, decimal.Zero
	for _, t := range r.s.cash {
		if !period.Contains(t.Date) {
			continue
		}
		switch t.Kind {
		case entity.CashKindIn:
			in = in.Add(t.Amount)
		case entity.CashKindOut:
			out = out.Add(t.Amount)
		}
	}
	return in, out, nil
}

// ── Transacción ──────────────────────────────────────────────────────────────

// TxRunner implementa inventory.TxRunner: confirma las escrituras solo si fn termina sin error.
type TxRunner struct{ s *Store }

// Run acumula las escrituras de fn y las confirma solo si fn no devuelve error.
func (t *TxRunner) Run(_ context.Context, fn func(
	outRepo repository.StockOutRepository,
	cashRepo repository.CashTransactionRepository,
) error) error {
	var outs []entity.StockOut
	var cash []entity.CashTransaction
	if err := fn(
		&StockOutRepo{s: t.s, pending: &outs},
		&CashRepo{s: t.s, pending: &cash},
	); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	t.s.outs = append(t.s.outs, outs...)
	t.s.cash = append(t.s.cash, cash...)
	return nil
}
