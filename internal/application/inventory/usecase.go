package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/adega-api/internal/application/dto"
	"github.com/jhoicas/adega-api/internal/domain"
	"github.com/jhoicas/adega-api/internal/domain/entity"
	"github.com/jhoicas/adega-api/internal/domain/repository"
)

// StockUseCase registra entradas y salidas de estoque y consulta el estoque actual.
type StockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	inRepo      repository.StockInRepository
	outRepo     repository.StockOutRepository
	levelRepo   repository.StockLevelRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	inRepo repository.StockInRepository,
	outRepo repository.StockOutRepository,
	levelRepo repository.StockLevelRepository,
) *StockUseCase {
	return &StockUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		inRepo:      inRepo,
		outRepo:     outRepo,
		levelRepo:   levelRepo,
	}
}

// ListIn devuelve todas las entradas, la más reciente primero.
func (uc *StockUseCase) ListIn(ctx context.Context) ([]dto.StockInResponse, error) {
	list, err := uc.inRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar entradas: %w", err)
	}
	out := make([]dto.StockInResponse, 0, len(list))
	for _, in := range list {
		out = append(out, dto.FromStockIn(in))
	}
	return out, nil
}

// ListOut devuelve todas las salidas, la más reciente primero.
func (uc *StockUseCase) ListOut(ctx context.Context) ([]dto.StockOutResponse, error) {
	list, err := uc.outRepo.List(ctx, repository.Period{})
	if err != nil {
		return nil, fmt.Errorf("listar saídas: %w", err)
	}
	out := make([]dto.StockOutResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.FromStockOut(o))
	}
	return out, nil
}

// CreateIn registra una entrada. valor_compra se guarda tal cual (total de la entrada).
func (uc *StockUseCase) CreateIn(ctx context.Context, in dto.CreateStockInRequest) (*dto.StockInResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	date, err := dto.ParseDate("data", in.Date)
	if err != nil {
		return nil, err
	}
	product, err := uc.product(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	entry := &entity.StockIn{
		ProductID:     in.ProductID,
		Date:          date,
		Quantity:      in.Quantity,
		PurchaseValue: *in.PurchaseValue,
		Product:       product,
	}
	if err := uc.inRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("registrar entrada: %w", err)
	}
	resp := dto.FromStockIn(entry)
	return &resp, nil
}

// CreateOut registra una venta: inserta la salida y la transacción de caja (entrada)
// en la misma transacción de BD. Si alguna falla no persiste ninguna.
func (uc *StockUseCase) CreateOut(ctx context.Context, in dto.CreateStockOutRequest) (*dto.StockOutResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	date, err := dto.ParseDate("data", in.Date)
	if err != nil {
		return nil, err
	}
	product, err := uc.product(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	sale := &entity.StockOut{
		ProductID: in.ProductID,
		Date:      date,
		Quantity:  in.Quantity,
		SalePrice: *in.SalePrice,
		Product:   product,
	}
	err = uc.txRunner.Run(ctx, func(outRepo repository.StockOutRepository, cashRepo repository.CashTransactionRepository) error {
		if err := outRepo.Create(ctx, sale); err != nil {
			return fmt.Errorf("registrar saída: %w", err)
		}
		cash := &entity.CashTransaction{
			Kind:        entity.CashKindIn,
			Description: entity.SaleDescription(in.Description),
			Amount:      sale.Total(),
			Date:        date,
		}
		if err := cashRepo.Create(ctx, cash); err != nil {
			return fmt.Errorf("registrar transação da venda: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.FromStockOut(sale)
	return &resp, nil
}

// CurrentStock devuelve el estoque derivado de cada producto.
func (uc *StockUseCase) CurrentStock(ctx context.Context) ([]dto.StockLevelResponse, error) {
	levels, err := uc.levelRepo.CurrentLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("calcular estoque atual: %w", err)
	}
	out := make([]dto.StockLevelResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, dto.FromStockLevel(l))
	}
	return out, nil
}

func (uc *StockUseCase) product(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar produto %d: %w", id, err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
