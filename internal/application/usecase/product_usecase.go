package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/adega-api/internal/application/dto"
	"github.com/jhoicas/adega-api/internal/domain"
	"github.com/jhoicas/adega-api/internal/domain/entity"
	"github.com/jhoicas/adega-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo. El estoque se maneja vía movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve todos los productos ordenados por id.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar produtos: %w", err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *dto.FromProduct(p))
	}
	return out, nil
}

// GetByID obtiene un producto por ID. domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromProduct(product), nil
}

// Create valida y persiste un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:         in.Name,
		BeverageType: in.BeverageType,
		Supplier:     in.Supplier,
		Cost:         *in.Cost,
		SalePrice:    *in.SalePrice,
	}
	if in.ExpirationDate != "" {
		d, err := dto.ParseDate("validade", in.ExpirationDate)
		if err != nil {
			return nil, err
		}
		product.ExpirationDate = &d
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("criar produto: %w", err)
	}
	return dto.FromProduct(product), nil
}

// Update aplica los campos presentes sobre el producto existente.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.BeverageType != nil {
		product.BeverageType = *in.BeverageType
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.Cost != nil {
		product.Cost = *in.Cost
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	// validade solo cambia si viene con valor
	if in.ExpirationDate != nil && *in.ExpirationDate != "" {
		d, err := dto.ParseDate("validade", *in.ExpirationDate)
		if err != nil {
			return nil, err
		}
		product.ExpirationDate = &d
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("atualizar produto %d: %w", id, err)
	}
	return dto.FromProduct(product), nil
}

// Delete elimina el producto. domain.ErrProductInUse si tiene movimientos.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.find(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remover produto %d: %w", id, err)
	}
	return nil
}

func (uc *ProductUseCase) find(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar produto %d: %w", id, err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}
