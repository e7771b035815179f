package query

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductQueryService proyecciones de lectura de productos. Nunca muta y
// nunca devuelve errores de negocio: la ausencia es un resultado vacío.
type ProductQueryService struct {
	products repository.ProductRepository
}

// NewProductQueryService construye el servicio de consultas.
func NewProductQueryService(products repository.ProductRepository) *ProductQueryService {
	return &ProductQueryService{products: products}
}

// ListActive lista los productos activos con el nombre de su categoría.
func (s *ProductQueryService) ListActive(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := s.products.FindAllActiveWithCategory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductWithCategoryResponse(p))
	}
	return out, nil
}

// ListDeleted lista los productos eliminados.
func (s *ProductQueryService) ListDeleted(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := s.products.FindAllDeletedWithCategory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductWithCategoryResponse(p))
	}
	return out, nil
}

// GetByID busca un producto activo; nil si no existe o está eliminado.
func (s *ProductQueryService) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := s.products.FindByIDWithCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := toProductWithCategoryResponse(product)
	return &out, nil
}

// SearchByName lista activos cuyo nombre contiene la subcadena (CI).
func (s *ProductQueryService) SearchByName(ctx context.Context, name string) ([]dto.ProductResponse, error) {
	list, err := s.products.SearchActiveByName(ctx, name)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// ListByCategory lista activos de una categoría activa.
func (s *ProductQueryService) ListByCategory(ctx context.Context, categoryID string) ([]dto.ProductResponse, error) {
	list, err := s.products.FindActiveByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// ListByPriceRange lista activos con precio en [min, max].
func (s *ProductQueryService) ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]dto.ProductResponse, error) {
	list, err := s.products.FindActiveByPriceBetween(ctx, min, max)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// ListInStock lista activos con stock mayor al mínimo dado.
func (s *ProductQueryService) ListInStock(ctx context.Context, minStock int) ([]dto.ProductResponse, error) {
	list, err := s.products.FindActiveByStockGreaterThan(ctx, minStock)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// ListWithStockStatus proyección decorada de los productos activos con
// bucket de stock y precio formateado.
func (s *ProductQueryService) ListWithStockStatus(ctx context.Context) ([]dto.ProductProjection, error) {
	list, err := s.products.FindAllActiveWithCategory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductProjection, 0, len(list))
	for _, p := range list {
		out = append(out, toProductProjection(p))
	}
	return out, nil
}
