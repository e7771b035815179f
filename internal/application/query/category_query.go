package query

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryQueryService proyecciones de lectura de categorías. Nunca muta y
// nunca devuelve errores de negocio: la ausencia es un resultado vacío.
type CategoryQueryService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCategoryQueryService construye el servicio de consultas.
func NewCategoryQueryService(categories repository.CategoryRepository, products repository.ProductRepository) *CategoryQueryService {
	return &CategoryQueryService{categories: categories, products: products}
}

// ListActive lista las categorías activas.
func (s *CategoryQueryService) ListActive(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := s.categories.FindAll(ctx, repository.ScopeActive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// ListDeleted lista las categorías eliminadas.
func (s *CategoryQueryService) ListDeleted(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := s.categories.FindAll(ctx, repository.ScopeDeleted)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// GetByID busca una categoría activa; nil si no existe o está eliminada.
func (s *CategoryQueryService) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id, repository.ScopeActive)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	out := toCategoryResponse(category)
	return &out, nil
}

// SearchByName lista activas cuyo nombre contiene la subcadena (CI).
func (s *CategoryQueryService) SearchByName(ctx context.Context, name string) ([]dto.CategoryResponse, error) {
	list, err := s.categories.SearchActiveByName(ctx, name)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// ListWithCounts proyección decorada de todas las categorías (activas y
// eliminadas) con su conteo de productos activos y etiqueta de estado.
func (s *CategoryQueryService) ListWithCounts(ctx context.Context) ([]dto.CategoryProjection, error) {
	list, err := s.categories.FindAll(ctx, repository.ScopeAll)
	if err != nil {
		return nil, err
	}
	counts, err := s.products.CountActiveGroupedByCategory(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryProjection, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryProjection(c, counts[c.ID]))
	}
	return out, nil
}
