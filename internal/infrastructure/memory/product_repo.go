package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*productRepo)(nil)

type productRepo struct {
	s *Store
}

func (r *productRepo) Insert(_ context.Context, product *entity.Product) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.activeNameTaken(product.Name, "") {
		return "", domain.ErrDuplicateName
	}
	product.ID = uuid.New().String()
	r.s.products[product.ID] = *product
	return product.ID, nil
}

func (r *productRepo) FindByID(_ context.Context, id string, scope repository.Scope) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok || !scope.Matches(p.Deleted) {
		return nil, nil
	}
	return &p, nil
}

func (r *productRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.products[id]
	return ok, nil
}

func (r *productRepo) ExistsActiveByName(_ context.Context, name, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.activeNameTaken(name, excludeID), nil
}

func (r *productRepo) SearchActiveByName(_ context.Context, substr string) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	needle := strings.ToLower(substr)
	var list []*entity.Product
	for _, p := range r.s.products {
		if !p.Deleted && strings.Contains(strings.ToLower(p.Name), needle) {
			p := p
			list = append(list, &p)
		}
	}
	sortProducts(list)
	return list, nil
}

func (r *productRepo) Save(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.products[product.ID]
	if !ok {
		return nil
	}
	if !existing.Deleted && r.activeNameTaken(product.Name, product.ID) {
		return domain.ErrDuplicateName
	}
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Stock = product.Stock
	existing.CategoryID = product.CategoryID
	existing.UpdatedAt = product.UpdatedAt
	r.s.products[product.ID] = existing
	return nil
}

func (r *productRepo) SetDeleted(_ context.Context, id string, deleted bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil
	}
	if !deleted && r.activeNameTaken(p.Name, id) {
		return domain.ErrDuplicateName
	}
	p.Deleted = deleted
	p.UpdatedAt = time.Now()
	r.s.products[id] = p
	return nil
}

func (r *productRepo) CountActiveByCategory(_ context.Context, categoryID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var count int64
	for _, p := range r.s.products {
		if !p.Deleted && p.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *productRepo) CountActiveGroupedByCategory(_ context.Context) (map[string]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[string]int64)
	for _, p := range r.s.products {
		if !p.Deleted {
			counts[p.CategoryID]++
		}
	}
	return counts, nil
}

func (r *productRepo) FindActiveByCategory(_ context.Context, categoryID string) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if !p.Deleted && p.CategoryID == categoryID && r.categoryActive(p.CategoryID) {
			p := p
			list = append(list, &p)
		}
	}
	sortProducts(list)
	return list, nil
}

func (r *productRepo) FindActiveByPriceBetween(_ context.Context, min, max decimal.Decimal) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if !p.Deleted && p.Price.GreaterThanOrEqual(min) && p.Price.LessThanOrEqual(max) {
			p := p
			list = append(list, &p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Price.LessThan(list[j].Price) })
	return list, nil
}

func (r *productRepo) FindActiveByStockGreaterThan(_ context.Context, stock int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if !p.Deleted && p.Stock > stock {
			p := p
			list = append(list, &p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Stock > list[j].Stock })
	return list, nil
}

func (r *productRepo) FindByIDWithCategory(_ context.Context, id string) (*entity.ProductWithCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok || p.Deleted || !r.categoryActive(p.CategoryID) {
		return nil, nil
	}
	return r.withCategory(p), nil
}

func (r *productRepo) FindAllActiveWithCategory(_ context.Context) ([]*entity.ProductWithCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.ProductWithCategory
	for _, p := range r.s.products {
		if !p.Deleted && r.categoryActive(p.CategoryID) {
			list = append(list, r.withCategory(p))
		}
	}
	sortProductsWithCategory(list)
	return list, nil
}

func (r *productRepo) FindAllDeletedWithCategory(_ context.Context) ([]*entity.ProductWithCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.ProductWithCategory
	for _, p := range r.s.products {
		if p.Deleted {
			list = append(list, r.withCategory(p))
		}
	}
	sortProductsWithCategory(list)
	return list, nil
}

// Helpers; requieren el lock del llamador.

func (r *productRepo) activeNameTaken(name, excludeID string) bool {
	for _, p := range r.s.products {
		if p.ID != excludeID && !p.Deleted && strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

func (r *productRepo) categoryActive(categoryID string) bool {
	c, ok := r.s.categories[categoryID]
	return ok && !c.Deleted
}

func (r *productRepo) withCategory(p entity.Product) *entity.ProductWithCategory {
	out := &entity.ProductWithCategory{Product: p}
	if c, ok := r.s.categories[p.CategoryID]; ok {
		out.CategoryName = c.Name
	}
	return out
}

func sortProducts(list []*entity.Product) {
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}

func sortProductsWithCategory(list []*entity.ProductWithCategory) {
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}
