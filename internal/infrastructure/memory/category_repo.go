package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*categoryRepo)(nil)

type categoryRepo struct {
	s *Store
}

func (r *categoryRepo) Insert(_ context.Context, category *entity.Category) (string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.activeNameTaken(category.Name, "") {
		return "", domain.ErrDuplicateName
	}
	category.ID = uuid.New().String()
	r.s.categories[category.ID] = *category
	return category.ID, nil
}

func (r *categoryRepo) FindByID(_ context.Context, id string, scope repository.Scope) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok || !scope.Matches(c.Deleted) {
		return nil, nil
	}
	return &c, nil
}

func (r *categoryRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.categories[id]
	return ok, nil
}

func (r *categoryRepo) ExistsActiveByName(_ context.Context, name, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.activeNameTaken(name, excludeID), nil
}

func (r *categoryRepo) FindAll(_ context.Context, scope repository.Scope) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Category
	for _, c := range r.s.categories {
		if scope.Matches(c.Deleted) {
			c := c
			list = append(list, &c)
		}
	}
	sortCategories(list)
	return list, nil
}

func (r *categoryRepo) SearchActiveByName(_ context.Context, substr string) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	needle := strings.ToLower(substr)
	var list []*entity.Category
	for _, c := range r.s.categories {
		if !c.Deleted && strings.Contains(strings.ToLower(c.Name), needle) {
			c := c
			list = append(list, &c)
		}
	}
	sortCategories(list)
	return list, nil
}

func (r *categoryRepo) Save(_ context.Context, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.categories[category.ID]
	if !ok {
		return nil
	}
	if !existing.Deleted && r.activeNameTaken(category.Name, category.ID) {
		return domain.ErrDuplicateName
	}
	existing.Name = category.Name
	existing.Description = category.Description
	existing.UpdatedAt = category.UpdatedAt
	r.s.categories[category.ID] = existing
	return nil
}

func (r *categoryRepo) SetDeleted(_ context.Context, id string, deleted bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil
	}
	if !deleted && r.activeNameTaken(c.Name, id) {
		return domain.ErrDuplicateName
	}
	c.Deleted = deleted
	c.UpdatedAt = time.Now()
	r.s.categories[id] = c
	return nil
}

// activeNameTaken requiere el lock del llamador.
func (r *categoryRepo) activeNameTaken(name, excludeID string) bool {
	for _, c := range r.s.categories {
		if c.ID != excludeID && !c.Deleted && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func sortCategories(list []*entity.Category) {
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}
