package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = "id, name, description, deleted, created_at, updated_at"

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL
// (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Insert persiste una categoría nueva con ID asignado aquí. El índice único
// parcial sobre lower(name) convierte la carrera entre creates en 23505.
func (r *CategoryRepo) Insert(ctx context.Context, category *entity.Category) (string, error) {
	category.ID = uuid.New().String()
	query := `
		INSERT INTO categories (id, name, description, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		category.ID, category.Name, category.Description, category.Deleted,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", domain.ErrDuplicateName
		}
		return "", fmt.Errorf("insert category: %w", err)
	}
	return category.ID, nil
}

// FindByID busca por ID dentro del scope; nil si no hay fila.
func (r *CategoryRepo) FindByID(ctx context.Context, id string, scope repository.Scope) (*entity.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories WHERE id = $1 AND %s`, categoryColumns, scopeWhere(scope))
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.Deleted, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ExistsByID indica si existe la fila, eliminada o no.
func (r *CategoryRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists category: %w", err)
	}
	return exists, nil
}

// ExistsActiveByName indica si hay una activa con ese nombre (CI),
// opcionalmente excluyendo un ID (para updates y restores).
func (r *CategoryRepo) ExistsActiveByName(ctx context.Context, name, excludeID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM categories
			WHERE deleted = false AND lower(name) = lower($1) AND id <> $2
		)`, name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists category by name: %w", err)
	}
	return exists, nil
}

// FindAll lista según scope, ordenado por nombre.
func (r *CategoryRepo) FindAll(ctx context.Context, scope repository.Scope) ([]*entity.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories WHERE %s ORDER BY name`, categoryColumns, scopeWhere(scope))
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

// SearchActiveByName lista activas cuyo nombre contiene substr (CI).
func (r *CategoryRepo) SearchActiveByName(ctx context.Context, substr string) ([]*entity.Category, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM categories
		WHERE deleted = false AND name ILIKE '%%' || $1 || '%%'
		ORDER BY name`, categoryColumns)
	rows, err := r.q.Query(ctx, query, substr)
	if err != nil {
		return nil, fmt.Errorf("search categories: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

// Save sobreescribe name/description/updated_at; deleted se toca solo vía SetDeleted.
func (r *CategoryRepo) Save(ctx context.Context, category *entity.Category) error {
	query := `UPDATE categories SET name = $2, description = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, category.ID, category.Name, category.Description, category.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// SetDeleted cambia el flag de borrado lógico.
func (r *CategoryRepo) SetDeleted(ctx context.Context, id string, deleted bool) error {
	_, err := r.q.Exec(ctx,
		`UPDATE categories SET deleted = $2, updated_at = now() WHERE id = $1`,
		id, deleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("set category deleted: %w", err)
	}
	return nil
}

func scanCategories(rows pgx.Rows) ([]*entity.Category, error) {
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Deleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
