package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = "id, name, description, price, stock, category_id, deleted, created_at, updated_at"

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Insert persiste un producto nuevo con ID asignado aquí.
func (r *ProductRepo) Insert(ctx context.Context, product *entity.Product) (string, error) {
	product.ID = uuid.New().String()
	query := `
		INSERT INTO products (id, name, description, price, stock, category_id, deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.Deleted, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", domain.ErrDuplicateName
		}
		return "", fmt.Errorf("insert product: %w", err)
	}
	return product.ID, nil
}

// FindByID busca por ID dentro del scope; nil si no hay fila.
func (r *ProductRepo) FindByID(ctx context.Context, id string, scope repository.Scope) (*entity.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1 AND %s`, productColumns, scopeWhere(scope))
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
		&p.Deleted, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ExistsByID indica si existe la fila, eliminada o no.
func (r *ProductRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists product: %w", err)
	}
	return exists, nil
}

// ExistsActiveByName indica si hay un activo con ese nombre (CI),
// opcionalmente excluyendo un ID.
func (r *ProductRepo) ExistsActiveByName(ctx context.Context, name, excludeID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM products
			WHERE deleted = false AND lower(name) = lower($1) AND id <> $2
		)`, name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists product by name: %w", err)
	}
	return exists, nil
}

// SearchActiveByName lista activos cuyo nombre contiene substr (CI).
func (r *ProductRepo) SearchActiveByName(ctx context.Context, substr string) ([]*entity.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE deleted = false AND name ILIKE '%%' || $1 || '%%'
		ORDER BY name`, productColumns)
	rows, err := r.q.Query(ctx, query, substr)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Save sobreescribe los campos mutables, incluida la reasignación de categoría.
func (r *ProductRepo) Save(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, stock = $5, category_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// SetDeleted cambia el flag de borrado lógico.
func (r *ProductRepo) SetDeleted(ctx context.Context, id string, deleted bool) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET deleted = $2, updated_at = now() WHERE id = $1`,
		id, deleted,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("set product deleted: %w", err)
	}
	return nil
}

// CountActiveByCategory cuenta productos activos que referencian la categoría.
func (r *ProductRepo) CountActiveByCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE deleted = false AND category_id = $1`,
		categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return count, nil
}

// CountActiveGroupedByCategory devuelve categoría -> productos activos.
func (r *ProductRepo) CountActiveGroupedByCategory(ctx context.Context) (map[string]int64, error) {
	rows, err := r.q.Query(ctx,
		`SELECT category_id, COUNT(*) FROM products WHERE deleted = false GROUP BY category_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("count products grouped: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int64)
	for rows.Next() {
		var categoryID string
		var count int64
		if err := rows.Scan(&categoryID, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[categoryID] = count
	}
	return counts, rows.Err()
}

// FindActiveByCategory lista activos de una categoría activa.
func (r *ProductRepo) FindActiveByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, p.deleted, p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.deleted = false AND c.deleted = false AND p.category_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// FindActiveByPriceBetween lista activos con precio en [min, max].
func (r *ProductRepo) FindActiveByPriceBetween(ctx context.Context, min, max decimal.Decimal) ([]*entity.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE deleted = false AND price BETWEEN $1 AND $2
		ORDER BY price`, productColumns)
	rows, err := r.q.Query(ctx, query, min, max)
	if err != nil {
		return nil, fmt.Errorf("list products by price: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// FindActiveByStockGreaterThan lista activos con stock mayor al mínimo.
func (r *ProductRepo) FindActiveByStockGreaterThan(ctx context.Context, stock int) ([]*entity.Product, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM products
		WHERE deleted = false AND stock > $1
		ORDER BY stock DESC`, productColumns)
	rows, err := r.q.Query(ctx, query, stock)
	if err != nil {
		return nil, fmt.Errorf("list products by stock: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// FindByIDWithCategory busca un producto activo (con categoría activa) junto
// con el nombre de su categoría; nil si no hay fila.
func (r *ProductRepo) FindByIDWithCategory(ctx context.Context, id string) (*entity.ProductWithCategory, error) {
	query := withCategoryQuery + ` AND p.id = $1`
	var p entity.ProductWithCategory
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
		&p.Deleted, &p.CreatedAt, &p.UpdatedAt, &p.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product with category: %w", err)
	}
	return &p, nil
}

// FindAllActiveWithCategory lista activos (con categoría activa) y nombre de categoría.
func (r *ProductRepo) FindAllActiveWithCategory(ctx context.Context) ([]*entity.ProductWithCategory, error) {
	rows, err := r.q.Query(ctx, withCategoryQuery+` ORDER BY p.name`)
	if err != nil {
		return nil, fmt.Errorf("list products with category: %w", err)
	}
	defer rows.Close()
	return scanProductsWithCategory(rows)
}

// FindAllDeletedWithCategory lista eliminados con el nombre de su categoría
// (activa o no: la referencia almacenada se conserva durante el borrado).
func (r *ProductRepo) FindAllDeletedWithCategory(ctx context.Context) ([]*entity.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, p.deleted, p.created_at, p.updated_at, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.deleted = true
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list deleted products: %w", err)
	}
	defer rows.Close()
	return scanProductsWithCategory(rows)
}

const withCategoryQuery = `
	SELECT p.id, p.name, p.description, p.price, p.stock, p.category_id, p.deleted, p.created_at, p.updated_at, c.name
	FROM products p
	JOIN categories c ON c.id = p.category_id
	WHERE p.deleted = false AND c.deleted = false`

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
			&p.Deleted, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func scanProductsWithCategory(rows pgx.Rows) ([]*entity.ProductWithCategory, error) {
	var list []*entity.ProductWithCategory
	for rows.Next() {
		var p entity.ProductWithCategory
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CategoryID,
			&p.Deleted, &p.CreatedAt, &p.UpdatedAt, &p.CategoryName); err != nil {
			return nil, fmt.Errorf("scan product with category: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
