package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Insert persiste un producto nuevo y devuelve el ID asignado.
	// Devuelve domain.ErrDuplicateName ante violación del índice único.
	Insert(ctx context.Context, product *entity.Product) (string, error)
	FindByID(ctx context.Context, id string, scope Scope) (*entity.Product, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsActiveByName(ctx context.Context, name, excludeID string) (bool, error)
	SearchActiveByName(ctx context.Context, substr string) ([]*entity.Product, error)
	// Save sobreescribe los campos mutables (incluido category_id);
	// ID y deleted no cambian.
	Save(ctx context.Context, product *entity.Product) error
	SetDeleted(ctx context.Context, id string, deleted bool) error

	// CountActiveByCategory cuenta productos activos que referencian la categoría.
	CountActiveByCategory(ctx context.Context, categoryID string) (int64, error)
	// CountActiveGroupedByCategory devuelve categoría -> productos activos,
	// para decorar listados de categorías sin una consulta por fila.
	CountActiveGroupedByCategory(ctx context.Context) (map[string]int64, error)

	// Lecturas de proyección (solo activos, con categoría activa).
	FindActiveByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)
	FindActiveByPriceBetween(ctx context.Context, min, max decimal.Decimal) ([]*entity.Product, error)
	FindActiveByStockGreaterThan(ctx context.Context, stock int) ([]*entity.Product, error)
	FindByIDWithCategory(ctx context.Context, id string) (*entity.ProductWithCategory, error)
	FindAllActiveWithCategory(ctx context.Context) ([]*entity.ProductWithCategory, error)
	FindAllDeletedWithCategory(ctx context.Context) ([]*entity.ProductWithCategory, error)
}
