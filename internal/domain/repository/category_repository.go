package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Una instancia puede estar atada al pool o a una transacción en curso.
type CategoryRepository interface {
	// Insert persiste una categoría nueva y devuelve el ID asignado.
	// Devuelve domain.ErrDuplicateName si el índice único parcial sobre
	// lower(name) rechaza la escritura (carrera entre creates concurrentes).
	Insert(ctx context.Context, category *entity.Category) (string, error)
	// FindByID busca por ID dentro del scope dado; nil si no hay fila.
	FindByID(ctx context.Context, id string, scope Scope) (*entity.Category, error)
	// ExistsByID indica si existe una fila con ese ID, eliminada o no.
	ExistsByID(ctx context.Context, id string) (bool, error)
	// ExistsActiveByName indica si hay una categoría activa con ese nombre
	// (case-insensitive). excludeID vacío no excluye ninguna fila.
	ExistsActiveByName(ctx context.Context, name, excludeID string) (bool, error)
	FindAll(ctx context.Context, scope Scope) ([]*entity.Category, error)
	// SearchActiveByName lista activas cuyo nombre contiene substr (CI).
	SearchActiveByName(ctx context.Context, substr string) ([]*entity.Category, error)
	// Save sobreescribe name/description/updated_at; ID y deleted no cambian.
	Save(ctx context.Context, category *entity.Category) error
	SetDeleted(ctx context.Context, id string, deleted bool) error
}
