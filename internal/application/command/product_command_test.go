package command_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/command"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

func productCommand(name, categoryID string) dto.ProductCommand {
	return dto.ProductCommand{
		Name:       name,
		Price:      decimal.NewFromFloat(2.5),
		Stock:      10,
		CategoryID: categoryID,
	}
}

func mustCreateProduct(t *testing.T, uc *command.ProductCommandUseCase, in dto.ProductCommand) string {
	t.Helper()
	id, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func TestProductCreate(t *testing.T) {
	catUC, prodUC, _ := newCategoryUC(t)
	ctx := context.Background()

	catID := mustCreateCategory(t, catUC, "Snacks")

	t.Run("categoría inexistente", func(t *testing.T) {
		_, err := prodUC.Create(ctx, productCommand("Chips", "no-such-category"))
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})

	t.Run("categoría eliminada", func(t *testing.T) {
		deletedID := mustCreateCategory(t, catUC, "Dairy")
		require.NoError(t, catUC.Delete(ctx, deletedID))
		_, err := prodUC.Create(ctx, productCommand("Milk", deletedID))
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})

	t.Run("nombre duplicado case-insensitive", func(t *testing.T) {
		mustCreateProduct(t, prodUC, productCommand("Chips", catID))
		_, err := prodUC.Create(ctx, productCommand("CHIPS", catID))
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	})
}

func TestProductUpdate(t *testing.T) {
	catUC, prodUC, store := newCategoryUC(t)
	ctx := context.Background()

	catID := mustCreateCategory(t, catUC, "Snacks")
	otherCatID := mustCreateCategory(t, catUC, "Beverages")
	id := mustCreateProduct(t, prodUC, productCommand("Chips", catID))
	mustCreateProduct(t, prodUC, productCommand("Soda", catID))

	t.Run("sobreescribe todos los campos mutables", func(t *testing.T) {
		in := dto.ProductCommand{
			Name:        "Tortilla Chips",
			Description: "maíz",
			Price:       decimal.NewFromFloat(3.75),
			Stock:       4,
			CategoryID:  otherCatID, // reasignación a otra categoría activa
		}
		require.NoError(t, prodUC.Update(ctx, id, in))

		p, err := store.Products().FindByID(ctx, id, repository.ScopeActive)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Tortilla Chips", p.Name)
		assert.Equal(t, "maíz", p.Description)
		assert.True(t, p.Price.Equal(decimal.NewFromFloat(3.75)))
		assert.Equal(t, 4, p.Stock)
		assert.Equal(t, otherCatID, p.CategoryID)
	})

	t.Run("id inexistente es NotFound", func(t *testing.T) {
		err := prodUC.Update(ctx, "no-such-id", productCommand("X", catID))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("categoría destino inactiva", func(t *testing.T) {
		deletedID := mustCreateCategory(t, catUC, "Dairy")
		require.NoError(t, catUC.Delete(ctx, deletedID))
		err := prodUC.Update(ctx, id, productCommand("Tortilla Chips", deletedID))
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})

	t.Run("nombre de otro activo es duplicado", func(t *testing.T) {
		err := prodUC.Update(ctx, id, productCommand("soda", otherCatID))
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
	})

	t.Run("existencia se chequea antes que el nombre", func(t *testing.T) {
		// ID inexistente y nombre en conflicto a la vez: gana NotFound.
		err := prodUC.Update(ctx, "no-such-id", productCommand("soda", catID))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestProductDelete_Idempotencia(t *testing.T) {
	catUC, prodUC, store := newCategoryUC(t)
	ctx := context.Background()

	catID := mustCreateCategory(t, catUC, "Snacks")
	id := mustCreateProduct(t, prodUC, productCommand("Chips", catID))

	require.NoError(t, prodUC.Delete(ctx, id))
	assert.ErrorIs(t, prodUC.Delete(ctx, id), domain.ErrAlreadyDeleted)
	assert.ErrorIs(t, prodUC.Delete(ctx, "no-such-id"), domain.ErrNotFound)

	// El borrado es lógico: la fila sigue existiendo.
	exists, err := store.Products().ExistsByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProductRestore(t *testing.T) {
	catUC, prodUC, store := newCategoryUC(t)
	ctx := context.Background()

	catID := mustCreateCategory(t, catUC, "Snacks")
	id := mustCreateProduct(t, prodUC, productCommand("Chips", catID))

	t.Run("restaurar un activo es NotDeleted", func(t *testing.T) {
		assert.ErrorIs(t, prodUC.Restore(ctx, id), domain.ErrNotDeleted)
	})

	t.Run("categoría eliminada bloquea la restauración", func(t *testing.T) {
		require.NoError(t, prodUC.Delete(ctx, id))
		require.NoError(t, catUC.Delete(ctx, catID))

		assert.ErrorIs(t, prodUC.Restore(ctx, id), domain.ErrCategoryInactive)

		// Restaurada la categoría, el producto vuelve; repetir es NotDeleted.
		require.NoError(t, catUC.Restore(ctx, catID))
		require.NoError(t, prodUC.Restore(ctx, id))
		assert.ErrorIs(t, prodUC.Restore(ctx, id), domain.ErrNotDeleted)
	})

	t.Run("delete y restore conserva los campos", func(t *testing.T) {
		before, err := store.Products().FindByID(ctx, id, repository.ScopeActive)
		require.NoError(t, err)

		require.NoError(t, prodUC.Delete(ctx, id))
		require.NoError(t, prodUC.Restore(ctx, id))

		after, err := store.Products().FindByID(ctx, id, repository.ScopeActive)
		require.NoError(t, err)
		require.NotNil(t, after)
		assert.Equal(t, before.ID, after.ID)
		assert.Equal(t, before.Name, after.Name)
		assert.True(t, before.Price.Equal(after.Price))
		assert.Equal(t, before.Stock, after.Stock)
		assert.Equal(t, before.CategoryID, after.CategoryID)
		assert.False(t, after.Deleted)
	})

	t.Run("nombre tomado mientras estaba eliminado", func(t *testing.T) {
		require.NoError(t, prodUC.Delete(ctx, id))
		mustCreateProduct(t, prodUC, productCommand("chips", catID))
		assert.ErrorIs(t, prodUC.Restore(ctx, id), domain.ErrDuplicateName)
	})
}
