package command

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryCommandUseCase gestiona el ciclo de vida de Category: creación,
// actualización, borrado lógico y restauración. Cada operación corre en una
// transacción y aplica las verificaciones en orden fijo
// (existencia -> estado referencial -> unicidad) para que el error
// reportado sea determinista.
type CategoryCommandUseCase struct {
	tx TxRunner
}

// NewCategoryCommandUseCase construye el caso de uso.
func NewCategoryCommandUseCase(tx TxRunner) *CategoryCommandUseCase {
	return &CategoryCommandUseCase{tx: tx}
}

// Create crea una categoría activa y devuelve su ID.
// Falla con ErrDuplicateName si ya hay una activa con ese nombre (CI).
func (uc *CategoryCommandUseCase) Create(ctx context.Context, in dto.CategoryCommand) (string, error) {
	var id string
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, _ repository.ProductRepository) error {
		taken, err := categories.ExistsActiveByName(ctx, in.Name, "")
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDuplicateName
		}
		// El índice único parcial respalda este pre-chequeo: si dos creates
		// concurrentes lo pasan a la vez, Insert devuelve ErrDuplicateName.
		id, err = categories.Insert(ctx, newCategoryFromCommand(in))
		return err
	})
	return id, err
}

// Update sobreescribe nombre y descripción de una categoría activa.
// Falla con ErrNotFound si no hay categoría activa con ese ID y con
// ErrDuplicateName si otra activa ya usa el nombre destino.
func (uc *CategoryCommandUseCase) Update(ctx context.Context, id string, in dto.CategoryCommand) error {
	return uc.tx.Run(ctx, func(categories repository.CategoryRepository, _ repository.ProductRepository) error {
		category, err := categories.FindByID(ctx, id, repository.ScopeActive)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		taken, err := categories.ExistsActiveByName(ctx, in.Name, id)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDuplicateName
		}
		applyCategoryCommand(category, in)
		return categories.Save(ctx, category)
	})
}

// Delete marca la categoría como eliminada. Falla con ErrNotFound si no
// existe ninguna fila, ErrAlreadyDeleted si ya está eliminada y
// ErrHasActiveProducts si aún la referencian productos activos.
func (uc *CategoryCommandUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		category, err := categories.FindByID(ctx, id, repository.ScopeAll)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		if category.Deleted {
			return domain.ErrAlreadyDeleted
		}
		active, err := products.CountActiveByCategory(ctx, id)
		if err != nil {
			return err
		}
		if active > 0 {
			return domain.ErrHasActiveProducts
		}
		return categories.SetDeleted(ctx, id, true)
	})
}

// Restore revierte el borrado lógico. Falla con ErrNotFound si no existe
// ninguna fila, ErrNotDeleted si no está eliminada y ErrDuplicateName si
// otra categoría activa tomó el nombre mientras tanto.
func (uc *CategoryCommandUseCase) Restore(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(categories repository.CategoryRepository, _ repository.ProductRepository) error {
		category, err := categories.FindByID(ctx, id, repository.ScopeAll)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}
		if !category.Deleted {
			return domain.ErrNotDeleted
		}
		taken, err := categories.ExistsActiveByName(ctx, category.Name, id)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDuplicateName
		}
		return categories.SetDeleted(ctx, id, false)
	})
}
