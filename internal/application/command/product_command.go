package command

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductCommandUseCase gestiona el ciclo de vida de Product. Además de la
// unicidad de nombre verifica la referencia a su categoría: crear, actualizar
// y restaurar exigen que la categoría apuntada exista y esté activa.
// Mismo orden fijo de chequeos que las categorías.
type ProductCommandUseCase struct {
	tx TxRunner
}

// NewProductCommandUseCase construye el caso de uso.
func NewProductCommandUseCase(tx TxRunner) *ProductCommandUseCase {
	return &ProductCommandUseCase{tx: tx}
}

// Create crea un producto activo referenciando una categoría activa.
// Falla con ErrCategoryNotFound si la categoría no existe o está eliminada
// y con ErrDuplicateName si un producto activo ya usa el nombre.
func (uc *ProductCommandUseCase) Create(ctx context.Context, in dto.ProductCommand) (string, error) {
	var id string
	err := uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		category, err := categories.FindByID(ctx, in.CategoryID, repository.ScopeActive)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrCategoryNotFound
		}
		taken, err := products.ExistsActiveByName(ctx, in.Name, "")
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDuplicateName
		}
		id, err = products.Insert(ctx, newProductFromCommand(in))
		return err
	})
	return id, err
}

// Update sobreescribe todos los campos mutables, incluida la reasignación a
// otra categoría activa. Falla con ErrNotFound si no hay producto activo con
// ese ID, ErrCategoryNotFound si la categoría destino no está activa y
// ErrDuplicateName si otro producto activo usa el nombre destino.
func (uc *ProductCommandUseCase) Update(ctx context.Context, id string, in dto.ProductCommand) error {
	return uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		product, err := products.FindByID(ctx, id, repository.ScopeActive)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		category, err := categories.FindByID(ctx, in.CategoryID, repository.ScopeActive)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrCategoryNotFound
		}
		taken, err := products.ExistsActiveByName(ctx, in.Name, id)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDuplicateName
		}
		applyProductCommand(product, in)
		return products.Save(ctx, product)
	})
}

// Delete marca el producto como eliminado. Los productos no tienen
// dependientes, así que no hay chequeo de hijos.
func (uc *ProductCommandUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(_ repository.CategoryRepository, products repository.ProductRepository) error {
		product, err := products.FindByID(ctx, id, repository.ScopeAll)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Deleted {
			return domain.ErrAlreadyDeleted
		}
		return products.SetDeleted(ctx, id, true)
	})
}

// Restore revierte el borrado lógico re-validando las invariantes en el
// momento de restaurar: la categoría almacenada debe seguir activa
// (ErrCategoryInactive) y el nombre debe seguir libre (ErrDuplicateName).
func (uc *ProductCommandUseCase) Restore(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(categories repository.CategoryRepository, products repository.ProductRepository) error {
		product, err := products.FindByID(ctx, id, repository.ScopeAll)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if !product.Deleted {
			return domain.ErrNotDeleted
		}
		category, err := categories.FindByID(ctx, product.CategoryID, repository.ScopeActive)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrCategoryInactive
		}
		taken, err := products.ExistsActiveByName(ctx, product.Name, id)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDuplicateName
		}
		return products.SetDeleted(ctx, id, false)
	})
}
