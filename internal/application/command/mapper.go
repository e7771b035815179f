package command

import (
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Transformaciones explícitas comando -> entidad. El ID lo asigna la
// persistencia en Insert; deleted solo cambia vía SetDeleted.

func newCategoryFromCommand(in dto.CategoryCommand) *entity.Category {
	now := time.Now()
	return &entity.Category{
		Name:        in.Name,
		Description: in.Description,
		Deleted:     false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func applyCategoryCommand(c *entity.Category, in dto.CategoryCommand) {
	c.Name = in.Name
	c.Description = in.Description
	c.UpdatedAt = time.Now()
}

func newProductFromCommand(in dto.ProductCommand) *entity.Product {
	now := time.Now()
	return &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		Deleted:     false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func applyProductCommand(p *entity.Product, in dto.ProductCommand) {
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	p.CategoryID = in.CategoryID
	p.UpdatedAt = time.Now()
}
