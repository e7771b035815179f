package query

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Etiquetas de estado calculadas en lectura.
const (
	StatusActive  = "ACTIVE"
	StatusDeleted = "DELETED"
)

// Buckets de stock calculados en lectura.
const (
	StockNone   = "NO_STOCK"
	StockLow    = "LOW"
	StockMedium = "MEDIUM"
	StockHigh   = "HIGH"
)

// stockStatus mapea la cantidad en stock a su bucket: 0 -> NO_STOCK,
// <=7 -> LOW, <=30 -> MEDIUM, resto HIGH.
func stockStatus(stock int) string {
	switch {
	case stock == 0:
		return StockNone
	case stock <= 7:
		return StockLow
	case stock <= 30:
		return StockMedium
	default:
		return StockHigh
	}
}

// formatPrice devuelve el precio como "$<valor>" con dos decimales.
func formatPrice(price decimal.Decimal) string {
	return "$" + price.StringFixed(2)
}

func statusLabel(deleted bool) string {
	if deleted {
		return StatusDeleted
	}
	return StatusActive
}

// Transformaciones entidad -> DTO de lectura.

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Deleted:     c.Deleted,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoryProjection(c *entity.Category, activeProducts int64) dto.CategoryProjection {
	return dto.CategoryProjection{
		CategoryResponse: toCategoryResponse(c),
		ActiveProducts:   activeProducts,
		Status:           statusLabel(c.Deleted),
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		Deleted:     p.Deleted,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductWithCategoryResponse(p *entity.ProductWithCategory) dto.ProductResponse {
	out := toProductResponse(&p.Product)
	out.CategoryName = p.CategoryName
	return out
}

func toProductProjection(p *entity.ProductWithCategory) dto.ProductProjection {
	return dto.ProductProjection{
		ProductResponse: toProductWithCategoryResponse(p),
		StockStatus:     stockStatus(p.Stock),
		FormattedPrice:  formatPrice(p.Price),
	}
}
