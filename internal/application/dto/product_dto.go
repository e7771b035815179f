package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCommand entrada para crear o actualizar un producto.
// Price y Stock se validan en la capa HTTP (price > 0, stock >= 0);
// los casos de uso no re-validan forma.
type ProductCommand struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price" validate:"required,gt=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CategoryID  string          `json:"category_id" validate:"required,uuid4"`
}

// ProductResponse salida base de un producto, con el nombre de su categoría.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	Deleted      bool            `json:"deleted"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductProjection proyección decorada: bucket de stock y precio formateado,
// calculados en lectura y nunca persistidos.
type ProductProjection struct {
	ProductResponse
	StockStatus    string `json:"stock_status"`
	FormattedPrice string `json:"formatted_price"`
}
