package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con borrado lógico.
// Name es único (case-insensitive) entre los productos activos.
// CategoryID referencia una Category activa mientras el producto esté activo;
// no es una relación de pertenencia (la categoría no arrastra a sus productos).
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CategoryID  string
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductWithCategory es el modelo de lectura de un producto junto con el
// nombre de su categoría (join en la consulta, nunca persistido).
type ProductWithCategory struct {
	Product
	CategoryName string
}
