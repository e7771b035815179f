package dto

import "time"

// CategoryCommand entrada para crear o actualizar una categoría.
// La forma de los campos se valida en la capa HTTP; los casos de uso
// asumen entradas bien formadas.
type CategoryCommand struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// CategoryResponse salida base de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Deleted     bool      `json:"deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryProjection proyección decorada: conteo de productos activos y
// etiqueta de estado, calculados en lectura y nunca persistidos.
type CategoryProjection struct {
	CategoryResponse
	ActiveProducts int64  `json:"active_products"`
	Status         string `json:"status"`
}
