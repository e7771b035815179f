package entity

import "time"

// Category representa una categoría del catálogo con borrado lógico.
// Name es único (case-insensitive) entre las categorías activas.
type Category struct {
	ID          string
	Name        string
	Description string
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
