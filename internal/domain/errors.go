package domain

import "errors"

// Errores de negocio (sin dependencias externas). Cada comando que falla
// devuelve exactamente uno de estos; ninguno es transitorio ni se reintenta.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrAlreadyDeleted    = errors.New("el recurso ya está eliminado")
	ErrNotDeleted        = errors.New("el recurso no está eliminado")
	ErrDuplicateName     = errors.New("ya existe un recurso activo con ese nombre")
	ErrCategoryNotFound  = errors.New("categoría no encontrada o eliminada")
	ErrCategoryInactive  = errors.New("la categoría asociada está eliminada")
	ErrHasActiveProducts = errors.New("la categoría tiene productos activos asociados")
)
