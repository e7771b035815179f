package command

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta un comando dentro de una transacción: fn recibe los
// repositorios atados a la tx y el runner hace Commit si fn devuelve nil
// o Rollback en caso contrario (incluidos los retornos tempranos por
// violación de reglas de negocio).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categories repository.CategoryRepository,
		products repository.ProductRepository,
	) error) error
}
