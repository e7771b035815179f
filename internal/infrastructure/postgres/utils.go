package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// scopeWhere traduce el Scope del dominio a la condición SQL sobre deleted.
func scopeWhere(scope repository.Scope) string {
	switch scope {
	case repository.ScopeActive:
		return "deleted = false"
	case repository.ScopeDeleted:
		return "deleted = true"
	default:
		return "true"
	}
}
