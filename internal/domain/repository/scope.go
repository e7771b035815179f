package repository

// Scope parametriza las búsquedas por id según el estado de borrado lógico,
// en lugar de duplicar métodos "solo activos" / "incluyendo eliminados".
type Scope int

const (
	// ScopeActive solo filas con deleted = false.
	ScopeActive Scope = iota
	// ScopeDeleted solo filas con deleted = true.
	ScopeDeleted
	// ScopeAll todas las filas sin importar deleted.
	ScopeAll
)

// Matches indica si una fila con el flag deleted dado cae dentro del scope.
func (s Scope) Matches(deleted bool) bool {
	switch s {
	case ScopeActive:
		return !deleted
	case ScopeDeleted:
		return deleted
	default:
		return true
	}
}
