package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/application/command"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Store es una implementación en memoria del gateway de persistencia para
// tests y desarrollo local. Emula el índice único parcial de Postgres:
// Insert y Save fallan con domain.ErrDuplicateName si otra fila activa ya
// usa el nombre (case-insensitive).
type Store struct {
	mu         sync.RWMutex
	categories map[string]entity.Category
	products   map[string]entity.Product
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		categories: make(map[string]entity.Category),
		products:   make(map[string]entity.Product),
	}
}

// Categories devuelve la vista CategoryRepository del almacén.
func (s *Store) Categories() repository.CategoryRepository {
	return &categoryRepo{s: s}
}

// Products devuelve la vista ProductRepository del almacén.
func (s *Store) Products() repository.ProductRepository {
	return &productRepo{s: s}
}

// TxRunner devuelve un runner que ejecuta fn directamente sobre el almacén.
// No emula rollback: los casos de uso escriben como último paso, así que un
// comando fallido no deja escrituras parciales.
func (s *Store) TxRunner() command.TxRunner {
	return txRunner{s: s}
}

type txRunner struct {
	s *Store
}

func (r txRunner) Run(_ context.Context, fn func(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
) error) error {
	return fn(r.s.Categories(), r.s.Products())
}
