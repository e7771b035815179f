package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/command"
	"github.com/jhoicas/catalogo-api/internal/application/query"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryCommands *command.CategoryCommandUseCase
	ProductCommands  *command.ProductCommandUseCase
	CategoryQueries  *query.CategoryQueryService
	ProductQueries   *query.ProductQueryService
}

// Router registra las rutas de la API con la separación comando/consulta.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categorías: comandos
	catCmd := NewCategoryCommandHandler(deps.CategoryCommands)
	catCommands := api.Group("/categories/commands")
	catCommands.Post("/", catCmd.Create)
	catCommands.Put("/restore/:id", catCmd.Restore)
	catCommands.Put("/:id", catCmd.Update)
	catCommands.Delete("/:id", catCmd.Delete)

	// Categorías: consultas
	catQry := NewCategoryQueryHandler(deps.CategoryQueries)
	catQueries := api.Group("/categories/queries")
	catQueries.Get("/", catQry.List)
	catQueries.Get("/deleted", catQry.ListDeleted)
	catQueries.Get("/search", catQry.Search)
	catQueries.Get("/with-counts", catQry.ListWithCounts)
	catQueries.Get("/:id", catQry.GetByID)

	// Productos: comandos
	prodCmd := NewProductCommandHandler(deps.ProductCommands)
	prodCommands := api.Group("/products/commands")
	prodCommands.Post("/", prodCmd.Create)
	prodCommands.Put("/restore/:id", prodCmd.Restore)
	prodCommands.Put("/:id", prodCmd.Update)
	prodCommands.Delete("/:id", prodCmd.Delete)

	// Productos: consultas
	prodQry := NewProductQueryHandler(deps.ProductQueries)
	prodQueries := api.Group("/products/queries")
	prodQueries.Get("/", prodQry.List)
	prodQueries.Get("/deleted", prodQry.ListDeleted)
	prodQueries.Get("/search", prodQry.Search)
	prodQueries.Get("/by-category/:categoryId", prodQry.ListByCategory)
	prodQueries.Get("/price-range", prodQry.ListByPriceRange)
	prodQueries.Get("/in-stock", prodQry.ListInStock)
	prodQueries.Get("/with-stock-status", prodQry.ListWithStockStatus)
	prodQueries.Get("/:id", prodQry.GetByID)
}
