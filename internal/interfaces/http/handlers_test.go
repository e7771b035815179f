package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/command"
	"github.com/jhoicas/catalogo-api/internal/application/query"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/catalogo-api/internal/interfaces/http"
)

// buildTestApp arma la aplicación completa sobre el gateway en memoria.
func buildTestApp() *fiber.App {
	store := memory.NewStore()
	app := fiber.New()
	app.Use(recover.New())
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryCommands: command.NewCategoryCommandUseCase(store.TxRunner()),
		ProductCommands:  command.NewProductCommandUseCase(store.TxRunner()),
		CategoryQueries:  query.NewCategoryQueryService(store.Categories(), store.Products()),
		ProductQueries:   query.NewProductQueryService(store.Products()),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createCategory(t *testing.T, app *fiber.App, name string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/categories/commands/", map[string]any{"name": name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := decodeBody(t, resp)["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func createProduct(t *testing.T, app *fiber.App, name, categoryID string, price float64, stock int) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/products/commands/", map[string]any{
		"name":        name,
		"price":       price,
		"stock":       stock,
		"category_id": categoryID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := decodeBody(t, resp)["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestCategoryCommands_HTTP(t *testing.T) {
	app := buildTestApp()

	createCategory(t, app, "Beverages")

	t.Run("duplicado responde 409", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/categories/commands/", map[string]any{"name": "beverages"})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "DUPLICATE_NAME", decodeBody(t, resp)["code"])
	})

	t.Run("nombre vacío responde 400", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/categories/commands/", map[string]any{"name": ""})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION", decodeBody(t, resp)["code"])
	})

	t.Run("update de id inexistente responde 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/categories/commands/no-such-id", map[string]any{"name": "Dairy"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeBody(t, resp)["code"])
	})
}

func TestCategoryDeleteRestore_HTTP(t *testing.T) {
	app := buildTestApp()

	catID := createCategory(t, app, "Snacks")
	prodID := createProduct(t, app, "Chips", catID, 2.5, 10)

	t.Run("con productos activos responde 409", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/api/categories/commands/"+catID, nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "HAS_ACTIVE_PRODUCTS", decodeBody(t, resp)["code"])
	})

	t.Run("sin productos activos elimina y restaura", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, "/api/products/commands/"+prodID, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = doJSON(t, app, http.MethodDelete, "/api/categories/commands/"+catID, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		// Segundo delete es conflicto, no idempotente silencioso.
		resp = doJSON(t, app, http.MethodDelete, "/api/categories/commands/"+catID, nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "ALREADY_DELETED", decodeBody(t, resp)["code"])

		resp = doJSON(t, app, http.MethodPut, "/api/categories/commands/restore/"+catID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, app, http.MethodPut, "/api/products/commands/restore/"+prodID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = doJSON(t, app, http.MethodPut, "/api/products/commands/restore/"+prodID, nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "NOT_DELETED", decodeBody(t, resp)["code"])
	})
}

func TestProductCommands_HTTP(t *testing.T) {
	app := buildTestApp()
	catID := createCategory(t, app, "Snacks")

	t.Run("precio cero se rechaza antes de llegar al core", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/products/commands/", map[string]any{
			"name":        "Soda",
			"price":       0,
			"stock":       5,
			"category_id": catID,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION", decodeBody(t, resp)["code"])
	})

	t.Run("stock negativo se rechaza", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/products/commands/", map[string]any{
			"name":        "Soda",
			"price":       1.2,
			"stock":       -1,
			"category_id": catID,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("categoría inexistente responde 422", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/products/commands/", map[string]any{
			"name":        "Soda",
			"price":       1.2,
			"stock":       5,
			"category_id": "11111111-2222-4333-8444-555555555555",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "CATEGORY_NOT_FOUND", decodeBody(t, resp)["code"])
	})

	t.Run("restaurar con categoría eliminada responde 422", func(t *testing.T) {
		prodID := createProduct(t, app, "Chips", catID, 2.5, 10)
		resp := doJSON(t, app, http.MethodDelete, "/api/products/commands/"+prodID, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp = doJSON(t, app, http.MethodDelete, "/api/categories/commands/"+catID, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = doJSON(t, app, http.MethodPut, "/api/products/commands/restore/"+prodID, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "CATEGORY_INACTIVE", decodeBody(t, resp)["code"])
	})
}

func TestProductQueries_HTTP(t *testing.T) {
	app := buildTestApp()
	catID := createCategory(t, app, "Snacks")
	prodID := createProduct(t, app, "Chips", catID, 2.5, 10)

	t.Run("lookup encontrado", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/products/queries/"+prodID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "Chips", body["name"])
		assert.Equal(t, "Snacks", body["category_name"])
	})

	t.Run("lookup ausente responde 404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/products/queries/no-such-id", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("proyección decorada", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/products/queries/with-stock-status", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		defer resp.Body.Close()
		var list []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, "MEDIUM", list[0]["stock_status"])
		assert.Equal(t, "$2.50", list[0]["formatted_price"])
	})

	t.Run("rango de precio inválido responde 400", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/products/queries/price-range?min=abc&max=2", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("listado por categoría", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/products/queries/by-category/%s", catID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		defer resp.Body.Close()
		var list []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, "Chips", list[0]["name"])
	})
}

func TestCategoryQueries_HTTP(t *testing.T) {
	app := buildTestApp()
	catID := createCategory(t, app, "Snacks")
	createProduct(t, app, "Chips", catID, 2.5, 10)

	t.Run("proyección con conteos", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/categories/queries/with-counts", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		defer resp.Body.Close()
		var list []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, "Snacks", list[0]["name"])
		assert.Equal(t, float64(1), list[0]["active_products"])
		assert.Equal(t, "ACTIVE", list[0]["status"])
	})

	t.Run("búsqueda", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/categories/queries/search?name=sna", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		defer resp.Body.Close()
		var list []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
	})
}
