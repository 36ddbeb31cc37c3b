package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "sinafite_backend/internals/helpers"
	routes "sinafite_backend/internals/route"
	"sinafite_backend/internals/seeds"
	"sinafite_backend/internals/storage"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := storage.NewMemoryStore()
	require.NoError(t, seeds.Run(store))

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	routes.SetupRoutes(app, store)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func doRaw(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decodeList(t *testing.T, raw []byte) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func decodeObject(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// =============================
// Articles
// =============================

func TestArticlesListAndLimit(t *testing.T) {
	app := newTestApp(t)

	code, raw := doJSON(t, app, http.MethodGet, "/api/articles", nil)
	require.Equal(t, http.StatusOK, code)
	all := decodeList(t, raw)
	require.Len(t, all, 3)
	assert.Equal(t, "Assembleia aprova nova proposta de reajuste salarial", all[0]["title"])

	code, raw = doJSON(t, app, http.MethodGet, "/api/articles?limit=2", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decodeList(t, raw), 2)

	code, raw = doJSON(t, app, http.MethodGet, "/api/articles?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "limit must be a positive integer", decodeObject(t, raw)["message"])

	code, _ = doJSON(t, app, http.MethodGet, "/api/articles?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestArticlesByCategory(t *testing.T) {
	app := newTestApp(t)

	code, raw := doJSON(t, app, http.MethodGet, "/api/articles/category/Eventos", nil)
	require.Equal(t, http.StatusOK, code)
	rows := decodeList(t, raw)
	require.Len(t, rows, 1)
	assert.Equal(t, "Eventos", rows[0]["category"])

	// Unknown categories yield an empty array, not a 404.
	code, raw = doJSON(t, app, http.MethodGet, "/api/articles/category/Inexistente", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decodeList(t, raw))
}

func TestArticleCRUD(t *testing.T) {
	app := newTestApp(t)

	code, raw := doJSON(t, app, http.MethodPost, "/api/articles", fiber.Map{
		"title":    "Novo comunicado",
		"content":  "Conteúdo completo do comunicado.",
		"summary":  "Resumo curto.",
		"category": "Notícias",
	})
	require.Equal(t, http.StatusCreated, code)
	created := decodeObject(t, raw)
	assert.EqualValues(t, 4, created["id"])
	assert.NotEmpty(t, created["publishedAt"])

	// Partial update changes only the named field.
	code, raw = doJSON(t, app, http.MethodPut, "/api/articles/4", fiber.Map{"title": "Comunicado atualizado"})
	require.Equal(t, http.StatusOK, code)
	updated := decodeObject(t, raw)
	assert.Equal(t, "Comunicado atualizado", updated["title"])
	assert.Equal(t, "Conteúdo completo do comunicado.", updated["content"])

	// Unknown fields in an update are rejected.
	code, _ = doRaw(t, app, http.MethodPut, "/api/articles/4", `{"titel":"typo"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, raw = doJSON(t, app, http.MethodPut, "/api/articles/99", fiber.Map{"title": "x"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Article not found", decodeObject(t, raw)["message"])

	code, _ = doJSON(t, app, http.MethodDelete, "/api/articles/4", nil)
	assert.Equal(t, http.StatusNoContent, code)

	code, _ = doJSON(t, app, http.MethodGet, "/api/articles/4", nil)
	assert.Equal(t, http.StatusNotFound, code)

	// Deleting again still succeeds.
	code, _ = doJSON(t, app, http.MethodDelete, "/api/articles/4", nil)
	assert.Equal(t, http.StatusNoContent, code)
}

func TestArticleBadIDAndValidation(t *testing.T) {
	app := newTestApp(t)

	code, raw := doJSON(t, app, http.MethodGet, "/api/articles/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid id parameter", decodeObject(t, raw)["message"])

	code, raw = doJSON(t, app, http.MethodPost, "/api/articles", fiber.Map{"title": "só título"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, decodeObject(t, raw)["message"], "is required")
}

// =============================
// Services
// =============================

func TestServiceLifecycle(t *testing.T) {
	app := newTestApp(t)

	code, raw := doJSON(t, app, http.MethodPost, "/api/services", fiber.Map{
		"title":       "Novo serviço",
		"description": "Descrição.",
		"icon":        "star",
	})
	require.Equal(t, http.StatusCreated, code)
	created := decodeObject(t, raw)
	assert.Equal(t, true, created["isActive"])

	// isActive cannot be set at creation time; the field is ignored and
	// new services always start active.
	code, raw = doRaw(t, app, http.MethodPost, "/api/services", `{"title":"t","description":"d","icon":"i","isActive":false}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, true, decodeObject(t, raw)["isActive"])

	id := int(created["id"].(float64))
	code, raw = doJSON(t, app, http.MethodPut, "/api/services/"+strconv.Itoa(id), fiber.Map{"isActive": false})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, decodeObject(t, raw)["isActive"])

	// Deactivated services remain listed.
	code, raw = doJSON(t, app, http.MethodGet, "/api/services", nil)
	require.Equal(t, http.StatusOK, code)
	rows := decodeList(t, raw)
	assert.Len(t, rows, 6)
}

// =============================
// Contact
// =============================

func TestContactSubmissionFlow(t *testing.T) {
	app := newTestApp(t)

	code, raw := doJSON(t, app, http.MethodPost, "/api/contact", fiber.Map{
		"name":    "Maria",
		"email":   "maria@example.com",
		"subject": "Dúvida",
		"message": "Gostaria de mais informações.",
	})
	require.Equal(t, http.StatusCreated, code)
	body := decodeObject(t, raw)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["message"])

	code, raw = doJSON(t, app, http.MethodGet, "/api/contact", nil)
	require.Equal(t, http.StatusOK, code)
	rows := decodeList(t, raw)
	require.Len(t, rows, 1)
	assert.Equal(t, false, rows[0]["isRead"])
	id := int(rows[0]["id"].(float64))

	// Marking read twice is fine.
	for i := 0; i < 2; i++ {
		code, raw = doJSON(t, app, http.MethodPut, "/api/contact/"+strconv.Itoa(id)+"/read", nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, true, decodeObject(t, raw)["success"])
	}

	code, _ = doJSON(t, app, http.MethodPut, "/api/contact/99/read", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, raw = doJSON(t, app, http.MethodGet, "/api/contact", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, decodeList(t, raw)[0]["isRead"])

	code, _ = doJSON(t, app, http.MethodDelete, "/api/contact/"+strconv.Itoa(id), nil)
	assert.Equal(t, http.StatusNoContent, code)
}

func TestContactRejectsInvalidEmail(t *testing.T) {
	app := newTestApp(t)

	code, raw := doJSON(t, app, http.MethodPost, "/api/contact", fiber.Map{
		"name":    "Maria",
		"email":   "not-an-email",
		"subject": "Dúvida",
		"message": "Olá.",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, decodeObject(t, raw)["message"], "valid email")
}

// =============================
// Subscribers
// =============================

func TestSubscribeIsIdempotent(t *testing.T) {
	app := newTestApp(t)

	payload := fiber.Map{"name": "Ana", "email": "ana@example.com"}
	for i := 0; i < 2; i++ {
		code, raw := doJSON(t, app, http.MethodPost, "/api/subscribers", payload)
		require.Equal(t, http.StatusCreated, code)
		assert.Equal(t, true, decodeObject(t, raw)["success"])
	}

	code, raw := doJSON(t, app, http.MethodGet, "/api/subscribers", nil)
	require.Equal(t, http.StatusOK, code)
	rows := decodeList(t, raw)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0]["name"])
	assert.Equal(t, true, rows[0]["isActive"])
}

// =============================
// Pages
// =============================

func TestPageEndpoints(t *testing.T) {
	app := newTestApp(t)

	code, raw := doJSON(t, app, http.MethodGet, "/api/pages/about", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "about", decodeObject(t, raw)["slug"])

	code, raw = doJSON(t, app, http.MethodGet, "/api/pages/missing", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Page not found", decodeObject(t, raw)["message"])

	code, _ = doJSON(t, app, http.MethodPost, "/api/pages", fiber.Map{
		"slug": "contact", "title": "Contato", "content": "Fale conosco.",
	})
	require.Equal(t, http.StatusCreated, code)

	// Duplicate slugs are rejected, both on create and on rename.
	code, _ = doJSON(t, app, http.MethodPost, "/api/pages", fiber.Map{
		"slug": "about", "title": "Outro", "content": "x",
	})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = doJSON(t, app, http.MethodPut, "/api/pages/3", fiber.Map{"slug": "home"})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = doJSON(t, app, http.MethodDelete, "/api/pages/3", nil)
	assert.Equal(t, http.StatusNoContent, code)
}

// =============================
// Auth
// =============================

func TestLoginSuccessOmitsPassword(t *testing.T) {
	app := newTestApp(t)

	code, raw := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"username": "admin", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, code)
	body := decodeObject(t, raw)
	assert.Equal(t, "admin", body["username"])
	assert.Equal(t, "admin", body["role"])
	assert.NotContains(t, body, "password")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	app := newTestApp(t)

	code1, raw1 := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"username": "admin", "password": "wrong",
	})
	code2, raw2 := doJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"username": "ghost", "password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, code1)
	assert.Equal(t, http.StatusUnauthorized, code2)
	assert.JSONEq(t, string(raw1), string(raw2))
}

func TestRegisterAndConflict(t *testing.T) {
	app := newTestApp(t)

	payload := fiber.Map{
		"username": "novato",
		"password": "senha123",
		"name":     "Novato",
		"email":    "novato@example.com",
	}
	code, raw := doJSON(t, app, http.MethodPost, "/api/auth/register", payload)
	require.Equal(t, http.StatusCreated, code)
	body := decodeObject(t, raw)
	assert.Equal(t, "member", body["role"])
	assert.NotContains(t, body, "password")

	code, raw = doJSON(t, app, http.MethodPost, "/api/auth/register", payload)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Username already taken", decodeObject(t, raw)["message"])
}

