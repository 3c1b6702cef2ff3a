package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/product-catalog/internal/config"
	"github.com/iliyamo/product-catalog/internal/handler"
	"github.com/iliyamo/product-catalog/internal/middleware"
	"github.com/iliyamo/product-catalog/internal/queue"
	"github.com/iliyamo/product-catalog/internal/repository"
	"github.com/iliyamo/product-catalog/internal/utils"
)

var flowCfg = config.Config{
	Env:          "test",
	JWTSecret:    "flow-secret",
	AccessTTLMin: 5,
	BcryptCost:   4,
}

var flowProductCols = []string{"id", "name", "price", "brand", "description", "measurement", "image", "date_created", "date_modified", "created_by"}

// newTestServer wires the full route table over a sqlmock-backed store,
// with the rate limiter in its no-op mode.
func newTestServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	products := handler.NewProductHandler(repository.NewProductRepo(db))
	products.Publish = func(context.Context, queue.ProductEvent) error { return nil }

	e := echo.New()
	RegisterRoutes(e)
	RegisterAuth(e, handler.NewAuthHandler(flowCfg, repository.NewUserRepo(db)), middleware.NewTokenBucket(config.RateLimitConfig{}, nil))
	RegisterProducts(e, products, flowCfg.JWTSecret)
	return e, mock
}

func do(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthz(t *testing.T) {
	e, _ := newTestServer(t)
	rec := do(e, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestProductsRequireToken(t *testing.T) {
	e, _ := newTestServer(t)
	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/products/"},
		{http.MethodGet, "/products/"},
		{http.MethodGet, "/products/1"},
		{http.MethodPut, "/products/1"},
		{http.MethodDelete, "/products/1"},
	} {
		rec := do(e, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

// TestFullCatalogFlow walks the whole contract: register, log in, create a
// product, list it, rename it, delete it, and observe the 404 afterwards.
func TestFullCatalogFlow(t *testing.T) {
	e, mock := newTestServer(t)
	now := time.Now().UTC()

	// register
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(3, 1))
	rec := do(e, http.MethodPost, "/auth/register",
		`{"email":"a@b.com","password":"pw1","firstName":"Ada","lastName":"Lovelace","profileThumbnailUrl":"ada.jpg"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	// login
	hash, err := utils.HashPassword("pw1", flowCfg.BcryptCost)
	require.NoError(t, err)
	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "first_name", "last_name", "profile_thumbnail_url", "created_at", "updated_at"}).
			AddRow(3, "a@b.com", hash, "Ada", "Lovelace", "ada.jpg", now, now))
	rec = do(e, http.MethodPost, "/auth/login", `{"email":"a@b.com","password":"pw1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	token, _ := decode(t, rec)["access_token"].(string)
	require.NotEmpty(t, token)

	// create
	mock.ExpectExec("INSERT INTO products").
		WithArgs("milk", "9.99", "acme", "fresh", "1l", "milk.png", uint64(3)).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("SELECT date_created, date_modified FROM products").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"date_created", "date_modified"}).AddRow(now, now))
	rec = do(e, http.MethodPost, "/products/",
		`{"name":"milk","price":"9.99","brand":"acme","description":"fresh","measurement":"1l","image":"milk.png"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec)
	assert.Equal(t, float64(7), created["id"])
	assert.Equal(t, float64(3), created["created_by"])

	// list
	mock.ExpectQuery("FROM products WHERE created_by").
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(flowProductCols).
			AddRow(7, "milk", "9.99", "acme", "fresh", "1l", "milk.png", now, now, 3))
	rec = do(e, http.MethodGet, "/products/", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, float64(7), items[0]["id"])

	// rename
	mock.ExpectExec("UPDATE products").
		WithArgs("X", uint64(7), uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM products WHERE id").
		WithArgs(uint64(7), uint64(3)).
		WillReturnRows(sqlmock.NewRows(flowProductCols).
			AddRow(7, "X", "9.99", "acme", "fresh", "1l", "milk.png", now, now.Add(time.Minute), 3))
	rec = do(e, http.MethodPut, "/products/7", `{"name":"X"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)
	assert.Equal(t, "X", updated["name"])
	assert.Equal(t, float64(7), updated["id"])

	// delete
	mock.ExpectExec("DELETE FROM products").
		WithArgs(uint64(7), uint64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	rec = do(e, http.MethodDelete, "/products/7", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "product 7 deleted successfully", decode(t, rec)["message"])

	// gone
	mock.ExpectQuery("FROM products WHERE id").
		WithArgs(uint64(7), uint64(3)).
		WillReturnRows(sqlmock.NewRows(flowProductCols))
	rec = do(e, http.MethodGet, "/products/7", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestListNeverLeaksAcrossUsers issues two tokens and shows that each list
// query is scoped to its own subject.
func TestListNeverLeaksAcrossUsers(t *testing.T) {
	e, mock := newTestServer(t)
	now := time.Now().UTC()

	tok1, err := utils.NewAccessToken(flowCfg.JWTSecret, 1, 5)
	require.NoError(t, err)
	tok2, err := utils.NewAccessToken(flowCfg.JWTSecret, 2, 5)
	require.NoError(t, err)

	mock.ExpectQuery("FROM products WHERE created_by").
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows(flowProductCols).
			AddRow(10, "milk", "9.99", "acme", "fresh", "1l", "a.png", now, now, 1))
	mock.ExpectQuery("FROM products WHERE created_by").
		WithArgs(uint64(2)).
		WillReturnRows(sqlmock.NewRows(flowProductCols))

	rec := do(e, http.MethodGet, "/products/", "", tok1.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, float64(1), items[0]["created_by"])

	rec = do(e, http.MethodGet, "/products/", "", tok2.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	assert.NoError(t, mock.ExpectationsWereMet())
}
