package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"catalog/config"
	"catalog/database"
	"catalog/database/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(t *testing.T) *gin.Engine {
	dbPath := "test.db"
	os.Remove(dbPath)
	err := database.InitDB(dbPath)
	assert.NoError(t, err)

	t.Cleanup(func() {
		db, _ := database.GetDB().DB()
		db.Close()
		os.Remove("test.db")
		os.Remove("test.db-wal")
		os.Remove("test.db-shm")
	})

	server := NewServer()
	engine, err := server.initRouter(&config.WebConfig{SessionMaxAge: 60})
	assert.NoError(t, err)
	return engine
}

func doRequest(router *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// sessionCookies keeps only the latest cookie per name, as a browser would.
func sessionCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	latest := map[string]*http.Cookie{}
	for _, c := range w.Result().Cookies() {
		latest[c.Name] = c
	}
	cookies := make([]*http.Cookie, 0, len(latest))
	for _, c := range latest {
		cookies = append(cookies, c)
	}
	return cookies
}

func login(t *testing.T, router *gin.Engine, username, password string) []*http.Cookie {
	w := doRequest(router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, username, resp["username"])
	assert.Equal(t, "Login successful", resp["message"])
	assert.Contains(t, resp["roles"], "admin")

	return sessionCookies(w)
}

func TestUnauthenticatedRequestRejected(t *testing.T) {
	router := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/api/products", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/products", &model.Product{Name: "x"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := setupRouter(t)

	for _, form := range []map[string]string{
		{"username": "admin", "password": "wrong"},
		{"username": "nobody", "password": "admin"},
		{"username": "", "password": ""},
	} {
		w := doRequest(router, http.MethodPost, "/api/auth/login", form, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		// one neutral message for every failure mode
		assert.Contains(t, w.Body.String(), "invalid username or password")
	}
}

func TestProductCrudOverHTTP(t *testing.T) {
	router := setupRouter(t)
	cookies := login(t, router, "admin", "admin")

	// create
	w := doRequest(router, http.MethodPost, "/api/products", &model.Product{
		Name:          "Test Product",
		Description:   "Test Description",
		Price:         19.99,
		StockQuantity: 10,
	}, cookies)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created model.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.Id)

	// list
	w = doRequest(router, http.MethodGet, "/api/products", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	var products []model.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 1)

	// get
	w = doRequest(router, http.MethodGet, "/api/products/1", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Test Product")

	// search
	w = doRequest(router, http.MethodGet, "/api/products/search?name=test", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	products = nil
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 1)

	w = doRequest(router, http.MethodGet, "/api/products/search?name=phone", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	products = nil
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Empty(t, products)

	// update
	w = doRequest(router, http.MethodPut, "/api/products/1", &model.Product{
		Name:          "Updated Product",
		Description:   "Updated Description",
		Price:         29.99,
		StockQuantity: 20,
	}, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	var updated model.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 1, updated.Id)
	assert.Equal(t, "Updated Product", updated.Name)
	assert.Equal(t, 29.99, updated.Price)

	// delete
	w = doRequest(router, http.MethodDelete, "/api/products/1", nil, cookies)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// gone now
	w = doRequest(router, http.MethodGet, "/api/products/1", nil, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(router, http.MethodDelete, "/api/products/1", nil, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(router, http.MethodPut, "/api/products/1", &model.Product{Name: "x"}, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateMissingProductOverHTTP(t *testing.T) {
	router := setupRouter(t)
	cookies := login(t, router, "admin", "admin")

	w := doRequest(router, http.MethodPut, "/api/products/99", &model.Product{Name: "Ghost"}, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/api/products/abc", nil, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutDestroysSession(t *testing.T) {
	router := setupRouter(t)
	cookies := login(t, router, "admin", "admin")

	w := doRequest(router, http.MethodGet, "/api/products", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/auth/logout", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/products", nil, sessionCookies(w))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
