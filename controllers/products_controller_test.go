package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helioskin-backend/database"
	"helioskin-backend/models"
)

func TestGetProductsSeedsAndLists(t *testing.T) {
	r := newTestRouter(database.NewMemStore("helioskin"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 10)
	for _, p := range products {
		assert.NotEmpty(t, p.Slug)
		assert.True(t, p.InStock)
	}
}

func TestGetProductsDegradedStore(t *testing.T) {
	r := newTestRouter(database.Disconnected())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Database not available")
}

func TestGetProductBySlug(t *testing.T) {
	store := database.NewMemStore("helioskin")
	r := newTestRouter(store)

	// Seed through the list route first.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/age-defense-serum", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var p models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "age-defense-serum", p.Slug)
	assert.Equal(t, "Age Defense Serum", p.Name)
}

func TestGetProductNotFound(t *testing.T) {
	r := newTestRouter(database.NewMemStore("helioskin"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}
