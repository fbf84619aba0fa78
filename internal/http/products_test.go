package httpapi

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/domain"
)

func TestCreateAndGetProduct(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/products", `{"id":"p1","name":"Product 1","price":10}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, productBody{ID: "p1", Name: "Product 1", Price: 10}, decode[productBody](t, rec))

	rec = s.do(http.MethodGet, "/api/products/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product 1", decode[productBody](t, rec).Name)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/products/p9", "").Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/products", `{"name":"Bad","price":-1}`).Code)
}

func TestChangeProduct(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/products", `{"id":"p1","name":"Product 1","price":10}`).Code)

	rec := s.do(http.MethodPut, "/api/products/p1", `{"name":"Product One","price":12.5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, productBody{ID: "p1", Name: "Product One", Price: 12.5}, decode[productBody](t, rec))

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, "/api/products/p1", `{"name":"","price":1}`).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, "/api/products/p1", `{"name":"Product One","price":-1}`).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/api/products/p9", `{"name":"Product","price":1}`).Code)
}

func TestIncreasePrices(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/products", `{"id":"p1","name":"Product 1","price":10}`).Code)

	rec := s.do(http.MethodPost, "/api/products/increase-prices", `{"percent":100}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	products := decode[[]productBody](t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, 20.0, products[0].Price)
	assert.Equal(t, 20.0, s.products.products["p1"].Price())
}

func TestListProducts_StorageError(t *testing.T) {
	s := newTestServer(t)
	s.products.listErr = domain.Storage("find all products", errors.New("connection refused"))

	rec := s.do(http.MethodGet, "/api/products", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}
