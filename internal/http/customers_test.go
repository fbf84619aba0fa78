package httpapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/customers",
		`{"id":"123","name":"Customer 1","address":{"street":"Street 1","number":1,"zip":"Zipcode 1","city":"City 1"},"active":true}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode[customerResponse](t, rec)
	assert.Equal(t, "123", resp.ID)
	assert.True(t, resp.Active)
	require.NotNil(t, resp.Address)
	assert.Equal(t, "City 1", resp.Address.City)
	assert.Contains(t, s.customers.customers, "123")
}

func TestCreateCustomer_GeneratesID(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/customers", `{"name":"Customer 1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decode[customerResponse](t, rec)
	assert.NotEmpty(t, resp.ID)
	assert.Nil(t, resp.Address)
	assert.False(t, resp.Active)
}

func TestCreateCustomer_Validation(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{
		`{"id":"1","name":""}`,
		`{"id":"1","name":"Customer 1","active":true}`,
		`{"id":"1","name":"Customer 1","address":{"street":"","number":1,"zip":"z","city":"c"}}`,
	} {
		rec := s.do(http.MethodPost, "/api/customers", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Empty(t, s.customers.customers)
}

func TestGetAndListCustomers(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/customers", `{"id":"c1","name":"Customer 1"}`).Code)

	rec := s.do(http.MethodGet, "/api/customers/c1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Customer 1", decode[customerResponse](t, rec).Name)

	rec = s.do(http.MethodGet, "/api/customers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]customerResponse](t, rec), 1)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/customers/nobody", "").Code)
}

func TestChangeCustomerAddress(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/customers", `{"id":"c1","name":"Customer 1"}`).Code)

	rec := s.do(http.MethodPut, "/api/customers/c1/address", `{"street":"Street 2","number":2,"zip":"Zipcode 2","city":"City 2"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[customerResponse](t, rec)
	require.NotNil(t, resp.Address)
	assert.Equal(t, "Street 2", resp.Address.Street)

	rec = s.do(http.MethodPut, "/api/customers/nobody/address", `{"street":"Street 2","number":2,"zip":"Zipcode 2","city":"City 2"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPut, "/api/customers/c1/address", `{"street":"","number":2,"zip":"Zipcode 2","city":"City 2"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenameCustomer(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/customers", `{"id":"c1","name":"Customer 1"}`).Code)

	rec := s.do(http.MethodPut, "/api/customers/c1", `{"name":"Customer 2"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Customer 2", decode[customerResponse](t, rec).Name)
	assert.Equal(t, "Customer 2", s.customers.customers["c1"].Name())

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, "/api/customers/c1", `{"name":""}`).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/api/customers/nobody", `{"name":"Customer 3"}`).Code)
}

func TestActivateAndDeactivateCustomer(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/customers", `{"id":"c1","name":"Customer 1"}`).Code)

	// no address yet
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/customers/c1/activate", "").Code)

	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/api/customers/c1/address", `{"street":"Street 1","number":1,"zip":"Zipcode 1","city":"City 1"}`).Code)

	rec := s.do(http.MethodPost, "/api/customers/c1/activate", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[customerResponse](t, rec).Active)

	rec = s.do(http.MethodPost, "/api/customers/c1/deactivate", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[customerResponse](t, rec).Active)
	assert.False(t, s.customers.customers["c1"].IsActive())

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/api/customers/nobody/deactivate", "").Code)
}
