package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/customer"
)

type addressBody struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

type createCustomerRequest struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Address *addressBody `json:"address,omitempty"`
	Active  bool         `json:"active"`
}

type renameCustomerRequest struct {
	Name string `json:"name"`
}

type customerResponse struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Address      *addressBody `json:"address,omitempty"`
	Active       bool         `json:"active"`
	RewardPoints int          `json:"rewardPoints"`
}

func toCustomerResponse(c *customer.Customer) customerResponse {
	resp := customerResponse{
		ID:           c.ID(),
		Name:         c.Name(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}
	if a := c.Address(); !a.IsZero() {
		resp.Address = &addressBody{Street: a.Street, Number: a.Number, Zip: a.Zip, City: a.City}
	}
	return resp
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	c, err := customer.New(req.ID, req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Address != nil {
		addr, err := customer.NewAddress(req.Address.Street, req.Address.Number, req.Address.Zip, req.Address.City)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if err := c.ChangeAddress(addr); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	if req.Active {
		if err := c.Activate(); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	if err := h.customers.Create(r.Context(), c); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCustomerResponse(c))
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, toCustomerResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.customers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

func (h *Handler) ChangeCustomerAddress(w http.ResponseWriter, r *http.Request) {
	var req addressBody
	if !decodeJSON(w, r, &req) {
		return
	}

	addr, err := customer.NewAddress(req.Street, req.Number, req.Zip, req.City)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.customers.ChangeAddress(r.Context(), chi.URLParam(r, "id"), addr)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

func (h *Handler) RenameCustomer(w http.ResponseWriter, r *http.Request) {
	var req renameCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.customers.Rename(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

func (h *Handler) ActivateCustomer(w http.ResponseWriter, r *http.Request) {
	h.setCustomerActive(w, r, true)
}

func (h *Handler) DeactivateCustomer(w http.ResponseWriter, r *http.Request) {
	h.setCustomerActive(w, r, false)
}

func (h *Handler) setCustomerActive(w http.ResponseWriter, r *http.Request, active bool) {
	c, err := h.customers.SetActive(r.Context(), chi.URLParam(r, "id"), active)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}
