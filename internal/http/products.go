package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/product"
)

type productBody struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type changeProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type increasePricesRequest struct {
	Percent float64 `json:"percent"`
}

func toProductBody(p *product.Product) productBody {
	return productBody{ID: p.ID(), Name: p.Name(), Price: p.Price()}
}

func toProductBodies(products []*product.Product) []productBody {
	out := make([]productBody, 0, len(products))
	for _, p := range products {
		out = append(out, toProductBody(p))
	}
	return out
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productBody
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	p, err := product.New(req.ID, req.Name, req.Price)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.products.Create(r.Context(), p); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductBody(p))
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductBodies(products))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductBody(p))
}

func (h *Handler) ChangeProduct(w http.ResponseWriter, r *http.Request) {
	var req changeProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.products.Change(r.Context(), chi.URLParam(r, "id"), req.Name, req.Price)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductBody(p))
}

func (h *Handler) IncreasePrices(w http.ResponseWriter, r *http.Request) {
	var req increasePricesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	products, err := h.products.IncreasePrices(r.Context(), req.Percent)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductBodies(products))
}
