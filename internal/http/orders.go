package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/ecommerce-system/services/checkout-service-go/internal/order"
)

type placeOrderRequest struct {
	CustomerID string       `json:"customerId"`
	Items      []order.Line `json:"items"`
}

type replaceItemsRequest struct {
	Items []order.Line `json:"items"`
}

type orderResponse struct {
	ID         string       `json:"id"`
	CustomerID string       `json:"customerId"`
	Items      []order.Item `json:"items"`
	Total      float64      `json:"total"`
}

type ordersResponse struct {
	Orders []orderResponse `json:"orders"`
	Total  float64         `json:"total"`
}

func toOrderResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Items:      o.Items(),
		Total:      o.Total(),
	}
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.CustomerID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "customerId is required"})
		return
	}

	o, err := h.orders.PlaceOrder(r.Context(), req.CustomerID, req.Items)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(o))
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := ordersResponse{
		Orders: make([]orderResponse, 0, len(orders)),
		Total:  order.TotalOf(orders),
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.Get(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}

func (h *Handler) ReplaceOrderItems(w http.ResponseWriter, r *http.Request) {
	var req replaceItemsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	o, err := h.orders.ReplaceItems(r.Context(), chi.URLParam(r, "orderId"), req.Items)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(o))
}
