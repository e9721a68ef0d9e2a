// Package rest exposes the market facades as a JSON REST API.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mmynk/supermarket/internal/market"
	"github.com/mmynk/supermarket/internal/validation"
)

// Handler is the HTTP layer that talks to the market facades
type Handler struct {
	items        *market.ItemService
	supermarkets *market.SupermarketService
	purchases    *market.PurchaseService
}

// NewHandler returns a Handler instance
func NewHandler(items *market.ItemService, supermarkets *market.SupermarketService, purchases *market.PurchaseService) *Handler {
	return &Handler{items: items, supermarkets: supermarkets, purchases: purchases}
}

// RegisterRoutes registers all routes on the provided router
func (h *Handler) RegisterRoutes(r *mux.Router) {
	// Items
	r.HandleFunc("/items", h.CreateItem).Methods(http.MethodPost)
	r.HandleFunc("/items", h.ListItems).Methods(http.MethodGet)
	r.HandleFunc("/items/{itemId}", h.GetItem).Methods(http.MethodGet)
	r.HandleFunc("/items/{itemId}", h.ReplaceItem).Methods(http.MethodPut)
	r.HandleFunc("/items/{itemId}", h.PatchItem).Methods(http.MethodPatch)
	r.HandleFunc("/items/{itemId}", h.DeleteItem).Methods(http.MethodDelete)

	// Supermarkets
	r.HandleFunc("/supermarkets", h.CreateSupermarket).Methods(http.MethodPost)
	r.HandleFunc("/supermarkets", h.ListSupermarkets).Methods(http.MethodGet)
	r.HandleFunc("/supermarkets/addItems", h.AddItems).Methods(http.MethodPost)
	r.HandleFunc("/supermarkets/{supermarketId}", h.GetSupermarket).Methods(http.MethodGet)
	r.HandleFunc("/supermarkets/{supermarketId}", h.ReplaceSupermarket).Methods(http.MethodPut)
	r.HandleFunc("/supermarkets/{supermarketId}", h.PatchSupermarket).Methods(http.MethodPatch)
	r.HandleFunc("/supermarkets/{supermarketId}", h.DeleteSupermarket).Methods(http.MethodDelete)

	// Purchases
	r.HandleFunc("/purchases", h.MakePurchase).Methods(http.MethodPost)
	r.HandleFunc("/purchases", h.ListPurchases).Methods(http.MethodGet)
	r.HandleFunc("/purchases/{id}", h.GetPurchase).Methods(http.MethodGet)
	r.HandleFunc("/purchases/{id}", h.ReplacePurchase).Methods(http.MethodPut)
	r.HandleFunc("/purchases/{id}", h.PatchPurchase).Methods(http.MethodPatch)
	r.HandleFunc("/purchases/{id}", h.DeletePurchase).Methods(http.MethodDelete)
}

// --- helpers ---
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeFailure maps a facade error to its status code.
func writeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, validation.ErrInvalidData):
		writeErr(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, market.ErrNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
	case errors.Is(err, market.ErrDuplicateName):
		writeErr(w, http.StatusConflict, err.Error())
	default:
		slog.Error("Request failed", "error", err)
		writeErr(w, http.StatusInternalServerError, "internal error")
	}
}

// decode reads a JSON body into v, answering 400 on malformed input.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func purchaseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "purchase id must be an integer")
		return 0, false
	}
	return id, true
}

// queryList collects a list parameter given either repeated or comma-separated.
func queryList(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.URL.Query()[key] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
