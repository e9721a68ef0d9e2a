package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mmynk/supermarket/internal/models"
)

// CreateItem handles POST /items
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.ItemPatch
	if !decode(w, r, &req) {
		return
	}
	item, err := h.items.Create(r.Context(), req)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// ListItems handles GET /items
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.List(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetItem handles GET /items/{itemId}
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.items.Get(r.Context(), mux.Vars(r)["itemId"])
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// ReplaceItem handles PUT /items/{itemId}
func (h *Handler) ReplaceItem(w http.ResponseWriter, r *http.Request) {
	var req models.ItemPatch
	if !decode(w, r, &req) {
		return
	}
	item, err := h.items.Replace(r.Context(), mux.Vars(r)["itemId"], req)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// PatchItem handles PATCH /items/{itemId}
func (h *Handler) PatchItem(w http.ResponseWriter, r *http.Request) {
	var req models.ItemPatch
	if !decode(w, r, &req) {
		return
	}
	item, err := h.items.Patch(r.Context(), mux.Vars(r)["itemId"], req)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /items/{itemId}
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.items.Delete(r.Context(), mux.Vars(r)["itemId"]); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
