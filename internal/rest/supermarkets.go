package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mmynk/supermarket/internal/models"
)

// CreateSupermarket handles POST /supermarkets
func (h *Handler) CreateSupermarket(w http.ResponseWriter, r *http.Request) {
	var req models.SupermarketPatch
	if !decode(w, r, &req) {
		return
	}
	sm, err := h.supermarkets.Create(r.Context(), req)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sm)
}

// ListSupermarkets handles GET /supermarkets
func (h *Handler) ListSupermarkets(w http.ResponseWriter, r *http.Request) {
	sms, err := h.supermarkets.List(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sms)
}

// GetSupermarket handles GET /supermarkets/{supermarketId}
// and returns the supermarket with its items resolved.
func (h *Handler) GetSupermarket(w http.ResponseWriter, r *http.Request) {
	info, err := h.supermarkets.Info(r.Context(), mux.Vars(r)["supermarketId"])
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// ReplaceSupermarket handles PUT /supermarkets/{supermarketId}
func (h *Handler) ReplaceSupermarket(w http.ResponseWriter, r *http.Request) {
	var req models.SupermarketPatch
	if !decode(w, r, &req) {
		return
	}
	sm, err := h.supermarkets.Replace(r.Context(), mux.Vars(r)["supermarketId"], req)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sm)
}

// PatchSupermarket handles PATCH /supermarkets/{supermarketId}
func (h *Handler) PatchSupermarket(w http.ResponseWriter, r *http.Request) {
	var req models.SupermarketPatch
	if !decode(w, r, &req) {
		return
	}
	sm, err := h.supermarkets.Patch(r.Context(), mux.Vars(r)["supermarketId"], req)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sm)
}

// DeleteSupermarket handles DELETE /supermarkets/{supermarketId}
func (h *Handler) DeleteSupermarket(w http.ResponseWriter, r *http.Request) {
	if err := h.supermarkets.Delete(r.Context(), mux.Vars(r)["supermarketId"]); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddItems handles POST /supermarkets/addItems?supermarketId=...&itemsIDs=a,b
func (h *Handler) AddItems(w http.ResponseWriter, r *http.Request) {
	supermarketID := r.URL.Query().Get("supermarketId")
	if supermarketID == "" {
		writeErr(w, http.StatusBadRequest, "supermarketId is required")
		return
	}
	itemIDs := queryList(r, "itemsIDs")
	if len(itemIDs) == 0 {
		writeErr(w, http.StatusBadRequest, "itemsIDs must not be empty")
		return
	}

	res, err := h.supermarkets.AddItems(r.Context(), supermarketID, itemIDs)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
