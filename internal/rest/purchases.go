package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mmynk/supermarket/internal/market"
	"github.com/mmynk/supermarket/internal/models"
)

// purchaseDTO is the public view of a purchase.
type purchaseDTO struct {
	Price         decimal.Decimal `json:"price"`
	ChangeAmount  decimal.Decimal `json:"changeAmount"`
	TimeOfPayment string          `json:"timeOfPayment"`
}

func toPurchaseDTO(p *models.Purchase) purchaseDTO {
	return purchaseDTO{
		Price:         p.Price,
		ChangeAmount:  p.ChangeAmount,
		TimeOfPayment: p.TimeOfPayment.Format(models.DateLayout),
	}
}

// MakePurchase handles POST /purchases
// body: { "supermarketId": "...", "itemIDs": ["..."], "type": "CASH", "cashAmount": 150.0 }
func (h *Handler) MakePurchase(w http.ResponseWriter, r *http.Request) {
	var req market.PurchaseInput
	if !decode(w, r, &req) {
		return
	}
	p, err := h.purchases.MakePurchase(r.Context(), req.Checkout())
	if err != nil {
		writeFailure(w, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/purchases/%d", p.ID))
	writeJSON(w, http.StatusCreated, toPurchaseDTO(p))
}

// ListPurchases handles GET /purchases
func (h *Handler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	ps, err := h.purchases.List(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	out := make([]purchaseDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPurchaseDTO(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetPurchase handles GET /purchases/{id}
func (h *Handler) GetPurchase(w http.ResponseWriter, r *http.Request) {
	id, ok := purchaseID(w, r)
	if !ok {
		return
	}
	p, err := h.purchases.Get(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPurchaseDTO(p))
}

// ReplacePurchase handles PUT /purchases/{id}
func (h *Handler) ReplacePurchase(w http.ResponseWriter, r *http.Request) {
	h.updatePurchase(w, r, h.purchases.Replace)
}

// PatchPurchase handles PATCH /purchases/{id}
func (h *Handler) PatchPurchase(w http.ResponseWriter, r *http.Request) {
	h.updatePurchase(w, r, h.purchases.Patch)
}

type purchaseUpdateFunc func(ctx context.Context, id int64, patch models.PurchasePatch) (*models.Purchase, error)

func (h *Handler) updatePurchase(w http.ResponseWriter, r *http.Request, update purchaseUpdateFunc) {
	id, ok := purchaseID(w, r)
	if !ok {
		return
	}
	var req market.PurchaseInput
	if !decode(w, r, &req) {
		return
	}
	patch, err := req.Patch()
	if err != nil {
		writeFailure(w, err)
		return
	}
	p, err := update(r.Context(), id, patch)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPurchaseDTO(p))
}

// DeletePurchase handles DELETE /purchases/{id}
func (h *Handler) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	id, ok := purchaseID(w, r)
	if !ok {
		return
	}
	if err := h.purchases.Delete(r.Context(), id); err != nil {
		writeFailure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
