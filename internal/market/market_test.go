package market

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/supermarket/internal/checkout"
	"github.com/mmynk/supermarket/internal/models"
	"github.com/mmynk/supermarket/internal/storage/sqlstore"
	"github.com/mmynk/supermarket/internal/storage/sqlite"
	"github.com/mmynk/supermarket/internal/validation"
)

func ptr[T any](v T) *T { return &v }

func newTestStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "market-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
		os.RemoveAll(tempDir)
	})
	return store
}

func itemInput(name, price string, typ models.ItemType) models.ItemPatch {
	return models.ItemPatch{
		Name:  ptr(name),
		Price: ptr(decimal.RequireFromString(price)),
		Type:  ptr(typ),
	}
}

func supermarketInput(name string) models.SupermarketPatch {
	return models.SupermarketPatch{
		Name:        ptr(name),
		Address:     ptr("1 Main Street"),
		PhoneNumber: ptr("0871234567"),
		WorkHours:   ptr("08:00-22:00"),
	}
}

func TestItemService_CreatePriceBounds(t *testing.T) {
	svc := NewItemService(newTestStore(t))
	ctx := context.Background()

	tests := []struct {
		price   string
		wantErr bool
	}{
		{"0.01", false},
		{"9999.99", false},
		{"50", false},
		{"0.00", true},
		{"0.009", true},
		{"10000", true},
		{"-1", true},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			item, err := svc.Create(ctx, itemInput("Bread", tt.price, models.ItemTypeFood))
			if tt.wantErr {
				if !errors.Is(err, validation.ErrInvalidData) {
					t.Fatalf("expected ErrInvalidData, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if item.ID == "" {
				t.Error("expected generated ID")
			}
		})
	}
}

func TestItemService_CreateRejectsUnknownType(t *testing.T) {
	svc := NewItemService(newTestStore(t))
	ctx := context.Background()

	for _, typ := range []models.ItemType{"TOYS", "food", ""} {
		if _, err := svc.Create(ctx, itemInput("Thing", "1.00", typ)); !errors.Is(err, validation.ErrInvalidData) {
			t.Errorf("type %q: expected ErrInvalidData, got %v", typ, err)
		}
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items stored, got %d", len(items))
	}
}

func TestItemService_PatchPriceOnly(t *testing.T) {
	svc := NewItemService(newTestStore(t))
	ctx := context.Background()

	item, err := svc.Create(ctx, itemInput("Milk", "1.20", models.ItemTypeDrinks))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.Patch(ctx, item.ID, models.ItemPatch{Price: ptr(decimal.RequireFromString("1.50"))})
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}

	got, err := svc.Get(ctx, item.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	for _, it := range []*models.Item{updated, got} {
		if it.Name != "Milk" || it.Type != models.ItemTypeDrinks {
			t.Errorf("name/type changed: %+v", it)
		}
		if !it.Price.Equal(decimal.RequireFromString("1.50")) {
			t.Errorf("price = %s, want 1.50", it.Price)
		}
	}
}

func TestItemService_InvalidPatchLeavesItemUnchanged(t *testing.T) {
	svc := NewItemService(newTestStore(t))
	ctx := context.Background()

	item, err := svc.Create(ctx, itemInput("Milk", "1.20", models.ItemTypeDrinks))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.Patch(ctx, item.ID, models.ItemPatch{
		Name:  ptr("Oat Milk"),
		Price: ptr(decimal.RequireFromString("0")),
	})
	if !errors.Is(err, validation.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}

	got, err := svc.Get(ctx, item.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Milk" {
		t.Errorf("name = %q, want unchanged", got.Name)
	}
}

func TestItemService_ReplaceRequiresAllFields(t *testing.T) {
	svc := NewItemService(newTestStore(t))
	ctx := context.Background()

	item, err := svc.Create(ctx, itemInput("Lamp", "25", models.ItemTypeHousehold))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Replace(ctx, item.ID, models.ItemPatch{Name: ptr("Desk Lamp")}); !errors.Is(err, validation.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}

	replaced, err := svc.Replace(ctx, item.ID, itemInput("Desk Lamp", "30", models.ItemTypeTechnology))
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if replaced.ID != item.ID || replaced.Type != models.ItemTypeTechnology {
		t.Errorf("unexpected item: %+v", replaced)
	}
}

func TestItemService_NotFound(t *testing.T) {
	svc := NewItemService(newTestStore(t))
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Item" || nf.ID != "missing" {
		t.Errorf("Get: expected NotFoundError for Item missing, got %v", err)
	}
	if _, err := svc.Patch(ctx, "missing", models.ItemPatch{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Patch: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
}

func TestSupermarketService_DuplicateName(t *testing.T) {
	svc := NewSupermarketService(newTestStore(t))
	ctx := context.Background()

	first, err := svc.Create(ctx, supermarketInput("FreshMart"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(ctx, supermarketInput("FreshMart")); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	// Uniqueness is a creation-time rule only.
	second, err := svc.Create(ctx, supermarketInput("CornerShop"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Patch(ctx, second.ID, models.SupermarketPatch{Name: ptr(first.Name)}); err != nil {
		t.Errorf("renaming onto an existing name should succeed, got %v", err)
	}
}

func TestSupermarketService_CreateValidation(t *testing.T) {
	svc := NewSupermarketService(newTestStore(t))
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.SupermarketPatch)
	}{
		{"missing name", func(p *models.SupermarketPatch) { p.Name = nil }},
		{"missing address", func(p *models.SupermarketPatch) { p.Address = nil }},
		{"bad phone", func(p *models.SupermarketPatch) { p.PhoneNumber = ptr("0861234567") }},
		{"short phone", func(p *models.SupermarketPatch) { p.PhoneNumber = ptr("08712345") }},
		{"hours reversed", func(p *models.SupermarketPatch) { p.WorkHours = ptr("22:00-08:00") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := supermarketInput("Shop " + tt.name)
			tt.mutate(&in)
			if _, err := svc.Create(ctx, in); !errors.Is(err, validation.ErrInvalidData) {
				t.Errorf("expected ErrInvalidData, got %v", err)
			}
		})
	}
}

func TestSupermarketService_ReplaceRequiresAllFields(t *testing.T) {
	svc := NewSupermarketService(newTestStore(t))
	ctx := context.Background()

	sm, err := svc.Create(ctx, supermarketInput("FreshMart"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = svc.Replace(ctx, sm.ID, models.SupermarketPatch{Name: ptr("Renamed")})
	if !errors.Is(err, validation.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}

	got, err := svc.Get(ctx, sm.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "FreshMart" {
		t.Errorf("name = %q, want unchanged", got.Name)
	}
}

func TestSupermarketService_AddItems(t *testing.T) {
	store := newTestStore(t)
	items := NewItemService(store)
	svc := NewSupermarketService(store)
	ctx := context.Background()

	sm, err := svc.Create(ctx, supermarketInput("FreshMart"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	bread, err := items.Create(ctx, itemInput("Bread", "2.50", models.ItemTypeFood))
	if err != nil {
		t.Fatalf("Create item failed: %v", err)
	}

	t.Run("skips unknown IDs", func(t *testing.T) {
		res, err := svc.AddItems(ctx, sm.ID, []string{bread.ID, "unknown"})
		if err != nil {
			t.Fatalf("AddItems failed: %v", err)
		}
		if res.SupermarketID != sm.ID {
			t.Errorf("supermarket ID = %q", res.SupermarketID)
		}
		if len(res.AddedItemNames) != 1 || res.AddedItemNames[0] != "Bread" {
			t.Errorf("added names = %v, want [Bread]", res.AddedItemNames)
		}
		got, _ := svc.Get(ctx, sm.ID)
		if len(got.ItemIDs) != 1 || got.ItemIDs[0] != bread.ID {
			t.Errorf("item IDs = %v, want [%s]", got.ItemIDs, bread.ID)
		}
	})

	t.Run("only unknown IDs returns empty result", func(t *testing.T) {
		res, err := svc.AddItems(ctx, sm.ID, []string{"nope", "nada"})
		if err != nil {
			t.Fatalf("AddItems failed: %v", err)
		}
		if res.AddedItemNames == nil || len(res.AddedItemNames) != 0 {
			t.Errorf("added names = %#v, want empty", res.AddedItemNames)
		}
	})

	t.Run("repeated IDs reported but stored once", func(t *testing.T) {
		res, err := svc.AddItems(ctx, sm.ID, []string{bread.ID, bread.ID})
		if err != nil {
			t.Fatalf("AddItems failed: %v", err)
		}
		if len(res.AddedItemNames) != 2 {
			t.Errorf("added names = %v, want two entries", res.AddedItemNames)
		}
		got, _ := svc.Get(ctx, sm.ID)
		if len(got.ItemIDs) != 1 {
			t.Errorf("item IDs = %v, want one", got.ItemIDs)
		}
	})

	t.Run("unknown supermarket", func(t *testing.T) {
		if _, err := svc.AddItems(ctx, "missing", []string{bread.ID}); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("info resolves items", func(t *testing.T) {
		info, err := svc.Info(ctx, sm.ID)
		if err != nil {
			t.Fatalf("Info failed: %v", err)
		}
		if info.Name != "FreshMart" || len(info.Items) != 1 || info.Items[0].Name != "Bread" {
			t.Errorf("unexpected info: %+v", info)
		}
	})

	t.Run("deleting item drops association", func(t *testing.T) {
		if err := items.Delete(ctx, bread.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		got, _ := svc.Get(ctx, sm.ID)
		if len(got.ItemIDs) != 0 {
			t.Errorf("item IDs = %v, want none", got.ItemIDs)
		}
	})
}

func newPurchaseService(t *testing.T) *PurchaseService {
	t.Helper()
	store := newTestStore(t)
	clock := func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	return NewPurchaseService(store, checkout.NewEngine(store, checkout.WithClock(clock)))
}

func TestPurchaseService_MakePurchase(t *testing.T) {
	svc := newPurchaseService(t)
	ctx := context.Background()

	_, err := svc.MakePurchase(ctx, checkout.Request{SupermarketID: "sm", PaymentType: ptr("CASH")})
	if !errors.Is(err, validation.ErrInvalidData) {
		t.Fatalf("cash without amount: expected ErrInvalidData, got %v", err)
	}

	cash, err := svc.MakePurchase(ctx, checkout.Request{
		SupermarketID: "sm",
		ItemIDs:       []string{"a", "a"},
		PaymentType:   ptr("CASH"),
		CashAmount:    ptr(decimal.RequireFromString("150.0")),
	})
	if err != nil {
		t.Fatalf("MakePurchase failed: %v", err)
	}
	if !cash.ChangeAmount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("change = %s, want 50", cash.ChangeAmount)
	}

	card, err := svc.MakePurchase(ctx, checkout.Request{SupermarketID: "sm", PaymentType: ptr("CARD")})
	if err != nil {
		t.Fatalf("MakePurchase failed: %v", err)
	}
	if !card.ChangeAmount.IsZero() {
		t.Errorf("change = %s, want 0", card.ChangeAmount)
	}

	got, err := svc.Get(ctx, cash.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.ItemIDs) != 2 || got.TimeOfPayment.Format(models.DateLayout) != "2026-03-14" {
		t.Errorf("unexpected stored purchase: %+v", got)
	}
}

func TestPurchaseService_Update(t *testing.T) {
	svc := newPurchaseService(t)
	ctx := context.Background()

	p, err := svc.MakePurchase(ctx, checkout.Request{PaymentType: ptr("CARD")})
	if err != nil {
		t.Fatalf("MakePurchase failed: %v", err)
	}

	t.Run("switch to cash recomputes change", func(t *testing.T) {
		updated, err := svc.Patch(ctx, p.ID, models.PurchasePatch{
			PaymentType: ptr("cash"),
			CashAmount:  ptr(decimal.NewFromInt(120)),
		})
		if err != nil {
			t.Fatalf("Patch failed: %v", err)
		}
		if updated.PaymentType != models.PaymentTypeCash || !updated.ChangeAmount.Equal(decimal.NewFromInt(20)) {
			t.Errorf("unexpected purchase: %+v", updated)
		}
		if !updated.Price.Equal(checkout.DefaultPrice) {
			t.Errorf("price = %s, want kept", updated.Price)
		}
	})

	t.Run("invalid payment type rejected", func(t *testing.T) {
		if _, err := svc.Patch(ctx, p.ID, models.PurchasePatch{PaymentType: ptr("BITCOIN")}); !errors.Is(err, validation.ErrInvalidData) {
			t.Errorf("expected ErrInvalidData, got %v", err)
		}
	})

	t.Run("replace without payment type rejected", func(t *testing.T) {
		if _, err := svc.Replace(ctx, p.ID, models.PurchasePatch{SupermarketID: ptr("x")}); !errors.Is(err, validation.ErrInvalidData) {
			t.Errorf("expected ErrInvalidData, got %v", err)
		}
	})

	t.Run("replace clears absent fields", func(t *testing.T) {
		replaced, err := svc.Replace(ctx, p.ID, models.PurchasePatch{PaymentType: ptr("CARD")})
		if err != nil {
			t.Fatalf("Replace failed: %v", err)
		}
		if replaced.CashAmount.Valid || len(replaced.ItemIDs) != 0 || !replaced.ChangeAmount.IsZero() {
			t.Errorf("unexpected purchase: %+v", replaced)
		}
	})
}

func TestPurchaseService_DeleteMissing(t *testing.T) {
	svc := newPurchaseService(t)
	ctx := context.Background()

	err := svc.Delete(ctx, 999)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "Purchase" || nf.ID != "999" {
		t.Fatalf("expected NotFoundError for Purchase 999, got %v", err)
	}

	p, err := svc.MakePurchase(ctx, checkout.Request{PaymentType: ptr("CARD")})
	if err != nil {
		t.Fatalf("MakePurchase failed: %v", err)
	}
	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}

type recordingObserver struct {
	seen []models.PaymentType
}

func (r *recordingObserver) ObservePurchase(p *models.Purchase) {
	r.seen = append(r.seen, p.PaymentType)
}

func TestPurchaseService_NotifiesObservers(t *testing.T) {
	store := newTestStore(t)
	obs := &recordingObserver{}
	svc := NewPurchaseService(store, checkout.NewEngine(store), obs)
	ctx := context.Background()

	if _, err := svc.MakePurchase(ctx, checkout.Request{PaymentType: ptr("card")}); err != nil {
		t.Fatalf("MakePurchase failed: %v", err)
	}
	if _, err := svc.MakePurchase(ctx, checkout.Request{PaymentType: ptr("CASH")}); err == nil {
		t.Fatal("expected rejected purchase")
	}
	if len(obs.seen) != 1 || obs.seen[0] != models.PaymentTypeCard {
		t.Errorf("observed = %v, want [CARD]", obs.seen)
	}
}

func TestPurchaseInput(t *testing.T) {
	in := PurchaseInput{
		SupermarketID: ptr("sm-1"),
		ItemIDs:       []string{"a"},
		Type:          ptr("cash"),
		CashAmount:    ptr(decimal.NewFromInt(10)),
		TimeOfPayment: ptr("2026-01-02"),
	}

	req := in.Checkout()
	if req.SupermarketID != "sm-1" || *req.PaymentType != "cash" || len(req.ItemIDs) != 1 {
		t.Errorf("unexpected checkout request: %+v", req)
	}

	patch, err := in.Patch()
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if patch.TimeOfPayment == nil || patch.TimeOfPayment.Format(models.DateLayout) != "2026-01-02" {
		t.Errorf("time of payment = %v", patch.TimeOfPayment)
	}

	in.TimeOfPayment = ptr("yesterday")
	if _, err := in.Patch(); !errors.Is(err, validation.ErrInvalidData) {
		t.Errorf("expected ErrInvalidData, got %v", err)
	}
}
