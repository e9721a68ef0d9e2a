package merge

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/supermarket/internal/models"
	"github.com/mmynk/supermarket/internal/validation"
)

func ptr[T any](v T) *T { return &v }

func sampleItem() models.Item {
	return models.Item{
		ID:    "item-1",
		Name:  "Milk",
		Price: decimal.RequireFromString("2.49"),
		Type:  models.ItemTypeDrinks,
	}
}

func TestItem_PartialPriceOnly(t *testing.T) {
	existing := sampleItem()
	next, err := Item(existing, models.ItemPatch{Price: ptr(decimal.RequireFromString("3.10"))}, Partial)
	if err != nil {
		t.Fatalf("Item() failed: %v", err)
	}
	if next.Name != "Milk" || next.Type != models.ItemTypeDrinks {
		t.Errorf("untouched fields changed: %+v", next)
	}
	if !next.Price.Equal(decimal.RequireFromString("3.10")) {
		t.Errorf("price = %s, want 3.10", next.Price)
	}
	if next.ID != existing.ID {
		t.Errorf("ID changed: %s", next.ID)
	}
}

func TestItem_ValidatesBeforeApplying(t *testing.T) {
	existing := sampleItem()
	patch := models.ItemPatch{
		Name:  ptr("Oat Milk"),
		Price: ptr(decimal.RequireFromString("0")),
	}
	next, err := Item(existing, patch, Partial)
	if !errors.Is(err, validation.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}
	if next.Name != "Milk" {
		t.Errorf("name applied despite failed merge: %q", next.Name)
	}
}

func TestItem_FullRequiresAllFields(t *testing.T) {
	_, err := Item(sampleItem(), models.ItemPatch{Name: ptr("Bread")}, Full)
	if !errors.Is(err, validation.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}

	next, err := Item(sampleItem(), models.ItemPatch{
		Name:  ptr("Bread"),
		Price: ptr(decimal.RequireFromString("1.99")),
		Type:  ptr(models.ItemTypeFood),
	}, Full)
	if err != nil {
		t.Fatalf("full item merge failed: %v", err)
	}
	if next.Name != "Bread" || next.Type != models.ItemTypeFood || next.ID != "item-1" {
		t.Errorf("unexpected merge result: %+v", next)
	}
}

func sampleSupermarket() models.Supermarket {
	return models.Supermarket{
		ID:          "sm-1",
		Name:        "Corner Shop",
		Address:     "1 Main St",
		PhoneNumber: "0871234567",
		WorkHours:   "08:00-20:00",
		ItemIDs:     []string{"item-1"},
	}
}

func TestSupermarket(t *testing.T) {
	tests := []struct {
		name    string
		patch   models.SupermarketPatch
		mode    Mode
		wantErr bool
		check   func(t *testing.T, got models.Supermarket)
	}{
		{
			name:  "partial address only",
			patch: models.SupermarketPatch{Address: ptr("2 High St")},
			mode:  Partial,
			check: func(t *testing.T, got models.Supermarket) {
				if got.Address != "2 High St" || got.Name != "Corner Shop" {
					t.Errorf("unexpected result: %+v", got)
				}
			},
		},
		{
			name:    "partial invalid phone",
			patch:   models.SupermarketPatch{Name: ptr("New Name"), PhoneNumber: ptr("0861234567")},
			mode:    Partial,
			wantErr: true,
		},
		{
			name:    "full with missing field",
			patch:   models.SupermarketPatch{Name: ptr("A"), Address: ptr("B"), PhoneNumber: ptr("0891234567")},
			mode:    Full,
			wantErr: true,
		},
		{
			name: "full replaces everything but items",
			patch: models.SupermarketPatch{
				Name:        ptr("Mega Mart"),
				Address:     ptr("9 Ring Rd"),
				PhoneNumber: ptr("0891234567"),
				WorkHours:   ptr("07:00-23:00"),
			},
			mode: Full,
			check: func(t *testing.T, got models.Supermarket) {
				if got.Name != "Mega Mart" || got.WorkHours != "07:00-23:00" {
					t.Errorf("unexpected result: %+v", got)
				}
				if len(got.ItemIDs) != 1 || got.ItemIDs[0] != "item-1" {
					t.Errorf("items changed: %v", got.ItemIDs)
				}
				if got.ID != "sm-1" {
					t.Errorf("ID changed: %s", got.ID)
				}
			},
		},
		{
			name:    "full with bad hours",
			patch:   models.SupermarketPatch{Name: ptr("A"), Address: ptr("B"), PhoneNumber: ptr("0891234567"), WorkHours: ptr("20:00-08:00")},
			mode:    Full,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := sampleSupermarket()
			got, err := Supermarket(existing, tt.patch, tt.mode)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Supermarket() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, validation.ErrInvalidData) {
					t.Errorf("expected ErrInvalidData, got %v", err)
				}
				if got.Name != existing.Name {
					t.Errorf("failed merge returned modified record: %+v", got)
				}
				return
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func samplePurchase() models.Purchase {
	return models.Purchase{
		ID:            7,
		SupermarketID: "sm-1",
		ItemIDs:       []string{"a", "b"},
		PaymentType:   models.PaymentTypeCash,
		CashAmount:    decimal.NewNullDecimal(decimal.NewFromInt(150)),
		Price:         decimal.NewFromInt(100),
		ChangeAmount:  decimal.NewFromInt(50),
		TimeOfPayment: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestPurchase_PartialKeepsPaymentType(t *testing.T) {
	existing := samplePurchase()
	next, err := Purchase(existing, models.PurchasePatch{ItemIDs: []string{"c"}}, Partial)
	if err != nil {
		t.Fatalf("Purchase() failed: %v", err)
	}
	if next.PaymentType != models.PaymentTypeCash {
		t.Errorf("payment type changed: %s", next.PaymentType)
	}
	if len(next.ItemIDs) != 1 || next.ItemIDs[0] != "c" {
		t.Errorf("item IDs = %v", next.ItemIDs)
	}
	if !next.TimeOfPayment.Equal(existing.TimeOfPayment) {
		t.Errorf("time of payment changed: %v", next.TimeOfPayment)
	}
	if len(existing.ItemIDs) != 2 {
		t.Errorf("existing record mutated: %v", existing.ItemIDs)
	}
}

func TestPurchase_PartialPaymentTypeRevalidated(t *testing.T) {
	_, err := Purchase(samplePurchase(), models.PurchasePatch{PaymentType: ptr("bitcoin")}, Partial)
	if !errors.Is(err, validation.ErrInvalidData) {
		t.Fatalf("expected ErrInvalidData, got %v", err)
	}

	next, err := Purchase(samplePurchase(), models.PurchasePatch{PaymentType: ptr("card")}, Partial)
	if err != nil {
		t.Fatalf("Purchase() failed: %v", err)
	}
	if next.PaymentType != models.PaymentTypeCard {
		t.Errorf("payment type = %s, want CARD", next.PaymentType)
	}
}

func TestPurchase_FullReplacesWithAbsentValues(t *testing.T) {
	next, err := Purchase(samplePurchase(), models.PurchasePatch{PaymentType: ptr("CARD")}, Full)
	if err != nil {
		t.Fatalf("Purchase() failed: %v", err)
	}
	if next.SupermarketID != "" || next.ItemIDs != nil || next.CashAmount.Valid {
		t.Errorf("full merge kept old values: %+v", next)
	}
	if next.ID != 7 {
		t.Errorf("ID changed: %d", next.ID)
	}

	if _, err := Purchase(samplePurchase(), models.PurchasePatch{}, Full); err == nil {
		t.Error("full merge without payment type should fail")
	}
}

func TestPurchase_TimeOfPaymentOverwrite(t *testing.T) {
	when := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	next, err := Purchase(samplePurchase(), models.PurchasePatch{TimeOfPayment: &when}, Partial)
	if err != nil {
		t.Fatalf("Purchase() failed: %v", err)
	}
	if !next.TimeOfPayment.Equal(when) {
		t.Errorf("time of payment = %v, want %v", next.TimeOfPayment, when)
	}
}
