// Package checkout runs the purchase transaction: it validates a checkout
// request, prices it, computes change, stamps the payment date and persists
// the resulting purchase.
package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/supermarket/internal/models"
	"github.com/mmynk/supermarket/internal/storage"
	"github.com/mmynk/supermarket/internal/validation"
)

// Request is a checkout as received from a client.
type Request struct {
	SupermarketID string
	ItemIDs       []string

	// PaymentType is the raw payment label; matching is case-insensitive.
	PaymentType *string

	CashAmount *decimal.Decimal
}

// Pricer computes the price of a purchase.
type Pricer interface {
	Price(ctx context.Context, supermarketID string, itemIDs []string) (decimal.Decimal, error)
}

// PriceFunc adapts a function to Pricer.
type PriceFunc func(ctx context.Context, supermarketID string, itemIDs []string) (decimal.Decimal, error)

// Price calls f.
func (f PriceFunc) Price(ctx context.Context, supermarketID string, itemIDs []string) (decimal.Decimal, error) {
	return f(ctx, supermarketID, itemIDs)
}

// DefaultPrice is charged for every purchase by FixedPrice pricing.
var DefaultPrice = decimal.NewFromInt(100)

// FixedPrice charges the same amount for every purchase regardless of its items.
// TODO: replace with a Pricer that sums item prices once the intended pricing rule is settled.
func FixedPrice(amount decimal.Decimal) Pricer {
	return PriceFunc(func(context.Context, string, []string) (decimal.Decimal, error) {
		return amount, nil
	})
}

// Change returns cash minus price for cash payments and zero otherwise.
// A cash payment without a cash amount yields zero change.
func Change(paymentType models.PaymentType, cash decimal.NullDecimal, price decimal.Decimal) decimal.Decimal {
	if paymentType != models.PaymentTypeCash || !cash.Valid {
		return decimal.Zero
	}
	return cash.Decimal.Sub(price)
}

// Today returns the calendar date of t as midnight UTC.
func Today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Engine executes purchases against a purchase store.
type Engine struct {
	store  storage.PurchaseStore
	pricer Pricer
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithPricer replaces the default fixed pricing.
func WithPricer(p Pricer) Option {
	return func(e *Engine) { e.pricer = p }
}

// WithClock replaces time.Now for stamping payment dates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine that prices every purchase at DefaultPrice
// unless configured otherwise.
func NewEngine(store storage.PurchaseStore, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		pricer: FixedPrice(DefaultPrice),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MakePurchase validates req, computes price and change, stamps today's date
// and persists the purchase. Supermarket and item IDs are stored as given.
func (e *Engine) MakePurchase(ctx context.Context, req Request) (*models.Purchase, error) {
	paymentType, err := validation.PaymentType(req.PaymentType)
	if err != nil {
		return nil, err
	}
	if err := validation.CashAmount(paymentType, req.CashAmount); err != nil {
		return nil, err
	}

	price, err := e.pricer.Price(ctx, req.SupermarketID, req.ItemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to price purchase: %w", err)
	}

	purchase := &models.Purchase{
		SupermarketID: req.SupermarketID,
		ItemIDs:       req.ItemIDs,
		PaymentType:   paymentType,
		Price:         price,
		TimeOfPayment: Today(e.now()),
	}
	if req.CashAmount != nil {
		purchase.CashAmount = decimal.NewNullDecimal(*req.CashAmount)
	}
	purchase.ChangeAmount = Change(paymentType, purchase.CashAmount, price)

	slog.Debug("Purchase priced",
		"supermarket_id", req.SupermarketID,
		"items_count", len(req.ItemIDs),
		"payment_type", paymentType,
		"price", price.String(),
		"change", purchase.ChangeAmount.String(),
	)

	if err := e.store.PutPurchase(ctx, purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// Reprice recomputes the change of an updated purchase from its stored price.
func Reprice(p *models.Purchase) {
	p.ChangeAmount = Change(p.PaymentType, p.CashAmount, p.Price)
}
