package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/supermarket/internal/market"
)

// PurchaseService implements the Connect PurchaseService
type PurchaseService struct {
	purchases *market.PurchaseService
}

// NewPurchaseService creates a new PurchaseService backed by the purchase facade.
func NewPurchaseService(purchases *market.PurchaseService) *PurchaseService {
	return &PurchaseService{purchases: purchases}
}

func (s *PurchaseService) MakePurchase(ctx context.Context, req *connect.Request[MakePurchaseRequest]) (*connect.Response[PurchaseResponse], error) {
	p, err := s.purchases.MakePurchase(ctx, req.Msg.Purchase.Checkout())
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&PurchaseResponse{Purchase: p}), nil
}

func (s *PurchaseService) GetPurchase(ctx context.Context, req *connect.Request[GetPurchaseRequest]) (*connect.Response[PurchaseResponse], error) {
	p, err := s.purchases.Get(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&PurchaseResponse{Purchase: p}), nil
}

func (s *PurchaseService) ListPurchases(ctx context.Context, req *connect.Request[ListPurchasesRequest]) (*connect.Response[ListPurchasesResponse], error) {
	ps, err := s.purchases.List(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListPurchasesResponse{Purchases: ps}), nil
}

func (s *PurchaseService) ReplacePurchase(ctx context.Context, req *connect.Request[UpdatePurchaseRequest]) (*connect.Response[PurchaseResponse], error) {
	patch, err := req.Msg.Purchase.Patch()
	if err != nil {
		return nil, toConnectError(err)
	}
	p, err := s.purchases.Replace(ctx, req.Msg.ID, patch)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&PurchaseResponse{Purchase: p}), nil
}

func (s *PurchaseService) PatchPurchase(ctx context.Context, req *connect.Request[UpdatePurchaseRequest]) (*connect.Response[PurchaseResponse], error) {
	patch, err := req.Msg.Purchase.Patch()
	if err != nil {
		return nil, toConnectError(err)
	}
	p, err := s.purchases.Patch(ctx, req.Msg.ID, patch)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&PurchaseResponse{Purchase: p}), nil
}

func (s *PurchaseService) DeletePurchase(ctx context.Context, req *connect.Request[DeletePurchaseRequest]) (*connect.Response[DeleteResponse], error) {
	if err := s.purchases.Delete(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&DeleteResponse{}), nil
}
