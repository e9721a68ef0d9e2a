package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/supermarket/internal/market"
)

// SupermarketService implements the Connect SupermarketService
type SupermarketService struct {
	supermarkets *market.SupermarketService
}

// NewSupermarketService creates a new SupermarketService backed by the supermarket facade.
func NewSupermarketService(supermarkets *market.SupermarketService) *SupermarketService {
	return &SupermarketService{supermarkets: supermarkets}
}

func (s *SupermarketService) CreateSupermarket(ctx context.Context, req *connect.Request[CreateSupermarketRequest]) (*connect.Response[SupermarketResponse], error) {
	sm, err := s.supermarkets.Create(ctx, req.Msg.Supermarket)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&SupermarketResponse{Supermarket: sm}), nil
}

func (s *SupermarketService) GetSupermarket(ctx context.Context, req *connect.Request[GetSupermarketRequest]) (*connect.Response[SupermarketResponse], error) {
	sm, err := s.supermarkets.Get(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&SupermarketResponse{Supermarket: sm}), nil
}

func (s *SupermarketService) GetSupermarketInfo(ctx context.Context, req *connect.Request[GetSupermarketRequest]) (*connect.Response[GetSupermarketInfoResponse], error) {
	info, err := s.supermarkets.Info(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetSupermarketInfoResponse{Info: info}), nil
}

func (s *SupermarketService) ListSupermarkets(ctx context.Context, req *connect.Request[ListSupermarketsRequest]) (*connect.Response[ListSupermarketsResponse], error) {
	sms, err := s.supermarkets.List(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListSupermarketsResponse{Supermarkets: sms}), nil
}

func (s *SupermarketService) ReplaceSupermarket(ctx context.Context, req *connect.Request[UpdateSupermarketRequest]) (*connect.Response[SupermarketResponse], error) {
	sm, err := s.supermarkets.Replace(ctx, req.Msg.ID, req.Msg.Supermarket)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&SupermarketResponse{Supermarket: sm}), nil
}

func (s *SupermarketService) PatchSupermarket(ctx context.Context, req *connect.Request[UpdateSupermarketRequest]) (*connect.Response[SupermarketResponse], error) {
	sm, err := s.supermarkets.Patch(ctx, req.Msg.ID, req.Msg.Supermarket)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&SupermarketResponse{Supermarket: sm}), nil
}

func (s *SupermarketService) DeleteSupermarket(ctx context.Context, req *connect.Request[DeleteSupermarketRequest]) (*connect.Response[DeleteResponse], error) {
	if err := s.supermarkets.Delete(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&DeleteResponse{}), nil
}

// AddItems associates items with a supermarket. Unknown item IDs are skipped.
func (s *SupermarketService) AddItems(ctx context.Context, req *connect.Request[AddItemsRequest]) (*connect.Response[AddItemsResponse], error) {
	slog.Debug("AddItems request",
		"supermarket_id", req.Msg.SupermarketID,
		"item_ids", req.Msg.ItemIDs,
	)
	res, err := s.supermarkets.AddItems(ctx, req.Msg.SupermarketID, req.Msg.ItemIDs)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&AddItemsResponse{Result: res}), nil
}
