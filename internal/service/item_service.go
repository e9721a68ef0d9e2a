package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/supermarket/internal/market"
)

// ItemService implements the Connect ItemService
type ItemService struct {
	items *market.ItemService
}

// NewItemService creates a new ItemService backed by the item facade.
func NewItemService(items *market.ItemService) *ItemService {
	return &ItemService{items: items}
}

func (s *ItemService) CreateItem(ctx context.Context, req *connect.Request[CreateItemRequest]) (*connect.Response[ItemResponse], error) {
	item, err := s.items.Create(ctx, req.Msg.Item)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ItemResponse{Item: item}), nil
}

func (s *ItemService) GetItem(ctx context.Context, req *connect.Request[GetItemRequest]) (*connect.Response[ItemResponse], error) {
	item, err := s.items.Get(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ItemResponse{Item: item}), nil
}

func (s *ItemService) ListItems(ctx context.Context, req *connect.Request[ListItemsRequest]) (*connect.Response[ListItemsResponse], error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListItemsResponse{Items: items}), nil
}

func (s *ItemService) ReplaceItem(ctx context.Context, req *connect.Request[UpdateItemRequest]) (*connect.Response[ItemResponse], error) {
	item, err := s.items.Replace(ctx, req.Msg.ID, req.Msg.Item)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ItemResponse{Item: item}), nil
}

func (s *ItemService) PatchItem(ctx context.Context, req *connect.Request[UpdateItemRequest]) (*connect.Response[ItemResponse], error) {
	item, err := s.items.Patch(ctx, req.Msg.ID, req.Msg.Item)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ItemResponse{Item: item}), nil
}

func (s *ItemService) DeleteItem(ctx context.Context, req *connect.Request[DeleteItemRequest]) (*connect.Response[DeleteResponse], error) {
	if err := s.items.Delete(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&DeleteResponse{}), nil
}
