package service

import (
	"github.com/mmynk/supermarket/internal/market"
	"github.com/mmynk/supermarket/internal/models"
)

// Item messages

type CreateItemRequest struct {
	Item models.ItemPatch `json:"item"`
}

type GetItemRequest struct {
	ID string `json:"id"`
}

type ListItemsRequest struct{}

type ListItemsResponse struct {
	Items []*models.Item `json:"items"`
}

// UpdateItemRequest serves both ReplaceItem and PatchItem.
type UpdateItemRequest struct {
	ID   string           `json:"id"`
	Item models.ItemPatch `json:"item"`
}

type DeleteItemRequest struct {
	ID string `json:"id"`
}

type ItemResponse struct {
	Item *models.Item `json:"item"`
}

// Supermarket messages

type CreateSupermarketRequest struct {
	Supermarket models.SupermarketPatch `json:"supermarket"`
}

type GetSupermarketRequest struct {
	ID string `json:"id"`
}

type SupermarketResponse struct {
	Supermarket *models.Supermarket `json:"supermarket"`
}

type GetSupermarketInfoResponse struct {
	Info *models.SupermarketInfo `json:"info"`
}

type ListSupermarketsRequest struct{}

type ListSupermarketsResponse struct {
	Supermarkets []*models.Supermarket `json:"supermarkets"`
}

// UpdateSupermarketRequest serves both ReplaceSupermarket and PatchSupermarket.
type UpdateSupermarketRequest struct {
	ID          string                  `json:"id"`
	Supermarket models.SupermarketPatch `json:"supermarket"`
}

type DeleteSupermarketRequest struct {
	ID string `json:"id"`
}

type AddItemsRequest struct {
	SupermarketID string   `json:"supermarketId"`
	ItemIDs       []string `json:"itemIds"`
}

type AddItemsResponse struct {
	Result *models.AddItemsResult `json:"result"`
}

// Purchase messages

type MakePurchaseRequest struct {
	Purchase market.PurchaseInput `json:"purchase"`
}

// UpdatePurchaseRequest serves both ReplacePurchase and PatchPurchase.
type UpdatePurchaseRequest struct {
	ID       int64               `json:"id"`
	Purchase market.PurchaseInput `json:"purchase"`
}

type GetPurchaseRequest struct {
	ID int64 `json:"id"`
}

type ListPurchasesRequest struct{}

type ListPurchasesResponse struct {
	Purchases []*models.Purchase `json:"purchases"`
}

type DeletePurchaseRequest struct {
	ID int64 `json:"id"`
}

type PurchaseResponse struct {
	Purchase *models.Purchase `json:"purchase"`
}

// DeleteResponse is returned by every Delete procedure.
type DeleteResponse struct{}
