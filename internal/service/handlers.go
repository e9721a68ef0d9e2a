package service

import (
	"net/http"

	"connectrpc.com/connect"
)

const (
	ItemServiceName        = "supermarket.v1.ItemService"
	SupermarketServiceName = "supermarket.v1.SupermarketService"
	PurchaseServiceName    = "supermarket.v1.PurchaseService"
)

// Procedure paths, in the "/package.Service/Method" form Connect routes on.
const (
	ItemServiceCreateItemProcedure  = "/" + ItemServiceName + "/CreateItem"
	ItemServiceGetItemProcedure     = "/" + ItemServiceName + "/GetItem"
	ItemServiceListItemsProcedure   = "/" + ItemServiceName + "/ListItems"
	ItemServiceReplaceItemProcedure = "/" + ItemServiceName + "/ReplaceItem"
	ItemServicePatchItemProcedure   = "/" + ItemServiceName + "/PatchItem"
	ItemServiceDeleteItemProcedure  = "/" + ItemServiceName + "/DeleteItem"

	SupermarketServiceCreateSupermarketProcedure  = "/" + SupermarketServiceName + "/CreateSupermarket"
	SupermarketServiceGetSupermarketProcedure     = "/" + SupermarketServiceName + "/GetSupermarket"
	SupermarketServiceGetSupermarketInfoProcedure = "/" + SupermarketServiceName + "/GetSupermarketInfo"
	SupermarketServiceListSupermarketsProcedure   = "/" + SupermarketServiceName + "/ListSupermarkets"
	SupermarketServiceReplaceSupermarketProcedure = "/" + SupermarketServiceName + "/ReplaceSupermarket"
	SupermarketServicePatchSupermarketProcedure   = "/" + SupermarketServiceName + "/PatchSupermarket"
	SupermarketServiceDeleteSupermarketProcedure  = "/" + SupermarketServiceName + "/DeleteSupermarket"
	SupermarketServiceAddItemsProcedure           = "/" + SupermarketServiceName + "/AddItems"

	PurchaseServiceMakePurchaseProcedure    = "/" + PurchaseServiceName + "/MakePurchase"
	PurchaseServiceGetPurchaseProcedure     = "/" + PurchaseServiceName + "/GetPurchase"
	PurchaseServiceListPurchasesProcedure   = "/" + PurchaseServiceName + "/ListPurchases"
	PurchaseServiceReplacePurchaseProcedure = "/" + PurchaseServiceName + "/ReplacePurchase"
	PurchaseServicePatchPurchaseProcedure   = "/" + PurchaseServiceName + "/PatchPurchase"
	PurchaseServiceDeletePurchaseProcedure  = "/" + PurchaseServiceName + "/DeletePurchase"
)

// withCodec puts the JSON codec ahead of caller-supplied options.
func withCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

// NewItemServiceHandler builds an HTTP handler for every ItemService procedure.
// It returns the path on which to mount the handler and the handler itself.
func NewItemServiceHandler(svc *ItemService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	mux := http.NewServeMux()
	mux.Handle(ItemServiceCreateItemProcedure, connect.NewUnaryHandler(ItemServiceCreateItemProcedure, svc.CreateItem, opts...))
	mux.Handle(ItemServiceGetItemProcedure, connect.NewUnaryHandler(ItemServiceGetItemProcedure, svc.GetItem, opts...))
	mux.Handle(ItemServiceListItemsProcedure, connect.NewUnaryHandler(ItemServiceListItemsProcedure, svc.ListItems, opts...))
	mux.Handle(ItemServiceReplaceItemProcedure, connect.NewUnaryHandler(ItemServiceReplaceItemProcedure, svc.ReplaceItem, opts...))
	mux.Handle(ItemServicePatchItemProcedure, connect.NewUnaryHandler(ItemServicePatchItemProcedure, svc.PatchItem, opts...))
	mux.Handle(ItemServiceDeleteItemProcedure, connect.NewUnaryHandler(ItemServiceDeleteItemProcedure, svc.DeleteItem, opts...))
	return "/" + ItemServiceName + "/", mux
}

// NewSupermarketServiceHandler builds an HTTP handler for every SupermarketService procedure.
func NewSupermarketServiceHandler(svc *SupermarketService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	mux := http.NewServeMux()
	mux.Handle(SupermarketServiceCreateSupermarketProcedure, connect.NewUnaryHandler(SupermarketServiceCreateSupermarketProcedure, svc.CreateSupermarket, opts...))
	mux.Handle(SupermarketServiceGetSupermarketProcedure, connect.NewUnaryHandler(SupermarketServiceGetSupermarketProcedure, svc.GetSupermarket, opts...))
	mux.Handle(SupermarketServiceGetSupermarketInfoProcedure, connect.NewUnaryHandler(SupermarketServiceGetSupermarketInfoProcedure, svc.GetSupermarketInfo, opts...))
	mux.Handle(SupermarketServiceListSupermarketsProcedure, connect.NewUnaryHandler(SupermarketServiceListSupermarketsProcedure, svc.ListSupermarkets, opts...))
	mux.Handle(SupermarketServiceReplaceSupermarketProcedure, connect.NewUnaryHandler(SupermarketServiceReplaceSupermarketProcedure, svc.ReplaceSupermarket, opts...))
	mux.Handle(SupermarketServicePatchSupermarketProcedure, connect.NewUnaryHandler(SupermarketServicePatchSupermarketProcedure, svc.PatchSupermarket, opts...))
	mux.Handle(SupermarketServiceDeleteSupermarketProcedure, connect.NewUnaryHandler(SupermarketServiceDeleteSupermarketProcedure, svc.DeleteSupermarket, opts...))
	mux.Handle(SupermarketServiceAddItemsProcedure, connect.NewUnaryHandler(SupermarketServiceAddItemsProcedure, svc.AddItems, opts...))
	return "/" + SupermarketServiceName + "/", mux
}

// NewPurchaseServiceHandler builds an HTTP handler for every PurchaseService procedure.
func NewPurchaseServiceHandler(svc *PurchaseService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	mux := http.NewServeMux()
	mux.Handle(PurchaseServiceMakePurchaseProcedure, connect.NewUnaryHandler(PurchaseServiceMakePurchaseProcedure, svc.MakePurchase, opts...))
	mux.Handle(PurchaseServiceGetPurchaseProcedure, connect.NewUnaryHandler(PurchaseServiceGetPurchaseProcedure, svc.GetPurchase, opts...))
	mux.Handle(PurchaseServiceListPurchasesProcedure, connect.NewUnaryHandler(PurchaseServiceListPurchasesProcedure, svc.ListPurchases, opts...))
	mux.Handle(PurchaseServiceReplacePurchaseProcedure, connect.NewUnaryHandler(PurchaseServiceReplacePurchaseProcedure, svc.ReplacePurchase, opts...))
	mux.Handle(PurchaseServicePatchPurchaseProcedure, connect.NewUnaryHandler(PurchaseServicePatchPurchaseProcedure, svc.PatchPurchase, opts...))
	mux.Handle(PurchaseServiceDeletePurchaseProcedure, connect.NewUnaryHandler(PurchaseServiceDeletePurchaseProcedure, svc.DeletePurchase, opts...))
	return "/" + PurchaseServiceName + "/", mux
}
