package app

import (
	"context"

	"lavka/internal/api"
	"lavka/internal/types"
)

// Narrow API surfaces so tests can fake one concern at a time.

type CatalogAPI interface {
	ListProducts(ctx context.Context, query string) ([]*types.Product, api.Result)
	GetCart(ctx context.Context) (*types.Cart, api.Result)
	AddCartItem(ctx context.Context, productID, quantity int) api.Result
	RemoveCartItem(ctx context.Context, productID int) api.Result
	ClearCart(ctx context.Context) api.Result
	Checkout(ctx context.Context) (*types.Order, api.Result)
}

type NotesAPI interface {
	ListNotes(ctx context.Context, query string) ([]*types.Note, api.Result)
	CreateNote(ctx context.Context, form api.NoteForm) (*types.Note, api.Result)
	UpdateNote(ctx context.Context, id int, form api.NoteForm) (*types.Note, api.Result)
	DeleteNote(ctx context.Context, id int) api.Result
}

type AuthAPI interface {
	Me(ctx context.Context) (*types.User, api.Result)
	Login(ctx context.Context, req api.LoginRequest) (*types.User, api.Result)
	Register(ctx context.Context, req api.RegisterRequest) (*types.User, api.Result)
	Logout(ctx context.Context) api.Result
}

type AdminAPI interface {
	AdminUsers(ctx context.Context) ([]*types.User, api.Result)
	AdminOrders(ctx context.Context) ([]*types.Order, api.Result)
	ListFeedback(ctx context.Context) ([]*types.Feedback, api.Result)
}

type API interface {
	CatalogAPI
	NotesAPI
	AuthAPI
	AdminAPI
}
