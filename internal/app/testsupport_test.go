package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"lavka/internal/api"
	"lavka/internal/types"
)

// fakeAPI lets each test fake one concern at a time; nil funcs answer
// with empty success.
type fakeAPI struct {
	listProducts   func(query string) ([]*types.Product, api.Result)
	getCart        func() (*types.Cart, api.Result)
	addCartItem    func(productID, quantity int) api.Result
	removeCartItem func(productID int) api.Result
	clearCart      func() api.Result
	checkout       func() (*types.Order, api.Result)
	listNotes      func(query string) ([]*types.Note, api.Result)
	createNote     func(form api.NoteForm) (*types.Note, api.Result)
	updateNote     func(id int, form api.NoteForm) (*types.Note, api.Result)
	deleteNote     func(id int) api.Result
	me             func() (*types.User, api.Result)
	login          func(req api.LoginRequest) (*types.User, api.Result)
	register       func(req api.RegisterRequest) (*types.User, api.Result)
	logout         func() api.Result
	adminUsers     func() ([]*types.User, api.Result)
	adminOrders    func() ([]*types.Order, api.Result)
	listFeedback   func() ([]*types.Feedback, api.Result)
}

func okRes() api.Result {
	return api.Result{OK: true, Status: 200}
}

func errRes(status int, message string) api.Result {
	return api.Result{Status: status, Err: message}
}

func (f *fakeAPI) ListProducts(_ context.Context, query string) ([]*types.Product, api.Result) {
	if f.listProducts == nil {
		return nil, okRes()
	}
	return f.listProducts(query)
}

func (f *fakeAPI) GetCart(_ context.Context) (*types.Cart, api.Result) {
	if f.getCart == nil {
		return &types.Cart{}, okRes()
	}
	return f.getCart()
}

func (f *fakeAPI) AddCartItem(_ context.Context, productID, quantity int) api.Result {
	if f.addCartItem == nil {
		return okRes()
	}
	return f.addCartItem(productID, quantity)
}

func (f *fakeAPI) RemoveCartItem(_ context.Context, productID int) api.Result {
	if f.removeCartItem == nil {
		return okRes()
	}
	return f.removeCartItem(productID)
}

func (f *fakeAPI) ClearCart(_ context.Context) api.Result {
	if f.clearCart == nil {
		return okRes()
	}
	return f.clearCart()
}

func (f *fakeAPI) Checkout(_ context.Context) (*types.Order, api.Result) {
	if f.checkout == nil {
		return nil, okRes()
	}
	return f.checkout()
}

func (f *fakeAPI) ListNotes(_ context.Context, query string) ([]*types.Note, api.Result) {
	if f.listNotes == nil {
		return nil, okRes()
	}
	return f.listNotes(query)
}

func (f *fakeAPI) CreateNote(_ context.Context, form api.NoteForm) (*types.Note, api.Result) {
	if f.createNote == nil {
		return nil, okRes()
	}
	return f.createNote(form)
}

func (f *fakeAPI) UpdateNote(_ context.Context, id int, form api.NoteForm) (*types.Note, api.Result) {
	if f.updateNote == nil {
		return nil, okRes()
	}
	return f.updateNote(id, form)
}

func (f *fakeAPI) DeleteNote(_ context.Context, id int) api.Result {
	if f.deleteNote == nil {
		return okRes()
	}
	return f.deleteNote(id)
}

func (f *fakeAPI) Me(_ context.Context) (*types.User, api.Result) {
	if f.me == nil {
		return nil, errRes(401, "Не авторизован")
	}
	return f.me()
}

func (f *fakeAPI) Login(_ context.Context, req api.LoginRequest) (*types.User, api.Result) {
	if f.login == nil {
		return nil, errRes(401, "Неверный email или пароль")
	}
	return f.login(req)
}

func (f *fakeAPI) Register(_ context.Context, req api.RegisterRequest) (*types.User, api.Result) {
	if f.register == nil {
		return nil, errRes(400, "Не удалось зарегистрироваться")
	}
	return f.register(req)
}

func (f *fakeAPI) Logout(_ context.Context) api.Result {
	if f.logout == nil {
		return okRes()
	}
	return f.logout()
}

func (f *fakeAPI) AdminUsers(_ context.Context) ([]*types.User, api.Result) {
	if f.adminUsers == nil {
		return nil, okRes()
	}
	return f.adminUsers()
}

func (f *fakeAPI) AdminOrders(_ context.Context) ([]*types.Order, api.Result) {
	if f.adminOrders == nil {
		return nil, okRes()
	}
	return f.adminOrders()
}

func (f *fakeAPI) ListFeedback(_ context.Context) ([]*types.Feedback, api.Result) {
	if f.listFeedback == nil {
		return nil, okRes()
	}
	return f.listFeedback()
}

// newTestModel returns a signed-in model sized for assertions.
func newTestModel(f *fakeAPI) *Model {
	m := NewModel(f, Options{})
	m.resize(100, 30)
	m.user = &types.User{ID: 1, Email: "user@example.com", Role: "user"}
	m.view = viewShop
	m.started = true
	return &m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
