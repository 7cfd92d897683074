package app

import (
	"time"

	"lavka/internal/api"
	"lavka/internal/types"
)

// Search-driven fetches carry the generation counter that issued them so
// stale responses from abandoned keystrokes can be dropped.

type productsMsg struct {
	seq      int
	query    string
	products []*types.Product
	res      api.Result
}

type cartMsg struct {
	cart *types.Cart
	res  api.Result
}

type cartAddedMsg struct {
	productID int
	res       api.Result
}

type cartItemRemovedMsg struct {
	productID int
	res       api.Result
}

type cartClearedMsg struct {
	res api.Result
}

type checkoutMsg struct {
	order *types.Order
	res   api.Result
}

type notesMsg struct {
	seq   int
	query string
	notes []*types.Note
	res   api.Result
}

type noteSavedMsg struct {
	id      int
	created bool
	res     api.Result
}

type noteDeletedMsg struct {
	id  int
	res api.Result
}

type meMsg struct {
	user *types.User
	res  api.Result
}

type loginMsg struct {
	registered bool
	user       *types.User
	res        api.Result
}

type logoutMsg struct {
	res api.Result
}

type adminUsersMsg struct {
	users []*types.User
	res   api.Result
}

type adminOrdersMsg struct {
	orders []*types.Order
	res    api.Result
}

type feedbackListMsg struct {
	entries []*types.Feedback
	res     api.Result
}

type tickMsg time.Time
