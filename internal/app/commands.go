package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lavka/internal/api"
)

const requestTimeout = 4 * time.Second

func fetchProductsCmd(catalog CatalogAPI, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		products, res := catalog.ListProducts(ctx, query)
		return productsMsg{seq: seq, query: query, products: products, res: res}
	}
}

func fetchCartCmd(catalog CatalogAPI) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		cart, res := catalog.GetCart(ctx)
		return cartMsg{cart: cart, res: res}
	}
}

func addToCartCmd(catalog CatalogAPI, productID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res := catalog.AddCartItem(ctx, productID, 1)
		return cartAddedMsg{productID: productID, res: res}
	}
}

func removeCartItemCmd(catalog CatalogAPI, productID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res := catalog.RemoveCartItem(ctx, productID)
		return cartItemRemovedMsg{productID: productID, res: res}
	}
}

func clearCartCmd(catalog CatalogAPI) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res := catalog.ClearCart(ctx)
		return cartClearedMsg{res: res}
	}
}

func checkoutCmd(catalog CatalogAPI) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		order, res := catalog.Checkout(ctx)
		return checkoutMsg{order: order, res: res}
	}
}

func fetchNotesCmd(notes NotesAPI, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		list, res := notes.ListNotes(ctx, query)
		return notesMsg{seq: seq, query: query, notes: list, res: res}
	}
}

// saveNoteCmd creates when id is zero and updates otherwise, matching the
// editor's editingID contract.
func saveNoteCmd(notes NotesAPI, id int, form api.NoteForm) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if id == 0 {
			note, res := notes.CreateNote(ctx, form)
			saved := noteSavedMsg{created: true, res: res}
			if note != nil {
				saved.id = note.ID
			}
			return saved
		}
		_, res := notes.UpdateNote(ctx, id, form)
		return noteSavedMsg{id: id, res: res}
	}
}

func deleteNoteCmd(notes NotesAPI, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res := notes.DeleteNote(ctx, id)
		return noteDeletedMsg{id: id, res: res}
	}
}

func fetchMeCmd(auth AuthAPI) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		user, res := auth.Me(ctx)
		return meMsg{user: user, res: res}
	}
}

func loginCmd(auth AuthAPI, req api.LoginRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		user, res := auth.Login(ctx, req)
		return loginMsg{user: user, res: res}
	}
}

func registerCmd(auth AuthAPI, req api.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		user, res := auth.Register(ctx, req)
		return loginMsg{registered: true, user: user, res: res}
	}
}

func logoutCmd(auth AuthAPI) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		res := auth.Logout(ctx)
		return logoutMsg{res: res}
	}
}

func fetchAdminCmd(admin AdminAPI) tea.Cmd {
	users := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		list, res := admin.AdminUsers(ctx)
		return adminUsersMsg{users: list, res: res}
	}
	orders := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		list, res := admin.AdminOrders(ctx)
		return adminOrdersMsg{orders: list, res: res}
	}
	feedback := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		entries, res := admin.ListFeedback(ctx)
		return feedbackListMsg{entries: entries, res: res}
	}
	return tea.Batch(users, orders, feedback)
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
