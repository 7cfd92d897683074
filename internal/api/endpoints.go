package api

import (
	"context"
	"fmt"
	"net/url"

	"lavka/internal/types"
)

// ListProducts fetches the catalog filtered server-side by query. The
// query parameter is always present, mirroring the page's search box.
func (c *Client) ListProducts(ctx context.Context, query string) ([]*types.Product, Result) {
	res := c.Get(ctx, searchPath("/products", query))
	var out productsResponse
	if res.OK {
		_ = res.Decode(&out)
	}
	return out.Products, res
}

// GetCart fetches the authoritative cart snapshot. The cart is never
// patched locally; every mutation is followed by a re-fetch.
func (c *Client) GetCart(ctx context.Context) (*types.Cart, Result) {
	res := c.Get(ctx, "/cart")
	cart := &types.Cart{}
	if res.OK {
		_ = res.Decode(cart)
	}
	return cart, res
}

func (c *Client) AddCartItem(ctx context.Context, productID, quantity int) Result {
	return c.Post(ctx, "/cart", AddCartItemRequest{ProductID: productID, Quantity: quantity})
}

func (c *Client) RemoveCartItem(ctx context.Context, productID int) Result {
	return c.Delete(ctx, fmt.Sprintf("/cart/%d", productID))
}

func (c *Client) ClearCart(ctx context.Context) Result {
	return c.Post(ctx, "/cart/clear", nil)
}

func (c *Client) Checkout(ctx context.Context) (*types.Order, Result) {
	res := c.Post(ctx, "/checkout", nil)
	var out orderResponse
	if res.OK {
		_ = res.Decode(&out)
	}
	return out.Order, res
}

func (c *Client) ListNotes(ctx context.Context, query string) ([]*types.Note, Result) {
	res := c.Get(ctx, searchPath("/notes", query))
	var out notesResponse
	if res.OK {
		_ = res.Decode(&out)
	}
	return out.Notes, res
}

func (c *Client) CreateNote(ctx context.Context, form NoteForm) (*types.Note, Result) {
	res := c.Post(ctx, "/notes", form.form())
	var out noteResponse
	if res.OK {
		_ = res.Decode(&out)
	}
	return out.Note, res
}

func (c *Client) UpdateNote(ctx context.Context, id int, form NoteForm) (*types.Note, Result) {
	res := c.Put(ctx, fmt.Sprintf("/notes/%d", id), form.form())
	var out noteResponse
	if res.OK {
		_ = res.Decode(&out)
	}
	return out.Note, res
}

func (c *Client) DeleteNote(ctx context.Context, id int) Result {
	return c.Delete(ctx, fmt.Sprintf("/notes/%d", id))
}

func (c *Client) Me(ctx context.Context) (*types.User, Result) {
	res := c.Get(ctx, "/auth/me")
	var out userResponse
	if res.OK {
		_ = res.Decode(&out)
	}
	return out.User, res
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*types.User, Result) {
	res := c.Post(ctx, "/auth/login", req)
	var out userResponse
	if res.OK {
		_ = res.Decode(&out)
	}
	return out.User, res
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*types.User, Result) {
	res := c.Post(ctx, "/auth/register", req)
	var out userResponse
	if res.OK {
		_ = res.Decode(&out)
	}
	return out.User, res
}

// Logout ends the server session and drops the persisted cookie even if
// the call itself fails; a dead local session is never worth keeping.
func (c *Client) Logout(ctx context.Context) Result {
	res := c.Post(ctx, "/auth/logout", nil)
	c.session = ""
	_ = c.clearSession()
	return res
}

func (c *Client) UpdateProfile(ctx context.Context, req ProfileRequest) (*types.User, Result) {
	res := c.Put(ctx, "/auth/profile", req)
	var out userResponse
	if res.OK {
		_ = res.Decode(&out)
	}
	return out.User, res
}

func (c *Client) ChangePassword(ctx context.Context, req PasswordRequest) Result {
	return c.Put(ctx, "/auth/password", req)
}

func (c *Client) SubmitFeedback(ctx context.Context, req FeedbackRequest) Result {
	return c.Post(ctx, "/feedback", req)
}

func (c *Client) ListFeedback(ctx context.Context) ([]*types.Feedback, Result) {
	res := c.Get(ctx, "/feedback")
	var out feedbackResponse
	if res.OK {
		_ = res.Decode(&out)
	}
	return out.Feedback, res
}

func (c *Client) Search(ctx context.Context, query string) (*SearchResults, Result) {
	res := c.Get(ctx, searchPath("/search", query))
	out := &SearchResults{}
	if res.OK {
		_ = res.Decode(out)
	}
	return out, res
}

func (c *Client) AdminUsers(ctx context.Context) ([]*types.User, Result) {
	res := c.Get(ctx, "/admin/users")
	var out usersResponse
	if res.OK {
		_ = res.Decode(&out)
	}
	return out.Users, res
}

func (c *Client) AdminOrders(ctx context.Context) ([]*types.Order, Result) {
	res := c.Get(ctx, "/admin/orders")
	var out ordersResponse
	if res.OK {
		_ = res.Decode(&out)
	}
	return out.Orders, res
}

// Health probes the server root healthcheck, which lives outside the API
// prefix.
func (c *Client) Health(ctx context.Context) (*HealthResponse, Result) {
	res := c.do(ctx, "GET", "/health", nil)
	var out HealthResponse
	if res.OK {
		_ = res.Decode(&out)
	}
	return &out, res
}

func searchPath(base, query string) string {
	return base + "?" + url.Values{"q": {query}}.Encode()
}
