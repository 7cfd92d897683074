package api

import "lavka/internal/types"

type productsResponse struct {
	Products []*types.Product `json:"products"`
}

type notesResponse struct {
	Notes []*types.Note `json:"notes"`
}

type noteResponse struct {
	Note *types.Note `json:"note"`
}

type userResponse struct {
	User *types.User `json:"user"`
}

type usersResponse struct {
	Users []*types.User `json:"users"`
}

type ordersResponse struct {
	Orders []*types.Order `json:"orders"`
}

type orderResponse struct {
	Order *types.Order `json:"order"`
}

type feedbackResponse struct {
	Feedback []*types.Feedback `json:"feedback"`
}

// SearchResults is the combined notes+products payload of /api/search.
type SearchResults struct {
	Notes    []*types.Note    `json:"notes"`
	Products []*types.Product `json:"products"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type ProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type PasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type FeedbackRequest struct {
	Message string `json:"message"`
	Rating  int    `json:"rating,omitempty"`
}

// NoteForm carries the editor fields. The server accepts them as form
// data, so they go over the wire as a multipart body.
type NoteForm struct {
	Title   string
	Content string
	Tags    string
}

func (f NoteForm) form() Form {
	return Form{
		"title":   f.Title,
		"content": f.Content,
		"tags":    f.Tags,
	}
}

type HealthResponse struct {
	Status string `json:"status"`
}
