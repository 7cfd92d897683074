package types

type Feedback struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	Rating    int    `json:"rating,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	User      string `json:"user,omitempty"`
}
