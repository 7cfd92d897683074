package types

// Note mirrors the server's serialized note. UpdatedAt is the raw ISO
// timestamp string; formatting for display happens in the UI layer.
type Note struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Tags      string `json:"tags,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
