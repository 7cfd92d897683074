package types

// CartLine is a server-computed snapshot; the client never derives
// subtotals locally.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

type Cart struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

func (c *Cart) Empty() bool {
	return c == nil || len(c.Items) == 0
}
