package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"lavka/internal/types"
)

func (m *Model) handleShopKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "/":
		m.shopSearching = true
		m.shopSearch.SetValue(m.shopQuery)
		m.shopSearch.CursorEnd()
		return m.shopSearch.Focus()
	case "left", "h":
		m.shopPane = paneProducts
	case "right", "l":
		m.shopPane = paneCart
	case "up", "k":
		m.moveShopCursor(-1)
	case "down", "j":
		m.moveShopCursor(1)
	case "enter", "a", " ":
		if m.shopPane == paneProducts {
			if p := m.selectedProduct(); p != nil {
				return addToCartCmd(m.catalog, p.ID)
			}
		}
	case "d", "backspace":
		if m.shopPane == paneCart {
			if line := m.selectedCartLine(); line != nil {
				return removeCartItemCmd(m.catalog, line.Product.ID)
			}
		}
	case "x":
		if !m.cart.Empty() {
			return clearCartCmd(m.catalog)
		}
	case "c":
		return checkoutCmd(m.catalog)
	case "esc":
		if m.shopQuery != "" {
			m.shopQuery = ""
			m.shopSearch.SetValue("")
			m.shopSeq++
			return fetchProductsCmd(m.catalog, m.shopSeq, "")
		}
	}
	return nil
}

// handleShopSearchKey runs while the search input owns the keyboard.
// Every edit re-issues the fetch with a bumped generation counter.
func (m *Model) handleShopSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc":
		m.shopSearching = false
		m.shopSearch.Blur()
		return nil
	}
	before := m.shopSearch.Value()
	var cmd tea.Cmd
	m.shopSearch, cmd = m.shopSearch.Update(msg)
	if value := m.shopSearch.Value(); value != before {
		m.shopQuery = value
		m.shopSeq++
		return tea.Batch(cmd, fetchProductsCmd(m.catalog, m.shopSeq, value))
	}
	return cmd
}

func (m *Model) moveShopCursor(delta int) {
	switch m.shopPane {
	case paneProducts:
		m.productIndex = clampIndex(m.productIndex+delta, len(m.products))
	case paneCart:
		m.cartIndex = clampIndex(m.cartIndex+delta, len(m.cart.Items))
	}
}

func (m *Model) selectedProduct() *types.Product {
	if m.productIndex < 0 || m.productIndex >= len(m.products) {
		return nil
	}
	return m.products[m.productIndex]
}

func (m *Model) selectedCartLine() *types.CartLine {
	if m.cart == nil || m.cartIndex < 0 || m.cartIndex >= len(m.cart.Items) {
		return nil
	}
	return &m.cart.Items[m.cartIndex]
}

func (m *Model) renderShop() string {
	panelWidth := max(minPanelWidth, m.width/2-3)
	inner := panelWidth - 4

	left := m.renderProductsPane(inner)
	right := m.renderCartPane(inner)

	leftStyle, rightStyle := panelBorderStyle, panelBorderStyle
	if m.shopPane == paneProducts {
		leftStyle = paneActiveStyle
	} else {
		rightStyle = paneActiveStyle
	}
	return joinPanes(
		leftStyle.Width(panelWidth).Render(left),
		rightStyle.Width(panelWidth).Render(right),
	)
}

func (m *Model) renderProductsPane(width int) string {
	var lines []string
	lines = append(lines, titleStyle.Render("Товары"))
	if m.shopSearching {
		lines = append(lines, m.shopSearch.View())
	} else if m.shopQuery != "" {
		lines = append(lines, mutedStyle.Render(truncateToWidth("поиск: "+m.shopQuery, width)))
	}
	lines = append(lines, "")

	if len(m.products) == 0 {
		lines = append(lines, placeholderStyle.Render("Ничего не найдено"))
		return strings.Join(lines, "\n")
	}
	// Fixed-width name column keeps the price column aligned.
	nameWidth := max(8, width-14)
	for i, p := range m.products {
		name := runewidth.FillRight(runewidth.Truncate(p.Name, nameWidth, "…"), nameWidth)
		price := priceStyle.Render(formatPrice(p.Price))
		if p.Stock <= 0 {
			price = mutedStyle.Render("нет в наличии")
		}
		row := "  " + name + " " + price
		if i == m.productIndex && m.shopPane == paneProducts {
			row = selectedStyle.Render("> " + name + " " + formatPrice(p.Price))
		}
		lines = append(lines, row)
		if p.Category != "" && i == m.productIndex {
			lines = append(lines, mutedStyle.Render("  "+truncateToWidth(p.Category, width-2)))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCartPane(width int) string {
	lines := []string{titleStyle.Render("Корзина"), ""}
	if !m.cart.Empty() {
		for i, line := range m.cart.Items {
			row := fmt.Sprintf("%s × %d = %s", line.Product.Name, line.Quantity, formatPrice(line.Subtotal))
			row = truncateToWidth(row, width)
			if i == m.cartIndex && m.shopPane == paneCart {
				row = selectedStyle.Render("> " + row)
			}
			lines = append(lines, row)
		}
		lines = append(lines, "")
	}
	total := 0.0
	if m.cart != nil {
		total = m.cart.Total
	}
	lines = append(lines, totalStyle.Render("Итого: "+formatPrice(total)))
	return strings.Join(lines, "\n")
}

func clampIndex(index, length int) int {
	if length == 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	return index
}
