package app

import (
	"fmt"
	"strings"
)

func (m *Model) renderAdmin() string {
	width := max(minPanelWidth, m.width-6)
	var lines []string

	lines = append(lines, titleStyle.Render("Пользователи"))
	if len(m.adminUsers) == 0 {
		lines = append(lines, placeholderStyle.Render("нет данных"))
	}
	for _, u := range m.adminUsers {
		row := fmt.Sprintf("%d  %s  %s", u.ID, u.Email, u.Role)
		lines = append(lines, truncateToWidth(row, width))
	}

	lines = append(lines, "", titleStyle.Render("Заказы"))
	if len(m.adminOrders) == 0 {
		lines = append(lines, placeholderStyle.Render("нет данных"))
	}
	for _, o := range m.adminOrders {
		row := fmt.Sprintf("№%d  %s  %s", o.ID, o.Status, formatPrice(o.Total))
		lines = append(lines, truncateToWidth(row, width))
	}

	lines = append(lines, "", titleStyle.Render("Отзывы"))
	if len(m.adminFeedback) == 0 {
		lines = append(lines, placeholderStyle.Render("нет данных"))
	}
	for _, f := range m.adminFeedback {
		row := f.Message
		if f.User != "" {
			row = f.User + ": " + row
		}
		if f.Rating > 0 {
			row = fmt.Sprintf("%s (%d/5)", row, f.Rating)
		}
		lines = append(lines, truncateToWidth(row, width))
	}

	return strings.Join(lines, "\n")
}
