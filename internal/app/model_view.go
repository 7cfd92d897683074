package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if m.width == 0 {
		m.resize(80, 24)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")

	if status := strings.TrimSpace(m.status); status != "" {
		b.WriteString(statusStyle.Render(truncateToWidth(status, m.width)))
	}
	b.WriteString("\n")
	if toast := m.toastLine(m.width); toast != "" {
		b.WriteString(toast)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(truncateToWidth(m.helpLine(), m.width)))
	return b.String()
}

func (m *Model) renderHeader() string {
	left := headerStyle.Render(" лавка ")
	if m.view == viewLogin {
		return left
	}
	tabs := []string{left}
	for _, tab := range []struct {
		label string
		v     view
	}{
		{"1 магазин", viewShop},
		{"2 заметки", viewNotes},
		{"3 админ", viewAdmin},
	} {
		if tab.v == viewAdmin && !m.user.IsAdmin() {
			continue
		}
		if tab.v == m.view {
			tabs = append(tabs, tabActiveStyle.Render(tab.label))
		} else {
			tabs = append(tabs, tabStyle.Render(" "+tab.label+" "))
		}
	}
	line := strings.Join(tabs, " ")
	if m.user != nil && m.user.Email != "" {
		email := mutedStyle.Render(m.user.Email)
		pad := m.width - lipgloss.Width(line) - lipgloss.Width(email)
		if pad > 1 {
			line += strings.Repeat(" ", pad) + email
		}
	}
	return line
}

func (m *Model) renderContent() string {
	if m.view == viewLogin {
		return m.login.View()
	}
	if m.confirm.IsOpen() {
		return m.confirm.View(m.width)
	}
	if m.editor.IsOpen() {
		return m.editor.View()
	}
	if m.readerOpen {
		return m.renderReader()
	}
	switch m.view {
	case viewShop:
		return m.renderShop()
	case viewNotes:
		return m.renderNotes()
	case viewAdmin:
		return m.renderAdmin()
	}
	return ""
}

func (m *Model) helpLine() string {
	switch {
	case m.view == viewLogin:
		return "enter отправить · tab поле · ctrl+c выход"
	case m.confirm.IsOpen():
		return "←/→ выбор · enter подтвердить · esc отмена"
	case m.editor.IsOpen():
		return "ctrl+s сохранить · tab поле · esc отмена"
	case m.readerOpen:
		return "↑/↓ прокрутка · y копировать · esc закрыть"
	case m.view == viewShop && m.shopSearching:
		return "поиск: enter готово · esc готово"
	case m.view == viewNotes && m.notesSearching:
		return "поиск: enter готово · esc готово"
	case m.view == viewShop:
		return "/ поиск · ←/→ панель · enter в корзину · d убрать · c заказ · x очистить · tab вкладка · q выход"
	case m.view == viewNotes:
		return "/ поиск · n новая · e изменить · d удалить · enter открыть · y копировать · tab вкладка · q выход"
	case m.view == viewAdmin:
		return "r обновить · tab вкладка · q выход"
	}
	return "q выход"
}

func joinPanes(panes ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}
