package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmChoice int

const (
	confirmChoiceNone confirmChoice = iota
	confirmChoiceConfirm
	confirmChoiceCancel
)

const confirmMaxWidth = 56

// ConfirmController is the single modal confirmation prompt. Destructive
// actions (note deletion) must pass through it before any request is
// issued.
type ConfirmController struct {
	active       bool
	title        string
	message      string
	confirmLabel string
	cancelLabel  string
	selected     int
}

func NewConfirmController() *ConfirmController {
	return &ConfirmController{}
}

func (c *ConfirmController) IsOpen() bool {
	return c != nil && c.active
}

func (c *ConfirmController) Open(title, message, confirmLabel, cancelLabel string) {
	if c == nil {
		return
	}
	c.active = true
	c.title = strings.TrimSpace(title)
	c.message = strings.TrimSpace(message)
	if confirmLabel == "" {
		confirmLabel = "Да"
	}
	if cancelLabel == "" {
		cancelLabel = "Отмена"
	}
	c.confirmLabel = confirmLabel
	c.cancelLabel = cancelLabel
	c.selected = 0
}

func (c *ConfirmController) Close() {
	if c == nil {
		return
	}
	c.active = false
	c.title = ""
	c.message = ""
	c.confirmLabel = ""
	c.cancelLabel = ""
	c.selected = 0
}

func (c *ConfirmController) HandleKey(msg tea.KeyMsg) (bool, confirmChoice) {
	if c == nil || !c.active {
		return false, confirmChoiceNone
	}
	switch msg.String() {
	case "esc", "q":
		return true, confirmChoiceCancel
	case "left", "h":
		c.selected = 0
		return true, confirmChoiceNone
	case "right", "l":
		c.selected = 1
		return true, confirmChoiceNone
	case "tab":
		c.selected = 1 - c.selected
		return true, confirmChoiceNone
	case "y":
		return true, confirmChoiceConfirm
	case "n":
		return true, confirmChoiceCancel
	case "enter":
		if c.selected == 0 {
			return true, confirmChoiceConfirm
		}
		return true, confirmChoiceCancel
	}
	return true, confirmChoiceNone
}

func (c *ConfirmController) View(maxWidth int) string {
	if !c.IsOpen() {
		return ""
	}
	width := min(confirmMaxWidth, max(24, maxWidth-4))
	inner := width - 4

	confirm := buttonStyle.Render(c.confirmLabel)
	cancel := buttonFocusStyle.Render(c.cancelLabel)
	if c.selected == 0 {
		confirm = buttonFocusStyle.Render(c.confirmLabel)
		cancel = buttonStyle.Render(c.cancelLabel)
	}

	lines := []string{titleStyle.Render(truncateToWidth(c.title, inner))}
	if c.message != "" {
		lines = append(lines, mutedStyle.Render(truncateToWidth(c.message, inner)))
	}
	lines = append(lines, "", confirm+"  "+cancel)
	return dialogStyle.Width(width).Render(strings.Join(lines, "\n"))
}
