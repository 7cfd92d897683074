package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

func TestConfirmDefaultsToConfirmButton(t *testing.T) {
	c := NewConfirmController()
	c.Open("Удалить заметку?", "Список покупок", "", "")

	handled, choice := c.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if !handled || choice != confirmChoiceConfirm {
		t.Fatalf("expected enter on the default button to confirm, got %d", choice)
	}
}

func TestConfirmArrowSelectsCancel(t *testing.T) {
	c := NewConfirmController()
	c.Open("Удалить заметку?", "", "", "")

	c.HandleKey(runeKey('l'))
	_, choice := c.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if choice != confirmChoiceCancel {
		t.Fatalf("expected enter after right to cancel, got %d", choice)
	}
}

func TestConfirmShortcutKeys(t *testing.T) {
	c := NewConfirmController()
	c.Open("Удалить заметку?", "", "", "")

	if _, choice := c.HandleKey(runeKey('y')); choice != confirmChoiceConfirm {
		t.Fatalf("expected y to confirm, got %d", choice)
	}
	if _, choice := c.HandleKey(runeKey('n')); choice != confirmChoiceCancel {
		t.Fatalf("expected n to cancel, got %d", choice)
	}
	if _, choice := c.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}); choice != confirmChoiceCancel {
		t.Fatalf("expected esc to cancel, got %d", choice)
	}
}

func TestConfirmSwallowsUnrelatedKeys(t *testing.T) {
	c := NewConfirmController()
	c.Open("Удалить заметку?", "", "", "")

	handled, choice := c.HandleKey(runeKey('d'))
	if !handled {
		t.Fatalf("expected the open prompt to swallow keys")
	}
	if choice != confirmChoiceNone {
		t.Fatalf("expected no choice from an unrelated key, got %d", choice)
	}
}

func TestConfirmViewShowsLabels(t *testing.T) {
	c := NewConfirmController()
	c.Open("Удалить заметку?", "Список покупок", "Удалить", "Отмена")

	plain := xansi.Strip(c.View(80))
	for _, want := range []string{"Удалить заметку?", "Список покупок", "Удалить", "Отмена"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("expected %q in prompt, got:\n%s", want, plain)
		}
	}
}

func TestConfirmClosedHandlesNothing(t *testing.T) {
	c := NewConfirmController()
	if handled, _ := c.HandleKey(runeKey('y')); handled {
		t.Fatalf("expected a closed prompt to ignore keys")
	}
	if c.View(80) != "" {
		t.Fatalf("expected an empty view while closed")
	}
}
