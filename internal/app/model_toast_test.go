package app

import (
	"strings"
	"testing"
	"time"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestToastExpiresAfterDeadline(t *testing.T) {
	m := newTestModel(&fakeAPI{})
	m.showInfoToast("Товар добавлен в корзину")

	if !m.toastActive(time.Now()) {
		t.Fatalf("expected the toast to be active right after showing")
	}

	m.handleTick(tickMsg(time.Now().Add(m.toastDuration + time.Second)))
	if m.toastText != "" {
		t.Fatalf("expected the toast to clear after its deadline, got %q", m.toastText)
	}
}

func TestToastSurvivesEarlyTicks(t *testing.T) {
	m := newTestModel(&fakeAPI{})
	m.showInfoToast("Заметка создана")

	m.handleTick(tickMsg(time.Now().Add(m.toastDuration / 2)))
	if m.toastText != "Заметка создана" {
		t.Fatalf("expected the toast to survive an early tick, got %q", m.toastText)
	}
}

func TestToastLastWriterWins(t *testing.T) {
	m := newTestModel(&fakeAPI{})
	m.showInfoToast("Первое")
	first := m.toastUntil

	time.Sleep(5 * time.Millisecond)
	m.showErrorToast("Второе")

	if m.toastText != "Второе" {
		t.Fatalf("expected the newer toast to replace the older, got %q", m.toastText)
	}
	if m.toastLevel != toastLevelError {
		t.Fatalf("expected the newer level to win, got %d", m.toastLevel)
	}
	if !m.toastUntil.After(first) {
		t.Fatalf("expected the deadline to restart")
	}
}

func TestToastIgnoresBlankMessages(t *testing.T) {
	m := newTestModel(&fakeAPI{})
	m.showInfoToast("   ")
	if m.toastText != "" {
		t.Fatalf("expected blank messages to be ignored, got %q", m.toastText)
	}
}

func TestToastLineRendersMessage(t *testing.T) {
	m := newTestModel(&fakeAPI{})
	m.showInfoToast("Корзина очищена")

	plain := xansi.Strip(m.toastLine(80))
	if !strings.Contains(plain, "Корзина очищена") {
		t.Fatalf("expected the toast text in the line, got %q", plain)
	}

	m.clearToast()
	if m.toastLine(80) != "" {
		t.Fatalf("expected no toast line after clearing")
	}
}
