package app

import (
	"strings"
	"testing"
)

func TestNotePreviewBoundary(t *testing.T) {
	exact := strings.Repeat("б", notePreviewLimit)
	if got := notePreview(exact); got != exact {
		t.Fatalf("expected content at the limit untouched, got %d runes", len([]rune(got)))
	}

	over := exact + "х"
	got := notePreview(over)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected an ellipsis on truncated content, got %q", got[len(got)-10:])
	}
	if runes := []rune(got); len(runes) != notePreviewLimit+1 {
		t.Fatalf("expected %d runes plus ellipsis, got %d", notePreviewLimit, len(runes))
	}
}

func TestFormatNoteDate(t *testing.T) {
	cases := []struct {
		iso  string
		want string
	}{
		{"2026-01-02T10:30:00.123456", "2 янв. 2026"},
		{"2025-12-31T23:59:59", "31 дек. 2025"},
		{"2026-05-09T00:00:00Z", "9 мая 2026"},
		{"", ""},
		{"not-a-date", ""},
	}
	for _, tc := range cases {
		if got := formatNoteDate(tc.iso); got != tc.want {
			t.Fatalf("formatNoteDate(%q) = %q, want %q", tc.iso, got, tc.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{10, "10₽"},
		{12.5, "12.5₽"},
		{0, "0₽"},
		{99.99, "99.99₽"},
	}
	for _, tc := range cases {
		if got := formatPrice(tc.value); got != tc.want {
			t.Fatalf("formatPrice(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("короткая", 20); got != "короткая" {
		t.Fatalf("expected short text untouched, got %q", got)
	}
	got := truncateToWidth("очень длинная строка", 10)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected an ellipsis, got %q", got)
	}
}
