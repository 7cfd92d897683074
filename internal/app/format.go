package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// notePreviewLimit caps the note card preview, matching the storefront's
// card layout.
const notePreviewLimit = 150

// ruShortMonths follows the ru-RU short month names the web pages used
// for note timestamps.
var ruShortMonths = [...]string{
	"янв.", "февр.", "мар.", "апр.", "мая", "июн.",
	"июл.", "авг.", "сент.", "окт.", "нояб.", "дек.",
}

// notePreview returns content capped at notePreviewLimit runes, with an
// ellipsis appended only when something was actually cut.
func notePreview(content string) string {
	runes := []rune(content)
	if len(runes) <= notePreviewLimit {
		return content
	}
	return string(runes[:notePreviewLimit]) + "…"
}

// formatNoteDate renders an ISO timestamp as "day short-month year" in
// Russian. Absent or unparseable timestamps render as the empty string.
func formatNoteDate(iso string) string {
	ts, ok := parseServerTime(iso)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d %s %d", ts.Day(), ruShortMonths[ts.Month()-1], ts.Year())
}

func parseServerTime(iso string) (time.Time, bool) {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
	} {
		if ts, err := time.Parse(layout, iso); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// formatPrice prints rubles the way the server computes them: a plain
// decimal with no trailing zeros and the ₽ sign attached.
func formatPrice(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "₽"
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	if ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return ansi.Cut(text, 0, width-1) + "…"
}
