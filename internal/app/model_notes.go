package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"lavka/internal/types"
)

func (m *Model) handleNotesKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "/":
		m.notesSearching = true
		m.notesSearch.SetValue(m.notesQuery)
		m.notesSearch.CursorEnd()
		return m.notesSearch.Focus()
	case "up", "k":
		m.noteIndex = clampIndex(m.noteIndex-1, len(m.noteList))
	case "down", "j":
		m.noteIndex = clampIndex(m.noteIndex+1, len(m.noteList))
	case "n":
		return m.editor.OpenNew()
	case "e":
		// Re-fetch before editing so the form is pre-filled from fresh
		// server state, not from a possibly stale card.
		if note := m.selectedNote(); note != nil {
			m.pendingEditID = note.ID
			return m.reloadNotes()
		}
	case "d":
		if note := m.selectedNote(); note != nil {
			m.confirmNoteID = note.ID
			m.confirm.Open("Удалить заметку?", note.Title, "Удалить", "Отмена")
		}
	case "enter":
		if note := m.selectedNote(); note != nil {
			m.openReader(note)
		}
	case "y":
		if note := m.selectedNote(); note != nil {
			m.copyWithToast(note.Content, "Текст скопирован")
		}
	case "esc":
		if m.notesQuery != "" {
			m.notesQuery = ""
			m.notesSearch.SetValue("")
			return m.reloadNotes()
		}
	}
	return nil
}

func (m *Model) handleNotesSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc":
		m.notesSearching = false
		m.notesSearch.Blur()
		return nil
	}
	before := m.notesSearch.Value()
	var cmd tea.Cmd
	m.notesSearch, cmd = m.notesSearch.Update(msg)
	if value := m.notesSearch.Value(); value != before {
		m.notesQuery = value
		m.notesSeq++
		return tea.Batch(cmd, fetchNotesCmd(m.notes, m.notesSeq, value))
	}
	return cmd
}

func (m *Model) selectedNote() *types.Note {
	if m.noteIndex < 0 || m.noteIndex >= len(m.noteList) {
		return nil
	}
	return m.noteList[m.noteIndex]
}

func (m *Model) openReader(note *types.Note) {
	rendered, err := glamour.Render(note.Content, "dark")
	if err != nil {
		m.logger.Warn("render note failed", "id", note.ID, "err", err)
		rendered = note.Content
	}
	m.readerNote = note
	m.reader.SetContent(rendered)
	m.reader.GotoTop()
	m.readerOpen = true
}

func (m *Model) closeReader() {
	m.readerOpen = false
	m.readerNote = nil
}

func (m *Model) handleReaderKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		m.closeReader()
		return nil
	case "y":
		if m.readerNote != nil {
			m.copyWithToast(m.readerNote.Content, "Текст скопирован")
		}
		return nil
	}
	var cmd tea.Cmd
	m.reader, cmd = m.reader.Update(msg)
	return cmd
}

func (m *Model) renderNotes() string {
	width := max(minPanelWidth, m.width-6)
	var lines []string
	if m.notesSearching {
		lines = append(lines, m.notesSearch.View(), "")
	} else if m.notesQuery != "" {
		lines = append(lines, mutedStyle.Render(truncateToWidth("поиск: "+m.notesQuery, width)), "")
	}

	if len(m.noteList) == 0 {
		lines = append(lines, placeholderStyle.Render("Заметок пока нет"))
		return strings.Join(lines, "\n")
	}

	for i, note := range m.noteList {
		title := truncateToWidth(note.Title, width)
		if i == m.noteIndex {
			lines = append(lines, selectedStyle.Render("> "+title))
		} else {
			lines = append(lines, titleStyle.Render("  "+title))
		}
		meta := formatNoteDate(note.UpdatedAt)
		if note.Tags != "" {
			if meta != "" {
				meta += " · "
			}
			meta += note.Tags
		}
		if meta != "" {
			lines = append(lines, mutedStyle.Render("  "+truncateToWidth(meta, width-2)))
		}
		if preview := notePreview(note.Content); preview != "" {
			for _, previewLine := range strings.Split(preview, "\n") {
				lines = append(lines, "  "+truncateToWidth(previewLine, width-2))
			}
		}
		lines = append(lines, "")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func (m *Model) renderReader() string {
	title := ""
	if m.readerNote != nil {
		title = m.readerNote.Title
	}
	lines := []string{
		titleStyle.Render(truncateToWidth(title, m.reader.Width)),
		"",
		m.reader.View(),
		"",
		helpStyle.Render("↑/↓ прокрутка · y копировать · esc закрыть"),
	}
	return strings.Join(lines, "\n")
}
