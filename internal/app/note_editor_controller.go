package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lavka/internal/api"
	"lavka/internal/types"
)

type editorField int

const (
	editorFieldTitle editorField = iota
	editorFieldContent
	editorFieldTags
)

// NoteEditorController is the modal note editor. It is either closed,
// open over a new note, or open over exactly one existing note;
// editingID is non-zero only in the last case.
type NoteEditorController struct {
	active    bool
	editingID int
	title     textinput.Model
	content   textarea.Model
	tags      textinput.Model
	focus     editorField
	width     int
}

func NewNoteEditorController(width int) *NoteEditorController {
	title := textinput.New()
	title.Placeholder = "Заголовок"
	title.CharLimit = 200

	content := textarea.New()
	content.Placeholder = "Текст заметки"
	content.ShowLineNumbers = false
	content.SetHeight(6)

	tags := textinput.New()
	tags.Placeholder = "теги, через, запятую"
	tags.CharLimit = 200

	c := &NoteEditorController{title: title, content: content, tags: tags}
	c.Resize(width)
	return c
}

func (c *NoteEditorController) IsOpen() bool {
	return c != nil && c.active
}

// Editing reports the note being edited; zero means a new note is being
// composed.
func (c *NoteEditorController) Editing() int {
	if c == nil || !c.active {
		return 0
	}
	return c.editingID
}

// OpenNew drops any stale form state before showing the empty form.
func (c *NoteEditorController) OpenNew() tea.Cmd {
	c.reset()
	c.active = true
	return c.focusField(editorFieldTitle)
}

// OpenEdit pre-fills the form from a freshly fetched note.
func (c *NoteEditorController) OpenEdit(note *types.Note) tea.Cmd {
	if note == nil {
		return nil
	}
	c.reset()
	c.active = true
	c.editingID = note.ID
	c.title.SetValue(note.Title)
	c.content.SetValue(note.Content)
	c.tags.SetValue(note.Tags)
	return c.focusField(editorFieldTitle)
}

// Close resets form fields and the editing id, whether the editor was
// cancelled or submitted.
func (c *NoteEditorController) Close() {
	c.reset()
}

func (c *NoteEditorController) Form() api.NoteForm {
	return api.NoteForm{
		Title:   strings.TrimSpace(c.title.Value()),
		Content: c.content.Value(),
		Tags:    strings.TrimSpace(c.tags.Value()),
	}
}

func (c *NoteEditorController) Resize(width int) {
	width = max(30, width)
	c.width = width
	inner := width - 6
	c.title.Width = inner
	c.tags.Width = inner
	c.content.SetWidth(inner)
}

// Update consumes messages while the editor is open. submit reports that
// the form was submitted; the host issues the save call and closes the
// editor only once the server confirms.
func (c *NoteEditorController) Update(msg tea.Msg) (handled, submit bool, cmd tea.Cmd) {
	if !c.IsOpen() {
		return false, false, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			c.Close()
			return true, false, nil
		case "tab", "shift+tab":
			return true, false, c.cycleFocus(keyMsg.String() == "shift+tab")
		case "ctrl+s":
			return true, true, nil
		case "enter":
			// Enter submits from the single-line fields; the textarea
			// keeps it for newlines.
			if c.focus != editorFieldContent {
				return true, true, nil
			}
		}
	}
	return true, false, c.updateFocused(msg)
}

func (c *NoteEditorController) View() string {
	if !c.IsOpen() {
		return ""
	}
	heading := "Новая заметка"
	if c.editingID != 0 {
		heading = "Редактирование заметки"
	}
	lines := []string{
		titleStyle.Render(heading),
		"",
		c.title.View(),
		c.content.View(),
		c.tags.View(),
		"",
		helpStyle.Render("ctrl+s сохранить · tab поле · esc отмена"),
	}
	return editorStyle.Width(c.width).Render(strings.Join(lines, "\n"))
}

func (c *NoteEditorController) reset() {
	c.active = false
	c.editingID = 0
	c.focus = editorFieldTitle
	c.title.SetValue("")
	c.content.SetValue("")
	c.tags.SetValue("")
	c.title.Blur()
	c.content.Blur()
	c.tags.Blur()
}

func (c *NoteEditorController) cycleFocus(backward bool) tea.Cmd {
	next := (int(c.focus) + 1) % 3
	if backward {
		next = (int(c.focus) + 2) % 3
	}
	return c.focusField(editorField(next))
}

func (c *NoteEditorController) focusField(field editorField) tea.Cmd {
	c.focus = field
	c.title.Blur()
	c.content.Blur()
	c.tags.Blur()
	switch field {
	case editorFieldContent:
		return c.content.Focus()
	case editorFieldTags:
		return c.tags.Focus()
	default:
		return c.title.Focus()
	}
}

func (c *NoteEditorController) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch c.focus {
	case editorFieldContent:
		c.content, cmd = c.content.Update(msg)
	case editorFieldTags:
		c.tags, cmd = c.tags.Update(msg)
	default:
		c.title, cmd = c.title.Update(msg)
	}
	return cmd
}
