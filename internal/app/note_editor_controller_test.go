package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lavka/internal/types"
)

func TestEditorOpenNewDropsStaleState(t *testing.T) {
	c := NewNoteEditorController(60)
	c.OpenEdit(&types.Note{ID: 5, Title: "Старое", Content: "текст", Tags: "a"})
	c.Close()

	c.OpenNew()
	if !c.IsOpen() {
		t.Fatalf("expected the editor to open")
	}
	if c.Editing() != 0 {
		t.Fatalf("expected a new note, got editing id %d", c.Editing())
	}
	form := c.Form()
	if form.Title != "" || form.Content != "" || form.Tags != "" {
		t.Fatalf("expected a blank form, got %+v", form)
	}
}

func TestEditorOpenEditPrefills(t *testing.T) {
	c := NewNoteEditorController(60)
	c.OpenEdit(&types.Note{ID: 42, Title: "Рецепт", Content: "мука\nсахар", Tags: "еда"})

	if c.Editing() != 42 {
		t.Fatalf("expected editing id 42, got %d", c.Editing())
	}
	form := c.Form()
	if form.Title != "Рецепт" || form.Content != "мука\nсахар" || form.Tags != "еда" {
		t.Fatalf("expected the form pre-filled, got %+v", form)
	}
}

func TestEditorCloseClearsEditingID(t *testing.T) {
	c := NewNoteEditorController(60)
	c.OpenEdit(&types.Note{ID: 42, Title: "Рецепт"})
	c.Close()

	if c.IsOpen() {
		t.Fatalf("expected the editor to close")
	}
	if c.Editing() != 0 {
		t.Fatalf("expected the editing id to clear, got %d", c.Editing())
	}
}

func TestEditorEscCancels(t *testing.T) {
	c := NewNoteEditorController(60)
	c.OpenNew()

	handled, submit, _ := c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !handled || submit {
		t.Fatalf("expected esc to cancel without submitting")
	}
	if c.IsOpen() {
		t.Fatalf("expected esc to close the editor")
	}
}

func TestEditorCtrlSSubmits(t *testing.T) {
	c := NewNoteEditorController(60)
	c.OpenNew()

	_, submit, _ := c.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !submit {
		t.Fatalf("expected ctrl+s to submit")
	}
	if !c.IsOpen() {
		t.Fatalf("the host closes the editor, not the submit itself")
	}
}

func TestEditorEnterSubmitsFromSingleLineFieldsOnly(t *testing.T) {
	c := NewNoteEditorController(60)
	c.OpenNew()

	if _, submit, _ := c.Update(tea.KeyMsg{Type: tea.KeyEnter}); !submit {
		t.Fatalf("expected enter to submit from the title field")
	}

	c.focusField(editorFieldContent)
	if _, submit, _ := c.Update(tea.KeyMsg{Type: tea.KeyEnter}); submit {
		t.Fatalf("expected enter to insert a newline in the content field")
	}
	if c.Form().Content == "" {
		t.Fatalf("expected the newline to reach the textarea")
	}

	c.focusField(editorFieldTags)
	if _, submit, _ := c.Update(tea.KeyMsg{Type: tea.KeyEnter}); !submit {
		t.Fatalf("expected enter to submit from the tags field")
	}
}

func TestEditorFormTrimsTitleAndTags(t *testing.T) {
	c := NewNoteEditorController(60)
	c.OpenNew()
	c.title.SetValue("  Заголовок  ")
	c.tags.SetValue(" еда, дом ")
	c.content.SetValue("  текст  ")

	form := c.Form()
	if form.Title != "Заголовок" {
		t.Fatalf("expected a trimmed title, got %q", form.Title)
	}
	if form.Tags != "еда, дом" {
		t.Fatalf("expected trimmed tags, got %q", form.Tags)
	}
	if form.Content != "  текст  " {
		t.Fatalf("expected content untouched, got %q", form.Content)
	}
}

func TestEditorTabCyclesFocus(t *testing.T) {
	c := NewNoteEditorController(60)
	c.OpenNew()

	c.Update(tea.KeyMsg{Type: tea.KeyTab})
	if c.focus != editorFieldContent {
		t.Fatalf("expected focus on content, got %d", c.focus)
	}
	c.Update(tea.KeyMsg{Type: tea.KeyTab})
	if c.focus != editorFieldTags {
		t.Fatalf("expected focus on tags, got %d", c.focus)
	}
	c.Update(tea.KeyMsg{Type: tea.KeyTab})
	if c.focus != editorFieldTitle {
		t.Fatalf("expected focus to wrap to title, got %d", c.focus)
	}
}
