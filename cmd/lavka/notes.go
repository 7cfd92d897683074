package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lavka/internal/api"
)

var (
	notesQuery  string
	noteTitle   string
	noteContent string
	noteTags    string
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "List notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		notes, res := client.ListNotes(context.Background(), notesQuery)
		exitOnError(res, "Не удалось загрузить заметки")
		if len(notes) == 0 {
			fmt.Println("Заметок пока нет")
			return
		}
		for _, note := range notes {
			fmt.Printf("%d\t%s", note.ID, note.Title)
			if note.Tags != "" {
				fmt.Printf("\t[%s]", note.Tags)
			}
			fmt.Println()
		}
	},
}

var notesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		note, res := client.CreateNote(context.Background(), api.NoteForm{
			Title:   noteTitle,
			Content: noteContent,
			Tags:    noteTags,
		})
		exitOnError(res, "Не удалось создать заметку")
		if note != nil {
			fmt.Printf("Заметка создана: %d\n", note.ID)
		} else {
			fmt.Println("Заметка создана")
		}
	},
}

var notesEditCmd = &cobra.Command{
	Use:   "edit <note-id>",
	Short: "Update a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		id := parseID(args[0])
		_, res := client.UpdateNote(context.Background(), id, api.NoteForm{
			Title:   noteTitle,
			Content: noteContent,
			Tags:    noteTags,
		})
		exitOnError(res, "Не удалось обновить заметку")
		fmt.Println("Заметка обновлена")
	},
}

var notesRemoveCmd = &cobra.Command{
	Use:   "rm <note-id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		id := parseID(args[0])
		res := client.DeleteNote(context.Background(), id)
		exitOnError(res, "Не удалось удалить заметку")
		fmt.Println("Заметка удалена")
	},
}

func init() {
	notesCmd.Flags().StringVarP(&notesQuery, "query", "q", "", "Filter by title, content or tags")
	for _, cmd := range []*cobra.Command{notesAddCmd, notesEditCmd} {
		cmd.Flags().StringVar(&noteTitle, "title", "", "Note title")
		cmd.Flags().StringVar(&noteContent, "content", "", "Note content")
		cmd.Flags().StringVar(&noteTags, "tags", "", "Comma-separated tags")
	}
	notesCmd.AddCommand(notesAddCmd, notesEditCmd, notesRemoveCmd)
	rootCmd.AddCommand(notesCmd)
}
