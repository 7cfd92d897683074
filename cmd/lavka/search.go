package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search products and notes together",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		results, res := client.Search(context.Background(), args[0])
		exitOnError(res, "Не удалось выполнить поиск")
		if results == nil || (len(results.Products) == 0 && len(results.Notes) == 0) {
			fmt.Println("Ничего не найдено")
			return
		}
		if len(results.Products) > 0 {
			fmt.Println("Товары:")
			for _, p := range results.Products {
				fmt.Printf("  %d\t%s\t%s\n", p.ID, p.Name, formatPrice(p.Price))
			}
		}
		if len(results.Notes) > 0 {
			fmt.Println("Заметки:")
			for _, note := range results.Notes {
				fmt.Printf("  %d\t%s\n", note.ID, note.Title)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
