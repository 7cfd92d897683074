package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var productsQuery string

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List catalog products",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		products, res := client.ListProducts(context.Background(), productsQuery)
		exitOnError(res, "Не удалось загрузить товары")

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tНазвание\tКатегория\tЦена\tОстаток")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Category, formatPrice(p.Price), p.Stock)
		}
		w.Flush()
	},
}

func init() {
	productsCmd.Flags().StringVarP(&productsQuery, "query", "q", "", "Filter by name, category or tags")
	rootCmd.AddCommand(productsCmd)
}
