package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var cartQuantity int

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and manage the cart",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		cart, res := client.GetCart(context.Background())
		exitOnError(res, "Не удалось загрузить корзину")
		if cart.Empty() {
			fmt.Println("Корзина пуста")
		}
		for _, line := range cart.Items {
			fmt.Printf("%s × %d = %s\n", line.Product.Name, line.Quantity, formatPrice(line.Subtotal))
		}
		fmt.Printf("Итого: %s\n", formatPrice(cart.Total))
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		id := parseID(args[0])
		res := client.AddCartItem(context.Background(), id, cartQuantity)
		exitOnError(res, "Не удалось добавить товар")
		fmt.Println("Товар добавлен в корзину")
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "rm <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		id := parseID(args[0])
		res := client.RemoveCartItem(context.Background(), id)
		exitOnError(res, "Не удалось убрать товар")
		fmt.Println("Товар удалён")
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		res := client.ClearCart(context.Background())
		exitOnError(res, "Не удалось очистить корзину")
		fmt.Println("Корзина очищена")
	},
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order from the cart",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		order, res := client.Checkout(context.Background())
		exitOnError(res, "Не удалось оформить заказ")
		if order != nil {
			fmt.Printf("Заказ №%d оформлен, сумма %s\n", order.ID, formatPrice(order.Total))
		} else {
			fmt.Println("Заказ оформлен")
		}
	},
}

func parseID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		fatal("parse id", fmt.Errorf("%q is not a valid id", arg))
	}
	return id
}

func formatPrice(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "₽"
}

func init() {
	cartAddCmd.Flags().IntVarP(&cartQuantity, "quantity", "n", 1, "Quantity to add")
	cartCmd.AddCommand(cartAddCmd, cartRemoveCmd, cartClearCmd)
	rootCmd.AddCommand(cartCmd, checkoutCmd)
}
