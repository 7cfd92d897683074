package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lavka/internal/api"
)

var feedbackRating int

var feedbackCmd = &cobra.Command{
	Use:   "feedback <message>",
	Short: "Send feedback to the shop",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		res := client.SubmitFeedback(context.Background(), api.FeedbackRequest{
			Message: args[0],
			Rating:  feedbackRating,
		})
		exitOnError(res, "Не удалось отправить отзыв")
		fmt.Println("Спасибо за отзыв!")
	},
}

func init() {
	feedbackCmd.Flags().IntVar(&feedbackRating, "rating", 0, "Rating from 1 to 5")
	rootCmd.AddCommand(feedbackCmd)
}
