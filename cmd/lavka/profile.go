package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lavka/internal/api"
)

var (
	profileName     string
	profilePhone    string
	currentPassword string
	newPassword     string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update the account profile",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		user, res := client.UpdateProfile(context.Background(), api.ProfileRequest{
			Name:  profileName,
			Phone: profilePhone,
		})
		exitOnError(res, "Не удалось обновить профиль")
		fmt.Printf("Профиль обновлён: %s\n", user.Email)
	},
}

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change the account password",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		res := client.ChangePassword(context.Background(), api.PasswordRequest{
			CurrentPassword: currentPassword,
			NewPassword:     newPassword,
		})
		exitOnError(res, "Не удалось сменить пароль")
		fmt.Println("Пароль изменён")
	},
}

func init() {
	profileCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileCmd.Flags().StringVar(&profilePhone, "phone", "", "Phone number")
	passwordCmd.Flags().StringVar(&currentPassword, "current", "", "Current password")
	passwordCmd.Flags().StringVar(&newPassword, "new", "", "New password")
	passwordCmd.MarkFlagRequired("current")
	passwordCmd.MarkFlagRequired("new")
	rootCmd.AddCommand(profileCmd, passwordCmd)
}
