package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lavka/internal/api"
)

var (
	loginEmail    string
	loginPassword string
	registerName  string
	registerPhone string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the server session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		email, password := credentials()
		user, res := client.Login(context.Background(), api.LoginRequest{Email: email, Password: password})
		exitOnError(res, "Неверный email или пароль")
		fmt.Printf("Вход выполнен: %s\n", user.Email)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		email, password := credentials()
		user, res := client.Register(context.Background(), api.RegisterRequest{
			Email:    email,
			Password: password,
			Name:     registerName,
			Phone:    registerPhone,
		})
		exitOnError(res, "Не удалось зарегистрироваться")
		fmt.Printf("Регистрация успешна: %s\n", user.Email)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and drop the persisted session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		res := client.Logout(context.Background())
		exitOnError(res, "Не удалось выйти")
		fmt.Println("Вы вышли из системы")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, _ := newClient()
		user, res := client.Me(context.Background())
		exitOnError(res, "Не авторизован")
		fmt.Printf("%s (%s)\n", user.Email, user.Role)
		if user.Name != "" {
			fmt.Println(user.Name)
		}
	},
}

// credentials takes the flags when given and falls back to prompting;
// the password prompt still echoes, so flags are the scripting path.
func credentials() (string, string) {
	email := strings.TrimSpace(loginEmail)
	password := loginPassword
	reader := bufio.NewReader(os.Stdin)
	if email == "" {
		fmt.Print("email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fatal("read email", err)
		}
		email = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Print("пароль: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fatal("read password", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	return email, password
}

func init() {
	for _, cmd := range []*cobra.Command{loginCmd, registerCmd} {
		cmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
		cmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	}
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number")
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
