package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lavka",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lavka version %s\n", version)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the server is reachable",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, cfg := newClient()
		health, res := client.Health(context.Background())
		exitOnError(res, "Сервер недоступен")
		status := "ok"
		if health != nil && health.Status != "" {
			status = health.Status
		}
		fmt.Printf("%s: %s\n", cfg.ServerAddress(), status)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd, healthCmd)
}
