package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lavka/internal/api"
	"lavka/internal/config"
)

var (
	serverFlag string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lavka",
	Short: "Terminal client for the lavka storefront and notes server",
	Long: `Lavka talks to the storefront API: browse the catalog, manage the
cart, place orders and keep notes, either interactively (lavka ui) or
from scripts via the subcommands.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Server address (host:port)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fatal("read config", err)
	}
	if serverFlag != "" {
		cfg.Server.Address = serverFlag
	}
	return cfg
}

func newClient() (*api.Client, config.Config) {
	cfg := loadConfig()
	client, err := api.New(cfg.ServerBaseURL())
	if err != nil {
		fatal("init client", err)
	}
	return client, cfg
}

// exitOnError prints the server's message and exits when a call failed.
func exitOnError(res api.Result, fallback string) {
	if res.OK {
		return
	}
	fmt.Fprintln(os.Stderr, res.ErrorMessage(fallback))
	os.Exit(1)
}
