package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"lavka/internal/app"
	"lavka/internal/config"
	"lavka/internal/logging"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive terminal UI",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, cfg := newClient()

		// The TUI owns the terminal, so logs go to a file.
		logger := logging.Nop()
		if logPath, err := config.LogPath(); err == nil {
			if fileLogger, closer, err := logging.Open(logPath, cfg.LogLevel()); err == nil {
				logger = fileLogger
				defer closer.Close()
			} else {
				slog.Warn("log file unavailable", "err", err)
			}
		}

		err := app.Run(client, app.Options{
			Logger:        logger,
			ToastDuration: cfg.ToastDuration(),
		})
		if err != nil {
			fatal("run ui", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
