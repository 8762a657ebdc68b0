package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arodionov/timesheet/internal/config"
	"github.com/arodionov/timesheet/internal/notify"
	"github.com/arodionov/timesheet/internal/schedule"
	"github.com/arodionov/timesheet/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "timesheet",
	Short: "Track work time per project and activity into an Excel workbook",
}

func Execute() error {
	// main injects build metadata after this package initializes, so the
	// version string must be resolved here rather than at var time.
	rootCmd.Version = version.GetVersion()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true // main prints the final error

	// Load config and start reminder if enabled
	cfg, _ := config.Load()

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.Reminder.Enabled && os.Getenv("TIMESHEET_NO_REMINDER") != "1" {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			go func() {
				schedule.RunConfigured(ctx, cfg, func() {
					title, msg := notify.FormatLogReminder()
					_ = notify.Info(title, msg)
				})
			}()
			// Process exit delivers the signal that cancels the context.
			_ = cancel
		}
		return nil
	}

	// Add commands; other files define these vars
	rootCmd.AddCommand(startCmd, pauseCmd, resumeCmd, stopCmd, statusCmd, cancelCmd, listCmd, initCmd, fileCmd, tuiCmd, versionCmd)
}
