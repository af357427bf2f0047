// Package cmd provides the CLI entry point for the focustick application.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/averost/focustick/internal/adapters/notification"
	"github.com/averost/focustick/internal/adapters/report"
	"github.com/averost/focustick/internal/adapters/storage"
	"github.com/averost/focustick/internal/adapters/tui"
	"github.com/averost/focustick/internal/clock"
	"github.com/averost/focustick/internal/config"
	"github.com/averost/focustick/internal/session"
)

// Version info (set at build time via ldflags)
var (
	Version   = "dev"
	BuildDate = "unknown"
)

var dataDirFlag string

// rootCmd runs the fullscreen interactive session; there are no
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "focustick",
	Short: "focustick - a terminal productivity timer",
	Long: `focustick is a fullscreen terminal timer: add timed tasks, run a
countdown against the latest one, and review your history as yearly charts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Directory for task records (default: ~/.focustick)")
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("focustick\nVersion: {{.Version}}\n")
}

func runSession() error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if dataDirFlag != "" {
		cfg.Storage.DataDir = dataDirFlag
	}
	if err := os.MkdirAll(cfg.Storage.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	store := storage.New(cfg.Storage.DataDir)
	reports := report.New(store)
	notifier := notification.New(cfg.Notifications.Enabled)

	controller := session.New(clock.New(), store, reports, notifier, cfg.LanguageTags())
	// The controller stops any running clock on the way out, whether the
	// session ends via the menu or a quit key.
	defer controller.Shutdown()

	model := tui.NewModel(controller, &cfg.Theme)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
