// Package cli implements the resumectl commands using Cobra.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the resumectl command tree. Warnings are logged to
// stderr so stdout carries only command output.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "resumectl",
		Short: "Render resume records into styled documents",
		Long: `resumectl renders a resume record (a JSON object keyed like the web form)
into a PDF or HTML document in one of the registered layouts.

Usage:
  resumectl render <input.json> [flags]
  resumectl preview <input.json> [flags]
  resumectl layouts`,
		SilenceUsage: true,
	}

	root.AddCommand(newRenderCmd(), newPreviewCmd(), newLayoutsCmd())
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func stderrLogger(cmd *cobra.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
}
