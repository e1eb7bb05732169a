package cli

import (
	"fmt"
	"time"

	"resume-builder/internal/document"
	"resume-builder/internal/usecase"

	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "preview <input.json>",
		Short: "Print the on-screen preview fragment of a resume record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := stderrLogger(cmd)
			values, err := readInput(args[0], logger)
			if err != nil {
				return err
			}
			override(values, "color", color)

			registry, err := document.NewRegistry()
			if err != nil {
				return fmt.Errorf("loading layouts: %w", err)
			}
			// previews never rasterize
			processor := usecase.NewProcessor(nil, document.NewAssembler(registry), logger)
			html, err := processor.Preview(values)
			if err != nil {
				return fmt.Errorf("generating preview: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "Accent color (overrides the record's color)")
	return cmd
}

func newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the registered layouts, default first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := document.NewRegistry()
			if err != nil {
				return fmt.Errorf("loading layouts: %w", err)
			}
			for _, name := range registry.Names() {
				if name == document.DefaultLayout.String() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (default)\n", name)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --timeout %q: %w", s, err)
	}
	return d, nil
}
