package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-builder/internal/document"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/spf13/cobra"
)

type renderOptions struct {
	template   string
	color      string
	format     string
	outputDir  string
	rasterizer string
	chromePath string
	timeout    string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render <input.json>",
		Short: "Render a resume record to PDF or HTML",
		Long: `Render reads a resume record, assembles it in the requested layout and
writes {Name}_Resume.pdf (or .html) to the output directory.

Examples:
  resumectl render jane.json
  resumectl render jane.json --template creative --color "#0f766e"
  resumectl render jane.json --format html --output_dir ./out
  resumectl render jane.json --rasterizer gofpdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.template, "template", "", "Layout name (overrides the record's template)")
	cmd.Flags().StringVar(&opts.color, "color", "", "Accent color (overrides the record's color)")
	cmd.Flags().StringVar(&opts.format, "format", "pdf", "Output format: pdf or html")
	cmd.Flags().StringVar(&opts.outputDir, "output_dir", "", "Output directory (default: current directory)")
	cmd.Flags().StringVar(&opts.rasterizer, "rasterizer", infra.RendererChromedp, "PDF rasterizer: chromedp or gofpdf")
	cmd.Flags().StringVar(&opts.chromePath, "chrome_path", os.Getenv("CHROME_PATH"), "Chrome executable for the chromedp rasterizer")
	cmd.Flags().StringVar(&opts.timeout, "timeout", "60s", "Rasterization timeout")
	return cmd
}

func runRender(cmd *cobra.Command, input string, opts *renderOptions) error {
	format := usecase.Format(strings.ToLower(opts.format))
	if format != usecase.FormatPDF && format != usecase.FormatHTML {
		return fmt.Errorf("invalid --format %q (want pdf or html)", opts.format)
	}
	timeout, err := parseTimeout(opts.timeout)
	if err != nil {
		return err
	}

	logger := stderrLogger(cmd)
	values, err := readInput(input, logger)
	if err != nil {
		return err
	}
	override(values, "template", opts.template)
	override(values, "color", opts.color)

	registry, err := document.NewRegistry()
	if err != nil {
		return fmt.Errorf("loading layouts: %w", err)
	}
	renderer, err := infra.NewRenderer(opts.rasterizer, infra.RendererOptions{
		ChromePath: opts.chromePath,
		Timeout:    timeout,
	})
	if err != nil {
		return err
	}

	processor := usecase.NewProcessor(renderer, document.NewAssembler(registry), logger)
	doc, err := processor.Generate(cmd.Context(), values, format)
	if err != nil {
		return fmt.Errorf("generating %s: %w", format, err)
	}

	dir := opts.outputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, doc.FileName)
	if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s (%s layout)\n", path, doc.Layout)
	return nil
}
