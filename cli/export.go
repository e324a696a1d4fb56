package cli

import (
	"fmt"

	"github.com/moh-adedamola/portfolio/config"
	"github.com/moh-adedamola/portfolio/services"
	"github.com/spf13/cobra"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	OutDir string
	Base   string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Build the static site",
		Long: `Render the home page, one page per project with its detail overlay
open, and the stylesheet into an output directory. The result needs no
server-side code and no script to work.`,
		Example: `  # Export to ./dist
  portfolio export --out dist

  # Export for hosting below /portfolio/
  portfolio export --out dist --base /portfolio/`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.OutDir, "out", "", "Output directory")
	cmd.Flags().StringVar(&opts.Base, "base", "", "Path the site is hosted under (default: SITE_BASE_PATH or /)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	base := opts.Base
	if !cmd.Flags().Changed("base") {
		base = config.GetString(envFrom(cmd), "SITE_BASE_PATH", "/")
	}

	result, err := services.Export(cmd.Context(), siteFrom(cmd), opts.OutDir, base)
	if err != nil {
		return err
	}

	for _, f := range result.Files {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
