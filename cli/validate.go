package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog and list its projects",
		Long: `Load and validate the catalog, then list the projects in display order
with their IDs and which links they carry. Exits non-zero on an invalid
catalog.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projects := siteFrom(cmd).ProjectRepo().FindAll()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tTITLE\tID\tDEMO\tSOURCE\tTOOLS")
			for i, p := range projects {
				_, demo := p.DemoURL()
				_, source := p.SourceURL()
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n", i, p.Title, p.ID, yesNo(demo), yesNo(source), len(p.Tools))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d projects\n", len(projects))
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
