package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/youruser/posterapp/internal/poster"
)

var ratiosCmd = &cobra.Command{
	Use:   "ratios",
	Short: "List the supported aspect ratios",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LABEL\tNAME\tSIZE")
		for _, a := range poster.AspectRatios() {
			fmt.Fprintf(w, "%s\t%s\t%dx%d\n", a.Label, a.Name, a.Width, a.Height)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(ratiosCmd)
}
