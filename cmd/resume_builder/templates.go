package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/rendering"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, tmpl := range rendering.NewRenderer().Templates() {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", tmpl.Kind(), tmpl.Name(), tmpl.Description())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
