package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/finwire/mxmessage"
)

// NewTypesCmd creates the "types" subcommand.
func NewTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported message types",
		Args:  cobra.NoArgs,
		RunE:  runTypes,
	}
}

func runTypes(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SHORT\tFULL\tELEMENT\tTYPE NAME")
	for _, info := range mxmessage.MessageRegistry {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.ShortForm, info.FullForm, info.XMLElement, info.TypeName)
	}
	return w.Flush()
}
