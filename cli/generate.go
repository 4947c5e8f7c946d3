package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finwire/mxmessage"
	"github.com/finwire/mxmessage/sample"
)

// NewGenerateCmd creates the "generate" subcommand.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <message-type>",
		Short: "Generate a sample MX message",
		Args:  cobra.ExactArgs(1),
		RunE:  runGenerate,
	}

	cmd.Flags().String("scenario", "", "Scenario name to apply (searched via MX_SCENARIO_PATH)")
	cmd.Flags().String("format", "xml", "Output format: xml | json")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	messageType := args[0]
	scenario, _ := cmd.Flags().GetString("scenario")
	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()

	var env *mxmessage.Envelope
	var err error
	if scenario != "" {
		env, err = sample.GenerateWithScenario(messageType, scenario, sample.DefaultScenarioConfig())
	} else {
		env, err = sample.Generate(messageType)
	}
	if err != nil {
		return exitError(exitValidation, "generating %s: %s", messageType, err)
	}

	var payload []byte
	switch format {
	case "xml":
		payload, err = env.ToXML()
	case "json":
		payload, err = env.ToJSON()
	default:
		return exitError(exitUsage, "unknown format %q (want xml or json)", format)
	}
	if err != nil {
		return exitError(exitValidation, "serializing %s: %s", messageType, err)
	}

	fmt.Fprintln(out, string(payload))
	return nil
}
