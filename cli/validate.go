package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/finwire/mxmessage"
	"github.com/finwire/mxmessage/validation"
)

// NewValidateCmd creates the "validate" subcommand.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "validate <file>",
		Short:        "Validate an MX message file (XML or JSON)",
		Args:         cobra.ExactArgs(1),
		RunE:         runValidate,
		SilenceUsage: true,
	}

	cmd.Flags().String("format", "text", "Output format: text | json")
	cmd.Flags().Bool("lenient", false, "Skip constraints on optional nested elements")
	cmd.Flags().Bool("fail-fast", false, "Stop at the first critical diagnostic")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	format, _ := cmd.Flags().GetString("format")
	lenient, _ := cmd.Flags().GetBool("lenient")
	failFast, _ := cmd.Flags().GetBool("fail-fast")
	out := cmd.OutOrStdout()

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return exitError(exitFileNotFound, "file not found: %s", filePath)
		}
		return fmt.Errorf("reading file: %w", err)
	}

	env, err := parseEnvelope(data)
	if err != nil {
		return exitError(exitValidation, "parsing %s: %s", filePath, err)
	}

	cfg := validation.DefaultParserConfig()
	if lenient {
		cfg = validation.LenientConfig()
	}
	if failFast {
		cfg.FailFast = true
	}

	collector := validation.NewErrorCollector()
	env.Validate("", &cfg, collector)
	errs := collector.Errors()

	switch format {
	case "json":
		if err := printDiagnosticsJSON(out, env, errs); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	case "text":
		printDiagnosticsText(out, env, errs)
	default:
		return exitError(exitUsage, "unknown format %q (want text or json)", format)
	}

	if len(errs) > 0 {
		return exitError(exitValidation, "validation failed with %d diagnostic(s)", len(errs))
	}
	return nil
}

// parseEnvelope sniffs the payload format; XML starts with '<' after
// whitespace, everything else is treated as JSON.
func parseEnvelope(data []byte) (*mxmessage.Envelope, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '<' {
		return mxmessage.ParseXML(data)
	}
	return mxmessage.ParseJSON(data)
}

var (
	okColor   = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed)
	pathColor = color.New(color.FgCyan)
)

func printDiagnosticsText(out io.Writer, env *mxmessage.Envelope, errs validation.Errors) {
	fmt.Fprintf(out, "message type: %s\n", env.MessageType())
	if len(errs) == 0 {
		okColor.Fprintln(out, "valid")
		return
	}
	for _, e := range errs {
		errColor.Fprintf(out, "%d", e.Code)
		if e.Path != "" {
			fmt.Fprint(out, " at ")
			pathColor.Fprint(out, e.Path)
		}
		fmt.Fprintf(out, ": %s\n", e.Message)
	}
	errColor.Fprintf(out, "%d diagnostic(s)\n", len(errs))
}

func printDiagnosticsJSON(out io.Writer, env *mxmessage.Envelope, errs validation.Errors) error {
	report := struct {
		MessageType string            `json:"message_type"`
		Valid       bool              `json:"valid"`
		Diagnostics validation.Errors `json:"diagnostics"`
	}{
		MessageType: env.MessageType(),
		Valid:       len(errs) == 0,
		Diagnostics: errs,
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
