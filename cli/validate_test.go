package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/finwire/mxmessage/sample"
	"github.com/finwire/mxmessage/validation"
)

type jsonReport struct {
	MessageType string            `json:"message_type"`
	Valid       bool              `json:"valid"`
	Diagnostics validation.Errors `json:"diagnostics"`
}

func writeFile(t *testing.T, payload []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "message.json")
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateCommandJSONReport(t *testing.T) {
	env, err := sample.Generate("pacs.008")
	if err != nil {
		t.Fatal(err)
	}
	payload, err := env.ToJSON()
	if err != nil {
		t.Fatal(err)
	}

	cmd := NewValidateCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{writeFile(t, payload), "--format", "json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var report jsonReport
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("report is not valid JSON: %v\n%s", err, out.Bytes())
	}
	if !report.Valid || report.MessageType != "pacs.008.001.08" {
		t.Errorf("report = %+v", report)
	}
	if len(report.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", report.Diagnostics)
	}
}

func TestValidateCommandDiagnosticsExitCode(t *testing.T) {
	env, err := sample.Generate("pacs.008")
	if err != nil {
		t.Fatal(err)
	}
	env.Document.FIToFICstmrCdtTrf.GrpHdr.MsgId = strings.Repeat("A", 36)
	payload, err := env.ToJSON()
	if err != nil {
		t.Fatal(err)
	}

	cmd := NewValidateCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{writeFile(t, payload), "--format", "json"})

	err = cmd.Execute()
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != exitValidation {
		t.Fatalf("err = %v, want validation exit code", err)
	}

	var report jsonReport
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("report is not valid JSON: %v\n%s", err, out.Bytes())
	}
	if report.Valid || len(report.Diagnostics) != 1 {
		t.Errorf("report = %+v", report)
	}
	if report.Diagnostics[0].Code != validation.CodeTooLong {
		t.Errorf("code = %d, want %d", report.Diagnostics[0].Code, validation.CodeTooLong)
	}
}

func TestValidateCommandMissingFile(t *testing.T) {
	cmd := NewValidateCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.xml")})

	err := cmd.Execute()
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != exitFileNotFound {
		t.Fatalf("err = %v, want file-not-found exit code", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func TestPrintDiagnosticsJSONWriteError(t *testing.T) {
	env, err := sample.Generate("pacs.008")
	if err != nil {
		t.Fatal(err)
	}
	if err := printDiagnosticsJSON(failingWriter{}, env, nil); err == nil {
		t.Fatal("want error when the writer fails")
	}
}
