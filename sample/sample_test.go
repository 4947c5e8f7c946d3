package sample_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/finwire/mxmessage"
	"github.com/finwire/mxmessage/sample"
	"github.com/finwire/mxmessage/validation"
)

func TestGenerateValidatesClean(t *testing.T) {
	types := []string{"pacs.008", "pacs.009", "camt.029", "camt.056", "camt.057.001.06"}
	for _, mt := range types {
		t.Run(mt, func(t *testing.T) {
			env, err := sample.Generate(mt)
			if err != nil {
				t.Fatal(err)
			}
			if got, want := env.MessageType(), mxmessage.FullForm(mt); got != want {
				t.Errorf("MessageType() = %q, want %q", got, want)
			}
			if !env.AppHdr.IsCBPRPlusCompliant() {
				t.Error("generated header must be compliant")
			}

			cfg := validation.DefaultParserConfig()
			collector := validation.NewErrorCollector()
			env.Validate("", &cfg, collector)
			if collector.HasErrors() {
				t.Errorf("generated sample has diagnostics: %v", collector.Errors())
			}
		})
	}
}

func TestGenerateUnknownType(t *testing.T) {
	_, err := sample.Generate("seev.031")
	if err == nil {
		t.Fatal("expected error")
	}
	var verr validation.ValidationError
	if !errors.As(err, &verr) || verr.Code != validation.CodeSampleError {
		t.Errorf("err = %v, want sample-error diagnostic", err)
	}
}

func writeScenario(t *testing.T, dir, file, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGenerateWithScenario(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "high_value.yaml", `
name: high-value
message_type: pacs.008
description: large interbank settlement amount
overrides:
  Document.FIToFICstmrCdtTrf.GrpHdr.MsgId: SCENARIO-MSG-1
  Document.FIToFICstmrCdtTrf.CdtTrfTxInf.IntrBkSttlmAmt.Value: "25000000.00"
`)
	cfg := sample.ScenarioConfig{Paths: []string{dir}}

	env, err := sample.GenerateWithScenario("pacs.008", "high-value", cfg)
	if err != nil {
		t.Fatal(err)
	}
	tx := env.Document.FIToFICstmrCdtTrf
	if tx == nil {
		t.Fatal("document lost while applying scenario")
	}
	if tx.GrpHdr.MsgId != "SCENARIO-MSG-1" {
		t.Errorf("MsgId = %q, want SCENARIO-MSG-1", tx.GrpHdr.MsgId)
	}
	if tx.CdtTrfTxInf.IntrBkSttlmAmt.Value != "25000000.00" {
		t.Errorf("amount = %q", tx.CdtTrfTxInf.IntrBkSttlmAmt.Value)
	}

	t.Run("empty name matches first for type", func(t *testing.T) {
		env, err := sample.GenerateWithScenario("pacs.008.001.08", "", cfg)
		if err != nil {
			t.Fatal(err)
		}
		if env.Document.FIToFICstmrCdtTrf.GrpHdr.MsgId != "SCENARIO-MSG-1" {
			t.Error("empty scenario name should select the declared scenario")
		}
	})
}

func TestScenarioHeaderOverride(t *testing.T) {
	// Header overrides address the field through the variant tag key.
	dir := t.TempDir()
	writeScenario(t, dir, "reroute.yaml", `
name: reroute
message_type: pacs.009
overrides:
  AppHdr.BizAppHdr_PACS_009_001_08.BizMsgIdr: REROUTED-001
`)
	env, err := sample.GenerateWithScenario("pacs.009", "reroute", sample.ScenarioConfig{Paths: []string{dir}})
	if err != nil {
		t.Fatal(err)
	}
	if env.AppHdr.Hdr == nil || env.AppHdr.Hdr.BizMsgIdr != "REROUTED-001" {
		t.Errorf("header override not applied: %+v", env.AppHdr.Hdr)
	}
}

func TestFindScenarioMissing(t *testing.T) {
	cfg := sample.ScenarioConfig{Paths: []string{t.TempDir()}}
	_, err := sample.FindScenario(cfg, "pacs.008", "does-not-exist")
	if err == nil {
		t.Fatal("expected error")
	}
	var verr validation.ValidationError
	if !errors.As(err, &verr) || verr.Code != validation.CodeScenario {
		t.Errorf("err = %v, want scenario diagnostic", err)
	}
}

func TestScenarioMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "broken.yaml", "name: broken\noverrides: [not, a, map]\n")
	_, err := sample.FindScenario(sample.ScenarioConfig{Paths: []string{dir}}, "pacs.008", "")
	if err == nil {
		t.Fatal("expected error for malformed scenario file")
	}
	var verr validation.ValidationError
	if !errors.As(err, &verr) || verr.Code != validation.CodeScenario {
		t.Errorf("err = %v, want scenario diagnostic", err)
	}
}
