package pacs008_test

import (
	"strings"
	"testing"

	"github.com/finwire/mxmessage/document/pacs008"
	"github.com/finwire/mxmessage/validation"
)

func ptr[T any](v T) *T { return &v }

func validGroupHeader() pacs008.GroupHeader93 {
	return pacs008.GroupHeader93{
		MsgId:   "MSG-2026-00042",
		CreDtTm: "2026-08-23T10:15:00+00:00",
		NbOfTxs: "1",
		SttlmInf: pacs008.SettlementInstruction7{
			SttlmMtd: pacs008.SettlementMethodINDA,
		},
	}
}

func TestGroupHeaderBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*pacs008.GroupHeader93)
		wantCodes []int
		wantPath  string
	}{
		{"valid", func(h *pacs008.GroupHeader93) {}, nil, ""},
		// An empty value fails both the length bound and the text pattern.
		{"empty MsgId", func(h *pacs008.GroupHeader93) { h.MsgId = "" }, []int{validation.CodeTooShort, validation.CodePattern}, "GrpHdr.MsgId"},
		{"MsgId over max", func(h *pacs008.GroupHeader93) { h.MsgId = strings.Repeat("A", 36) }, []int{validation.CodeTooLong}, "GrpHdr.MsgId"},
		{"MsgId at max", func(h *pacs008.GroupHeader93) { h.MsgId = strings.Repeat("A", 35) }, nil, ""},
		{"zulu CreDtTm", func(h *pacs008.GroupHeader93) { h.CreDtTm = "2026-08-23T10:15:00Z" }, []int{validation.CodePattern}, "GrpHdr.CreDtTm"},
		{"non-numeric NbOfTxs", func(h *pacs008.GroupHeader93) { h.NbOfTxs = "one" }, []int{validation.CodePattern}, "GrpHdr.NbOfTxs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validGroupHeader()
			tt.mutate(&h)

			cfg := validation.DefaultParserConfig()
			collector := validation.NewErrorCollector()
			h.Validate("GrpHdr", &cfg, collector)

			if len(tt.wantCodes) == 0 {
				if collector.HasErrors() {
					t.Fatalf("unexpected diagnostics: %v", collector.Errors())
				}
				return
			}
			errs := collector.Errors()
			if len(errs) != len(tt.wantCodes) {
				t.Fatalf("want %d diagnostics, got %v", len(tt.wantCodes), errs)
			}
			for i, want := range tt.wantCodes {
				if errs[i].Code != want {
					t.Errorf("diagnostic %d: code = %d, want %d", i, errs[i].Code, want)
				}
				if errs[i].Path != tt.wantPath {
					t.Errorf("diagnostic %d: path = %q, want %q", i, errs[i].Path, tt.wantPath)
				}
			}
		})
	}
}

func TestDeepPathReporting(t *testing.T) {
	h := validGroupHeader()
	h.SttlmInf.SttlmAcct = &pacs008.CashAccount38{
		Id: pacs008.AccountIdentification4Choice{IBAN: ptr("not-an-iban")},
	}

	cfg := validation.DefaultParserConfig()
	collector := validation.NewErrorCollector()
	h.Validate("GrpHdr", &cfg, collector)

	if collector.Len() != 1 {
		t.Fatalf("want one diagnostic, got %v", collector.Errors())
	}
	e := collector.Errors()[0]
	if e.Code != validation.CodePattern {
		t.Errorf("code = %d, want %d", e.Code, validation.CodePattern)
	}
	if e.Path != "GrpHdr.SttlmInf.SttlmAcct.Id.IBAN" {
		t.Errorf("path = %q, want full ancestor chain", e.Path)
	}
}

func TestOptionalFieldGating(t *testing.T) {
	h := validGroupHeader()
	h.SttlmInf.SttlmAcct = &pacs008.CashAccount38{
		Id: pacs008.AccountIdentification4Choice{IBAN: ptr("not-an-iban")},
	}

	cfg := validation.LenientConfig()
	collector := validation.NewErrorCollector()
	h.Validate("GrpHdr", &cfg, collector)
	if collector.HasErrors() {
		t.Fatalf("lenient config must not descend into optional elements, got %v", collector.Errors())
	}
}

func TestPaymentIdentification(t *testing.T) {
	valid := pacs008.PaymentIdentification7{
		InstrId:    "INSTR-1",
		EndToEndId: "E2E-1",
		UETR:       "7dd1ea19-8abc-4bcd-9abc-1234567890ab",
	}

	cfg := validation.DefaultParserConfig()

	collector := validation.NewErrorCollector()
	valid.Validate("CdtTrfTxInf.PmtId", &cfg, collector)
	if collector.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", collector.Errors())
	}

	t.Run("bad UETR", func(t *testing.T) {
		p := valid
		p.UETR = "7DD1EA19-8ABC-4BCD-9ABC-1234567890AB"
		collector := validation.NewErrorCollector()
		p.Validate("CdtTrfTxInf.PmtId", &cfg, collector)
		if collector.Len() != 1 || collector.Errors()[0].Code != validation.CodePattern {
			t.Fatalf("want one pattern diagnostic, got %v", collector.Errors())
		}
		if collector.Errors()[0].Path != "CdtTrfTxInf.PmtId.UETR" {
			t.Errorf("path = %q", collector.Errors()[0].Path)
		}
	})

	t.Run("InstrId over max", func(t *testing.T) {
		p := valid
		p.InstrId = strings.Repeat("X", 17)
		collector := validation.NewErrorCollector()
		p.Validate("", &cfg, collector)
		if collector.Len() != 1 || collector.Errors()[0].Code != validation.CodeTooLong {
			t.Fatalf("want one length diagnostic, got %v", collector.Errors())
		}
	})

	t.Run("optional TxId leaf runs ungated", func(t *testing.T) {
		p := valid
		p.TxId = ptr(strings.Repeat("X", 36))
		lenient := validation.LenientConfig()
		collector := validation.NewErrorCollector()
		p.Validate("", &lenient, collector)
		if collector.Len() != 1 || collector.Errors()[0].Code != validation.CodeTooLong {
			t.Fatalf("want one length diagnostic, got %v", collector.Errors())
		}
	})
}
