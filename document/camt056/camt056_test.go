package camt056_test

import (
	"strings"
	"testing"

	"github.com/finwire/mxmessage/document/camt056"
	"github.com/finwire/mxmessage/validation"
)

func ptr[T any](v T) *T { return &v }

func agent(bic string) camt056.Party40Choice {
	return camt056.Party40Choice{
		Agt: &camt056.BranchAndFinancialInstitutionIdentification6{
			FinInstnId: camt056.FinancialInstitutionIdentification18{BICFI: &bic},
		},
	}
}

func validRequest() camt056.FIToFIPaymentCancellationRequestV08 {
	return camt056.FIToFIPaymentCancellationRequestV08{
		Assgnmt: camt056.CaseAssignment5{
			Id:      "ASGN-001",
			Assgnr:  agent("DEUTDEFFXXX"),
			Assgne:  agent("CHASUS33XXX"),
			CreDtTm: "2026-08-23T10:15:00+00:00",
		},
		Undrlyg: []camt056.UnderlyingTransaction23{{
			TxInf: []camt056.PaymentTransaction106{{
				CxlId:     ptr("CXL-001"),
				OrgnlUETR: ptr("7dd1ea19-8abc-4bcd-9abc-1234567890ab"),
			}},
		}},
	}
}

func TestCancellationRequestValid(t *testing.T) {
	m := validRequest()
	cfg := validation.DefaultParserConfig()
	collector := validation.NewErrorCollector()
	m.Validate("Document.FIToFIPmtCxlReq", &cfg, collector)
	if collector.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", collector.Errors())
	}
}

func TestUnderlyingTransactionsValidatedRegardlessOfConfig(t *testing.T) {
	// Undrlyg and its TxInf entries are mandatory repetitions; lenient mode
	// still descends into them.
	m := validRequest()
	m.Undrlyg[0].TxInf[0].OrgnlUETR = ptr("NOT-A-UETR")

	cfg := validation.LenientConfig()
	collector := validation.NewErrorCollector()
	m.Validate("Document.FIToFIPmtCxlReq", &cfg, collector)
	if collector.Len() != 1 {
		t.Fatalf("want one diagnostic, got %v", collector.Errors())
	}
	e := collector.Errors()[0]
	if e.Code != validation.CodePattern {
		t.Errorf("code = %d, want %d", e.Code, validation.CodePattern)
	}
	if e.Path != "Document.FIToFIPmtCxlReq.Undrlyg.TxInf.OrgnlUETR" {
		t.Errorf("path = %q", e.Path)
	}
}

func TestControlDataGating(t *testing.T) {
	m := validRequest()
	m.CtrlData = &camt056.ControlData1{NbOfTxs: "one"}

	lenient := validation.LenientConfig()
	collector := validation.NewErrorCollector()
	m.Validate("", &lenient, collector)
	if collector.HasErrors() {
		t.Fatalf("lenient config must skip CtrlData, got %v", collector.Errors())
	}

	cfg := validation.DefaultParserConfig()
	collector = validation.NewErrorCollector()
	m.Validate("", &cfg, collector)
	if collector.Len() != 1 || collector.Errors()[0].Code != validation.CodePattern {
		t.Fatalf("want one pattern diagnostic, got %v", collector.Errors())
	}
}

func TestCancellationReasonBounds(t *testing.T) {
	m := validRequest()
	m.Undrlyg[0].TxInf[0].CxlRsnInf = []camt056.PaymentCancellationReason5{{
		Rsn:      &camt056.CancellationReason33Choice{Cd: ptr("DUPLICATE")},
		AddtlInf: []string{strings.Repeat("x", 106)},
	}}

	cfg := validation.DefaultParserConfig()
	collector := validation.NewErrorCollector()
	m.Validate("", &cfg, collector)
	if collector.Len() != 2 {
		t.Fatalf("want reason-code and narrative diagnostics, got %v", collector.Errors())
	}
	for _, e := range collector.Errors() {
		if e.Code != validation.CodeTooLong {
			t.Errorf("code = %d, want %d", e.Code, validation.CodeTooLong)
		}
	}
}
