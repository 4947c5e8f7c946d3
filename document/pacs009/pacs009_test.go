package pacs009_test

import (
	"strings"
	"testing"

	"github.com/finwire/mxmessage/document/pacs009"
	"github.com/finwire/mxmessage/validation"
)

func ptr[T any](v T) *T { return &v }

func agent(bic string) pacs009.BranchAndFinancialInstitutionIdentification6 {
	return pacs009.BranchAndFinancialInstitutionIdentification6{
		FinInstnId: pacs009.FinancialInstitutionIdentification18{BICFI: &bic},
	}
}

func validTransfer() pacs009.FinancialInstitutionCreditTransferV08 {
	return pacs009.FinancialInstitutionCreditTransferV08{
		GrpHdr: pacs009.GroupHeader93{
			MsgId:   "P9-001",
			CreDtTm: "2026-08-23T10:15:00+00:00",
			NbOfTxs: "1",
			SttlmInf: pacs009.SettlementInstruction7{
				SttlmMtd: pacs009.SettlementMethodINDA,
			},
		},
		CdtTrfTxInf: pacs009.CreditTransferTransaction36{
			PmtId: pacs009.PaymentIdentification7{
				InstrId:    "INSTR-1",
				EndToEndId: "E2E-1",
				UETR:       "7dd1ea19-8abc-4bcd-9abc-1234567890ab",
			},
			IntrBkSttlmAmt: pacs009.ActiveCurrencyAndAmount{Ccy: "EUR", Value: "250000.00"},
			IntrBkSttlmDt:  "2026-08-23",
			InstgAgt:       agent("DEUTDEFFXXX"),
			InstdAgt:       agent("CHASUS33XXX"),
			Dbtr:           agent("BNPAFRPPXXX"),
			Cdtr:           agent("HSBCGB2LXXX"),
		},
	}
}

func TestTransferValid(t *testing.T) {
	m := validTransfer()
	cfg := validation.DefaultParserConfig()
	collector := validation.NewErrorCollector()
	m.Validate("Document.FICdtTrf", &cfg, collector)
	if collector.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", collector.Errors())
	}
}

func TestNextAgentInstructionBounds(t *testing.T) {
	m := validTransfer()
	m.CdtTrfTxInf.InstrForNxtAgt = []pacs009.InstructionForNextAgent1{
		{InstrInf: ptr(strings.Repeat("X", 36))},
	}

	lenient := validation.LenientConfig()
	collector := validation.NewErrorCollector()
	m.Validate("", &lenient, collector)
	if collector.HasErrors() {
		t.Fatalf("lenient config must skip the instruction list, got %v", collector.Errors())
	}

	cfg := validation.DefaultParserConfig()
	collector = validation.NewErrorCollector()
	m.Validate("", &cfg, collector)
	if collector.Len() != 1 {
		t.Fatalf("want one diagnostic, got %v", collector.Errors())
	}
	e := collector.Errors()[0]
	if e.Code != validation.CodeTooLong {
		t.Errorf("code = %d, want %d", e.Code, validation.CodeTooLong)
	}
	if e.Path != "CdtTrfTxInf.InstrForNxtAgt.InstrInf" {
		t.Errorf("path = %q", e.Path)
	}
}

func TestMandatoryAgentsAlwaysValidated(t *testing.T) {
	m := validTransfer()
	m.CdtTrfTxInf.Dbtr.FinInstnId.BICFI = ptr("notabic")

	cfg := validation.LenientConfig()
	collector := validation.NewErrorCollector()
	m.Validate("", &cfg, collector)
	if collector.Len() != 1 {
		t.Fatalf("want one diagnostic, got %v", collector.Errors())
	}
	e := collector.Errors()[0]
	if e.Code != validation.CodePattern || e.Path != "CdtTrfTxInf.Dbtr.FinInstnId.BICFI" {
		t.Errorf("got %d at %q", e.Code, e.Path)
	}
}

func TestRemittanceBounds(t *testing.T) {
	m := validTransfer()
	m.CdtTrfTxInf.RmtInf = &pacs009.RemittanceInformation2{
		Ustrd: ptr(strings.Repeat("x", 141)),
	}

	cfg := validation.DefaultParserConfig()
	collector := validation.NewErrorCollector()
	m.Validate("", &cfg, collector)
	if collector.Len() != 1 || collector.Errors()[0].Code != validation.CodeTooLong {
		t.Fatalf("want one length diagnostic, got %v", collector.Errors())
	}
}
