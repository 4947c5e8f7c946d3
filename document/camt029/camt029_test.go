package camt029_test

import (
	"testing"

	"github.com/finwire/mxmessage/document/camt029"
	"github.com/finwire/mxmessage/validation"
)

func ptr[T any](v T) *T { return &v }

func agent(bic string) camt029.Party40Choice {
	return camt029.Party40Choice{
		Agt: &camt029.BranchAndFinancialInstitutionIdentification6{
			FinInstnId: camt029.FinancialInstitutionIdentification18{BICFI: &bic},
		},
	}
}

func validResolution() camt029.ResolutionOfInvestigationV09 {
	conf := camt029.CancellationStatusCNCL
	return camt029.ResolutionOfInvestigationV09{
		Assgnmt: camt029.CaseAssignment5{
			Id:      "ASGN-001",
			Assgnr:  agent("DEUTDEFFXXX"),
			Assgne:  agent("CHASUS33XXX"),
			CreDtTm: "2026-08-23T10:15:00+00:00",
		},
		Sts: camt029.InvestigationStatus5Choice{Conf: &conf},
		CxlDtls: camt029.UnderlyingTransaction22{
			TxInfAndSts: camt029.PaymentTransaction102{
				CxlStsId: "CXLST-001",
				RslvdCase: camt029.Case5{
					Id:    "CASE-001",
					Cretr: agent("BNPAFRPPXXX"),
				},
				OrgnlGrpInf: camt029.OriginalGroupInformation29{
					OrgnlMsgId:   "ORIG-001",
					OrgnlMsgNmId: "pacs.008.001.08",
				},
				OrgnlUETR: "7dd1ea19-8abc-4bcd-9abc-1234567890ab",
			},
		},
	}
}

func TestResolutionValid(t *testing.T) {
	m := validResolution()
	cfg := validation.DefaultParserConfig()
	collector := validation.NewErrorCollector()
	m.Validate("Document.RsltnOfInvstgtn", &cfg, collector)
	if collector.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", collector.Errors())
	}
}

func TestResolutionOriginalReferences(t *testing.T) {
	m := validResolution()
	m.CxlDtls.TxInfAndSts.OrgnlUETR = "NOT-A-UETR"
	m.CxlDtls.TxInfAndSts.OrgnlGrpInf.OrgnlCreDtTm = ptr("2026-08-23T09:00:00Z")

	cfg := validation.LenientConfig()
	collector := validation.NewErrorCollector()
	m.Validate("", &cfg, collector)

	// Both are leaf constraints; they run even with optional-field recursion
	// disabled.
	errs := collector.Errors()
	if len(errs) != 2 {
		t.Fatalf("want two diagnostics, got %v", errs)
	}
	if errs[0].Path != "CxlDtls.TxInfAndSts.OrgnlGrpInf.OrgnlCreDtTm" {
		t.Errorf("path = %q", errs[0].Path)
	}
	if errs[1].Path != "CxlDtls.TxInfAndSts.OrgnlUETR" {
		t.Errorf("path = %q", errs[1].Path)
	}
	for _, e := range errs {
		if e.Code != validation.CodePattern {
			t.Errorf("code = %d, want %d", e.Code, validation.CodePattern)
		}
	}
}

func TestStatusReasonNarrativeBounds(t *testing.T) {
	m := validResolution()
	rsn := camt029.CancellationReasonNARR
	m.CxlDtls.TxInfAndSts.CxlStsRsnInf = &camt029.CancellationStatusReason4{
		Rsn:      &camt029.CancellationStatusReason3Choice{Cd: &rsn},
		AddtlInf: []string{"Cancellation accepted per customer request", "___"},
	}

	cfg := validation.DefaultParserConfig()
	collector := validation.NewErrorCollector()
	m.Validate("", &cfg, collector)
	if collector.Len() != 1 {
		t.Fatalf("want one diagnostic, got %v", collector.Errors())
	}
	e := collector.Errors()[0]
	if e.Code != validation.CodePattern || e.Field != "AddtlInf" {
		t.Errorf("got %d on %q, want pattern violation on AddtlInf", e.Code, e.Field)
	}
}

func TestPartyChoicePartyBranch(t *testing.T) {
	m := validResolution()
	m.Assgnmt.Assgnr = camt029.Party40Choice{
		Pty: &camt029.PartyIdentification135{Nm: ptr("Acme Industries")},
	}

	cfg := validation.LenientConfig()
	collector := validation.NewErrorCollector()
	m.Validate("", &cfg, collector)
	if collector.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", collector.Errors())
	}
}
