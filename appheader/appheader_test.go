package appheader_test

import (
	"testing"

	"github.com/finwire/mxmessage/appheader"
	"github.com/finwire/mxmessage/validation"
)

func validHeader() appheader.BusinessApplicationHeaderV02 {
	fi := func(bic string) appheader.Party44Choice {
		return appheader.Party44Choice{
			FIId: &appheader.BranchAndFinancialInstitutionIdentification6{
				FinInstnId: appheader.FinancialInstitutionIdentification18{BICFI: bic},
			},
		}
	}
	return appheader.BusinessApplicationHeaderV02{
		Fr:        fi("DEUTDEFFXXX"),
		To:        fi("CHASUS33"),
		BizMsgIdr: "MSG-2026-00042",
		MsgDefIdr: "pacs.008.001.08",
		BizSvc:    "swift.cbprplus.02",
		CreDt:     "2026-08-23T10:15:00+00:00",
	}
}

func collect(t *testing.T, h appheader.BusinessApplicationHeaderV02, cfg validation.ParserConfig) validation.Errors {
	t.Helper()
	collector := validation.NewErrorCollector()
	h.Validate("AppHdr", &cfg, collector)
	return collector.Errors()
}

func TestHeaderValid(t *testing.T) {
	if errs := collect(t, validHeader(), validation.DefaultParserConfig()); len(errs) != 0 {
		t.Fatalf("unexpected diagnostics: %v", errs)
	}
}

func TestHeaderBizSvc(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		h := validHeader()
		h.BizSvc = "x.y.0"
		errs := collect(t, h, validation.DefaultParserConfig())
		if len(errs) == 0 {
			t.Fatal("expected diagnostics")
		}
		if errs[0].Code != validation.CodeTooShort {
			t.Errorf("code = %d, want %d", errs[0].Code, validation.CodeTooShort)
		}
	})

	t.Run("bad pattern", func(t *testing.T) {
		h := validHeader()
		h.BizSvc = "SWIFT.CBPRPLUS.02"
		errs := collect(t, h, validation.DefaultParserConfig())
		if len(errs) != 1 || errs[0].Code != validation.CodePattern {
			t.Fatalf("want one pattern diagnostic, got %v", errs)
		}
		if errs[0].Path != "AppHdr.BizSvc" {
			t.Errorf("path = %q", errs[0].Path)
		}
	})
}

func TestHeaderBICFI(t *testing.T) {
	h := validHeader()
	h.Fr.FIId.FinInstnId.BICFI = "notabic"
	errs := collect(t, h, validation.DefaultParserConfig())
	if len(errs) != 1 || errs[0].Code != validation.CodePattern {
		t.Fatalf("want one pattern diagnostic, got %v", errs)
	}
	if errs[0].Path != "AppHdr.Fr.FIId.FinInstnId.BICFI" {
		t.Errorf("path = %q", errs[0].Path)
	}
}

func TestHeaderCreDtRequiresOffset(t *testing.T) {
	h := validHeader()
	h.CreDt = "2026-08-23T10:15:00Z"
	errs := collect(t, h, validation.DefaultParserConfig())
	if len(errs) != 1 || errs[0].Code != validation.CodePattern {
		t.Fatalf("zulu suffix must fail the offset pattern, got %v", errs)
	}
}

func TestHeaderLEIOnOptionalScalar(t *testing.T) {
	// Leaf constraints on optional scalars run even when optional-field
	// recursion is disabled.
	h := validHeader()
	bad := "not-a-lei"
	h.Fr.FIId.FinInstnId.LEI = &bad

	errs := collect(t, h, validation.LenientConfig())
	if len(errs) != 1 || errs[0].Code != validation.CodePattern {
		t.Fatalf("want one pattern diagnostic, got %v", errs)
	}
}

func TestHeaderOptionalGating(t *testing.T) {
	h := validHeader()
	h.MktPrctc = &appheader.ImplementationSpecification1{Regy: "", Id: ""}

	if errs := collect(t, h, validation.LenientConfig()); len(errs) != 0 {
		t.Fatalf("lenient config must skip nested optional elements, got %v", errs)
	}

	errs := collect(t, h, validation.DefaultParserConfig())
	if len(errs) != 2 {
		t.Fatalf("want Regy and Id diagnostics, got %v", errs)
	}
	for _, e := range errs {
		if e.Code != validation.CodeTooShort {
			t.Errorf("code = %d, want %d", e.Code, validation.CodeTooShort)
		}
	}
}
