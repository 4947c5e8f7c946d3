package mxmessage_test

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/finwire/mxmessage"
	"github.com/finwire/mxmessage/appheader"
	"github.com/finwire/mxmessage/validation"
)

func testHeader(msgDefIdr string) *appheader.BusinessApplicationHeaderV02 {
	fi := func(bic string) appheader.Party44Choice {
		return appheader.Party44Choice{
			FIId: &appheader.BranchAndFinancialInstitutionIdentification6{
				FinInstnId: appheader.FinancialInstitutionIdentification18{BICFI: bic},
			},
		}
	}
	return &appheader.BusinessApplicationHeaderV02{
		Fr:        fi("DEUTDEFFXXX"),
		To:        fi("CHASUS33XXX"),
		BizMsgIdr: "MSG-00001",
		MsgDefIdr: msgDefIdr,
		BizSvc:    "swift.cbprplus.02",
		CreDt:     "2026-08-23T10:15:00+00:00",
	}
}

func TestResolveHeaderKind(t *testing.T) {
	tests := []struct {
		msgType string
		want    mxmessage.HeaderKind
	}{
		{"pacs.008.001.08", mxmessage.HeaderPacs008_001_08},
		{"pacs.008.001.08.stp", mxmessage.HeaderPacs008_001_08STP},
		{"pacs.009.001.08.cov", mxmessage.HeaderPacs009_001_08COV},
		{"camt.056.001.08", mxmessage.HeaderCamt056_001_08},
		{"camt.029.001", mxmessage.HeaderCamt029_001},
		{"camt.029.001.09", mxmessage.HeaderCamt029_001},
		{"camt.029.001.12", mxmessage.HeaderCamt029_001},
		{"camt.054.001.08", mxmessage.HeaderCamt054_001},
		{"camt.105.001.02.mc", mxmessage.HeaderCamt105_001_02MC},
		{"bogus.000.001.01", mxmessage.HeaderUnknown},
	}
	for _, tt := range tests {
		if got := mxmessage.ResolveHeaderKind(tt.msgType); got != tt.want {
			t.Errorf("ResolveHeaderKind(%q) = %v, want %v", tt.msgType, got, tt.want)
		}
	}
}

func TestNewAppHeaderUnknownDiscardsPayload(t *testing.T) {
	h := mxmessage.NewAppHeader("bogus.000.001.01", testHeader("bogus.000.001.01"))
	if h.Kind != mxmessage.HeaderUnknown || h.Hdr != nil {
		t.Fatalf("unknown header must be the zero value, got %+v", h)
	}
	if h.IsCBPRPlusCompliant() {
		t.Error("unknown header must not be compliant")
	}
	if h.MessageType() != "unknown" {
		t.Errorf("MessageType() = %q, want unknown", h.MessageType())
	}
}

func TestAppHeaderMessageType(t *testing.T) {
	h := mxmessage.NewAppHeader("pacs.008.001.08", testHeader("pacs.008.001.08"))
	if h.MessageType() != "pacs.008.001.08" {
		t.Errorf("MessageType() = %q", h.MessageType())
	}
	if !h.IsCBPRPlusCompliant() {
		t.Error("pacs.008 header must be compliant")
	}
}

func TestUnknownHeaderValidateIsCriticalRegardlessOfConfig(t *testing.T) {
	configs := map[string]validation.ParserConfig{
		"default":   validation.DefaultParserConfig(),
		"lenient":   validation.LenientConfig(),
		"fail-fast": validation.FailFastConfig(),
	}
	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			var h mxmessage.AppHeader
			collector := validation.NewErrorCollector()
			h.Validate("AppHdr", &cfg, collector)
			if !collector.HasCriticalErrors() || collector.Len() != 1 {
				t.Fatalf("want exactly one critical diagnostic, got %v", collector.Errors())
			}
			e := collector.Errors()[0]
			if e.Code != validation.CodeUnknownType {
				t.Errorf("code = %d, want %d", e.Code, validation.CodeUnknownType)
			}
			if e.Path != "AppHdr" {
				t.Errorf("path = %q, want AppHdr", e.Path)
			}
		})
	}
}

func TestAppHeaderJSONRoundTrip(t *testing.T) {
	h := mxmessage.NewAppHeader("pacs.008.001.08", testHeader("pacs.008.001.08"))

	raw, err := json.Marshal(h)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"BizAppHdr_PACS_008_001_08"`) {
		t.Fatalf("missing variant tag: %s", raw)
	}

	var back mxmessage.AppHeader
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back.Kind != mxmessage.HeaderPacs008_001_08 {
		t.Errorf("kind = %v", back.Kind)
	}
	if back.Hdr == nil || back.Hdr.BizMsgIdr != "MSG-00001" {
		t.Errorf("payload lost: %+v", back.Hdr)
	}
}

func TestAppHeaderJSONUnknown(t *testing.T) {
	var h mxmessage.AppHeader

	raw, err := json.Marshal(h)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"UNKNOWN"` {
		t.Fatalf("unknown header encodes as %s", raw)
	}

	var back mxmessage.AppHeader
	if err := json.Unmarshal([]byte(`"UNKNOWN"`), &back); err != nil {
		t.Fatal(err)
	}
	if back.Kind != mxmessage.HeaderUnknown {
		t.Errorf("kind = %v, want HeaderUnknown", back.Kind)
	}

	// Unrecognised variant tags decode to the unknown header, not an error.
	if err := json.Unmarshal([]byte(`{"BizAppHdr_FUTURE_001":{}}`), &back); err != nil {
		t.Fatal(err)
	}
	if back.Kind != mxmessage.HeaderUnknown {
		t.Errorf("unrecognised tag: kind = %v, want HeaderUnknown", back.Kind)
	}

	// Any other bare string is an error.
	if err := json.Unmarshal([]byte(`"SOMETHING"`), &back); err == nil {
		t.Error("expected error for unrecognised string")
	}
}
