package mxmessage_test

import (
	"strings"
	"testing"

	"github.com/finwire/mxmessage"
	"github.com/finwire/mxmessage/sample"
	"github.com/finwire/mxmessage/validation"
)

func TestEnvelopeXMLRoundTrip(t *testing.T) {
	env, err := sample.Generate("pacs.008")
	if err != nil {
		t.Fatal(err)
	}

	raw, err := env.ToXML()
	if err != nil {
		t.Fatal(err)
	}
	out := string(raw)
	if !strings.HasPrefix(out, "<?xml") {
		t.Error("missing XML declaration")
	}
	for _, el := range []string{"<AppHdr>", "<FIToFICstmrCdtTrf>", "<MsgDefIdr>pacs.008.001.08</MsgDefIdr>"} {
		if !strings.Contains(out, el) {
			t.Errorf("output missing %s", el)
		}
	}

	back, err := mxmessage.ParseXML(raw)
	if err != nil {
		t.Fatal(err)
	}
	if back.MessageType() != "pacs.008.001.08" {
		t.Errorf("MessageType() = %q", back.MessageType())
	}
	if back.Document.FIToFICstmrCdtTrf == nil {
		t.Fatal("document lost in round trip")
	}

	cfg := validation.DefaultParserConfig()
	collector := validation.NewErrorCollector()
	back.Validate("", &cfg, collector)
	if collector.HasErrors() {
		t.Errorf("re-parsed envelope has diagnostics: %v", collector.Errors())
	}
}

func TestEnvelopeJSONRoundTrip(t *testing.T) {
	env, err := sample.Generate("camt.056")
	if err != nil {
		t.Fatal(err)
	}

	raw, err := env.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"BizAppHdr_CAMT_056_001_08"`) {
		t.Fatalf("header variant tag missing: %s", raw)
	}

	back, err := mxmessage.ParseJSON(raw)
	if err != nil {
		t.Fatal(err)
	}
	if back.AppHdr.Kind != mxmessage.HeaderCamt056_001_08 {
		t.Errorf("header kind = %v", back.AppHdr.Kind)
	}
	if back.Document.FIToFIPmtCxlReq == nil {
		t.Fatal("document lost in round trip")
	}
}

func TestParseXMLMissingAppHdr(t *testing.T) {
	_, err := mxmessage.ParseXML([]byte(`<?xml version="1.0"?><Envelope><Document></Document></Envelope>`))
	if err == nil || !strings.Contains(err.Error(), "AppHdr not found") {
		t.Fatalf("err = %v", err)
	}
}

func TestPeekMessageType(t *testing.T) {
	env, err := sample.Generate("camt.029")
	if err != nil {
		t.Fatal(err)
	}

	rawXML, err := env.ToXML()
	if err != nil {
		t.Fatal(err)
	}
	mt, err := mxmessage.PeekMessageTypeFromXML(rawXML)
	if err != nil || mt != "camt.029" {
		t.Errorf("PeekMessageTypeFromXML = %q, %v", mt, err)
	}
	if _, err := mxmessage.PeekMessageTypeFromXML([]byte("<Envelope/>")); err == nil {
		t.Error("expected error for XML without MsgDefIdr")
	}

	rawJSON, err := env.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	mt, err = mxmessage.PeekMessageTypeFromJSON(rawJSON)
	if err != nil || mt != "camt.029" {
		t.Errorf("PeekMessageTypeFromJSON = %q, %v", mt, err)
	}
	if _, err := mxmessage.PeekMessageTypeFromJSON([]byte(`{"Document":{}}`)); err == nil {
		t.Error("expected error for JSON without AppHdr")
	}
}

func TestUnknownDocumentValidate(t *testing.T) {
	var doc mxmessage.Document
	if doc.MessageType() != "unknown" {
		t.Errorf("MessageType() = %q", doc.MessageType())
	}
	if doc.IsCBPRPlusCompliant() {
		t.Error("empty document must not be compliant")
	}

	cfg := validation.LenientConfig()
	collector := validation.NewErrorCollector()
	doc.Validate("Document", &cfg, collector)
	if !collector.HasCriticalErrors() || collector.Len() != 1 {
		t.Fatalf("want one critical diagnostic, got %v", collector.Errors())
	}
	if collector.Errors()[0].Code != validation.CodeUnknownType {
		t.Errorf("code = %d", collector.Errors()[0].Code)
	}
}

func TestValidateIdempotent(t *testing.T) {
	env, err := sample.Generate("pacs.008")
	if err != nil {
		t.Fatal(err)
	}
	env.AppHdr.Hdr.BizSvc = "SWIFT.CBPRPLUS.02"
	env.Document.FIToFICstmrCdtTrf.GrpHdr.MsgId = strings.Repeat("A", 36)
	env.Document.FIToFICstmrCdtTrf.CdtTrfTxInf.PmtId.UETR = "NOT-A-UETR"

	cfg := validation.DefaultParserConfig()
	first := validation.NewErrorCollector()
	env.Validate("", &cfg, first)
	second := validation.NewErrorCollector()
	env.Validate("", &cfg, second)

	a, b := first.Errors(), second.Errors()
	if len(a) == 0 {
		t.Fatal("expected diagnostics")
	}
	if len(a) != len(b) {
		t.Fatalf("runs disagree: %d vs %d diagnostics", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("diagnostic %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestEnvelopeFailFastStopsAtHeader(t *testing.T) {
	var env mxmessage.Envelope

	cfg := validation.FailFastConfig()
	collector := validation.NewErrorCollector()
	env.Validate("", &cfg, collector)
	if collector.Len() != 1 {
		t.Fatalf("fail-fast should stop after the header diagnostic, got %v", collector.Errors())
	}

	cfg = validation.DefaultParserConfig()
	collector = validation.NewErrorCollector()
	env.Validate("", &cfg, collector)
	if collector.Len() != 2 {
		t.Fatalf("want header and document diagnostics, got %v", collector.Errors())
	}
}
