package mxmessage_test

import (
	"testing"

	"github.com/finwire/mxmessage"
)

func TestRegistryLookups(t *testing.T) {
	tests := []struct {
		in       string
		fullForm string
		short    string
	}{
		{"pacs.008", "pacs.008.001.08", "pacs.008"},
		{"pacs.008.001.08", "pacs.008.001.08", "pacs.008"},
		{"camt.029", "camt.029.001.09", "camt.029"},
		{"camt.057.001.06", "camt.057.001.06", "camt.057"},
		{"admi.024", "admi.024.001.01", "admi.024"},
	}
	for _, tt := range tests {
		if got := mxmessage.FullForm(tt.in); got != tt.fullForm {
			t.Errorf("FullForm(%q) = %q, want %q", tt.in, got, tt.fullForm)
		}
		if got := mxmessage.NormalizeMessageType(tt.in); got != tt.short {
			t.Errorf("NormalizeMessageType(%q) = %q, want %q", tt.in, got, tt.short)
		}
	}
}

func TestRegistryVersionlessLookups(t *testing.T) {
	// The header catalog identifies some messages without a version suffix;
	// those resolve to the registered version instead of the literal fallback.
	if got := mxmessage.FullForm("camt.054.001"); got != "camt.054.001.08" {
		t.Errorf("FullForm(camt.054.001) = %q, want camt.054.001.08", got)
	}
	if got := mxmessage.NormalizeMessageType("camt.029.001"); got != "camt.029" {
		t.Errorf("NormalizeMessageType(camt.029.001) = %q, want camt.029", got)
	}
	want := "urn:iso:std:iso:20022:tech:xsd:camt.054.001.08"
	if got := mxmessage.Namespace("camt.054.001"); got != want {
		t.Errorf("Namespace(camt.054.001) = %q, want %q", got, want)
	}
}

func TestRegistryUnknownTypes(t *testing.T) {
	if got := mxmessage.FullForm("zzzz.999"); got != "" {
		t.Errorf("FullForm(zzzz.999) = %q, want empty", got)
	}
	if got := mxmessage.NormalizeMessageType("zzzz.999"); got != "zzzz.999" {
		t.Errorf("NormalizeMessageType should pass through unregistered types, got %q", got)
	}
	if got := mxmessage.Namespace("zzzz.999"); got != "urn:iso:std:iso:20022:tech:xsd:zzzz.999" {
		t.Errorf("Namespace fallback = %q", got)
	}
}

func TestNamespace(t *testing.T) {
	want := "urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08"
	if got := mxmessage.Namespace("pacs.008"); got != want {
		t.Errorf("Namespace(pacs.008) = %q, want %q", got, want)
	}
	if got := mxmessage.Namespace("pacs.008.001.08"); got != want {
		t.Errorf("Namespace(pacs.008.001.08) = %q, want %q", got, want)
	}
}

func TestElementMappings(t *testing.T) {
	short, ok := mxmessage.ElementToMessageType("FIToFICstmrCdtTrf")
	if !ok || short != "pacs.008" {
		t.Errorf("ElementToMessageType(FIToFICstmrCdtTrf) = %q, %v", short, ok)
	}
	short, ok = mxmessage.ElementToMessageType("FinancialInstitutionCreditTransferV08")
	if !ok || short != "pacs.009" {
		t.Errorf("ElementToMessageType by type name = %q, %v", short, ok)
	}
	if _, ok := mxmessage.ElementToMessageType("NoSuchElement"); ok {
		t.Error("expected miss for unknown element")
	}

	elem, ok := mxmessage.MessageTypeToElement("camt.056.001.08")
	if !ok || elem != "FIToFIPmtCxlReq" {
		t.Errorf("MessageTypeToElement(camt.056.001.08) = %q, %v", elem, ok)
	}
}

func TestRegistryCoversAllEntries(t *testing.T) {
	if len(mxmessage.MessageRegistry) != 25 {
		t.Fatalf("registry has %d entries, want 25", len(mxmessage.MessageRegistry))
	}
	seen := map[string]bool{}
	for _, info := range mxmessage.MessageRegistry {
		if info.ShortForm == "" || info.FullForm == "" || info.TypeName == "" || info.XMLElement == "" {
			t.Errorf("incomplete entry: %+v", info)
		}
		if seen[info.ShortForm] {
			t.Errorf("duplicate short form %s", info.ShortForm)
		}
		seen[info.ShortForm] = true
	}
}
