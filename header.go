package mxmessage

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/finwire/mxmessage/appheader"
	"github.com/finwire/mxmessage/validation"
)

// HeaderKind names one variant of the closed application-header catalog. The
// zero value is HeaderUnknown so that a freshly decoded AppHeader is
// non-compliant until a known variant is recognised.
type HeaderKind int

const (
	HeaderUnknown HeaderKind = iota

	HeaderAdmi024_001_01

	HeaderCamt025_001_08
	HeaderCamt029_001
	HeaderCamt052_001_08
	HeaderCamt053_001_08
	HeaderCamt054_001
	HeaderCamt055_001_08
	HeaderCamt056_001_08
	HeaderCamt057_001_06
	HeaderCamt058_001_08
	HeaderCamt060_001_05
	HeaderCamt105_001_02
	HeaderCamt105_001_02MC
	HeaderCamt106_001_02
	HeaderCamt106_001_02MC
	HeaderCamt107_001_01
	HeaderCamt108_001_01
	HeaderCamt109_001_01

	HeaderPacs002_001_10
	HeaderPacs003_001_08
	HeaderPacs004_001_09
	HeaderPacs008_001_08
	HeaderPacs008_001_08STP
	HeaderPacs009_001_08
	HeaderPacs009_001_08ADV
	HeaderPacs009_001_08COV

	HeaderPain001_001_09
	HeaderPain002_001_10
	HeaderPain008_001_08
)

// headerKindInfo carries the JSON variant tag and the message-type identifier
// of one catalog entry. Both strings are wire contract.
type headerKindInfo struct {
	tag         string
	messageType string
}

var headerKinds = map[HeaderKind]headerKindInfo{
	HeaderAdmi024_001_01: {"BizAppHdr_ADMI_024_001_01", "admi.024.001.01"},

	HeaderCamt025_001_08:   {"BizAppHdr_CAMT_025_001_08", "camt.025.001.08"},
	HeaderCamt029_001:      {"BizAppHdr_CAMT_029_001", "camt.029.001"},
	HeaderCamt052_001_08:   {"BizAppHdr_CAMT_052_001_08", "camt.052.001.08"},
	HeaderCamt053_001_08:   {"BizAppHdr_CAMT_053_001_08", "camt.053.001.08"},
	HeaderCamt054_001:      {"BizAppHdr_CAMT_054_001", "camt.054.001"},
	HeaderCamt055_001_08:   {"BizAppHdr_CAMT_055_001_08", "camt.055.001.08"},
	HeaderCamt056_001_08:   {"BizAppHdr_CAMT_056_001_08", "camt.056.001.08"},
	HeaderCamt057_001_06:   {"BizAppHdr_CAMT_057_001_06", "camt.057.001.06"},
	HeaderCamt058_001_08:   {"BizAppHdr_CAMT_058_001_08", "camt.058.001.08"},
	HeaderCamt060_001_05:   {"BizAppHdr_CAMT_060_001_05", "camt.060.001.05"},
	HeaderCamt105_001_02:   {"BizAppHdr_CAMT_105_001_02", "camt.105.001.02"},
	HeaderCamt105_001_02MC: {"BizAppHdr_CAMT_105_001_02_MC", "camt.105.001.02.mc"},
	HeaderCamt106_001_02:   {"BizAppHdr_CAMT_106_001_02", "camt.106.001.02"},
	HeaderCamt106_001_02MC: {"BizAppHdr_CAMT_106_001_02_MC", "camt.106.001.02.mc"},
	HeaderCamt107_001_01:   {"BizAppHdr_CAMT_107_001_01", "camt.107.001.01"},
	HeaderCamt108_001_01:   {"BizAppHdr_CAMT_108_001_01", "camt.108.001.01"},
	HeaderCamt109_001_01:   {"BizAppHdr_CAMT_109_001_01", "camt.109.001.01"},

	HeaderPacs002_001_10:    {"BizAppHdr_PACS_002_001_10", "pacs.002.001.10"},
	HeaderPacs003_001_08:    {"BizAppHdr_PACS_003_001_08", "pacs.003.001.08"},
	HeaderPacs004_001_09:    {"BizAppHdr_PACS_004_001_09", "pacs.004.001.09"},
	HeaderPacs008_001_08:    {"BizAppHdr_PACS_008_001_08", "pacs.008.001.08"},
	HeaderPacs008_001_08STP: {"BizAppHdr_PACS_008_001_08_STP", "pacs.008.001.08.stp"},
	HeaderPacs009_001_08:    {"BizAppHdr_PACS_009_001_08", "pacs.009.001.08"},
	HeaderPacs009_001_08ADV: {"BizAppHdr_PACS_009_001_08_ADV", "pacs.009.001.08.adv"},
	HeaderPacs009_001_08COV: {"BizAppHdr_PACS_009_001_08_COV", "pacs.009.001.08.cov"},

	HeaderPain001_001_09: {"BizAppHdr_PAIN_001_001_09", "pain.001.001.09"},
	HeaderPain002_001_10: {"BizAppHdr_PAIN_002_001_10", "pain.002.001.10"},
	HeaderPain008_001_08: {"BizAppHdr_PAIN_008_001_08", "pain.008.001.08"},
}

var headerTagToKind = func() map[string]HeaderKind {
	m := make(map[string]HeaderKind, len(headerKinds))
	for k, info := range headerKinds {
		m[info.tag] = k
	}
	return m
}()

// AppHeader is the catalog-typed Business Application Header: a known variant
// kind paired with the head.001.001.02 payload, or HeaderUnknown with a nil
// payload. The zero value is the unknown header.
type AppHeader struct {
	Kind HeaderKind
	Hdr  *appheader.BusinessApplicationHeaderV02
}

// NewAppHeader pairs a payload with the kind resolved from messageType. An
// unrecognised type yields the unknown header with the payload discarded.
func NewAppHeader(messageType string, hdr *appheader.BusinessApplicationHeaderV02) AppHeader {
	kind := ResolveHeaderKind(messageType)
	if kind == HeaderUnknown {
		return AppHeader{}
	}
	return AppHeader{Kind: kind, Hdr: hdr}
}

// ResolveHeaderKind maps a message-definition identifier (the MsgDefIdr value,
// full form) to its catalog kind. camt.029 and camt.054 headers are version
// agnostic in the catalog and match on the versionless prefix.
func ResolveHeaderKind(messageType string) HeaderKind {
	for k, info := range headerKinds {
		if info.messageType == messageType {
			return k
		}
	}
	switch {
	case strings.HasPrefix(messageType, "camt.029.001"):
		return HeaderCamt029_001
	case strings.HasPrefix(messageType, "camt.054.001"):
		return HeaderCamt054_001
	}
	return HeaderUnknown
}

// MessageType returns the message-type identifier of the header variant.
// Total over all kinds; the unknown header reports "unknown".
func (h AppHeader) MessageType() string {
	if info, ok := headerKinds[h.Kind]; ok {
		return info.messageType
	}
	return "unknown"
}

// IsCBPRPlusCompliant reports whether the header variant is part of the CBPR+
// usage guidelines. Only the unknown header is non-compliant.
func (h AppHeader) IsCBPRPlusCompliant() bool {
	_, ok := headerKinds[h.Kind]
	return ok
}

// Validate dispatches to the payload for known variants. The unknown header
// always records the fixed unknown-type diagnostic, regardless of config.
func (h AppHeader) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if _, ok := headerKinds[h.Kind]; !ok || h.Hdr == nil {
		collector.AddCritical(validation.NewValidationError(
			validation.CodeUnknownType,
			"Unknown application header type",
		).WithPath(path))
		return
	}
	h.Hdr.Validate(path, config, collector)
}

// MarshalJSON encodes the header externally tagged: a known variant becomes
// {"<tag>": {payload}}, the unknown header becomes the string "UNKNOWN".
func (h AppHeader) MarshalJSON() ([]byte, error) {
	info, ok := headerKinds[h.Kind]
	if !ok || h.Hdr == nil {
		return json.Marshal("UNKNOWN")
	}
	return json.Marshal(map[string]*appheader.BusinessApplicationHeaderV02{info.tag: h.Hdr})
}

// UnmarshalJSON decodes the externally tagged form produced by MarshalJSON.
func (h *AppHeader) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "UNKNOWN" {
			*h = AppHeader{}
			return nil
		}
		return fmt.Errorf("mxmessage: unrecognized application header %q", s)
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("mxmessage: decode application header: %w", err)
	}
	if len(tagged) != 1 {
		return fmt.Errorf("mxmessage: application header must carry exactly one variant, got %d", len(tagged))
	}
	for tag, raw := range tagged {
		kind, ok := headerTagToKind[tag]
		if !ok {
			*h = AppHeader{}
			return nil
		}
		var hdr appheader.BusinessApplicationHeaderV02
		if err := json.Unmarshal(raw, &hdr); err != nil {
			return fmt.Errorf("mxmessage: decode %s: %w", tag, err)
		}
		*h = AppHeader{Kind: kind, Hdr: &hdr}
	}
	return nil
}
