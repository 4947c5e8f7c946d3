package mxmessage

import (
	"encoding/xml"
	"fmt"
	"regexp"

	"github.com/goccy/go-json"

	"github.com/finwire/mxmessage/appheader"
	"github.com/finwire/mxmessage/validation"
)

const headerNamespace = "urn:iso:std:iso:20022:tech:xsd:head.001.001.02"

// Envelope is the complete MX message: the Business Application Header plus
// the Document body. The header variant is resolved from AppHdr.MsgDefIdr.
type Envelope struct {
	AppHdr   AppHeader `json:"AppHdr"`
	Document Document  `json:"Document"`
}

// NewEnvelope pairs a header payload with a document. The header kind is
// resolved from the payload's MsgDefIdr.
func NewEnvelope(hdr *appheader.BusinessApplicationHeaderV02, doc Document) *Envelope {
	return &Envelope{
		AppHdr:   NewAppHeader(hdr.MsgDefIdr, hdr),
		Document: doc,
	}
}

// MessageType returns the message-definition identifier carried in the
// header, or "unknown" for the unknown header.
func (e *Envelope) MessageType() string {
	if e.AppHdr.Hdr != nil {
		return e.AppHdr.Hdr.MsgDefIdr
	}
	return "unknown"
}

// Namespace returns the ISO20022 namespace of the enveloped message type.
func (e *Envelope) Namespace() string {
	return Namespace(e.MessageType())
}

// Header returns the head.001.001.02 payload, or nil for the unknown header.
func (e *Envelope) Header() *appheader.BusinessApplicationHeaderV02 {
	return e.AppHdr.Hdr
}

// Validate traverses header then document. One traversal surfaces every
// violation unless the config asks for fail-fast.
func (e *Envelope) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	e.AppHdr.Validate(validation.ChildPath(path, "AppHdr"), config, collector)
	if config.FailFast && collector.HasCriticalErrors() {
		return
	}
	e.Document.Validate(validation.ChildPath(path, "Document"), config, collector)
}

// xmlEnvelope is the XML wire form. The header travels untagged; its catalog
// kind is recovered from MsgDefIdr after decoding.
type xmlEnvelope struct {
	XMLName  xml.Name                                `xml:"Envelope"`
	Xmlns    string                                  `xml:"xmlns,attr,omitempty"`
	AppHdr   *appheader.BusinessApplicationHeaderV02 `xml:"AppHdr"`
	Document Document                                `xml:"Document"`
}

// ToXML serializes the envelope with the XML declaration and the header
// namespace on the Envelope element.
func (e *Envelope) ToXML() ([]byte, error) {
	wire := xmlEnvelope{
		Xmlns:    headerNamespace,
		AppHdr:   e.AppHdr.Hdr,
		Document: e.Document,
	}
	body, err := xml.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("mxmessage: serialize envelope: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// ParseXML decodes a complete envelope (AppHdr + Document) from XML. The
// header kind is resolved from MsgDefIdr; an unrecognised identifier yields
// the unknown header rather than an error, so validation can report it.
func ParseXML(data []byte) (*Envelope, error) {
	var wire xmlEnvelope
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("mxmessage: parse envelope: %w", err)
	}
	if wire.AppHdr == nil {
		return nil, fmt.Errorf("mxmessage: AppHdr not found in XML")
	}
	return &Envelope{
		AppHdr:   NewAppHeader(wire.AppHdr.MsgDefIdr, wire.AppHdr),
		Document: wire.Document,
	}, nil
}

// ToJSON serializes the envelope. The header is externally tagged by variant.
func (e *Envelope) ToJSON() ([]byte, error) {
	out, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("mxmessage: serialize envelope: %w", err)
	}
	return out, nil
}

// ParseJSON decodes an envelope from the JSON form produced by ToJSON.
func ParseJSON(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("mxmessage: parse envelope: %w", err)
	}
	return &env, nil
}

var msgDefIdrRe = regexp.MustCompile(`<MsgDefIdr>([^<]+)</MsgDefIdr>`)

// PeekMessageTypeFromXML extracts the short-form message type from raw XML
// without a full decode.
func PeekMessageTypeFromXML(data []byte) (string, error) {
	m := msgDefIdrRe.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("mxmessage: MsgDefIdr not found in XML")
	}
	return NormalizeMessageType(string(m[1])), nil
}

// PeekMessageTypeFromJSON extracts the short-form message type from raw JSON
// without a full decode. The header may sit at the top level or under an
// Envelope key; the variant tag wrapping is skipped over.
func PeekMessageTypeFromJSON(data []byte) (string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("mxmessage: parse JSON: %w", err)
	}
	raw, ok := doc["AppHdr"]
	if !ok {
		if env, found := doc["Envelope"]; found {
			var inner map[string]json.RawMessage
			if err := json.Unmarshal(env, &inner); err == nil {
				raw, ok = inner["AppHdr"]
			}
		}
	}
	if !ok {
		return "", fmt.Errorf("mxmessage: AppHdr not found in JSON")
	}

	var hdr map[string]json.RawMessage
	if err := json.Unmarshal(raw, &hdr); err != nil {
		return "", fmt.Errorf("mxmessage: parse AppHdr: %w", err)
	}
	// Unwrap a variant-tagged header.
	if len(hdr) == 1 {
		for _, inner := range hdr {
			var unwrapped map[string]json.RawMessage
			if err := json.Unmarshal(inner, &unwrapped); err == nil {
				if _, found := unwrapped["MsgDefIdr"]; found {
					hdr = unwrapped
				}
			}
		}
	}
	rawIdr, ok := hdr["MsgDefIdr"]
	if !ok {
		return "", fmt.Errorf("mxmessage: MsgDefIdr not found in JSON")
	}
	var idr string
	if err := json.Unmarshal(rawIdr, &idr); err != nil {
		return "", fmt.Errorf("mxmessage: parse MsgDefIdr: %w", err)
	}
	return NormalizeMessageType(idr), nil
}
