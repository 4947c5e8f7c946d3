// Package mxmessage provides:
//
// - Constraint validation for CBPR+ ISO20022 MX messages (path-aware diagnostics via ValidationError/Errors)
// - A closed catalog of application-header and document variants (AppHeader, Document) with stable message-type identifiers
// - XML and JSON wire mapping for the MX envelope (AppHdr + Document)
// - Scenario-driven sample generation under sample/ and a CLI under cmd/mx
//
// Design policy:
// - Keep the validation engine and the catalog in the root package; put per-message schema data under appheader/ and document/.
// - Validation never panics and never stops early unless the caller asked for fail-fast: one traversal surfaces every violation.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	env, err := mxmessage.ParseXML(data)
//	cfg := mxmessage.DefaultParserConfig()
//	ec := mxmessage.NewErrorCollector()
//	env.Validate("", &cfg, ec)
//	if ec.HasErrors() {
//		for _, e := range ec.Errors() { ... }
//	}
package mxmessage
