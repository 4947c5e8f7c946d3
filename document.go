package mxmessage

import (
	"github.com/finwire/mxmessage/document/camt029"
	"github.com/finwire/mxmessage/document/camt056"
	"github.com/finwire/mxmessage/document/camt057"
	"github.com/finwire/mxmessage/document/pacs008"
	"github.com/finwire/mxmessage/document/pacs009"
	"github.com/finwire/mxmessage/validation"
)

// Document is the root container of the business payload. Exactly one of the
// message pointers is set; the all-nil zero value is the unknown document.
// The struct mirrors the XML wire form, where the Document element holds a
// single message-specific child.
type Document struct {
	FIToFICstmrCdtTrf *pacs008.FIToFICustomerCreditTransferV08       `xml:"FIToFICstmrCdtTrf,omitempty" json:"FIToFICstmrCdtTrf,omitempty"`
	FinInstnCdtTrf    *pacs009.FinancialInstitutionCreditTransferV08 `xml:"FICdtTrf,omitempty" json:"FinInstnCdtTrf,omitempty"`
	RsltnOfInvstgtn   *camt029.ResolutionOfInvestigationV09          `xml:"RsltnOfInvstgtn,omitempty" json:"RsltnOfInvstgtn,omitempty"`
	FIToFIPmtCxlReq   *camt056.FIToFIPaymentCancellationRequestV08   `xml:"FIToFIPmtCxlReq,omitempty" json:"FIToFIPmtCxlReq,omitempty"`
	NtfctnToRcv       *camt057.NotificationToReceiveV06              `xml:"NtfctnToRcv,omitempty" json:"NtfctnToRcv,omitempty"`
}

// MessageType returns the full-form message type of the document, or
// "unknown" when no message is set.
func (d *Document) MessageType() string {
	switch {
	case d.FIToFICstmrCdtTrf != nil:
		return "pacs.008.001.08"
	case d.FinInstnCdtTrf != nil:
		return "pacs.009.001.08"
	case d.RsltnOfInvstgtn != nil:
		return "camt.029.001.09"
	case d.FIToFIPmtCxlReq != nil:
		return "camt.056.001.08"
	case d.NtfctnToRcv != nil:
		return "camt.057.001.06"
	}
	return "unknown"
}

// IsCBPRPlusCompliant reports whether the document carries a message covered
// by the CBPR+ usage guidelines.
func (d *Document) IsCBPRPlusCompliant() bool {
	return d.MessageType() != "unknown"
}

// Namespace returns the ISO20022 document namespace of the contained message.
func (d *Document) Namespace() string {
	return Namespace(d.MessageType())
}

// Validate dispatches to the contained message. An unknown document always
// records the fixed unknown-type diagnostic, regardless of config.
func (d *Document) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	switch {
	case d.FIToFICstmrCdtTrf != nil:
		d.FIToFICstmrCdtTrf.Validate(path, config, collector)
	case d.FinInstnCdtTrf != nil:
		d.FinInstnCdtTrf.Validate(path, config, collector)
	case d.RsltnOfInvstgtn != nil:
		d.RsltnOfInvstgtn.Validate(path, config, collector)
	case d.FIToFIPmtCxlReq != nil:
		d.FIToFIPmtCxlReq.Validate(path, config, collector)
	case d.NtfctnToRcv != nil:
		d.NtfctnToRcv.Validate(path, config, collector)
	default:
		collector.AddCritical(validation.NewValidationError(
			validation.CodeUnknownType,
			"Unknown document type",
		).WithPath(path))
	}
}
