package mxmessage

import "strings"

// MessageTypeInfo is one registry entry mapping between the short form
// ("pacs.008"), the full form ("pacs.008.001.08"), the Go type name and the
// XML element name of a business message. The registry is the single source
// of truth for these mappings; the strings are wire-facing contract and must
// stay stable across releases.
type MessageTypeInfo struct {
	ShortForm  string
	FullForm   string
	TypeName   string
	XMLElement string
}

// MessageRegistry lists every ISO20022 message type known to the catalog.
var MessageRegistry = []MessageTypeInfo{
	// PACS - Payment Clearing and Settlement
	{ShortForm: "pacs.008", FullForm: "pacs.008.001.08", TypeName: "FIToFICustomerCreditTransferV08", XMLElement: "FIToFICstmrCdtTrf"},
	{ShortForm: "pacs.002", FullForm: "pacs.002.001.10", TypeName: "FIToFIPaymentStatusReportV10", XMLElement: "FIToFIPmtStsRpt"},
	{ShortForm: "pacs.003", FullForm: "pacs.003.001.08", TypeName: "FIToFICustomerDirectDebitV08", XMLElement: "FIToFICstmrDrctDbt"},
	{ShortForm: "pacs.004", FullForm: "pacs.004.001.09", TypeName: "PaymentReturnV09", XMLElement: "PmtRtr"},
	{ShortForm: "pacs.009", FullForm: "pacs.009.001.08", TypeName: "FinancialInstitutionCreditTransferV08", XMLElement: "FICdtTrf"},
	{ShortForm: "pacs.010", FullForm: "pacs.010.001.03", TypeName: "FinancialInstitutionDirectDebitV03", XMLElement: "FIDrctDbt"},
	// PAIN - Payment Initiation
	{ShortForm: "pain.001", FullForm: "pain.001.001.09", TypeName: "CustomerCreditTransferInitiationV09", XMLElement: "CstmrCdtTrfInitn"},
	{ShortForm: "pain.002", FullForm: "pain.002.001.10", TypeName: "CustomerPaymentStatusReportV10", XMLElement: "CstmrPmtStsRpt"},
	{ShortForm: "pain.008", FullForm: "pain.008.001.08", TypeName: "CustomerDirectDebitInitiationV08", XMLElement: "CstmrDrctDbtInitn"},
	// CAMT - Cash Management
	{ShortForm: "camt.025", FullForm: "camt.025.001.08", TypeName: "ReceiptV08", XMLElement: "Rcpt"},
	{ShortForm: "camt.029", FullForm: "camt.029.001.09", TypeName: "ResolutionOfInvestigationV09", XMLElement: "RsltnOfInvstgtn"},
	{ShortForm: "camt.052", FullForm: "camt.052.001.08", TypeName: "BankToCustomerAccountReportV08", XMLElement: "BkToCstmrAcctRpt"},
	{ShortForm: "camt.053", FullForm: "camt.053.001.08", TypeName: "BankToCustomerStatementV08", XMLElement: "BkToCstmrStmt"},
	{ShortForm: "camt.054", FullForm: "camt.054.001.08", TypeName: "BankToCustomerDebitCreditNotificationV08", XMLElement: "BkToCstmrDbtCdtNtfctn"},
	{ShortForm: "camt.055", FullForm: "camt.055.001.08", TypeName: "CustomerPaymentCancellationRequestV08", XMLElement: "CstmrPmtCxlReq"},
	{ShortForm: "camt.056", FullForm: "camt.056.001.08", TypeName: "FIToFIPaymentCancellationRequestV08", XMLElement: "FIToFIPmtCxlReq"},
	{ShortForm: "camt.057", FullForm: "camt.057.001.06", TypeName: "NotificationToReceiveV06", XMLElement: "NtfctnToRcv"},
	{ShortForm: "camt.058", FullForm: "camt.058.001.08", TypeName: "NotificationToReceiveCancellationAdviceV08", XMLElement: "NtfctnToRcvCxlAdvc"},
	{ShortForm: "camt.060", FullForm: "camt.060.001.05", TypeName: "AccountReportingRequestV05", XMLElement: "AcctRptgReq"},
	{ShortForm: "camt.105", FullForm: "camt.105.001.02", TypeName: "ChargesPaymentNotificationV02", XMLElement: "ChrgsPmtNtfctn"},
	{ShortForm: "camt.106", FullForm: "camt.106.001.02", TypeName: "ChargesPaymentRequestV02", XMLElement: "ChrgsPmtReq"},
	{ShortForm: "camt.107", FullForm: "camt.107.001.01", TypeName: "ChequePresentmentNotificationV01", XMLElement: "ChqPresntmntNtfctn"},
	{ShortForm: "camt.108", FullForm: "camt.108.001.01", TypeName: "ChequeCancellationOrStopRequestV01", XMLElement: "ChqCxlOrStopReq"},
	{ShortForm: "camt.109", FullForm: "camt.109.001.01", TypeName: "ChequeCancellationOrStopReportV01", XMLElement: "ChqCxlOrStopRpt"},
	// ADMI - Administration
	{ShortForm: "admi.024", FullForm: "admi.024.001.01", TypeName: "NotificationOfCorrespondenceV01", XMLElement: "NtfctnOfCrspdc"},
}

const namespacePrefix = "urn:iso:std:iso:20022:tech:xsd:"

func lookup(messageType string) *MessageTypeInfo {
	for i := range MessageRegistry {
		info := &MessageRegistry[i]
		if messageType == info.ShortForm || messageType == info.FullForm {
			return info
		}
	}
	// Versionless identifiers such as "camt.054.001", used by the header
	// catalog, resolve to the registered version.
	for i := range MessageRegistry {
		info := &MessageRegistry[i]
		if strings.HasPrefix(messageType, info.ShortForm+".") && strings.HasPrefix(info.FullForm, messageType+".") {
			return info
		}
	}
	return nil
}

// Namespace returns the document namespace URI for a message type given in
// either short or full form. Unregistered types fall back to constructing the
// namespace from the given string.
func Namespace(messageType string) string {
	if info := lookup(messageType); info != nil {
		return namespacePrefix + info.FullForm
	}
	return namespacePrefix + messageType
}

// NormalizeMessageType converts a message type to its short form
// ("pacs.008.001.08" -> "pacs.008"). Unregistered types pass through.
func NormalizeMessageType(messageType string) string {
	if info := lookup(messageType); info != nil {
		return info.ShortForm
	}
	return messageType
}

// FullForm returns the full form of a message type, or "" when unregistered.
func FullForm(messageType string) string {
	if info := lookup(messageType); info != nil {
		return info.FullForm
	}
	return ""
}

// ElementToMessageType maps an XML element or type name to the short form.
func ElementToMessageType(element string) (string, bool) {
	for i := range MessageRegistry {
		info := &MessageRegistry[i]
		if element == info.XMLElement || element == info.TypeName {
			return info.ShortForm, true
		}
	}
	return "", false
}

// MessageTypeToElement maps a message type to its XML element name.
func MessageTypeToElement(messageType string) (string, bool) {
	if info := lookup(messageType); info != nil {
		return info.XMLElement, true
	}
	return "", false
}
