// Package camt029 holds the camt.029.001.09 resolution of investigation
// schema as constrained by the CBPR+ usage guidelines.
package camt029

import (
	"github.com/finwire/mxmessage/validation"
)

const (
	patternBasicText    = `[0-9a-zA-Z/\-\?:\(\)\.,'\+ ]+`
	patternExtendedText = "[0-9a-zA-Z/\\-\\?:\\(\\)\\.,'\\+ !#$%&\\*=^_`\\{\\|\\}~\";<>@\\[\\\\\\]]+"
	patternBIC          = `[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`
	patternLEI          = `[A-Z0-9]{18,18}[0-9]{2,2}`
	patternUETR         = `[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}`
	patternCountry      = `[A-Z]{2,2}`
	patternOffsetTime   = `.*(\+|-)((0[0-9])|(1[0-4])):[0-5][0-9]`
)

// ResolutionOfInvestigationV09 is the message root. It reports the outcome
// of a cancellation investigation on a single transaction.
type ResolutionOfInvestigationV09 struct {
	Assgnmt CaseAssignment5            `xml:"Assgnmt" json:"Assgnmt"`
	Sts     InvestigationStatus5Choice `xml:"Sts" json:"Sts"`
	CxlDtls UnderlyingTransaction22    `xml:"CxlDtls" json:"CxlDtls"`
}

func (m *ResolutionOfInvestigationV09) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	m.Assgnmt.Validate(validation.ChildPath(path, "Assgnmt"), config, collector)
	m.Sts.Validate(validation.ChildPath(path, "Sts"), config, collector)
	m.CxlDtls.Validate(validation.ChildPath(path, "CxlDtls"), config, collector)
}

// CaseAssignment5 identifies the assignment of the investigation case
// between the assigner and the assignee.
type CaseAssignment5 struct {
	Id      string        `xml:"Id" json:"Id"`
	Assgnr  Party40Choice `xml:"Assgnr" json:"Assgnr"`
	Assgne  Party40Choice `xml:"Assgne" json:"Assgne"`
	CreDtTm string        `xml:"CreDtTm" json:"CreDtTm"`
}

func (c *CaseAssignment5) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidateLength(c.Id, "Id", 1, 35, validation.ChildPath(path, "Id"), config, collector)
	validation.ValidatePattern(c.Id, "Id", patternBasicText, validation.ChildPath(path, "Id"), config, collector)
	c.Assgnr.Validate(validation.ChildPath(path, "Assgnr"), config, collector)
	c.Assgne.Validate(validation.ChildPath(path, "Assgne"), config, collector)
	validation.ValidatePattern(c.CreDtTm, "CreDtTm", patternOffsetTime, validation.ChildPath(path, "CreDtTm"), config, collector)
}

// Case5 identifies the investigation case and the party that created it.
type Case5 struct {
	Id    string        `xml:"Id" json:"Id"`
	Cretr Party40Choice `xml:"Cretr" json:"Cretr"`
}

func (c *Case5) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidateLength(c.Id, "Id", 1, 16, validation.ChildPath(path, "Id"), config, collector)
	validation.ValidatePattern(c.Id, "Id", patternBasicText, validation.ChildPath(path, "Id"), config, collector)
	c.Cretr.Validate(validation.ChildPath(path, "Cretr"), config, collector)
}

// InvestigationStatus5Choice reports the confirmed cancellation status.
type InvestigationStatus5Choice struct {
	Conf *CancellationStatusCode `xml:"Conf,omitempty" json:"Conf,omitempty"`
}

func (s *InvestigationStatus5Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if s.Conf != nil && config.ValidateOptionalFields {
		s.Conf.Validate(validation.ChildPath(path, "Conf"), config, collector)
	}
}

// UnderlyingTransaction22 wraps the status of the original transaction the
// cancellation request referred to.
type UnderlyingTransaction22 struct {
	TxInfAndSts PaymentTransaction102 `xml:"TxInfAndSts" json:"TxInfAndSts"`
}

func (u *UnderlyingTransaction22) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	u.TxInfAndSts.Validate(validation.ChildPath(path, "TxInfAndSts"), config, collector)
}

// PaymentTransaction102 reports the cancellation status of one original
// transaction.
type PaymentTransaction102 struct {
	CxlStsId        string                     `xml:"CxlStsId" json:"CxlStsId"`
	RslvdCase       Case5                      `xml:"RslvdCase" json:"RslvdCase"`
	OrgnlGrpInf     OriginalGroupInformation29 `xml:"OrgnlGrpInf" json:"OrgnlGrpInf"`
	OrgnlInstrId    *string                    `xml:"OrgnlInstrId,omitempty" json:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId *string                    `xml:"OrgnlEndToEndId,omitempty" json:"OrgnlEndToEndId,omitempty"`
	OrgnlTxId       *string                    `xml:"OrgnlTxId,omitempty" json:"OrgnlTxId,omitempty"`
	OrgnlClrSysRef  *string                    `xml:"OrgnlClrSysRef,omitempty" json:"OrgnlClrSysRef,omitempty"`
	OrgnlUETR       string                     `xml:"OrgnlUETR" json:"OrgnlUETR"`
	CxlStsRsnInf    *CancellationStatusReason4 `xml:"CxlStsRsnInf,omitempty" json:"CxlStsRsnInf,omitempty"`
}

func (t *PaymentTransaction102) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidateLength(t.CxlStsId, "CxlStsId", 1, 16, validation.ChildPath(path, "CxlStsId"), config, collector)
	validation.ValidatePattern(t.CxlStsId, "CxlStsId", patternBasicText, validation.ChildPath(path, "CxlStsId"), config, collector)
	t.RslvdCase.Validate(validation.ChildPath(path, "RslvdCase"), config, collector)
	t.OrgnlGrpInf.Validate(validation.ChildPath(path, "OrgnlGrpInf"), config, collector)
	if t.OrgnlInstrId != nil {
		validation.ValidateLength(*t.OrgnlInstrId, "OrgnlInstrId", 1, 16, validation.ChildPath(path, "OrgnlInstrId"), config, collector)
		validation.ValidatePattern(*t.OrgnlInstrId, "OrgnlInstrId", patternBasicText, validation.ChildPath(path, "OrgnlInstrId"), config, collector)
	}
	if t.OrgnlEndToEndId != nil {
		validation.ValidateLength(*t.OrgnlEndToEndId, "OrgnlEndToEndId", 1, 35, validation.ChildPath(path, "OrgnlEndToEndId"), config, collector)
		validation.ValidatePattern(*t.OrgnlEndToEndId, "OrgnlEndToEndId", patternBasicText, validation.ChildPath(path, "OrgnlEndToEndId"), config, collector)
	}
	if t.OrgnlTxId != nil {
		validation.ValidateLength(*t.OrgnlTxId, "OrgnlTxId", 1, 35, validation.ChildPath(path, "OrgnlTxId"), config, collector)
		validation.ValidatePattern(*t.OrgnlTxId, "OrgnlTxId", patternBasicText, validation.ChildPath(path, "OrgnlTxId"), config, collector)
	}
	if t.OrgnlClrSysRef != nil {
		validation.ValidateLength(*t.OrgnlClrSysRef, "OrgnlClrSysRef", 1, 35, validation.ChildPath(path, "OrgnlClrSysRef"), config, collector)
		validation.ValidatePattern(*t.OrgnlClrSysRef, "OrgnlClrSysRef", patternBasicText, validation.ChildPath(path, "OrgnlClrSysRef"), config, collector)
	}
	validation.ValidatePattern(t.OrgnlUETR, "OrgnlUETR", patternUETR, validation.ChildPath(path, "OrgnlUETR"), config, collector)
	if t.CxlStsRsnInf != nil && config.ValidateOptionalFields {
		t.CxlStsRsnInf.Validate(validation.ChildPath(path, "CxlStsRsnInf"), config, collector)
	}
}

// OriginalGroupInformation29 points at the message that carried the
// original transaction.
type OriginalGroupInformation29 struct {
	OrgnlMsgId   string  `xml:"OrgnlMsgId" json:"OrgnlMsgId"`
	OrgnlMsgNmId string  `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId"`
	OrgnlCreDtTm *string `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
}

func (o *OriginalGroupInformation29) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidateLength(o.OrgnlMsgId, "OrgnlMsgId", 1, 35, validation.ChildPath(path, "OrgnlMsgId"), config, collector)
	validation.ValidatePattern(o.OrgnlMsgId, "OrgnlMsgId", patternBasicText, validation.ChildPath(path, "OrgnlMsgId"), config, collector)
	validation.ValidateLength(o.OrgnlMsgNmId, "OrgnlMsgNmId", 1, 35, validation.ChildPath(path, "OrgnlMsgNmId"), config, collector)
	validation.ValidatePattern(o.OrgnlMsgNmId, "OrgnlMsgNmId", patternBasicText, validation.ChildPath(path, "OrgnlMsgNmId"), config, collector)
	if o.OrgnlCreDtTm != nil {
		validation.ValidatePattern(*o.OrgnlCreDtTm, "OrgnlCreDtTm", patternOffsetTime, validation.ChildPath(path, "OrgnlCreDtTm"), config, collector)
	}
}

// CancellationStatusReason4 details why the cancellation was resolved the
// way it was.
type CancellationStatusReason4 struct {
	Orgtr    *PartyIdentification135          `xml:"Orgtr,omitempty" json:"Orgtr,omitempty"`
	Rsn      *CancellationStatusReason3Choice `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	AddtlInf []string                         `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (c *CancellationStatusReason4) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if c.Orgtr != nil && config.ValidateOptionalFields {
		c.Orgtr.Validate(validation.ChildPath(path, "Orgtr"), config, collector)
	}
	if c.Rsn != nil && config.ValidateOptionalFields {
		c.Rsn.Validate(validation.ChildPath(path, "Rsn"), config, collector)
	}
	for i := range c.AddtlInf {
		validation.ValidateLength(c.AddtlInf[i], "AddtlInf", 1, 105, validation.ChildPath(path, "AddtlInf"), config, collector)
		validation.ValidatePattern(c.AddtlInf[i], "AddtlInf", patternBasicText, validation.ChildPath(path, "AddtlInf"), config, collector)
	}
}

// CancellationStatusReason3Choice is the coded reason for the cancellation
// status.
type CancellationStatusReason3Choice struct {
	Cd *CancellationStatusReasonCode `xml:"Cd,omitempty" json:"Cd,omitempty"`
}

func (c *CancellationStatusReason3Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if c.Cd != nil {
		c.Cd.Validate(validation.ChildPath(path, "Cd"), config, collector)
	}
}

// CancellationStatusCode is the outcome of the cancellation investigation.
type CancellationStatusCode string

const (
	CancellationStatusCNCL CancellationStatusCode = "CNCL"
	CancellationStatusPDCR CancellationStatusCode = "PDCR"
	CancellationStatusRJCR CancellationStatusCode = "RJCR"
)

func (c CancellationStatusCode) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}

// CancellationStatusReasonCode qualifies the cancellation status. NARR means
// the reason is carried as narrative text in the additional information.
type CancellationStatusReasonCode string

const (
	CancellationReasonNOOR CancellationStatusReasonCode = "NOOR"
	CancellationReasonNOAS CancellationStatusReasonCode = "NOAS"
	CancellationReasonARDT CancellationStatusReasonCode = "ARDT"
	CancellationReasonCUST CancellationStatusReasonCode = "CUST"
	CancellationReasonAGNT CancellationStatusReasonCode = "AGNT"
	CancellationReasonLEGL CancellationStatusReasonCode = "LEGL"
	CancellationReasonAC04 CancellationStatusReasonCode = "AC04"
	CancellationReasonAM04 CancellationStatusReasonCode = "AM04"
	CancellationReasonPTNA CancellationStatusReasonCode = "PTNA"
	CancellationReasonRQDA CancellationStatusReasonCode = "RQDA"
	CancellationReasonINDM CancellationStatusReasonCode = "INDM"
	CancellationReasonNARR CancellationStatusReasonCode = "NARR"
)

func (c CancellationStatusReasonCode) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}
