// Package camt056 holds the camt.056.001.08 FI-to-FI payment cancellation
// request schema as constrained by the CBPR+ usage guidelines.
package camt056

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
	patternNumericText  = `[0-9]{1,15}`
)

// FIToFIPaymentCancellationRequestV08 is the message root.
type FIToFIPaymentCancellationRequestV08 struct {
	Assgnmt  CaseAssignment5           `xml:"Assgnmt" json:"Assgnmt"`
	Case     *Case5                    `xml:"Case,omitempty" json:"Case,omitempty"`
	CtrlData *ControlData1             `xml:"CtrlData,omitempty" json:"CtrlData,omitempty"`
	Undrlyg  []UnderlyingTransaction23 `xml:"Undrlyg" json:"Undrlyg"`
}

func (m *FIToFIPaymentCancellationRequestV08) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	m.Assgnmt.Validate(validation.ChildPath(path, "Assgnmt"), config, collector)
	if m.Case != nil && config.ValidateOptionalFields {
		m.Case.Validate(validation.ChildPath(path, "Case"), config, collector)
	}
	if m.CtrlData != nil && config.ValidateOptionalFields {
		m.CtrlData.Validate(validation.ChildPath(path, "CtrlData"), config, collector)
	}
	for i := range m.Undrlyg {
		m.Undrlyg[i].Validate(validation.ChildPath(path, "Undrlyg"), config, collector)
	}
}

// CaseAssignment5 identifies the assignment of the cancellation case between
// the assigner and the assignee.
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

// Case5 identifies the cancellation case and the party that created it.
type Case5 struct {
	Id    string        `xml:"Id" json:"Id"`
	Cretr Party40Choice `xml:"Cretr" json:"Cretr"`
}

func (c *Case5) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidateLength(c.Id, "Id", 1, 16, validation.ChildPath(path, "Id"), config, collector)
	validation.ValidatePattern(c.Id, "Id", patternBasicText, validation.ChildPath(path, "Id"), config, collector)
	c.Cretr.Validate(validation.ChildPath(path, "Cretr"), config, collector)
}

// ControlData1 summarises the transactions covered by the request.
type ControlData1 struct {
	NbOfTxs string   `xml:"NbOfTxs" json:"NbOfTxs"`
	CtrlSum *float64 `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
}

func (c *ControlData1) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidatePattern(c.NbOfTxs, "NbOfTxs", patternNumericText, validation.ChildPath(path, "NbOfTxs"), config, collector)
}

// UnderlyingTransaction23 groups the original transactions the cancellation
// request applies to.
type UnderlyingTransaction23 struct {
	OrgnlGrpInfAndCxl *OriginalGroupHeader15  `xml:"OrgnlGrpInfAndCxl,omitempty" json:"OrgnlGrpInfAndCxl,omitempty"`
	TxInf             []PaymentTransaction106 `xml:"TxInf,omitempty" json:"TxInf,omitempty"`
}

func (u *UnderlyingTransaction23) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if u.OrgnlGrpInfAndCxl != nil && config.ValidateOptionalFields {
		u.OrgnlGrpInfAndCxl.Validate(validation.ChildPath(path, "OrgnlGrpInfAndCxl"), config, collector)
	}
	for i := range u.TxInf {
		u.TxInf[i].Validate(validation.ChildPath(path, "TxInf"), config, collector)
	}
}

// OriginalGroupHeader15 points at the message that carried the original
// transactions and optionally requests a group-level cancellation.
type OriginalGroupHeader15 struct {
	GrpCxlId     *string                      `xml:"GrpCxlId,omitempty" json:"GrpCxlId,omitempty"`
	Case         *Case5                       `xml:"Case,omitempty" json:"Case,omitempty"`
	OrgnlMsgId   string                       `xml:"OrgnlMsgId" json:"OrgnlMsgId"`
	OrgnlMsgNmId string                       `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId"`
	OrgnlCreDtTm *string                      `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
	NbOfTxs      *string                      `xml:"NbOfTxs,omitempty" json:"NbOfTxs,omitempty"`
	CtrlSum      *float64                     `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	GrpCxl       *bool                        `xml:"GrpCxl,omitempty" json:"GrpCxl,omitempty"`
	CxlRsnInf    []PaymentCancellationReason5 `xml:"CxlRsnInf,omitempty" json:"CxlRsnInf,omitempty"`
}

func (o *OriginalGroupHeader15) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if o.GrpCxlId != nil {
		validation.ValidateLength(*o.GrpCxlId, "GrpCxlId", 1, 35, validation.ChildPath(path, "GrpCxlId"), config, collector)
	}
	if o.Case != nil && config.ValidateOptionalFields {
		o.Case.Validate(validation.ChildPath(path, "Case"), config, collector)
	}
	validation.ValidateLength(o.OrgnlMsgId, "OrgnlMsgId", 1, 35, validation.ChildPath(path, "OrgnlMsgId"), config, collector)
	validation.ValidateLength(o.OrgnlMsgNmId, "OrgnlMsgNmId", 1, 35, validation.ChildPath(path, "OrgnlMsgNmId"), config, collector)
	if o.NbOfTxs != nil {
		validation.ValidatePattern(*o.NbOfTxs, "NbOfTxs", patternNumericText, validation.ChildPath(path, "NbOfTxs"), config, collector)
	}
	if config.ValidateOptionalFields {
		for i := range o.CxlRsnInf {
			o.CxlRsnInf[i].Validate(validation.ChildPath(path, "CxlRsnInf"), config, collector)
		}
	}
}

// PaymentTransaction106 identifies one original transaction to cancel.
type PaymentTransaction106 struct {
	CxlId               *string                                       `xml:"CxlId,omitempty" json:"CxlId,omitempty"`
	Case                *Case5                                        `xml:"Case,omitempty" json:"Case,omitempty"`
	OrgnlGrpInf         *OriginalGroupInformation29                   `xml:"OrgnlGrpInf,omitempty" json:"OrgnlGrpInf,omitempty"`
	OrgnlInstrId        *string                                       `xml:"OrgnlInstrId,omitempty" json:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId     *string                                       `xml:"OrgnlEndToEndId,omitempty" json:"OrgnlEndToEndId,omitempty"`
	OrgnlTxId           *string                                       `xml:"OrgnlTxId,omitempty" json:"OrgnlTxId,omitempty"`
	OrgnlUETR           *string                                       `xml:"OrgnlUETR,omitempty" json:"OrgnlUETR,omitempty"`
	OrgnlClrSysRef      *string                                       `xml:"OrgnlClrSysRef,omitempty" json:"OrgnlClrSysRef,omitempty"`
	OrgnlIntrBkSttlmAmt *ActiveOrHistoricCurrencyAndAmount            `xml:"OrgnlIntrBkSttlmAmt,omitempty" json:"OrgnlIntrBkSttlmAmt,omitempty"`
	OrgnlIntrBkSttlmDt  *string                                       `xml:"OrgnlIntrBkSttlmDt,omitempty" json:"OrgnlIntrBkSttlmDt,omitempty"`
	Assgnr              *BranchAndFinancialInstitutionIdentification6 `xml:"Assgnr,omitempty" json:"Assgnr,omitempty"`
	Assgne              *BranchAndFinancialInstitutionIdentification6 `xml:"Assgne,omitempty" json:"Assgne,omitempty"`
	CxlRsnInf           []PaymentCancellationReason5                  `xml:"CxlRsnInf,omitempty" json:"CxlRsnInf,omitempty"`
}

func (t *PaymentTransaction106) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if t.CxlId != nil {
		validation.ValidateLength(*t.CxlId, "CxlId", 1, 35, validation.ChildPath(path, "CxlId"), config, collector)
	}
	if t.Case != nil && config.ValidateOptionalFields {
		t.Case.Validate(validation.ChildPath(path, "Case"), config, collector)
	}
	if t.OrgnlGrpInf != nil && config.ValidateOptionalFields {
		t.OrgnlGrpInf.Validate(validation.ChildPath(path, "OrgnlGrpInf"), config, collector)
	}
	if t.OrgnlInstrId != nil {
		validation.ValidateLength(*t.OrgnlInstrId, "OrgnlInstrId", 1, 35, validation.ChildPath(path, "OrgnlInstrId"), config, collector)
	}
	if t.OrgnlEndToEndId != nil {
		validation.ValidateLength(*t.OrgnlEndToEndId, "OrgnlEndToEndId", 1, 35, validation.ChildPath(path, "OrgnlEndToEndId"), config, collector)
	}
	if t.OrgnlTxId != nil {
		validation.ValidateLength(*t.OrgnlTxId, "OrgnlTxId", 1, 35, validation.ChildPath(path, "OrgnlTxId"), config, collector)
	}
	if t.OrgnlUETR != nil {
		validation.ValidatePattern(*t.OrgnlUETR, "OrgnlUETR", patternUETR, validation.ChildPath(path, "OrgnlUETR"), config, collector)
	}
	if t.OrgnlClrSysRef != nil {
		validation.ValidateLength(*t.OrgnlClrSysRef, "OrgnlClrSysRef", 1, 35, validation.ChildPath(path, "OrgnlClrSysRef"), config, collector)
	}
	if t.Assgnr != nil && config.ValidateOptionalFields {
		t.Assgnr.Validate(validation.ChildPath(path, "Assgnr"), config, collector)
	}
	if t.Assgne != nil && config.ValidateOptionalFields {
		t.Assgne.Validate(validation.ChildPath(path, "Assgne"), config, collector)
	}
	if config.ValidateOptionalFields {
		for i := range t.CxlRsnInf {
			t.CxlRsnInf[i].Validate(validation.ChildPath(path, "CxlRsnInf"), config, collector)
		}
	}
}

// PaymentCancellationReason5 states why the cancellation is requested.
type PaymentCancellationReason5 struct {
	Orgtr    *PartyIdentification135     `xml:"Orgtr,omitempty" json:"Orgtr,omitempty"`
	Rsn      *CancellationReason33Choice `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	AddtlInf []string                    `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (p *PaymentCancellationReason5) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if p.Orgtr != nil && config.ValidateOptionalFields {
		p.Orgtr.Validate(validation.ChildPath(path, "Orgtr"), config, collector)
	}
	if p.Rsn != nil && config.ValidateOptionalFields {
		p.Rsn.Validate(validation.ChildPath(path, "Rsn"), config, collector)
	}
	for i := range p.AddtlInf {
		validation.ValidateLength(p.AddtlInf[i], "AddtlInf", 1, 105, validation.ChildPath(path, "AddtlInf"), config, collector)
	}
}

// CancellationReason33Choice is the coded or proprietary cancellation
// reason.
type CancellationReason33Choice struct {
	Cd    *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *CancellationReason33Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if c.Cd != nil {
		validation.ValidateLength(*c.Cd, "Cd", 1, 4, validation.ChildPath(path, "Cd"), config, collector)
	}
	if c.Prtry != nil {
		validation.ValidateLength(*c.Prtry, "Prtry", 1, 35, validation.ChildPath(path, "Prtry"), config, collector)
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

// ActiveOrHistoricCurrencyAndAmount is a monetary amount with an explicit
// ISO 4217 currency attribute.
type ActiveOrHistoricCurrencyAndAmount struct {
	Ccy   string `xml:"Ccy,attr" json:"Ccy"`
	Value string `xml:",chardata" json:"Value"`
}

// Validate is a no-op; amount formatting is guaranteed by the serializer.
func (a *ActiveOrHistoricCurrencyAndAmount) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}
