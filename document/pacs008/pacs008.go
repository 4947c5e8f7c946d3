// Package pacs008 holds the pacs.008.001.08 FI-to-FI customer credit
// transfer schema as constrained by the CBPR+ usage guidelines.
package pacs008

import (
	"github.com/finwire/mxmessage/validation"
)

// Character-set and format rules shared across the message. The pattern
// strings are carried verbatim from the usage guidelines and are matched
// unanchored.
const (
	patternBasicText    = `[0-9a-zA-Z/\-\?:\(\)\.,'\+ ]+`
	patternExtendedText = "[0-9a-zA-Z/\\-\\?:\\(\\)\\.,'\\+ !#$%&\\*=^_`\\{\\|\\}~\";<>@\\[\\\\\\]]+"
	patternBIC          = `[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`
	patternLEI          = `[A-Z0-9]{18,18}[0-9]{2,2}`
	patternIBAN         = `[A-Z]{2,2}[0-9]{2,2}[a-zA-Z0-9]{1,30}`
	patternUETR         = `[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}`
	patternCountry      = `[A-Z]{2,2}`
	patternCurrency     = `[A-Z]{3,3}`
	patternOffsetTime   = `.*(\+|-)((0[0-9])|(1[0-4])):[0-5][0-9]`
	patternNumericText  = `[0-9]{1,15}`
	patternRestrictedId = `([0-9a-zA-Z\-\?:\(\)\.,'\+ ]([0-9a-zA-Z\-\?:\(\)\.,'\+ ]*(/[0-9a-zA-Z\-\?:\(\)\.,'\+ ])?)*)`
)

// FIToFICustomerCreditTransferV08 is the message root. CBPR+ restricts the
// message to a single credit transfer transaction.
type FIToFICustomerCreditTransferV08 struct {
	GrpHdr      GroupHeader93               `xml:"GrpHdr" json:"GrpHdr"`
	CdtTrfTxInf CreditTransferTransaction39 `xml:"CdtTrfTxInf" json:"CdtTrfTxInf"`
}

func (m *FIToFICustomerCreditTransferV08) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	m.GrpHdr.Validate(validation.ChildPath(path, "GrpHdr"), config, collector)
	m.CdtTrfTxInf.Validate(validation.ChildPath(path, "CdtTrfTxInf"), config, collector)
}

// GroupHeader93 carries message-level identification and the interbank
// settlement instruction.
type GroupHeader93 struct {
	MsgId    string                 `xml:"MsgId" json:"MsgId"`
	CreDtTm  string                 `xml:"CreDtTm" json:"CreDtTm"`
	NbOfTxs  string                 `xml:"NbOfTxs" json:"NbOfTxs"`
	SttlmInf SettlementInstruction7 `xml:"SttlmInf" json:"SttlmInf"`
}

func (h *GroupHeader93) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidateLength(h.MsgId, "MsgId", 1, 35, validation.ChildPath(path, "MsgId"), config, collector)
	validation.ValidatePattern(h.MsgId, "MsgId", patternBasicText, validation.ChildPath(path, "MsgId"), config, collector)
	validation.ValidatePattern(h.CreDtTm, "CreDtTm", patternOffsetTime, validation.ChildPath(path, "CreDtTm"), config, collector)
	validation.ValidatePattern(h.NbOfTxs, "NbOfTxs", patternNumericText, validation.ChildPath(path, "NbOfTxs"), config, collector)
	h.SttlmInf.Validate(validation.ChildPath(path, "SttlmInf"), config, collector)
}

// SettlementInstruction7 specifies how the interbank amount moves between
// the instructing and instructed agents.
type SettlementInstruction7 struct {
	SttlmMtd             SettlementMethod1Code                         `xml:"SttlmMtd" json:"SttlmMtd"`
	SttlmAcct            *CashAccount38                                `xml:"SttlmAcct,omitempty" json:"SttlmAcct,omitempty"`
	InstgRmbrsmntAgt     *BranchAndFinancialInstitutionIdentification6 `xml:"InstgRmbrsmntAgt,omitempty" json:"InstgRmbrsmntAgt,omitempty"`
	InstgRmbrsmntAgtAcct *CashAccount38                                `xml:"InstgRmbrsmntAgtAcct,omitempty" json:"InstgRmbrsmntAgtAcct,omitempty"`
	InstdRmbrsmntAgt     *BranchAndFinancialInstitutionIdentification6 `xml:"InstdRmbrsmntAgt,omitempty" json:"InstdRmbrsmntAgt,omitempty"`
	InstdRmbrsmntAgtAcct *CashAccount38                                `xml:"InstdRmbrsmntAgtAcct,omitempty" json:"InstdRmbrsmntAgtAcct,omitempty"`
	ThrdRmbrsmntAgt      *BranchAndFinancialInstitutionIdentification6 `xml:"ThrdRmbrsmntAgt,omitempty" json:"ThrdRmbrsmntAgt,omitempty"`
	ThrdRmbrsmntAgtAcct  *CashAccount38                                `xml:"ThrdRmbrsmntAgtAcct,omitempty" json:"ThrdRmbrsmntAgtAcct,omitempty"`
}

func (s *SettlementInstruction7) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	s.SttlmMtd.Validate(validation.ChildPath(path, "SttlmMtd"), config, collector)
	if s.SttlmAcct != nil && config.ValidateOptionalFields {
		s.SttlmAcct.Validate(validation.ChildPath(path, "SttlmAcct"), config, collector)
	}
	if s.InstgRmbrsmntAgt != nil && config.ValidateOptionalFields {
		s.InstgRmbrsmntAgt.Validate(validation.ChildPath(path, "InstgRmbrsmntAgt"), config, collector)
	}
	if s.InstgRmbrsmntAgtAcct != nil && config.ValidateOptionalFields {
		s.InstgRmbrsmntAgtAcct.Validate(validation.ChildPath(path, "InstgRmbrsmntAgtAcct"), config, collector)
	}
	if s.InstdRmbrsmntAgt != nil && config.ValidateOptionalFields {
		s.InstdRmbrsmntAgt.Validate(validation.ChildPath(path, "InstdRmbrsmntAgt"), config, collector)
	}
	if s.InstdRmbrsmntAgtAcct != nil && config.ValidateOptionalFields {
		s.InstdRmbrsmntAgtAcct.Validate(validation.ChildPath(path, "InstdRmbrsmntAgtAcct"), config, collector)
	}
	if s.ThrdRmbrsmntAgt != nil && config.ValidateOptionalFields {
		s.ThrdRmbrsmntAgt.Validate(validation.ChildPath(path, "ThrdRmbrsmntAgt"), config, collector)
	}
	if s.ThrdRmbrsmntAgtAcct != nil && config.ValidateOptionalFields {
		s.ThrdRmbrsmntAgtAcct.Validate(validation.ChildPath(path, "ThrdRmbrsmntAgtAcct"), config, collector)
	}
}

// CreditTransferTransaction39 is the single transaction carried by the
// message.
type CreditTransferTransaction39 struct {
	PmtId             PaymentIdentification7                        `xml:"PmtId" json:"PmtId"`
	PmtTpInf          *PaymentTypeInformation28                     `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	IntrBkSttlmAmt    ActiveCurrencyAndAmount                       `xml:"IntrBkSttlmAmt" json:"IntrBkSttlmAmt"`
	IntrBkSttlmDt     string                                        `xml:"IntrBkSttlmDt" json:"IntrBkSttlmDt"`
	SttlmPrty         *Priority3Code                                `xml:"SttlmPrty,omitempty" json:"SttlmPrty,omitempty"`
	SttlmTmIndctn     *SettlementDateTimeIndication1                `xml:"SttlmTmIndctn,omitempty" json:"SttlmTmIndctn,omitempty"`
	SttlmTmReq        *SettlementTimeRequest2                       `xml:"SttlmTmReq,omitempty" json:"SttlmTmReq,omitempty"`
	InstdAmt          *ActiveCurrencyAndAmount                      `xml:"InstdAmt,omitempty" json:"InstdAmt,omitempty"`
	XchgRate          *float64                                      `xml:"XchgRate,omitempty" json:"XchgRate,omitempty"`
	ChrgBr            ChargeBearerType1Code                         `xml:"ChrgBr" json:"ChrgBr"`
	ChrgsInf          []Charges7                                    `xml:"ChrgsInf,omitempty" json:"ChrgsInf,omitempty"`
	PrvsInstgAgt1     *BranchAndFinancialInstitutionIdentification6 `xml:"PrvsInstgAgt1,omitempty" json:"PrvsInstgAgt1,omitempty"`
	PrvsInstgAgt1Acct *CashAccount38                                `xml:"PrvsInstgAgt1Acct,omitempty" json:"PrvsInstgAgt1Acct,omitempty"`
	PrvsInstgAgt2     *BranchAndFinancialInstitutionIdentification6 `xml:"PrvsInstgAgt2,omitempty" json:"PrvsInstgAgt2,omitempty"`
	PrvsInstgAgt2Acct *CashAccount38                                `xml:"PrvsInstgAgt2Acct,omitempty" json:"PrvsInstgAgt2Acct,omitempty"`
	PrvsInstgAgt3     *BranchAndFinancialInstitutionIdentification6 `xml:"PrvsInstgAgt3,omitempty" json:"PrvsInstgAgt3,omitempty"`
	PrvsInstgAgt3Acct *CashAccount38                                `xml:"PrvsInstgAgt3Acct,omitempty" json:"PrvsInstgAgt3Acct,omitempty"`
	InstgAgt          BranchAndFinancialInstitutionIdentification6  `xml:"InstgAgt" json:"InstgAgt"`
	InstdAgt          BranchAndFinancialInstitutionIdentification6  `xml:"InstdAgt" json:"InstdAgt"`
	IntrmyAgt1        *BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt1,omitempty" json:"IntrmyAgt1,omitempty"`
	IntrmyAgt1Acct    *CashAccount38                                `xml:"IntrmyAgt1Acct,omitempty" json:"IntrmyAgt1Acct,omitempty"`
	IntrmyAgt2        *BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt2,omitempty" json:"IntrmyAgt2,omitempty"`
	IntrmyAgt2Acct    *CashAccount38                                `xml:"IntrmyAgt2Acct,omitempty" json:"IntrmyAgt2Acct,omitempty"`
	IntrmyAgt3        *BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt3,omitempty" json:"IntrmyAgt3,omitempty"`
	IntrmyAgt3Acct    *CashAccount38                                `xml:"IntrmyAgt3Acct,omitempty" json:"IntrmyAgt3Acct,omitempty"`
	UltmtDbtr         *PartyIdentification135                       `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	InitgPty          *PartyIdentification135                       `xml:"InitgPty,omitempty" json:"InitgPty,omitempty"`
	Dbtr              PartyIdentification135                        `xml:"Dbtr" json:"Dbtr"`
	DbtrAcct          *CashAccount38                                `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	DbtrAgt           BranchAndFinancialInstitutionIdentification6  `xml:"DbtrAgt" json:"DbtrAgt"`
	DbtrAgtAcct       *CashAccount38                                `xml:"DbtrAgtAcct,omitempty" json:"DbtrAgtAcct,omitempty"`
	CdtrAgt           BranchAndFinancialInstitutionIdentification6  `xml:"CdtrAgt" json:"CdtrAgt"`
	CdtrAgtAcct       *CashAccount38                                `xml:"CdtrAgtAcct,omitempty" json:"CdtrAgtAcct,omitempty"`
	Cdtr              PartyIdentification135                        `xml:"Cdtr" json:"Cdtr"`
	CdtrAcct          *CashAccount38                                `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr         *PartyIdentification135                       `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
	InstrForCdtrAgt   []InstructionForCreditorAgent1                `xml:"InstrForCdtrAgt,omitempty" json:"InstrForCdtrAgt,omitempty"`
	InstrForNxtAgt    []InstructionForNextAgent1                    `xml:"InstrForNxtAgt,omitempty" json:"InstrForNxtAgt,omitempty"`
	Purp              *Purpose2Choice                               `xml:"Purp,omitempty" json:"Purp,omitempty"`
	RgltryRptg        []RegulatoryReporting3                        `xml:"RgltryRptg,omitempty" json:"RgltryRptg,omitempty"`
	RltdRmtInf        *RemittanceLocation7                          `xml:"RltdRmtInf,omitempty" json:"RltdRmtInf,omitempty"`
	RmtInf            *RemittanceInformation16                      `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
}

func (t *CreditTransferTransaction39) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	t.PmtId.Validate(validation.ChildPath(path, "PmtId"), config, collector)
	if t.PmtTpInf != nil && config.ValidateOptionalFields {
		t.PmtTpInf.Validate(validation.ChildPath(path, "PmtTpInf"), config, collector)
	}
	t.IntrBkSttlmAmt.Validate(validation.ChildPath(path, "IntrBkSttlmAmt"), config, collector)
	if t.SttlmPrty != nil && config.ValidateOptionalFields {
		t.SttlmPrty.Validate(validation.ChildPath(path, "SttlmPrty"), config, collector)
	}
	if t.SttlmTmIndctn != nil && config.ValidateOptionalFields {
		t.SttlmTmIndctn.Validate(validation.ChildPath(path, "SttlmTmIndctn"), config, collector)
	}
	if t.SttlmTmReq != nil && config.ValidateOptionalFields {
		t.SttlmTmReq.Validate(validation.ChildPath(path, "SttlmTmReq"), config, collector)
	}
	if t.InstdAmt != nil && config.ValidateOptionalFields {
		t.InstdAmt.Validate(validation.ChildPath(path, "InstdAmt"), config, collector)
	}
	t.ChrgBr.Validate(validation.ChildPath(path, "ChrgBr"), config, collector)
	if config.ValidateOptionalFields {
		for i := range t.ChrgsInf {
			t.ChrgsInf[i].Validate(validation.ChildPath(path, "ChrgsInf"), config, collector)
		}
	}
	if t.PrvsInstgAgt1 != nil && config.ValidateOptionalFields {
		t.PrvsInstgAgt1.Validate(validation.ChildPath(path, "PrvsInstgAgt1"), config, collector)
	}
	if t.PrvsInstgAgt1Acct != nil && config.ValidateOptionalFields {
		t.PrvsInstgAgt1Acct.Validate(validation.ChildPath(path, "PrvsInstgAgt1Acct"), config, collector)
	}
	if t.PrvsInstgAgt2 != nil && config.ValidateOptionalFields {
		t.PrvsInstgAgt2.Validate(validation.ChildPath(path, "PrvsInstgAgt2"), config, collector)
	}
	if t.PrvsInstgAgt2Acct != nil && config.ValidateOptionalFields {
		t.PrvsInstgAgt2Acct.Validate(validation.ChildPath(path, "PrvsInstgAgt2Acct"), config, collector)
	}
	if t.PrvsInstgAgt3 != nil && config.ValidateOptionalFields {
		t.PrvsInstgAgt3.Validate(validation.ChildPath(path, "PrvsInstgAgt3"), config, collector)
	}
	if t.PrvsInstgAgt3Acct != nil && config.ValidateOptionalFields {
		t.PrvsInstgAgt3Acct.Validate(validation.ChildPath(path, "PrvsInstgAgt3Acct"), config, collector)
	}
	t.InstgAgt.Validate(validation.ChildPath(path, "InstgAgt"), config, collector)
	t.InstdAgt.Validate(validation.ChildPath(path, "InstdAgt"), config, collector)
	if t.IntrmyAgt1 != nil && config.ValidateOptionalFields {
		t.IntrmyAgt1.Validate(validation.ChildPath(path, "IntrmyAgt1"), config, collector)
	}
	if t.IntrmyAgt1Acct != nil && config.ValidateOptionalFields {
		t.IntrmyAgt1Acct.Validate(validation.ChildPath(path, "IntrmyAgt1Acct"), config, collector)
	}
	if t.IntrmyAgt2 != nil && config.ValidateOptionalFields {
		t.IntrmyAgt2.Validate(validation.ChildPath(path, "IntrmyAgt2"), config, collector)
	}
	if t.IntrmyAgt2Acct != nil && config.ValidateOptionalFields {
		t.IntrmyAgt2Acct.Validate(validation.ChildPath(path, "IntrmyAgt2Acct"), config, collector)
	}
	if t.IntrmyAgt3 != nil && config.ValidateOptionalFields {
		t.IntrmyAgt3.Validate(validation.ChildPath(path, "IntrmyAgt3"), config, collector)
	}
	if t.IntrmyAgt3Acct != nil && config.ValidateOptionalFields {
		t.IntrmyAgt3Acct.Validate(validation.ChildPath(path, "IntrmyAgt3Acct"), config, collector)
	}
	if t.UltmtDbtr != nil && config.ValidateOptionalFields {
		t.UltmtDbtr.Validate(validation.ChildPath(path, "UltmtDbtr"), config, collector)
	}
	if t.InitgPty != nil && config.ValidateOptionalFields {
		t.InitgPty.Validate(validation.ChildPath(path, "InitgPty"), config, collector)
	}
	t.Dbtr.Validate(validation.ChildPath(path, "Dbtr"), config, collector)
	if t.DbtrAcct != nil && config.ValidateOptionalFields {
		t.DbtrAcct.Validate(validation.ChildPath(path, "DbtrAcct"), config, collector)
	}
	t.DbtrAgt.Validate(validation.ChildPath(path, "DbtrAgt"), config, collector)
	if t.DbtrAgtAcct != nil && config.ValidateOptionalFields {
		t.DbtrAgtAcct.Validate(validation.ChildPath(path, "DbtrAgtAcct"), config, collector)
	}
	t.CdtrAgt.Validate(validation.ChildPath(path, "CdtrAgt"), config, collector)
	if t.CdtrAgtAcct != nil && config.ValidateOptionalFields {
		t.CdtrAgtAcct.Validate(validation.ChildPath(path, "CdtrAgtAcct"), config, collector)
	}
	t.Cdtr.Validate(validation.ChildPath(path, "Cdtr"), config, collector)
	if t.CdtrAcct != nil && config.ValidateOptionalFields {
		t.CdtrAcct.Validate(validation.ChildPath(path, "CdtrAcct"), config, collector)
	}
	if t.UltmtCdtr != nil && config.ValidateOptionalFields {
		t.UltmtCdtr.Validate(validation.ChildPath(path, "UltmtCdtr"), config, collector)
	}
	if config.ValidateOptionalFields {
		for i := range t.InstrForCdtrAgt {
			t.InstrForCdtrAgt[i].Validate(validation.ChildPath(path, "InstrForCdtrAgt"), config, collector)
		}
		for i := range t.InstrForNxtAgt {
			t.InstrForNxtAgt[i].Validate(validation.ChildPath(path, "InstrForNxtAgt"), config, collector)
		}
	}
	if t.Purp != nil && config.ValidateOptionalFields {
		t.Purp.Validate(validation.ChildPath(path, "Purp"), config, collector)
	}
	if config.ValidateOptionalFields {
		for i := range t.RgltryRptg {
			t.RgltryRptg[i].Validate(validation.ChildPath(path, "RgltryRptg"), config, collector)
		}
	}
	if t.RltdRmtInf != nil && config.ValidateOptionalFields {
		t.RltdRmtInf.Validate(validation.ChildPath(path, "RltdRmtInf"), config, collector)
	}
	if t.RmtInf != nil && config.ValidateOptionalFields {
		t.RmtInf.Validate(validation.ChildPath(path, "RmtInf"), config, collector)
	}
}

// PaymentIdentification7 carries the end-to-end references of the payment,
// including the mandatory UETR.
type PaymentIdentification7 struct {
	InstrId    string  `xml:"InstrId" json:"InstrId"`
	EndToEndId string  `xml:"EndToEndId" json:"EndToEndId"`
	TxId       *string `xml:"TxId,omitempty" json:"TxId,omitempty"`
	UETR       string  `xml:"UETR" json:"UETR"`
	ClrSysRef  *string `xml:"ClrSysRef,omitempty" json:"ClrSysRef,omitempty"`
}

func (p *PaymentIdentification7) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidateLength(p.InstrId, "InstrId", 1, 16, validation.ChildPath(path, "InstrId"), config, collector)
	validation.ValidatePattern(p.InstrId, "InstrId", patternBasicText, validation.ChildPath(path, "InstrId"), config, collector)
	validation.ValidateLength(p.EndToEndId, "EndToEndId", 1, 35, validation.ChildPath(path, "EndToEndId"), config, collector)
	validation.ValidatePattern(p.EndToEndId, "EndToEndId", patternBasicText, validation.ChildPath(path, "EndToEndId"), config, collector)
	if p.TxId != nil {
		validation.ValidateLength(*p.TxId, "TxId", 1, 35, validation.ChildPath(path, "TxId"), config, collector)
		validation.ValidatePattern(*p.TxId, "TxId", patternBasicText, validation.ChildPath(path, "TxId"), config, collector)
	}
	validation.ValidatePattern(p.UETR, "UETR", patternUETR, validation.ChildPath(path, "UETR"), config, collector)
	if p.ClrSysRef != nil {
		validation.ValidateLength(*p.ClrSysRef, "ClrSysRef", 1, 35, validation.ChildPath(path, "ClrSysRef"), config, collector)
		validation.ValidatePattern(*p.ClrSysRef, "ClrSysRef", patternBasicText, validation.ChildPath(path, "ClrSysRef"), config, collector)
	}
}

// PaymentTypeInformation28 qualifies the processing of the payment.
type PaymentTypeInformation28 struct {
	InstrPrty *Priority2Code          `xml:"InstrPrty,omitempty" json:"InstrPrty,omitempty"`
	ClrChanl  *ClearingChannel2Code   `xml:"ClrChanl,omitempty" json:"ClrChanl,omitempty"`
	SvcLvl    []ServiceLevel8Choice   `xml:"SvcLvl,omitempty" json:"SvcLvl,omitempty"`
	LclInstrm *LocalInstrument2Choice `xml:"LclInstrm,omitempty" json:"LclInstrm,omitempty"`
	CtgyPurp  *CategoryPurpose1Choice `xml:"CtgyPurp,omitempty" json:"CtgyPurp,omitempty"`
}

func (p *PaymentTypeInformation28) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if !config.ValidateOptionalFields {
		return
	}
	if p.InstrPrty != nil {
		p.InstrPrty.Validate(validation.ChildPath(path, "InstrPrty"), config, collector)
	}
	if p.ClrChanl != nil {
		p.ClrChanl.Validate(validation.ChildPath(path, "ClrChanl"), config, collector)
	}
	for i := range p.SvcLvl {
		p.SvcLvl[i].Validate(validation.ChildPath(path, "SvcLvl"), config, collector)
	}
	if p.LclInstrm != nil {
		p.LclInstrm.Validate(validation.ChildPath(path, "LclInstrm"), config, collector)
	}
	if p.CtgyPurp != nil {
		p.CtgyPurp.Validate(validation.ChildPath(path, "CtgyPurp"), config, collector)
	}
}

// ActiveCurrencyAndAmount is a monetary amount with an explicit ISO 4217
// currency attribute. The amount travels as the element's character data.
type ActiveCurrencyAndAmount struct {
	Ccy   string `xml:"Ccy,attr" json:"Ccy"`
	Value string `xml:",chardata" json:"Value"`
}

// Validate is a no-op; amount formatting is guaranteed by the serializer.
func (a *ActiveCurrencyAndAmount) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}

// SettlementDateTimeIndication1 reports when the payment was debited or
// credited at the transaction administrator.
type SettlementDateTimeIndication1 struct {
	DbtDtTm *string `xml:"DbtDtTm,omitempty" json:"DbtDtTm,omitempty"`
	CdtDtTm *string `xml:"CdtDtTm,omitempty" json:"CdtDtTm,omitempty"`
}

func (s *SettlementDateTimeIndication1) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if s.DbtDtTm != nil {
		validation.ValidatePattern(*s.DbtDtTm, "DbtDtTm", patternOffsetTime, validation.ChildPath(path, "DbtDtTm"), config, collector)
	}
	if s.CdtDtTm != nil {
		validation.ValidatePattern(*s.CdtDtTm, "CdtDtTm", patternOffsetTime, validation.ChildPath(path, "CdtDtTm"), config, collector)
	}
}

// SettlementTimeRequest2 carries the settlement deadlines of the payment.
type SettlementTimeRequest2 struct {
	CLSTm  *string `xml:"CLSTm,omitempty" json:"CLSTm,omitempty"`
	TillTm *string `xml:"TillTm,omitempty" json:"TillTm,omitempty"`
	FrTm   *string `xml:"FrTm,omitempty" json:"FrTm,omitempty"`
	RjctTm *string `xml:"RjctTm,omitempty" json:"RjctTm,omitempty"`
}

func (s *SettlementTimeRequest2) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if s.CLSTm != nil {
		validation.ValidatePattern(*s.CLSTm, "CLSTm", patternOffsetTime, validation.ChildPath(path, "CLSTm"), config, collector)
	}
	if s.TillTm != nil {
		validation.ValidatePattern(*s.TillTm, "TillTm", patternOffsetTime, validation.ChildPath(path, "TillTm"), config, collector)
	}
	if s.FrTm != nil {
		validation.ValidatePattern(*s.FrTm, "FrTm", patternOffsetTime, validation.ChildPath(path, "FrTm"), config, collector)
	}
	if s.RjctTm != nil {
		validation.ValidatePattern(*s.RjctTm, "RjctTm", patternOffsetTime, validation.ChildPath(path, "RjctTm"), config, collector)
	}
}

// Charges7 names the agent taking a transaction charge and its amount.
type Charges7 struct {
	Amt ActiveCurrencyAndAmount                      `xml:"Amt" json:"Amt"`
	Agt BranchAndFinancialInstitutionIdentification6 `xml:"Agt" json:"Agt"`
}

func (c *Charges7) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	c.Amt.Validate(validation.ChildPath(path, "Amt"), config, collector)
	c.Agt.Validate(validation.ChildPath(path, "Agt"), config, collector)
}
