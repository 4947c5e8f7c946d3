// Package pacs009 holds the pacs.009.001.08 financial institution credit
// transfer schema as constrained by the CBPR+ usage guidelines.
package pacs009

import (
	"github.com/finwire/mxmessage/validation"
)

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

// FinancialInstitutionCreditTransferV08 is the message root.
type FinancialInstitutionCreditTransferV08 struct {
	GrpHdr      GroupHeader93               `xml:"GrpHdr" json:"GrpHdr"`
	CdtTrfTxInf CreditTransferTransaction36 `xml:"CdtTrfTxInf" json:"CdtTrfTxInf"`
}

func (m *FinancialInstitutionCreditTransferV08) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	m.GrpHdr.Validate(validation.ChildPath(path, "GrpHdr"), config, collector)
	m.CdtTrfTxInf.Validate(validation.ChildPath(path, "CdtTrfTxInf"), config, collector)
}

// GroupHeader93 carries message-level identification and the settlement
// instruction.
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

// SettlementInstruction7 specifies how the interbank amount is settled. The
// CBPR+ profile restricts it to the method and an optional settlement
// account.
type SettlementInstruction7 struct {
	SttlmMtd  SettlementMethod1Code `xml:"SttlmMtd" json:"SttlmMtd"`
	SttlmAcct *CashAccount38        `xml:"SttlmAcct,omitempty" json:"SttlmAcct,omitempty"`
}

func (s *SettlementInstruction7) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	s.SttlmMtd.Validate(validation.ChildPath(path, "SttlmMtd"), config, collector)
	if s.SttlmAcct != nil && config.ValidateOptionalFields {
		s.SttlmAcct.Validate(validation.ChildPath(path, "SttlmAcct"), config, collector)
	}
}

// CreditTransferTransaction36 is the single interbank transaction carried by
// the message. Debtor and creditor are financial institutions.
type CreditTransferTransaction36 struct {
	PmtId             PaymentIdentification7                        `xml:"PmtId" json:"PmtId"`
	PmtTpInf          *PaymentTypeInformation28                     `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	IntrBkSttlmAmt    ActiveCurrencyAndAmount                       `xml:"IntrBkSttlmAmt" json:"IntrBkSttlmAmt"`
	IntrBkSttlmDt     string                                        `xml:"IntrBkSttlmDt" json:"IntrBkSttlmDt"`
	SttlmPrty         *Priority3Code                                `xml:"SttlmPrty,omitempty" json:"SttlmPrty,omitempty"`
	SttlmTmIndctn     *SettlementDateTimeIndication1                `xml:"SttlmTmIndctn,omitempty" json:"SttlmTmIndctn,omitempty"`
	SttlmTmReq        *SettlementTimeRequest2                       `xml:"SttlmTmReq,omitempty" json:"SttlmTmReq,omitempty"`
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
	Dbtr              BranchAndFinancialInstitutionIdentification6  `xml:"Dbtr" json:"Dbtr"`
	DbtrAcct          *CashAccount38                                `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	DbtrAgt           *BranchAndFinancialInstitutionIdentification6 `xml:"DbtrAgt,omitempty" json:"DbtrAgt,omitempty"`
	DbtrAgtAcct       *CashAccount38                                `xml:"DbtrAgtAcct,omitempty" json:"DbtrAgtAcct,omitempty"`
	CdtrAgt           *BranchAndFinancialInstitutionIdentification6 `xml:"CdtrAgt,omitempty" json:"CdtrAgt,omitempty"`
	CdtrAgtAcct       *CashAccount38                                `xml:"CdtrAgtAcct,omitempty" json:"CdtrAgtAcct,omitempty"`
	Cdtr              BranchAndFinancialInstitutionIdentification6  `xml:"Cdtr" json:"Cdtr"`
	CdtrAcct          *CashAccount38                                `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	InstrForCdtrAgt   []InstructionForCreditorAgent2                `xml:"InstrForCdtrAgt,omitempty" json:"InstrForCdtrAgt,omitempty"`
	InstrForNxtAgt    []InstructionForNextAgent1                    `xml:"InstrForNxtAgt,omitempty" json:"InstrForNxtAgt,omitempty"`
	Purp              *Purpose2Choice                               `xml:"Purp,omitempty" json:"Purp,omitempty"`
	RmtInf            *RemittanceInformation2                       `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
}

func (t *CreditTransferTransaction36) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
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
	t.Dbtr.Validate(validation.ChildPath(path, "Dbtr"), config, collector)
	if t.DbtrAcct != nil && config.ValidateOptionalFields {
		t.DbtrAcct.Validate(validation.ChildPath(path, "DbtrAcct"), config, collector)
	}
	if t.DbtrAgt != nil && config.ValidateOptionalFields {
		t.DbtrAgt.Validate(validation.ChildPath(path, "DbtrAgt"), config, collector)
	}
	if t.DbtrAgtAcct != nil && config.ValidateOptionalFields {
		t.DbtrAgtAcct.Validate(validation.ChildPath(path, "DbtrAgtAcct"), config, collector)
	}
	if t.CdtrAgt != nil && config.ValidateOptionalFields {
		t.CdtrAgt.Validate(validation.ChildPath(path, "CdtrAgt"), config, collector)
	}
	if t.CdtrAgtAcct != nil && config.ValidateOptionalFields {
		t.CdtrAgtAcct.Validate(validation.ChildPath(path, "CdtrAgtAcct"), config, collector)
	}
	t.Cdtr.Validate(validation.ChildPath(path, "Cdtr"), config, collector)
	if t.CdtrAcct != nil && config.ValidateOptionalFields {
		t.CdtrAcct.Validate(validation.ChildPath(path, "CdtrAcct"), config, collector)
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
// currency attribute.
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

// InstructionForCreditorAgent2 carries a coded or free-text instruction for
// the creditor agent.
type InstructionForCreditorAgent2 struct {
	Cd       *Instruction5Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	InstrInf *string           `xml:"InstrInf,omitempty" json:"InstrInf,omitempty"`
}

func (i *InstructionForCreditorAgent2) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if i.Cd != nil && config.ValidateOptionalFields {
		i.Cd.Validate(validation.ChildPath(path, "Cd"), config, collector)
	}
	if i.InstrInf != nil {
		validation.ValidateLength(*i.InstrInf, "InstrInf", 1, 140, validation.ChildPath(path, "InstrInf"), config, collector)
		validation.ValidatePattern(*i.InstrInf, "InstrInf", patternBasicText, validation.ChildPath(path, "InstrInf"), config, collector)
	}
}

// InstructionForNextAgent1 carries a free-text instruction for the next
// agent in the chain.
type InstructionForNextAgent1 struct {
	InstrInf *string `xml:"InstrInf,omitempty" json:"InstrInf,omitempty"`
}

func (i *InstructionForNextAgent1) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if i.InstrInf != nil {
		validation.ValidateLength(*i.InstrInf, "InstrInf", 1, 35, validation.ChildPath(path, "InstrInf"), config, collector)
		validation.ValidatePattern(*i.InstrInf, "InstrInf", patternBasicText, validation.ChildPath(path, "InstrInf"), config, collector)
	}
}

// Purpose2Choice names the underlying reason of the payment.
type Purpose2Choice struct {
	Cd    *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (p *Purpose2Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if p.Cd != nil {
		validation.ValidateLength(*p.Cd, "Cd", 1, 4, validation.ChildPath(path, "Cd"), config, collector)
	}
	if p.Prtry != nil {
		validation.ValidateLength(*p.Prtry, "Prtry", 1, 35, validation.ChildPath(path, "Prtry"), config, collector)
		validation.ValidatePattern(*p.Prtry, "Prtry", patternBasicText, validation.ChildPath(path, "Prtry"), config, collector)
	}
}

// ServiceLevel8Choice names the service level agreement of the payment.
type ServiceLevel8Choice struct {
	Cd    *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (s *ServiceLevel8Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if s.Cd != nil {
		validation.ValidateLength(*s.Cd, "Cd", 1, 4, validation.ChildPath(path, "Cd"), config, collector)
	}
	if s.Prtry != nil {
		validation.ValidateLength(*s.Prtry, "Prtry", 1, 35, validation.ChildPath(path, "Prtry"), config, collector)
		validation.ValidatePattern(*s.Prtry, "Prtry", patternBasicText, validation.ChildPath(path, "Prtry"), config, collector)
	}
}

// LocalInstrument2Choice names the local instrument governing the payment.
type LocalInstrument2Choice struct {
	Cd    *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (l *LocalInstrument2Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if l.Cd != nil {
		validation.ValidateLength(*l.Cd, "Cd", 1, 35, validation.ChildPath(path, "Cd"), config, collector)
	}
	if l.Prtry != nil {
		validation.ValidateLength(*l.Prtry, "Prtry", 1, 35, validation.ChildPath(path, "Prtry"), config, collector)
		validation.ValidatePattern(*l.Prtry, "Prtry", patternBasicText, validation.ChildPath(path, "Prtry"), config, collector)
	}
}

// CategoryPurpose1Choice names the high-level purpose category.
type CategoryPurpose1Choice struct {
	Cd    *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *CategoryPurpose1Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if c.Cd != nil {
		validation.ValidateLength(*c.Cd, "Cd", 1, 4, validation.ChildPath(path, "Cd"), config, collector)
	}
	if c.Prtry != nil {
		validation.ValidateLength(*c.Prtry, "Prtry", 1, 35, validation.ChildPath(path, "Prtry"), config, collector)
		validation.ValidatePattern(*c.Prtry, "Prtry", patternBasicText, validation.ChildPath(path, "Prtry"), config, collector)
	}
}

// RemittanceInformation2 carries unstructured remittance text.
type RemittanceInformation2 struct {
	Ustrd *string `xml:"Ustrd,omitempty" json:"Ustrd,omitempty"`
}

func (r *RemittanceInformation2) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if r.Ustrd != nil {
		validation.ValidateLength(*r.Ustrd, "Ustrd", 1, 140, validation.ChildPath(path, "Ustrd"), config, collector)
		validation.ValidatePattern(*r.Ustrd, "Ustrd", patternExtendedText, validation.ChildPath(path, "Ustrd"), config, collector)
	}
}

// SettlementMethod1Code states how the interbank amount is settled.
type SettlementMethod1Code string

const (
	SettlementMethodINDA SettlementMethod1Code = "INDA"
	SettlementMethodINGA SettlementMethod1Code = "INGA"
	SettlementMethodCOVE SettlementMethod1Code = "COVE"
)

func (c SettlementMethod1Code) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}

// Priority2Code is the instruction priority.
type Priority2Code string

const (
	Priority2HIGH Priority2Code = "HIGH"
	Priority2NORM Priority2Code = "NORM"
)

func (c Priority2Code) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}

// Priority3Code is the settlement priority.
type Priority3Code string

const (
	Priority3URGT Priority3Code = "URGT"
	Priority3HIGH Priority3Code = "HIGH"
	Priority3NORM Priority3Code = "NORM"
)

func (c Priority3Code) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}

// ClearingChannel2Code is the clearing channel of the payment.
type ClearingChannel2Code string

const (
	ClearingChannelRTGS ClearingChannel2Code = "RTGS"
	ClearingChannelRTNS ClearingChannel2Code = "RTNS"
	ClearingChannelMPNS ClearingChannel2Code = "MPNS"
	ClearingChannelBOOK ClearingChannel2Code = "BOOK"
)

func (c ClearingChannel2Code) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}

// Instruction5Code is a coded instruction for the creditor agent.
type Instruction5Code string

const (
	InstructionPHOB Instruction5Code = "PHOB"
	InstructionTELB Instruction5Code = "TELB"
)

func (c Instruction5Code) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}
