// Package camt057 holds the camt.057.001.06 notification to receive schema
// as constrained by the CBPR+ usage guidelines.
package camt057

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
	patternRestrictedId = `([0-9a-zA-Z\-\?:\(\)\.,'\+ ]([0-9a-zA-Z\-\?:\(\)\.,'\+ ]*(/[0-9a-zA-Z\-\?:\(\)\.,'\+ ])?)*)`
)

// NotificationToReceiveV06 is the message root. It announces funds the
// account servicer should expect to receive.
type NotificationToReceiveV06 struct {
	GrpHdr GroupHeader77         `xml:"GrpHdr" json:"GrpHdr"`
	Ntfctn AccountNotification16 `xml:"Ntfctn" json:"Ntfctn"`
}

func (m *NotificationToReceiveV06) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	m.GrpHdr.Validate(validation.ChildPath(path, "GrpHdr"), config, collector)
	m.Ntfctn.Validate(validation.ChildPath(path, "Ntfctn"), config, collector)
}

// GroupHeader77 carries message-level identification.
type GroupHeader77 struct {
	MsgId   string         `xml:"MsgId" json:"MsgId"`
	CreDtTm string         `xml:"CreDtTm" json:"CreDtTm"`
	MsgSndr *Party40Choice `xml:"MsgSndr,omitempty" json:"MsgSndr,omitempty"`
}

func (h *GroupHeader77) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidateLength(h.MsgId, "MsgId", 1, 35, validation.ChildPath(path, "MsgId"), config, collector)
	validation.ValidatePattern(h.MsgId, "MsgId", patternBasicText, validation.ChildPath(path, "MsgId"), config, collector)
	validation.ValidatePattern(h.CreDtTm, "CreDtTm", patternOffsetTime, validation.ChildPath(path, "CreDtTm"), config, collector)
	if h.MsgSndr != nil && config.ValidateOptionalFields {
		h.MsgSndr.Validate(validation.ChildPath(path, "MsgSndr"), config, collector)
	}
}

// AccountNotification16 announces one or more expected payments on an
// account.
type AccountNotification16 struct {
	Id         string                                        `xml:"Id" json:"Id"`
	Acct       *CashAccount38                                `xml:"Acct,omitempty" json:"Acct,omitempty"`
	AcctOwnr   *Party40Choice                                `xml:"AcctOwnr,omitempty" json:"AcctOwnr,omitempty"`
	AcctSvcr   *BranchAndFinancialInstitutionIdentification6 `xml:"AcctSvcr,omitempty" json:"AcctSvcr,omitempty"`
	RltdAcct   *CashAccount38                                `xml:"RltdAcct,omitempty" json:"RltdAcct,omitempty"`
	TtlAmt     *ActiveOrHistoricCurrencyAndAmount            `xml:"TtlAmt,omitempty" json:"TtlAmt,omitempty"`
	XpctdValDt *string                                       `xml:"XpctdValDt,omitempty" json:"XpctdValDt,omitempty"`
	Dbtr       *Party40Choice                                `xml:"Dbtr,omitempty" json:"Dbtr,omitempty"`
	DbtrAgt    *BranchAndFinancialInstitutionIdentification6 `xml:"DbtrAgt,omitempty" json:"DbtrAgt,omitempty"`
	IntrmyAgt  *BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt,omitempty" json:"IntrmyAgt,omitempty"`
	Itm        []NotificationItem7                           `xml:"Itm" json:"Itm"`
}

func (n *AccountNotification16) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidateLength(n.Id, "Id", 1, 35, validation.ChildPath(path, "Id"), config, collector)
	validation.ValidatePattern(n.Id, "Id", patternBasicText, validation.ChildPath(path, "Id"), config, collector)
	if n.Acct != nil && config.ValidateOptionalFields {
		n.Acct.Validate(validation.ChildPath(path, "Acct"), config, collector)
	}
	if n.AcctOwnr != nil && config.ValidateOptionalFields {
		n.AcctOwnr.Validate(validation.ChildPath(path, "AcctOwnr"), config, collector)
	}
	if n.AcctSvcr != nil && config.ValidateOptionalFields {
		n.AcctSvcr.Validate(validation.ChildPath(path, "AcctSvcr"), config, collector)
	}
	if n.RltdAcct != nil && config.ValidateOptionalFields {
		n.RltdAcct.Validate(validation.ChildPath(path, "RltdAcct"), config, collector)
	}
	if n.TtlAmt != nil && config.ValidateOptionalFields {
		n.TtlAmt.Validate(validation.ChildPath(path, "TtlAmt"), config, collector)
	}
	if n.Dbtr != nil && config.ValidateOptionalFields {
		n.Dbtr.Validate(validation.ChildPath(path, "Dbtr"), config, collector)
	}
	if n.DbtrAgt != nil && config.ValidateOptionalFields {
		n.DbtrAgt.Validate(validation.ChildPath(path, "DbtrAgt"), config, collector)
	}
	if n.IntrmyAgt != nil && config.ValidateOptionalFields {
		n.IntrmyAgt.Validate(validation.ChildPath(path, "IntrmyAgt"), config, collector)
	}
	for i := range n.Itm {
		n.Itm[i].Validate(validation.ChildPath(path, "Itm"), config, collector)
	}
}

// NotificationItem7 announces a single expected payment.
type NotificationItem7 struct {
	Id         string                                        `xml:"Id" json:"Id"`
	EndToEndId *string                                       `xml:"EndToEndId,omitempty" json:"EndToEndId,omitempty"`
	UETR       *string                                       `xml:"UETR,omitempty" json:"UETR,omitempty"`
	RltdAcct   *CashAccount38                                `xml:"RltdAcct,omitempty" json:"RltdAcct,omitempty"`
	Amt        ActiveOrHistoricCurrencyAndAmount             `xml:"Amt" json:"Amt"`
	XpctdValDt *string                                       `xml:"XpctdValDt,omitempty" json:"XpctdValDt,omitempty"`
	Dbtr       *Party40Choice                                `xml:"Dbtr,omitempty" json:"Dbtr,omitempty"`
	DbtrAgt    *BranchAndFinancialInstitutionIdentification6 `xml:"DbtrAgt,omitempty" json:"DbtrAgt,omitempty"`
	IntrmyAgt  *BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt,omitempty" json:"IntrmyAgt,omitempty"`
	Purp       *Purpose2Choice                               `xml:"Purp,omitempty" json:"Purp,omitempty"`
}

func (n *NotificationItem7) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidateLength(n.Id, "Id", 1, 35, validation.ChildPath(path, "Id"), config, collector)
	validation.ValidatePattern(n.Id, "Id", patternBasicText, validation.ChildPath(path, "Id"), config, collector)
	if n.EndToEndId != nil {
		validation.ValidateLength(*n.EndToEndId, "EndToEndId", 1, 35, validation.ChildPath(path, "EndToEndId"), config, collector)
		validation.ValidatePattern(*n.EndToEndId, "EndToEndId", patternBasicText, validation.ChildPath(path, "EndToEndId"), config, collector)
	}
	if n.UETR != nil {
		validation.ValidatePattern(*n.UETR, "UETR", patternUETR, validation.ChildPath(path, "UETR"), config, collector)
	}
	if n.RltdAcct != nil && config.ValidateOptionalFields {
		n.RltdAcct.Validate(validation.ChildPath(path, "RltdAcct"), config, collector)
	}
	n.Amt.Validate(validation.ChildPath(path, "Amt"), config, collector)
	if n.Dbtr != nil && config.ValidateOptionalFields {
		n.Dbtr.Validate(validation.ChildPath(path, "Dbtr"), config, collector)
	}
	if n.DbtrAgt != nil && config.ValidateOptionalFields {
		n.DbtrAgt.Validate(validation.ChildPath(path, "DbtrAgt"), config, collector)
	}
	if n.IntrmyAgt != nil && config.ValidateOptionalFields {
		n.IntrmyAgt.Validate(validation.ChildPath(path, "IntrmyAgt"), config, collector)
	}
	if n.Purp != nil && config.ValidateOptionalFields {
		n.Purp.Validate(validation.ChildPath(path, "Purp"), config, collector)
	}
}

// Purpose2Choice names the underlying reason of the expected payment.
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

// ActiveOrHistoricCurrencyAndAmount is a monetary amount with an explicit
// ISO 4217 currency attribute.
type ActiveOrHistoricCurrencyAndAmount struct {
	Ccy   string `xml:"Ccy,attr" json:"Ccy"`
	Value string `xml:",chardata" json:"Value"`
}

// Validate is a no-op; amount formatting is guaranteed by the serializer.
func (a *ActiveOrHistoricCurrencyAndAmount) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}
