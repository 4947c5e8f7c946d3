// Package appheader holds the head.001.001.02 Business Application Header
// schema used by every CBPR+ message catalog entry. Field constraints carry
// the usage-guideline lengths and patterns verbatim.
package appheader

import (
	"github.com/finwire/mxmessage/validation"
)

// BusinessApplicationHeaderV02 is the AppHdr envelope element carrying
// routing, sender/receiver and duplicate-handling metadata. It is validated
// independently of the document body.
type BusinessApplicationHeaderV02 struct {
	CharSet    *string                       `xml:"CharSet,omitempty" json:"CharSet,omitempty"`
	Fr         Party44Choice                 `xml:"Fr" json:"Fr"`
	To         Party44Choice                 `xml:"To" json:"To"`
	BizMsgIdr  string                        `xml:"BizMsgIdr" json:"BizMsgIdr"`
	MsgDefIdr  string                        `xml:"MsgDefIdr" json:"MsgDefIdr"`
	BizSvc     string                        `xml:"BizSvc" json:"BizSvc"`
	MktPrctc   *ImplementationSpecification1 `xml:"MktPrctc,omitempty" json:"MktPrctc,omitempty"`
	CreDt      string                        `xml:"CreDt" json:"CreDt"`
	CpyDplct   *CopyDuplicate1Code           `xml:"CpyDplct,omitempty" json:"CpyDplct,omitempty"`
	PssblDplct *bool                         `xml:"PssblDplct,omitempty" json:"PssblDplct,omitempty"`
	Prty       *Priority2Code                `xml:"Prty,omitempty" json:"Prty,omitempty"`
	Rltd       []BusinessApplicationHeader5  `xml:"Rltd,omitempty" json:"Rltd,omitempty"`
}

func (h *BusinessApplicationHeaderV02) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	h.Fr.Validate(validation.ChildPath(path, "Fr"), config, collector)
	h.To.Validate(validation.ChildPath(path, "To"), config, collector)
	validation.ValidateLength(h.BizMsgIdr, "BizMsgIdr", 1, 35, validation.ChildPath(path, "BizMsgIdr"), config, collector)
	validation.ValidateLength(h.MsgDefIdr, "MsgDefIdr", 1, 35, validation.ChildPath(path, "MsgDefIdr"), config, collector)
	validation.ValidateLength(h.BizSvc, "BizSvc", 6, 35, validation.ChildPath(path, "BizSvc"), config, collector)
	validation.ValidatePattern(h.BizSvc, "BizSvc", `[a-z0-9]{1,10}\.([a-z0-9]{1,10}\.)+\d\d`, validation.ChildPath(path, "BizSvc"), config, collector)
	if h.MktPrctc != nil && config.ValidateOptionalFields {
		h.MktPrctc.Validate(validation.ChildPath(path, "MktPrctc"), config, collector)
	}
	validation.ValidatePattern(h.CreDt, "CreDt", `.*(\+|-)((0[0-9])|(1[0-4])):[0-5][0-9]`, validation.ChildPath(path, "CreDt"), config, collector)
	if h.CpyDplct != nil && config.ValidateOptionalFields {
		h.CpyDplct.Validate(validation.ChildPath(path, "CpyDplct"), config, collector)
	}
	if h.Prty != nil && config.ValidateOptionalFields {
		h.Prty.Validate(validation.ChildPath(path, "Prty"), config, collector)
	}
	if config.ValidateOptionalFields {
		for i := range h.Rltd {
			h.Rltd[i].Validate(validation.ChildPath(path, "Rltd"), config, collector)
		}
	}
}

// BusinessApplicationHeader5 references the header of a related business
// message, used when replying to, cancelling or amending one.
type BusinessApplicationHeader5 struct {
	CharSet   *string             `xml:"CharSet,omitempty" json:"CharSet,omitempty"`
	Fr        Party44Choice       `xml:"Fr" json:"Fr"`
	To        Party44Choice       `xml:"To" json:"To"`
	BizMsgIdr string              `xml:"BizMsgIdr" json:"BizMsgIdr"`
	MsgDefIdr string              `xml:"MsgDefIdr" json:"MsgDefIdr"`
	BizSvc    *string             `xml:"BizSvc,omitempty" json:"BizSvc,omitempty"`
	CreDt     string              `xml:"CreDt" json:"CreDt"`
	CpyDplct  *CopyDuplicate1Code `xml:"CpyDplct,omitempty" json:"CpyDplct,omitempty"`
	Prty      *string             `xml:"Prty,omitempty" json:"Prty,omitempty"`
}

func (h *BusinessApplicationHeader5) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	h.Fr.Validate(validation.ChildPath(path, "Fr"), config, collector)
	h.To.Validate(validation.ChildPath(path, "To"), config, collector)
	validation.ValidateLength(h.BizMsgIdr, "BizMsgIdr", 1, 35, validation.ChildPath(path, "BizMsgIdr"), config, collector)
	validation.ValidateLength(h.MsgDefIdr, "MsgDefIdr", 1, 35, validation.ChildPath(path, "MsgDefIdr"), config, collector)
	if h.BizSvc != nil {
		validation.ValidateLength(*h.BizSvc, "BizSvc", 1, 35, validation.ChildPath(path, "BizSvc"), config, collector)
	}
	validation.ValidatePattern(h.CreDt, "CreDt", `.*(\+|-)((0[0-9])|(1[0-4])):[0-5][0-9]`, validation.ChildPath(path, "CreDt"), config, collector)
	if h.CpyDplct != nil && config.ValidateOptionalFields {
		h.CpyDplct.Validate(validation.ChildPath(path, "CpyDplct"), config, collector)
	}
	if h.Prty != nil {
		validation.ValidateLength(*h.Prty, "Prty", 1, 35, validation.ChildPath(path, "Prty"), config, collector)
	}
}

// Party44Choice identifies the sending or receiving party. CBPR+ restricts
// the choice to a financial institution identification.
type Party44Choice struct {
	FIId *BranchAndFinancialInstitutionIdentification6 `xml:"FIId,omitempty" json:"FIId,omitempty"`
}

func (c *Party44Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if c.FIId != nil {
		c.FIId.Validate(validation.ChildPath(path, "FIId"), config, collector)
	}
}

// BranchAndFinancialInstitutionIdentification6 identifies a financial
// institution under an internationally recognised identification scheme.
type BranchAndFinancialInstitutionIdentification6 struct {
	FinInstnId FinancialInstitutionIdentification18 `xml:"FinInstnId" json:"FinInstnId"`
}

func (b *BranchAndFinancialInstitutionIdentification6) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	b.FinInstnId.Validate(validation.ChildPath(path, "FinInstnId"), config, collector)
}

// FinancialInstitutionIdentification18 carries the BICFI together with
// optional clearing-system membership and legal entity identifiers.
type FinancialInstitutionIdentification18 struct {
	BICFI       string                               `xml:"BICFI" json:"BICFI"`
	ClrSysMmbId *ClearingSystemMemberIdentification2 `xml:"ClrSysMmbId,omitempty" json:"ClrSysMmbId,omitempty"`
	LEI         *string                              `xml:"LEI,omitempty" json:"LEI,omitempty"`
}

func (f *FinancialInstitutionIdentification18) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidatePattern(f.BICFI, "BICFI", `[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`, validation.ChildPath(path, "BICFI"), config, collector)
	if f.ClrSysMmbId != nil && config.ValidateOptionalFields {
		f.ClrSysMmbId.Validate(validation.ChildPath(path, "ClrSysMmbId"), config, collector)
	}
	if f.LEI != nil {
		validation.ValidatePattern(*f.LEI, "LEI", `[A-Z0-9]{18,18}[0-9]{2,2}`, validation.ChildPath(path, "LEI"), config, collector)
	}
}

// ClearingSystemMemberIdentification2 identifies a member within a clearing
// system.
type ClearingSystemMemberIdentification2 struct {
	ClrSysId ClearingSystemIdentification2Choice `xml:"ClrSysId" json:"ClrSysId"`
	MmbId    string                              `xml:"MmbId" json:"MmbId"`
}

func (c *ClearingSystemMemberIdentification2) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	c.ClrSysId.Validate(validation.ChildPath(path, "ClrSysId"), config, collector)
	validation.ValidateLength(c.MmbId, "MmbId", 1, 28, validation.ChildPath(path, "MmbId"), config, collector)
	validation.ValidatePattern(c.MmbId, "MmbId", `[0-9a-zA-Z/\-\?:\(\)\.,'\+ ]+`, validation.ChildPath(path, "MmbId"), config, collector)
}

// ClearingSystemIdentification2Choice names a clearing system in a coded
// form as published in an external list.
type ClearingSystemIdentification2Choice struct {
	Cd *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
}

func (c *ClearingSystemIdentification2Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if c.Cd != nil {
		validation.ValidateLength(*c.Cd, "Cd", 1, 5, validation.ChildPath(path, "Cd"), config, collector)
	}
}

// ImplementationSpecification1 points at the registry entry of the
// implementation specification the message complies with.
type ImplementationSpecification1 struct {
	Regy string `xml:"Regy" json:"Regy"`
	Id   string `xml:"Id" json:"Id"`
}

func (s *ImplementationSpecification1) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidateLength(s.Regy, "Regy", 1, 350, validation.ChildPath(path, "Regy"), config, collector)
	validation.ValidateLength(s.Id, "Id", 1, 2048, validation.ChildPath(path, "Id"), config, collector)
}

// CopyDuplicate1Code indicates whether the message is a copy, a duplicate or
// a copy of a duplicate.
type CopyDuplicate1Code string

const (
	CopyDuplicate1CodeCODU CopyDuplicate1Code = "CODU"
	CopyDuplicate1CodeCOPY CopyDuplicate1Code = "COPY"
	CopyDuplicate1CodeDUPL CopyDuplicate1Code = "DUPL"
)

// Validate is a no-op; membership is guaranteed by the deserializer.
func (c CopyDuplicate1Code) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}

// Priority2Code is the processing precedence of the message.
type Priority2Code string

const (
	Priority2CodeHIGH Priority2Code = "HIGH"
	Priority2CodeNORM Priority2Code = "NORM"
)

// Validate is a no-op; membership is guaranteed by the deserializer.
func (c Priority2Code) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}
