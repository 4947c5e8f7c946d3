package camt057

import "github.com/finwire/mxmessage/validation"

// Party40Choice identifies either a party or a financial institution.
type Party40Choice struct {
	Pty *PartyIdentification135                       `xml:"Pty,omitempty" json:"Pty,omitempty"`
	Agt *BranchAndFinancialInstitutionIdentification6 `xml:"Agt,omitempty" json:"Agt,omitempty"`
}

func (p *Party40Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if p.Pty != nil {
		p.Pty.Validate(validation.ChildPath(path, "Pty"), config, collector)
	}
	if p.Agt != nil {
		p.Agt.Validate(validation.ChildPath(path, "Agt"), config, collector)
	}
}

// PartyIdentification135 identifies a party by name, address or scheme
// identification.
type PartyIdentification135 struct {
	Nm        *string          `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr   *PostalAddress24 `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Id        *Party38Choice   `xml:"Id,omitempty" json:"Id,omitempty"`
	CtryOfRes *string          `xml:"CtryOfRes,omitempty" json:"CtryOfRes,omitempty"`
}

func (p *PartyIdentification135) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if p.Nm != nil {
		validation.ValidateLength(*p.Nm, "Nm", 1, 140, validation.ChildPath(path, "Nm"), config, collector)
		validation.ValidatePattern(*p.Nm, "Nm", patternExtendedText, validation.ChildPath(path, "Nm"), config, collector)
	}
	if p.PstlAdr != nil && config.ValidateOptionalFields {
		p.PstlAdr.Validate(validation.ChildPath(path, "PstlAdr"), config, collector)
	}
	if p.Id != nil && config.ValidateOptionalFields {
		p.Id.Validate(validation.ChildPath(path, "Id"), config, collector)
	}
	if p.CtryOfRes != nil {
		validation.ValidatePattern(*p.CtryOfRes, "CtryOfRes", patternCountry, validation.ChildPath(path, "CtryOfRes"), config, collector)
	}
}

// Party38Choice identifies an organisation or a private person.
type Party38Choice struct {
	OrgId  *OrganisationIdentification29 `xml:"OrgId,omitempty" json:"OrgId,omitempty"`
	PrvtId *PersonIdentification13       `xml:"PrvtId,omitempty" json:"PrvtId,omitempty"`
}

func (p *Party38Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if !config.ValidateOptionalFields {
		return
	}
	if p.OrgId != nil {
		p.OrgId.Validate(validation.ChildPath(path, "OrgId"), config, collector)
	}
	if p.PrvtId != nil {
		p.PrvtId.Validate(validation.ChildPath(path, "PrvtId"), config, collector)
	}
}

// OrganisationIdentification29 identifies an organisation.
type OrganisationIdentification29 struct {
	AnyBIC *string                              `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	LEI    *string                              `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Othr   []GenericOrganisationIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (o *OrganisationIdentification29) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if o.AnyBIC != nil {
		validation.ValidatePattern(*o.AnyBIC, "AnyBIC", patternBIC, validation.ChildPath(path, "AnyBIC"), config, collector)
	}
	if o.LEI != nil {
		validation.ValidatePattern(*o.LEI, "LEI", patternLEI, validation.ChildPath(path, "LEI"), config, collector)
	}
	for i := range o.Othr {
		o.Othr[i].Validate(validation.ChildPath(path, "Othr"), config, collector)
	}
}

// GenericOrganisationIdentification1 is an organisation identification under
// a named scheme.
type GenericOrganisationIdentification1 struct {
	Id      string                                       `xml:"Id" json:"Id"`
	SchmeNm *OrganisationIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *string                                      `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericOrganisationIdentification1) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidateLength(g.Id, "Id", 1, 35, validation.ChildPath(path, "Id"), config, collector)
	validation.ValidatePattern(g.Id, "Id", patternBasicText, validation.ChildPath(path, "Id"), config, collector)
	if g.SchmeNm != nil && config.ValidateOptionalFields {
		g.SchmeNm.Validate(validation.ChildPath(path, "SchmeNm"), config, collector)
	}
	if g.Issr != nil {
		validation.ValidateLength(*g.Issr, "Issr", 1, 35, validation.ChildPath(path, "Issr"), config, collector)
		validation.ValidatePattern(*g.Issr, "Issr", patternBasicText, validation.ChildPath(path, "Issr"), config, collector)
	}
}

// OrganisationIdentificationSchemeName1Choice names the organisation
// identification scheme.
type OrganisationIdentificationSchemeName1Choice struct {
	Cd    *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (o *OrganisationIdentificationSchemeName1Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if o.Cd != nil {
		validation.ValidateLength(*o.Cd, "Cd", 1, 4, validation.ChildPath(path, "Cd"), config, collector)
	}
	if o.Prtry != nil {
		validation.ValidateLength(*o.Prtry, "Prtry", 1, 35, validation.ChildPath(path, "Prtry"), config, collector)
		validation.ValidatePattern(*o.Prtry, "Prtry", patternBasicText, validation.ChildPath(path, "Prtry"), config, collector)
	}
}

// PersonIdentification13 identifies a private person.
type PersonIdentification13 struct {
	DtAndPlcOfBirth *DateAndPlaceOfBirth1          `xml:"DtAndPlcOfBirth,omitempty" json:"DtAndPlcOfBirth,omitempty"`
	Othr            []GenericPersonIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (p *PersonIdentification13) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if p.DtAndPlcOfBirth != nil {
		p.DtAndPlcOfBirth.Validate(validation.ChildPath(path, "DtAndPlcOfBirth"), config, collector)
	}
	for i := range p.Othr {
		p.Othr[i].Validate(validation.ChildPath(path, "Othr"), config, collector)
	}
}

// GenericPersonIdentification1 is a person identification under a named
// scheme.
type GenericPersonIdentification1 struct {
	Id      string                                 `xml:"Id" json:"Id"`
	SchmeNm *PersonIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *string                                `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericPersonIdentification1) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidateLength(g.Id, "Id", 1, 35, validation.ChildPath(path, "Id"), config, collector)
	validation.ValidatePattern(g.Id, "Id", patternBasicText, validation.ChildPath(path, "Id"), config, collector)
	if g.SchmeNm != nil && config.ValidateOptionalFields {
		g.SchmeNm.Validate(validation.ChildPath(path, "SchmeNm"), config, collector)
	}
	if g.Issr != nil {
		validation.ValidateLength(*g.Issr, "Issr", 1, 35, validation.ChildPath(path, "Issr"), config, collector)
		validation.ValidatePattern(*g.Issr, "Issr", patternBasicText, validation.ChildPath(path, "Issr"), config, collector)
	}
}

// PersonIdentificationSchemeName1Choice names the person identification
// scheme.
type PersonIdentificationSchemeName1Choice struct {
	Cd    *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (p *PersonIdentificationSchemeName1Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if p.Cd != nil {
		validation.ValidateLength(*p.Cd, "Cd", 1, 4, validation.ChildPath(path, "Cd"), config, collector)
	}
	if p.Prtry != nil {
		validation.ValidateLength(*p.Prtry, "Prtry", 1, 35, validation.ChildPath(path, "Prtry"), config, collector)
		validation.ValidatePattern(*p.Prtry, "Prtry", patternBasicText, validation.ChildPath(path, "Prtry"), config, collector)
	}
}

// DateAndPlaceOfBirth1 carries the birth details of a person.
type DateAndPlaceOfBirth1 struct {
	BirthDt     string  `xml:"BirthDt" json:"BirthDt"`
	PrvcOfBirth *string `xml:"PrvcOfBirth,omitempty" json:"PrvcOfBirth,omitempty"`
	CityOfBirth string  `xml:"CityOfBirth" json:"CityOfBirth"`
	CtryOfBirth string  `xml:"CtryOfBirth" json:"CtryOfBirth"`
}

func (d *DateAndPlaceOfBirth1) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if d.PrvcOfBirth != nil {
		validation.ValidateLength(*d.PrvcOfBirth, "PrvcOfBirth", 1, 35, validation.ChildPath(path, "PrvcOfBirth"), config, collector)
		validation.ValidatePattern(*d.PrvcOfBirth, "PrvcOfBirth", patternExtendedText, validation.ChildPath(path, "PrvcOfBirth"), config, collector)
	}
	validation.ValidateLength(d.CityOfBirth, "CityOfBirth", 1, 35, validation.ChildPath(path, "CityOfBirth"), config, collector)
	validation.ValidatePattern(d.CityOfBirth, "CityOfBirth", patternExtendedText, validation.ChildPath(path, "CityOfBirth"), config, collector)
	validation.ValidatePattern(d.CtryOfBirth, "CtryOfBirth", patternCountry, validation.ChildPath(path, "CtryOfBirth"), config, collector)
}

// BranchAndFinancialInstitutionIdentification6 identifies a financial
// institution.
type BranchAndFinancialInstitutionIdentification6 struct {
	FinInstnId FinancialInstitutionIdentification18 `xml:"FinInstnId" json:"FinInstnId"`
}

func (b *BranchAndFinancialInstitutionIdentification6) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	b.FinInstnId.Validate(validation.ChildPath(path, "FinInstnId"), config, collector)
}

// FinancialInstitutionIdentification18 identifies a financial institution by
// BIC, clearing-system membership or name and address.
type FinancialInstitutionIdentification18 struct {
	BICFI       *string                              `xml:"BICFI,omitempty" json:"BICFI,omitempty"`
	ClrSysMmbId *ClearingSystemMemberIdentification2 `xml:"ClrSysMmbId,omitempty" json:"ClrSysMmbId,omitempty"`
	LEI         *string                              `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm          *string                              `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr     *PostalAddress24                     `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
}

func (f *FinancialInstitutionIdentification18) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if f.BICFI != nil {
		validation.ValidatePattern(*f.BICFI, "BICFI", patternBIC, validation.ChildPath(path, "BICFI"), config, collector)
	}
	if f.ClrSysMmbId != nil && config.ValidateOptionalFields {
		f.ClrSysMmbId.Validate(validation.ChildPath(path, "ClrSysMmbId"), config, collector)
	}
	if f.LEI != nil {
		validation.ValidatePattern(*f.LEI, "LEI", patternLEI, validation.ChildPath(path, "LEI"), config, collector)
	}
	if f.Nm != nil {
		validation.ValidateLength(*f.Nm, "Nm", 1, 140, validation.ChildPath(path, "Nm"), config, collector)
		validation.ValidatePattern(*f.Nm, "Nm", patternExtendedText, validation.ChildPath(path, "Nm"), config, collector)
	}
	if f.PstlAdr != nil && config.ValidateOptionalFields {
		f.PstlAdr.Validate(validation.ChildPath(path, "PstlAdr"), config, collector)
	}
}

// ClearingSystemMemberIdentification2 identifies a member of a clearing
// system.
type ClearingSystemMemberIdentification2 struct {
	ClrSysId ClearingSystemIdentification2Choice `xml:"ClrSysId" json:"ClrSysId"`
	MmbId    string                              `xml:"MmbId" json:"MmbId"`
}

func (c *ClearingSystemMemberIdentification2) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	c.ClrSysId.Validate(validation.ChildPath(path, "ClrSysId"), config, collector)
	validation.ValidateLength(c.MmbId, "MmbId", 1, 28, validation.ChildPath(path, "MmbId"), config, collector)
	validation.ValidatePattern(c.MmbId, "MmbId", patternBasicText, validation.ChildPath(path, "MmbId"), config, collector)
}

// ClearingSystemIdentification2Choice names a clearing system in coded form.
type ClearingSystemIdentification2Choice struct {
	Cd *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
}

func (c *ClearingSystemIdentification2Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if c.Cd != nil {
		validation.ValidateLength(*c.Cd, "Cd", 1, 5, validation.ChildPath(path, "Cd"), config, collector)
	}
}

// PostalAddress24 is a structured postal address.
type PostalAddress24 struct {
	Dept        *string  `xml:"Dept,omitempty" json:"Dept,omitempty"`
	SubDept     *string  `xml:"SubDept,omitempty" json:"SubDept,omitempty"`
	StrtNm      *string  `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *string  `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	BldgNm      *string  `xml:"BldgNm,omitempty" json:"BldgNm,omitempty"`
	Flr         *string  `xml:"Flr,omitempty" json:"Flr,omitempty"`
	PstBx       *string  `xml:"PstBx,omitempty" json:"PstBx,omitempty"`
	Room        *string  `xml:"Room,omitempty" json:"Room,omitempty"`
	PstCd       *string  `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *string  `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	TwnLctnNm   *string  `xml:"TwnLctnNm,omitempty" json:"TwnLctnNm,omitempty"`
	DstrctNm    *string  `xml:"DstrctNm,omitempty" json:"DstrctNm,omitempty"`
	CtrySubDvsn *string  `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        *string  `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
	AdrLine     []string `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
}

func (a *PostalAddress24) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	check := func(val *string, field string, max int) {
		if val == nil {
			return
		}
		validation.ValidateLength(*val, field, 1, max, validation.ChildPath(path, field), config, collector)
		validation.ValidatePattern(*val, field, patternExtendedText, validation.ChildPath(path, field), config, collector)
	}
	check(a.Dept, "Dept", 70)
	check(a.SubDept, "SubDept", 70)
	check(a.StrtNm, "StrtNm", 70)
	check(a.BldgNb, "BldgNb", 16)
	check(a.BldgNm, "BldgNm", 35)
	check(a.Flr, "Flr", 70)
	check(a.PstBx, "PstBx", 16)
	check(a.Room, "Room", 70)
	check(a.PstCd, "PstCd", 16)
	check(a.TwnNm, "TwnNm", 35)
	check(a.TwnLctnNm, "TwnLctnNm", 35)
	check(a.DstrctNm, "DstrctNm", 35)
	check(a.CtrySubDvsn, "CtrySubDvsn", 35)
	if a.Ctry != nil {
		validation.ValidatePattern(*a.Ctry, "Ctry", patternCountry, validation.ChildPath(path, "Ctry"), config, collector)
	}
	for i := range a.AdrLine {
		validation.ValidateLength(a.AdrLine[i], "AdrLine", 1, 70, validation.ChildPath(path, "AdrLine"), config, collector)
		validation.ValidatePattern(a.AdrLine[i], "AdrLine", patternExtendedText, validation.ChildPath(path, "AdrLine"), config, collector)
	}
}
