package camt057

import "github.com/finwire/mxmessage/validation"

// CashAccount38 identifies a cash account held at an agent.
type CashAccount38 struct {
	Id   AccountIdentification4Choice `xml:"Id" json:"Id"`
	Tp   *CashAccountType2Choice      `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ccy  *string                      `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Nm   *string                      `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Prxy *ProxyAccountIdentification1 `xml:"Prxy,omitempty" json:"Prxy,omitempty"`
}

func (a *CashAccount38) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	a.Id.Validate(validation.ChildPath(path, "Id"), config, collector)
	if a.Tp != nil && config.ValidateOptionalFields {
		a.Tp.Validate(validation.ChildPath(path, "Tp"), config, collector)
	}
	if a.Ccy != nil {
		validation.ValidatePattern(*a.Ccy, "Ccy", patternCurrency, validation.ChildPath(path, "Ccy"), config, collector)
	}
	if a.Nm != nil {
		validation.ValidateLength(*a.Nm, "Nm", 1, 70, validation.ChildPath(path, "Nm"), config, collector)
		validation.ValidatePattern(*a.Nm, "Nm", patternBasicText, validation.ChildPath(path, "Nm"), config, collector)
	}
	if a.Prxy != nil && config.ValidateOptionalFields {
		a.Prxy.Validate(validation.ChildPath(path, "Prxy"), config, collector)
	}
}

// AccountIdentification4Choice identifies an account by IBAN or under a
// proprietary scheme.
type AccountIdentification4Choice struct {
	IBAN *string                        `xml:"IBAN,omitempty" json:"IBAN,omitempty"`
	Othr *GenericAccountIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (a *AccountIdentification4Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if a.IBAN != nil {
		validation.ValidatePattern(*a.IBAN, "IBAN", patternIBAN, validation.ChildPath(path, "IBAN"), config, collector)
	}
	if a.Othr != nil && config.ValidateOptionalFields {
		a.Othr.Validate(validation.ChildPath(path, "Othr"), config, collector)
	}
}

// GenericAccountIdentification1 is an account identification under a named
// scheme.
type GenericAccountIdentification1 struct {
	Id      string                    `xml:"Id" json:"Id"`
	SchmeNm *AccountSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *string                   `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericAccountIdentification1) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	validation.ValidateLength(g.Id, "Id", 1, 34, validation.ChildPath(path, "Id"), config, collector)
	validation.ValidatePattern(g.Id, "Id", patternRestrictedId, validation.ChildPath(path, "Id"), config, collector)
	if g.SchmeNm != nil && config.ValidateOptionalFields {
		g.SchmeNm.Validate(validation.ChildPath(path, "SchmeNm"), config, collector)
	}
	if g.Issr != nil {
		validation.ValidateLength(*g.Issr, "Issr", 1, 35, validation.ChildPath(path, "Issr"), config, collector)
		validation.ValidatePattern(*g.Issr, "Issr", patternBasicText, validation.ChildPath(path, "Issr"), config, collector)
	}
}

// AccountSchemeName1Choice names the account identification scheme.
type AccountSchemeName1Choice struct {
	Cd    *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (a *AccountSchemeName1Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if a.Cd != nil {
		validation.ValidateLength(*a.Cd, "Cd", 1, 4, validation.ChildPath(path, "Cd"), config, collector)
	}
	if a.Prtry != nil {
		validation.ValidateLength(*a.Prtry, "Prtry", 1, 35, validation.ChildPath(path, "Prtry"), config, collector)
		validation.ValidatePattern(*a.Prtry, "Prtry", patternBasicText, validation.ChildPath(path, "Prtry"), config, collector)
	}
}

// CashAccountType2Choice states the nature or use of the account.
type CashAccountType2Choice struct {
	Cd    *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *CashAccountType2Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if c.Cd != nil {
		validation.ValidateLength(*c.Cd, "Cd", 1, 4, validation.ChildPath(path, "Cd"), config, collector)
	}
	if c.Prtry != nil {
		validation.ValidateLength(*c.Prtry, "Prtry", 1, 35, validation.ChildPath(path, "Prtry"), config, collector)
		validation.ValidatePattern(*c.Prtry, "Prtry", patternBasicText, validation.ChildPath(path, "Prtry"), config, collector)
	}
}

// ProxyAccountIdentification1 is an alias of the account, such as an email
// address or mobile number.
type ProxyAccountIdentification1 struct {
	Tp *ProxyAccountType1Choice `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Id string                   `xml:"Id" json:"Id"`
}

func (p *ProxyAccountIdentification1) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if p.Tp != nil && config.ValidateOptionalFields {
		p.Tp.Validate(validation.ChildPath(path, "Tp"), config, collector)
	}
	validation.ValidateLength(p.Id, "Id", 1, 320, validation.ChildPath(path, "Id"), config, collector)
	validation.ValidatePattern(p.Id, "Id", patternExtendedText, validation.ChildPath(path, "Id"), config, collector)
}

// ProxyAccountType1Choice names the proxy scheme.
type ProxyAccountType1Choice struct {
	Cd    *string `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *string `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (p *ProxyAccountType1Choice) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if p.Cd != nil {
		validation.ValidateLength(*p.Cd, "Cd", 1, 4, validation.ChildPath(path, "Cd"), config, collector)
	}
	if p.Prtry != nil {
		validation.ValidateLength(*p.Prtry, "Prtry", 1, 35, validation.ChildPath(path, "Prtry"), config, collector)
		validation.ValidatePattern(*p.Prtry, "Prtry", patternBasicText, validation.ChildPath(path, "Prtry"), config, collector)
	}
}
