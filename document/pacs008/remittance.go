package pacs008

import "github.com/finwire/mxmessage/validation"

// InstructionForCreditorAgent1 carries a coded or free-text instruction for
// the creditor agent.
type InstructionForCreditorAgent1 struct {
	Cd       *Instruction3Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	InstrInf *string           `xml:"InstrInf,omitempty" json:"InstrInf,omitempty"`
}

func (i *InstructionForCreditorAgent1) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
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

// RegulatoryReporting3 carries regulatory reporting details demanded by a
// national authority.
type RegulatoryReporting3 struct {
	DbtCdtRptgInd *RegulatoryReportingType1Code    `xml:"DbtCdtRptgInd,omitempty" json:"DbtCdtRptgInd,omitempty"`
	Authrty       *RegulatoryAuthority2            `xml:"Authrty,omitempty" json:"Authrty,omitempty"`
	Dtls          []StructuredRegulatoryReporting3 `xml:"Dtls,omitempty" json:"Dtls,omitempty"`
}

func (r *RegulatoryReporting3) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if !config.ValidateOptionalFields {
		return
	}
	if r.DbtCdtRptgInd != nil {
		r.DbtCdtRptgInd.Validate(validation.ChildPath(path, "DbtCdtRptgInd"), config, collector)
	}
	if r.Authrty != nil {
		r.Authrty.Validate(validation.ChildPath(path, "Authrty"), config, collector)
	}
	for i := range r.Dtls {
		r.Dtls[i].Validate(validation.ChildPath(path, "Dtls"), config, collector)
	}
}

// RegulatoryAuthority2 names the requesting authority.
type RegulatoryAuthority2 struct {
	Nm   *string `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Ctry *string `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
}

func (r *RegulatoryAuthority2) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if r.Nm != nil {
		validation.ValidateLength(*r.Nm, "Nm", 1, 140, validation.ChildPath(path, "Nm"), config, collector)
		validation.ValidatePattern(*r.Nm, "Nm", patternBasicText, validation.ChildPath(path, "Nm"), config, collector)
	}
	if r.Ctry != nil {
		validation.ValidatePattern(*r.Ctry, "Ctry", patternCountry, validation.ChildPath(path, "Ctry"), config, collector)
	}
}

// StructuredRegulatoryReporting3 is one regulatory reporting line.
type StructuredRegulatoryReporting3 struct {
	Tp   *string                  `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Dt   *string                  `xml:"Dt,omitempty" json:"Dt,omitempty"`
	Ctry *string                  `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
	Cd   *string                  `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Amt  *ActiveCurrencyAndAmount `xml:"Amt,omitempty" json:"Amt,omitempty"`
	Inf  []string                 `xml:"Inf,omitempty" json:"Inf,omitempty"`
}

func (s *StructuredRegulatoryReporting3) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if s.Tp != nil {
		validation.ValidateLength(*s.Tp, "Tp", 1, 35, validation.ChildPath(path, "Tp"), config, collector)
		validation.ValidatePattern(*s.Tp, "Tp", patternBasicText, validation.ChildPath(path, "Tp"), config, collector)
	}
	if s.Ctry != nil {
		validation.ValidatePattern(*s.Ctry, "Ctry", patternCountry, validation.ChildPath(path, "Ctry"), config, collector)
	}
	if s.Cd != nil {
		validation.ValidateLength(*s.Cd, "Cd", 1, 10, validation.ChildPath(path, "Cd"), config, collector)
		validation.ValidatePattern(*s.Cd, "Cd", patternBasicText, validation.ChildPath(path, "Cd"), config, collector)
	}
	if s.Amt != nil && config.ValidateOptionalFields {
		s.Amt.Validate(validation.ChildPath(path, "Amt"), config, collector)
	}
	for _, item := range s.Inf {
		validation.ValidateLength(item, "Inf", 1, 35, validation.ChildPath(path, "Inf"), config, collector)
		validation.ValidatePattern(item, "Inf", patternBasicText, validation.ChildPath(path, "Inf"), config, collector)
	}
}

// RemittanceInformation16 carries unstructured remittance text used by the
// creditor to reconcile the payment.
type RemittanceInformation16 struct {
	Ustrd *string `xml:"Ustrd,omitempty" json:"Ustrd,omitempty"`
}

func (r *RemittanceInformation16) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if r.Ustrd != nil {
		validation.ValidateLength(*r.Ustrd, "Ustrd", 1, 140, validation.ChildPath(path, "Ustrd"), config, collector)
		validation.ValidatePattern(*r.Ustrd, "Ustrd", patternExtendedText, validation.ChildPath(path, "Ustrd"), config, collector)
	}
}

// RemittanceLocation7 points at where the remittance advice is delivered.
type RemittanceLocation7 struct {
	RmtId       *string                   `xml:"RmtId,omitempty" json:"RmtId,omitempty"`
	RmtLctnDtls []RemittanceLocationData1 `xml:"RmtLctnDtls,omitempty" json:"RmtLctnDtls,omitempty"`
}

func (r *RemittanceLocation7) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	if r.RmtId != nil {
		validation.ValidateLength(*r.RmtId, "RmtId", 1, 35, validation.ChildPath(path, "RmtId"), config, collector)
		validation.ValidatePattern(*r.RmtId, "RmtId", patternExtendedText, validation.ChildPath(path, "RmtId"), config, collector)
	}
	if config.ValidateOptionalFields {
		for i := range r.RmtLctnDtls {
			r.RmtLctnDtls[i].Validate(validation.ChildPath(path, "RmtLctnDtls"), config, collector)
		}
	}
}

// RemittanceLocationData1 is one delivery channel for the remittance advice.
type RemittanceLocationData1 struct {
	Mtd        RemittanceLocationMethod2Code `xml:"Mtd" json:"Mtd"`
	ElctrncAdr *string                       `xml:"ElctrncAdr,omitempty" json:"ElctrncAdr,omitempty"`
	PstlAdr    *NameAndAddress16             `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
}

func (r *RemittanceLocationData1) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
	r.Mtd.Validate(validation.ChildPath(path, "Mtd"), config, collector)
	if r.ElctrncAdr != nil {
		validation.ValidateLength(*r.ElctrncAdr, "ElctrncAdr", 1, 2048, validation.ChildPath(path, "ElctrncAdr"), config, collector)
		validation.ValidatePattern(*r.ElctrncAdr, "ElctrncAdr", patternExtendedText, validation.ChildPath(path, "ElctrncAdr"), config, collector)
	}
	if r.PstlAdr != nil && config.ValidateOptionalFields {
		r.PstlAdr.Validate(validation.ChildPath(path, "PstlAdr"), config, collector)
	}
}
