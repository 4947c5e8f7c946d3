package pacs008

import "github.com/finwire/mxmessage/validation"

// Code sets below are closed enumerations on the wire. Membership is
// guaranteed by the deserializer, so their Validate methods are no-ops.

// SettlementMethod1Code states how the interbank amount is settled.
type SettlementMethod1Code string

const (
	SettlementMethodINDA SettlementMethod1Code = "INDA"
	SettlementMethodINGA SettlementMethod1Code = "INGA"
	SettlementMethodCOVE SettlementMethod1Code = "COVE"
)

func (c SettlementMethod1Code) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}

// ChargeBearerType1Code states which party bears the transaction charges.
type ChargeBearerType1Code string

const (
	ChargeBearerDEBT ChargeBearerType1Code = "DEBT"
	ChargeBearerCRED ChargeBearerType1Code = "CRED"
	ChargeBearerSHAR ChargeBearerType1Code = "SHAR"
)

func (c ChargeBearerType1Code) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
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

// Instruction3Code is a coded instruction for the creditor agent.
type Instruction3Code string

const (
	InstructionCHQB Instruction3Code = "CHQB"
	InstructionHOLD Instruction3Code = "HOLD"
	InstructionPHOB Instruction3Code = "PHOB"
	InstructionTELB Instruction3Code = "TELB"
)

func (c Instruction3Code) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}

// RegulatoryReportingType1Code states which side the regulatory information
// applies to.
type RegulatoryReportingType1Code string

const (
	RegulatoryReportingCRED RegulatoryReportingType1Code = "CRED"
	RegulatoryReportingDEBT RegulatoryReportingType1Code = "DEBT"
	RegulatoryReportingBOTH RegulatoryReportingType1Code = "BOTH"
)

func (c RegulatoryReportingType1Code) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}

// RemittanceLocationMethod2Code is the delivery channel for remittance
// advice.
type RemittanceLocationMethod2Code string

const (
	RemittanceLocationFAXI RemittanceLocationMethod2Code = "FAXI"
	RemittanceLocationEDIC RemittanceLocationMethod2Code = "EDIC"
	RemittanceLocationURID RemittanceLocationMethod2Code = "URID"
	RemittanceLocationEMAL RemittanceLocationMethod2Code = "EMAL"
	RemittanceLocationPOST RemittanceLocationMethod2Code = "POST"
	RemittanceLocationSMSM RemittanceLocationMethod2Code = "SMSM"
)

func (c RemittanceLocationMethod2Code) Validate(path string, config *validation.ParserConfig, collector *validation.ErrorCollector) {
}
