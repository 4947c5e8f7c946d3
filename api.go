package mxmessage

import "github.com/finwire/mxmessage/validation"

// Aliases re-exporting the validation engine at the module root, so common
// use needs a single import.
type (
	ParserConfig    = validation.ParserConfig
	ErrorCollector  = validation.ErrorCollector
	ValidationError = validation.ValidationError
	Errors          = validation.Errors
	Validator       = validation.Validator
)

const (
	CodeTooShort    = validation.CodeTooShort
	CodeTooLong     = validation.CodeTooLong
	CodeRequired    = validation.CodeRequired
	CodePattern     = validation.CodePattern
	CodeSampleError = validation.CodeSampleError
	CodeScenario    = validation.CodeScenario
	CodeUnknownType = validation.CodeUnknownType
)

// DefaultParserConfig validates everything and collects all errors.
func DefaultParserConfig() ParserConfig { return validation.DefaultParserConfig() }

// FailFastConfig stops at the first violation.
func FailFastConfig() ParserConfig { return validation.FailFastConfig() }

// LenientConfig skips constraints on optional fields.
func LenientConfig() ParserConfig { return validation.LenientConfig() }

// NewErrorCollector returns an empty collector.
func NewErrorCollector() *ErrorCollector { return validation.NewErrorCollector() }
