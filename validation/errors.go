package validation

import (
	"fmt"
	"strings"
)

// Diagnostic codes (exported consts for IDE completion and type safety by
// convention). The numeric values are part of the wire-facing contract and
// match the CBPR+ schema library this catalog was generated from.
const (
	CodeTooShort    = 1001 // value shorter than the declared minimum length
	CodeTooLong     = 1002 // value longer than the declared maximum length
	CodeRequired    = 1003 // required element missing
	CodePattern     = 1005 // value does not match the declared pattern
	CodeSampleError = 9997 // sample generation failed
	CodeScenario    = 9998 // scenario file unreadable or malformed
	CodeUnknownType = 9999 // unknown/unsupported variant, or unusable pattern
)

// ValidationError is a single validation diagnostic. It is immutable once
// created; Field and Path locate the offending element inside the message
// tree (Path uses dot-separated element names, e.g. "GrpHdr.MsgId").
type ValidationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Path    string `json:"path,omitempty"`
}

// NewValidationError builds a diagnostic with the given code and message.
func NewValidationError(code int, message string) ValidationError {
	return ValidationError{Code: code, Message: message}
}

// WithField returns a copy carrying the offending field name.
func (e ValidationError) WithField(field string) ValidationError {
	e.Field = field
	return e
}

// WithPath returns a copy carrying the structural path of the offending field.
func (e ValidationError) WithPath(path string) ValidationError {
	e.Path = path
	return e
}

func (e ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%d at %s: %s", e.Code, e.Path, e.Message)
	}
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Errors is an ordered collection of validation diagnostics that implements
// error. Order reflects traversal order (pre-order, depth-first).
type Errors []ValidationError

// Error summarizes the first few diagnostics.
func (errs Errors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(errs)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		e := errs[i]
		fmt.Fprintf(b, "%d at %s", e.Code, e.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}
