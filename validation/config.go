package validation

// ParserConfig controls validation behavior. A config is read-only during a
// pass; the same value may be reused across runs and shared between
// goroutines.
type ParserConfig struct {
	// FailFast stops at the first violation instead of collecting all of them.
	FailFast bool `json:"fail_fast" yaml:"fail_fast"`
	// ValidateOptionalFields recurses into optional sub-structures. When
	// false, absent-or-present optional children are skipped; mandatory
	// children are always validated.
	ValidateOptionalFields bool `json:"validate_optional_fields" yaml:"validate_optional_fields"`
	// CollectAllErrors keeps traversing even when the structure is already
	// known to be broken.
	CollectAllErrors bool `json:"collect_all_errors" yaml:"collect_all_errors"`
}

// DefaultParserConfig collects every violation in one pass, optional
// sub-structures included.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		FailFast:               false,
		ValidateOptionalFields: true,
		CollectAllErrors:       true,
	}
}

// FailFastConfig stops at the first violation.
func FailFastConfig() ParserConfig {
	return ParserConfig{
		FailFast:               true,
		ValidateOptionalFields: true,
		CollectAllErrors:       false,
	}
}

// LenientConfig skips optional sub-structures entirely.
func LenientConfig() ParserConfig {
	return ParserConfig{
		FailFast:               false,
		ValidateOptionalFields: false,
		CollectAllErrors:       false,
	}
}
