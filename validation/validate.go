package validation

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// Validator is implemented by every schema node (struct or code type). A node
// validates its own directly-constrained fields, then recurses into each
// present child at its child path, honoring the config. Validate always
// returns; an empty collector afterwards is the sole success signal.
type Validator interface {
	Validate(path string, config *ParserConfig, collector *ErrorCollector)
}

// ChildPath concatenates a parent path and a field name with the fixed "."
// separator. The root path is the empty string.
func ChildPath(parent, field string) string {
	if parent == "" {
		return field
	}
	return parent + "." + field
}

// compiled-pattern cache; patterns are compiled once and shared read-only
// afterwards.
var (
	patternMu    sync.RWMutex
	patternCache = map[string]*regexp.Regexp{}
)

func compilePattern(pattern string) (*regexp.Regexp, error) {
	patternMu.RLock()
	if re, ok := patternCache[pattern]; ok {
		patternMu.RUnlock()
		return re, nil
	}
	patternMu.RUnlock()

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	patternMu.Lock()
	if prev, ok := patternCache[pattern]; ok { // double-check
		patternMu.Unlock()
		return prev, nil
	}
	patternCache[pattern] = re
	patternMu.Unlock()
	return re, nil
}

// ValidateLength checks the character count of value against the declared
// bounds. Counting is by Unicode code point, not byte length, matching the
// ISO20022 text-length semantics. A bound <= 0 means unbounded on that side.
// Returns false when a diagnostic was recorded.
func ValidateLength(value, field string, min, max int, path string, config *ParserConfig, collector *ErrorCollector) bool {
	valid := true
	n := utf8.RuneCountInString(value)

	if min > 0 && n < min {
		err := NewValidationError(
			CodeTooShort,
			fmt.Sprintf("%s is shorter than the minimum length of %d", field, min),
		).WithField(field).WithPath(path)

		if config.FailFast {
			collector.AddCritical(err)
			return false
		}
		collector.Add(err)
		valid = false
	}

	if max > 0 && n > max {
		err := NewValidationError(
			CodeTooLong,
			fmt.Sprintf("%s exceeds the maximum length of %d", field, max),
		).WithField(field).WithPath(path)

		if config.FailFast {
			collector.AddCritical(err)
			return false
		}
		collector.Add(err)
		valid = false
	}

	return valid
}

// ValidatePattern checks value against the declared ISO20022 format rule. The
// pattern string is used verbatim and is not anchored here; any anchoring
// intent lives in the declared pattern itself. The value is whitespace-trimmed
// before matching. Returns false when a diagnostic was recorded.
func ValidatePattern(value, field, pattern, path string, config *ParserConfig, collector *ErrorCollector) bool {
	trimmed := strings.TrimSpace(value)

	re, err := compilePattern(pattern)
	if err != nil {
		collector.AddCritical(NewValidationError(
			CodeUnknownType,
			fmt.Sprintf("invalid pattern for %s: %s", field, pattern),
		).WithField(field).WithPath(path))
		return false
	}

	if !re.MatchString(trimmed) {
		verr := NewValidationError(
			CodePattern,
			fmt.Sprintf("%s does not match the required pattern (value: '%s')", field, value),
		).WithField(field).WithPath(path)

		if config.FailFast {
			collector.AddCritical(verr)
		} else {
			collector.Add(verr)
		}
		return false
	}

	return true
}

// ValidateRequired records a critical diagnostic when a required element is
// absent. Present reports whether the element was set.
func ValidateRequired(present bool, field, path string, _ *ParserConfig, collector *ErrorCollector) bool {
	if !present {
		collector.AddCritical(NewValidationError(
			CodeRequired,
			fmt.Sprintf("%s is required", field),
		).WithField(field).WithPath(path))
		return false
	}
	return true
}
