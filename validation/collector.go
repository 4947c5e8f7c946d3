package validation

// ErrorCollector accumulates validation diagnostics during one traversal of a
// message tree. It is created empty, threaded through the recursive Validate
// calls, and inspected once validation returns. A collector must not be shared
// between concurrent validation runs.
type ErrorCollector struct {
	errs     Errors
	critical bool
}

// NewErrorCollector returns an empty collector.
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{}
}

// Add appends a diagnostic.
func (c *ErrorCollector) Add(err ValidationError) {
	c.errs = append(c.errs, err)
}

// AddCritical appends a diagnostic and marks the collection as carrying a
// critical failure (missing required element, unknown variant, unusable
// pattern). Critical diagnostics travel the same channel as ordinary ones;
// the flag only lets callers distinguish structural breakage from field-level
// violations.
func (c *ErrorCollector) AddCritical(err ValidationError) {
	c.critical = true
	c.errs = append(c.errs, err)
}

// HasErrors reports whether any diagnostic was recorded.
func (c *ErrorCollector) HasErrors() bool {
	return len(c.errs) > 0
}

// HasCriticalErrors reports whether any critical diagnostic was recorded.
func (c *ErrorCollector) HasCriticalErrors() bool {
	return c.critical
}

// Len returns the number of recorded diagnostics.
func (c *ErrorCollector) Len() int {
	return len(c.errs)
}

// Errors returns a snapshot of the recorded diagnostics in insertion order.
func (c *ErrorCollector) Errors() Errors {
	out := make(Errors, len(c.errs))
	copy(out, c.errs)
	return out
}
