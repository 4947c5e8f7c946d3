package validation_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/finwire/mxmessage/validation"
)

func TestChildPath(t *testing.T) {
	tests := []struct {
		parent, field, want string
	}{
		{"", "GrpHdr", "GrpHdr"},
		{"GrpHdr", "MsgId", "GrpHdr.MsgId"},
		{"Document.FIToFICstmrCdtTrf", "GrpHdr", "Document.FIToFICstmrCdtTrf.GrpHdr"},
	}
	for _, tt := range tests {
		if got := validation.ChildPath(tt.parent, tt.field); got != tt.want {
			t.Errorf("ChildPath(%q, %q) = %q, want %q", tt.parent, tt.field, got, tt.want)
		}
	}
}

func TestValidateLength(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		min, max int
		wantCode int
	}{
		{"within bounds", "MSG123456789", 1, 35, 0},
		{"empty below min", "", 1, 35, validation.CodeTooShort},
		{"over max", strings.Repeat("A", 36), 1, 35, validation.CodeTooLong},
		{"exactly max", strings.Repeat("A", 35), 1, 35, 0},
		{"exactly min", "A", 1, 35, 0},
		{"unbounded max", strings.Repeat("A", 500), 1, 0, 0},
		{"runes not bytes", strings.Repeat("é", 35), 1, 35, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validation.DefaultParserConfig()
			collector := validation.NewErrorCollector()
			ok := validation.ValidateLength(tt.value, "MsgId", tt.min, tt.max, "GrpHdr.MsgId", &cfg, collector)
			if tt.wantCode == 0 {
				if !ok || collector.HasErrors() {
					t.Fatalf("expected clean, got %v", collector.Errors())
				}
				return
			}
			if ok || collector.Len() != 1 {
				t.Fatalf("expected one diagnostic, got %v", collector.Errors())
			}
			e := collector.Errors()[0]
			if e.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", e.Code, tt.wantCode)
			}
			if e.Path != "GrpHdr.MsgId" {
				t.Errorf("path = %q, want GrpHdr.MsgId", e.Path)
			}
		})
	}
}

func TestValidatePattern(t *testing.T) {
	const bic = `[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`

	cfg := validation.DefaultParserConfig()

	t.Run("match", func(t *testing.T) {
		collector := validation.NewErrorCollector()
		if !validation.ValidatePattern("DEUTDEFF", "BICFI", bic, "InstgAgt.FinInstnId.BICFI", &cfg, collector) {
			t.Fatalf("expected match, got %v", collector.Errors())
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		collector := validation.NewErrorCollector()
		if validation.ValidatePattern("INVALID_BIC", "BICFI", bic, "InstgAgt.FinInstnId.BICFI", &cfg, collector) {
			t.Fatal("expected mismatch")
		}
		e := collector.Errors()[0]
		if e.Code != validation.CodePattern {
			t.Errorf("code = %d, want %d", e.Code, validation.CodePattern)
		}
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		collector := validation.NewErrorCollector()
		if !validation.ValidatePattern("  DEUTDEFF  ", "BICFI", bic, "", &cfg, collector) {
			t.Fatalf("expected match after trim, got %v", collector.Errors())
		}
	})

	t.Run("uncompilable pattern is critical", func(t *testing.T) {
		collector := validation.NewErrorCollector()
		if validation.ValidatePattern("x", "Fld", "[unclosed", "", &cfg, collector) {
			t.Fatal("expected failure")
		}
		if !collector.HasCriticalErrors() {
			t.Fatal("expected critical diagnostic")
		}
		if collector.Errors()[0].Code != validation.CodeUnknownType {
			t.Errorf("code = %d, want %d", collector.Errors()[0].Code, validation.CodeUnknownType)
		}
	})
}

func TestValidateRequired(t *testing.T) {
	cfg := validation.DefaultParserConfig()
	collector := validation.NewErrorCollector()
	if validation.ValidateRequired(false, "SttlmInf", "GrpHdr.SttlmInf", &cfg, collector) {
		t.Fatal("expected failure")
	}
	if !collector.HasCriticalErrors() {
		t.Fatal("missing required element must be critical")
	}
	if collector.Errors()[0].Code != validation.CodeRequired {
		t.Errorf("code = %d, want %d", collector.Errors()[0].Code, validation.CodeRequired)
	}
}

func TestFailFastMarksCritical(t *testing.T) {
	cfg := validation.FailFastConfig()
	collector := validation.NewErrorCollector()
	validation.ValidateLength("", "MsgId", 1, 35, "MsgId", &cfg, collector)
	if !collector.HasCriticalErrors() {
		t.Fatal("fail-fast diagnostics must be critical")
	}
}

func TestCollectorSnapshot(t *testing.T) {
	cfg := validation.DefaultParserConfig()
	collector := validation.NewErrorCollector()
	validation.ValidateLength("", "A", 1, 5, "A", &cfg, collector)
	snap := collector.Errors()
	validation.ValidateLength("", "B", 1, 5, "B", &cfg, collector)
	if len(snap) != 1 {
		t.Fatalf("snapshot mutated: %v", snap)
	}
	if collector.Len() != 2 {
		t.Fatalf("collector len = %d, want 2", collector.Len())
	}
}

func TestConcurrentPatternValidation(t *testing.T) {
	const pattern = `[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}`
	cfg := validation.DefaultParserConfig()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				collector := validation.NewErrorCollector()
				validation.ValidatePattern("7dd1ea19-8abc-4bcd-9abc-1234567890ab", "UETR", pattern, "", &cfg, collector)
				if collector.HasErrors() {
					t.Errorf("unexpected diagnostics: %v", collector.Errors())
					return
				}
			}
		}()
	}
	wg.Wait()
}
