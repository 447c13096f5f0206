package rules

import (
	"strings"
	"testing"
)

func validBundleJSON() string {
	return `{
		"check": "ACME Ltd",
		"inv_no": "Invoice No[.:]?\\s*(\\S+)",
		"total": "Total Due[.:]?\\s*([0-9.]+)",
		"line_pattern": "(?m)^(.{1,40}?)\\s+(\\d+)\\s+x\\s+([0-9.]+)$"
	}`
}

func TestParseValidBundle(t *testing.T) {
	b, err := Parse([]byte(validBundleJSON()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.Check != "ACME Ltd" {
		t.Errorf("check = %q", b.Check)
	}
	if b.InvoiceNumber == "" || b.Total == "" || b.LinePattern == "" {
		t.Errorf("bundle missing fields: %+v", b)
	}
}

func TestParseRejectsMissingField(t *testing.T) {
	raw := `{"check": "ACME", "inv_no": "No (\\S+)", "total": "Total ([0-9.]+)"}`
	if _, err := Parse([]byte(raw)); err == nil {
		t.Fatal("expected error for missing line_pattern")
	}
}

func TestParseRejectsUnknownField(t *testing.T) {
	raw := `{
		"check": "ACME",
		"inv_no": "No (\\S+)",
		"total": "Total ([0-9.]+)",
		"line_pattern": "(.+) (\\d+) ([0-9.]+)",
		"extra": "nope"
	}`
	if _, err := Parse([]byte(raw)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestParseRejectsEmptyPattern(t *testing.T) {
	raw := `{"check": "", "inv_no": "No (\\S+)", "total": "Total ([0-9.]+)", "line_pattern": "(.+) (\\d+) ([0-9.]+)"}`
	if _, err := Parse([]byte(raw)); err == nil {
		t.Fatal("expected error for empty check pattern")
	}
}

func TestParseRejectsNonJSON(t *testing.T) {
	if _, err := Parse([]byte("not json at all")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateGroupArity(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Bundle)
		wantErr string
	}{
		{
			name:    "inv_no needs one group",
			mutate:  func(b *Bundle) { b.InvoiceNumber = `Invoice No \S+` },
			wantErr: "inv_no",
		},
		{
			name:    "inv_no too many groups",
			mutate:  func(b *Bundle) { b.InvoiceNumber = `Invoice (No) (\S+)` },
			wantErr: "inv_no",
		},
		{
			name:    "total needs one group",
			mutate:  func(b *Bundle) { b.Total = `Total Due [0-9.]+` },
			wantErr: "total",
		},
		{
			name:    "line_pattern needs three groups",
			mutate:  func(b *Bundle) { b.LinePattern = `(.+) (\d+)` },
			wantErr: "line_pattern",
		},
		{
			name:    "check does not compile",
			mutate:  func(b *Bundle) { b.Check = `([unclosed` },
			wantErr: "check",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse([]byte(validBundleJSON()))
			if err != nil {
				t.Fatalf("Parse baseline: %v", err)
			}
			tt.mutate(&b)
			err = b.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateToleratesBlanks(t *testing.T) {
	// blanks are legal at validation; only Complete requires all four
	var b Bundle
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate on empty bundle: %v", err)
	}
	if err := b.Complete(); err == nil {
		t.Fatal("Complete should reject an empty bundle")
	}
}

func TestCompleteAcceptsValidBundle(t *testing.T) {
	b, err := Parse([]byte(validBundleJSON()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := b.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
}
