package extract

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/opsfin/invoice-engine/constants"
	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/rules"
)

const sampleInvoice = `ACME Ltd
Invoice No: INV-2024-001

  Widget     2 x 10.00
  Gadget     1 x 5.00
  Part       5 x 1.00

Total Due: 36.00
`

func sampleBundle() rules.Bundle {
	return rules.Bundle{
		Check:         `acme`,
		InvoiceNumber: `Invoice No:\s*(\S+)`,
		Total:         `Total Due:\s*([0-9.]+)`,
		LinePattern:   `(?m)^\s+(.{1,40}?)\s+(\d+) x ([0-9.]+)$`,
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestExtractComputesExactTotals(t *testing.T) {
	e := NewExtractor(DefaultConfig(), nil)

	res, err := e.Extract(sampleInvoice, sampleBundle())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if res.ExternalReference != "INV-2024-001" {
		t.Errorf("reference = %q", res.ExternalReference)
	}
	if len(res.Lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(res.Lines))
	}
	if got := res.Lines[0]; got.Description != "Widget" || !got.LineTotal.Equal(dec("20.00")) {
		t.Errorf("line 0 = %q total %s", got.Description, got.LineTotal)
	}
	if !res.Net.Equal(dec("30.00")) {
		t.Errorf("net = %s, want 30.00", res.Net)
	}
	if !res.Tax.Equal(dec("6.00")) {
		t.Errorf("tax = %s, want 6.00", res.Tax)
	}
	if !res.Gross.Equal(dec("36.00")) {
		t.Errorf("gross = %s, want 36.00", res.Gross)
	}
	if res.DeclaredGross == nil || !res.DeclaredGross.Equal(dec("36.00")) {
		t.Errorf("declared = %v, want 36.00", res.DeclaredGross)
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	e := NewExtractor(DefaultConfig(), nil)

	a, err := e.Extract(sampleInvoice, sampleBundle())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	b, err := e.Extract(sampleInvoice, sampleBundle())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !a.Gross.Equal(b.Gross) || a.ExternalReference != b.ExternalReference || len(a.Lines) != len(b.Lines) {
		t.Errorf("identical inputs produced different results: %+v vs %+v", a, b)
	}
}

func TestExtractMissingInvoiceNumber(t *testing.T) {
	e := NewExtractor(DefaultConfig(), nil)
	b := sampleBundle()
	b.InvoiceNumber = `Reference:\s*(\S+)` // not present in the text

	res, err := e.Extract(sampleInvoice, b)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.ExternalReference != constants.UnknownReference {
		t.Errorf("reference = %q, want %q", res.ExternalReference, constants.UnknownReference)
	}
}

func TestExtractMissingDeclaredTotal(t *testing.T) {
	e := NewExtractor(DefaultConfig(), nil)
	b := sampleBundle()
	b.Total = `Amount Payable:\s*([0-9.]+)`

	res, err := e.Extract(sampleInvoice, b)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.DeclaredGross != nil {
		t.Errorf("declared = %s, want nil", res.DeclaredGross)
	}
	if !res.Gross.Equal(dec("36.00")) {
		t.Errorf("gross should still be computed, got %s", res.Gross)
	}
}

func TestExtractZeroLines(t *testing.T) {
	e := NewExtractor(DefaultConfig(), nil)
	b := sampleBundle()
	b.LinePattern = `(?m)^ITEM (.+) QTY (\d+) PRICE ([0-9.]+)$`

	res, err := e.Extract(sampleInvoice, b)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(res.Lines) != 0 {
		t.Fatalf("lines = %d, want 0", len(res.Lines))
	}
	if !res.Net.IsZero() || !res.Gross.IsZero() {
		t.Errorf("net/gross = %s/%s, want zero", res.Net, res.Gross)
	}
	// declared stays populated so reconciliation can still flag the mismatch
	if res.DeclaredGross == nil {
		t.Error("declared should survive zero extracted lines")
	}
}

func TestExtractTrimsDescriptions(t *testing.T) {
	e := NewExtractor(DefaultConfig(), nil)
	b := sampleBundle()

	res, err := e.Extract(sampleInvoice, b)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for _, l := range res.Lines {
		if l.Description != "" && (l.Description[0] == ' ' || l.Description[len(l.Description)-1] == ' ') {
			t.Errorf("description %q not trimmed", l.Description)
		}
	}
}

func TestExtractMalformedPatterns(t *testing.T) {
	e := NewExtractor(DefaultConfig(), nil)

	tests := []struct {
		name   string
		mutate func(*rules.Bundle)
	}{
		{"inv_no does not compile", func(b *rules.Bundle) { b.InvoiceNumber = `([unclosed` }},
		{"total does not compile", func(b *rules.Bundle) { b.Total = `([unclosed` }},
		{"line_pattern does not compile", func(b *rules.Bundle) { b.LinePattern = `([unclosed` }},
		{"total captures non-decimal", func(b *rules.Bundle) { b.Total = `Total Due(:)` }},
		{"quantity captures non-decimal", func(b *rules.Bundle) {
			b.LinePattern = `(?m)^\s+()(\S+)\s+\d+ x ([0-9.]+)$`
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sampleBundle()
			tt.mutate(&b)
			_, err := e.Extract(sampleInvoice, b)
			if !errors.Is(err, common.ErrMalformedRule) {
				t.Fatalf("err = %v, want ErrMalformedRule", err)
			}
		})
	}
}

func TestExtractZeroTaxRate(t *testing.T) {
	// a configured zero rate is a real no-tax deployment, not "unset"
	e := NewExtractor(Config{TaxRate: decimal.Zero}, nil)

	res, err := e.Extract(sampleInvoice, sampleBundle())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !res.Tax.IsZero() {
		t.Errorf("tax = %s, want 0 with zero rate", res.Tax)
	}
	if !res.Gross.Equal(res.Net) {
		t.Errorf("gross = %s, want equal to net %s", res.Gross, res.Net)
	}
}

func TestExtractCustomTaxRate(t *testing.T) {
	e := NewExtractor(Config{TaxRate: dec("0.10")}, nil)

	res, err := e.Extract(sampleInvoice, sampleBundle())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !res.Tax.Equal(dec("3.00")) {
		t.Errorf("tax = %s, want 3.00 at 10%%", res.Tax)
	}
	if !res.Gross.Equal(dec("33.00")) {
		t.Errorf("gross = %s, want 33.00", res.Gross)
	}
}
