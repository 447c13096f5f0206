package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/opsfin/invoice-engine/constants"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestClassifyBands(t *testing.T) {
	r := NewReconciler(DefaultConfig())
	computed := dec("36.00")

	tests := []struct {
		name     string
		declared *decimal.Decimal
		want     constants.RunStatus
	}{
		{"no declared total", nil, constants.RunSuccess},
		{"exact match", decPtr("36.00"), constants.RunSuccess},
		{"diff at warn boundary", decPtr("36.01"), constants.RunSuccess},
		{"diff just over warn", decPtr("36.011"), constants.RunWarning},
		{"diff inside warning band", decPtr("36.03"), constants.RunWarning},
		{"diff at fail boundary", decPtr("36.05"), constants.RunWarning},
		{"diff just over fail", decPtr("36.051"), constants.RunFailed},
		{"gross mismatch", decPtr("40.00"), constants.RunFailed},
		{"negative diff same bands", decPtr("35.95"), constants.RunWarning},
		{"negative gross mismatch", decPtr("30.00"), constants.RunFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Classify(computed, tt.declared)
			if got.Status != tt.want {
				t.Errorf("status = %s, want %s", got.Status, tt.want)
			}
		})
	}
}

func TestClassifyNotes(t *testing.T) {
	r := NewReconciler(DefaultConfig())
	computed := dec("36.00")

	warn := r.Classify(computed, decPtr("36.03"))
	if warn.Notes != "minor gross discrepancy: 0.03" {
		t.Errorf("warning notes = %q", warn.Notes)
	}

	fail := r.Classify(computed, decPtr("40.00"))
	if fail.Notes != "declared gross mismatch: 4.00" {
		t.Errorf("failed notes = %q", fail.Notes)
	}

	ok := r.Classify(computed, decPtr("36.00"))
	if ok.Notes != "" {
		t.Errorf("success notes = %q, want empty", ok.Notes)
	}
}

func TestClassifyZeroTolerances(t *testing.T) {
	// zero tolerances are honored as configured, not replaced with defaults
	r := NewReconciler(Config{WarnTolerance: decimal.Zero, FailTolerance: dec("0.05")})
	computed := dec("36.00")

	if got := r.Classify(computed, decPtr("36.001")); got.Status != constants.RunWarning {
		t.Errorf("0.001 diff = %s, want WARNING with warn=0", got.Status)
	}
	if got := r.Classify(computed, decPtr("36.00")); got.Status != constants.RunSuccess {
		t.Errorf("exact match = %s, want SUCCESS", got.Status)
	}

	strict := NewReconciler(Config{})
	if got := strict.Classify(computed, decPtr("36.01")); got.Status != constants.RunFailed {
		t.Errorf("0.01 diff = %s, want FAILED with both bands at 0", got.Status)
	}
	if got := strict.Classify(computed, decPtr("36.00")); got.Status != constants.RunSuccess {
		t.Errorf("exact match = %s, want SUCCESS with both bands at 0", got.Status)
	}
}

func TestClassifyCustomTolerances(t *testing.T) {
	r := NewReconciler(Config{
		WarnTolerance: dec("0.50"),
		FailTolerance: dec("1.00"),
	})
	computed := dec("100.00")

	if got := r.Classify(computed, decPtr("100.40")); got.Status != constants.RunSuccess {
		t.Errorf("0.40 diff = %s, want SUCCESS with warn=0.50", got.Status)
	}
	if got := r.Classify(computed, decPtr("100.80")); got.Status != constants.RunWarning {
		t.Errorf("0.80 diff = %s, want WARNING", got.Status)
	}
	if got := r.Classify(computed, decPtr("101.50")); got.Status != constants.RunFailed {
		t.Errorf("1.50 diff = %s, want FAILED", got.Status)
	}
}
