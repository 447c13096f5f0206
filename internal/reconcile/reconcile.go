package reconcile

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/opsfin/invoice-engine/constants"
)

// Config holds the tolerance bands, in the same currency unit as the totals.
// The bands are used as configured; a zero tolerance flags any discrepancy.
// DefaultConfig supplies the standard 0.01/0.05.
type Config struct {
	WarnTolerance decimal.Decimal
	FailTolerance decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		WarnTolerance: decimal.RequireFromString("0.01"),
		FailTolerance: decimal.RequireFromString("0.05"),
	}
}

// Outcome is the tolerance-banded classification of one extraction.
type Outcome struct {
	Status constants.RunStatus
	Notes  string
}

// Reconciler compares computed against declared gross totals. Pure; safe for
// concurrent use.
type Reconciler struct {
	cfg Config
}

func NewReconciler(cfg Config) *Reconciler {
	return &Reconciler{cfg: cfg}
}

// Classify maps |declared - computed| onto a status. Boundary values belong
// to the lower-severity band. A missing declared total is a SUCCESS: there is
// nothing to reconcile against.
func (r *Reconciler) Classify(computed decimal.Decimal, declared *decimal.Decimal) Outcome {
	if declared == nil {
		return Outcome{Status: constants.RunSuccess}
	}
	diff := declared.Sub(computed).Abs()
	switch {
	case diff.GreaterThan(r.cfg.FailTolerance):
		return Outcome{
			Status: constants.RunFailed,
			Notes:  fmt.Sprintf("declared gross mismatch: %s", diff),
		}
	case diff.GreaterThan(r.cfg.WarnTolerance):
		return Outcome{
			Status: constants.RunWarning,
			Notes:  fmt.Sprintf("minor gross discrepancy: %s", diff),
		}
	default:
		return Outcome{Status: constants.RunSuccess}
	}
}
