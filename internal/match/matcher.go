package match

import (
	"log/slog"
	"regexp"

	"github.com/opsfin/invoice-engine/internal/entity"
)

// Candidate pairs a supplier with its single active template. Candidates are
// supplied already ordered (suppliers by created_at, then id); the matcher
// does not reorder them.
type Candidate struct {
	Supplier *entity.Supplier
	Template *entity.SupplierTemplate
}

// Match is the resolved (supplier, template) pair for a document.
type Match struct {
	Supplier *entity.Supplier
	Template *entity.SupplierTemplate
}

type Matcher struct {
	logger *slog.Logger
}

func NewMatcher(logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{logger: logger}
}

// Match returns the first candidate whose check pattern matches the text,
// searched case-insensitively anywhere in the blob. Candidates with a blank
// or non-compiling check pattern are skipped so one bad template cannot take
// the whole matching pass down. Additional matching candidates are logged:
// first match wins, but the ambiguity should be visible to operators.
func (m *Matcher) Match(text string, candidates []Candidate) (Match, bool) {
	var found *Match
	for _, c := range candidates {
		if c.Template == nil || !c.Template.Active {
			continue
		}
		check := c.Template.Rules.Check
		if check == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + check)
		if err != nil {
			m.logger.Warn("skipping template with malformed check pattern",
				"supplier_id", c.Supplier.ID,
				"template_id", c.Template.ID,
				"error", err,
			)
			continue
		}
		if !re.MatchString(text) {
			continue
		}
		if found == nil {
			found = &Match{Supplier: c.Supplier, Template: c.Template}
			continue
		}
		m.logger.Warn("additional supplier also matches document; first match wins",
			"selected_supplier_id", found.Supplier.ID,
			"also_matched_supplier_id", c.Supplier.ID,
			"also_matched_template_id", c.Template.ID,
		)
	}
	if found == nil {
		return Match{}, false
	}
	return *found, true
}
