package match

import (
	"testing"

	"github.com/google/uuid"

	"github.com/opsfin/invoice-engine/internal/entity"
	"github.com/opsfin/invoice-engine/internal/rules"
)

func candidate(name, check string, active bool) Candidate {
	return Candidate{
		Supplier: &entity.Supplier{ID: uuid.New(), Name: name},
		Template: &entity.SupplierTemplate{
			ID:     uuid.New(),
			Active: active,
			Rules:  rules.Bundle{Check: check},
		},
	}
}

func TestMatchFirstWins(t *testing.T) {
	m := NewMatcher(nil)
	first := candidate("Acme", "acme ltd", true)
	second := candidate("Acme Clone", "acme", true)

	got, ok := m.Match("Invoice from ACME Ltd", []Candidate{first, second})
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Supplier.ID != first.Supplier.ID {
		t.Errorf("matched %s, want first candidate", got.Supplier.Name)
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	m := NewMatcher(nil)
	c := candidate("Acme", "ACME LTD", true)

	if _, ok := m.Match("invoice from acme ltd, thanks", []Candidate{c}); !ok {
		t.Fatal("expected case-insensitive match")
	}
}

func TestMatchAnywhereInText(t *testing.T) {
	m := NewMatcher(nil)
	c := candidate("Acme", "acme", true)

	text := "page 1\npage 2\nsomewhere deep: Acme Widgets\npage 3"
	if _, ok := m.Match(text, []Candidate{c}); !ok {
		t.Fatal("check pattern should match anywhere in the blob")
	}
}

func TestMatchNone(t *testing.T) {
	m := NewMatcher(nil)
	c := candidate("Acme", "acme", true)

	if _, ok := m.Match("invoice from Globex", []Candidate{c}); ok {
		t.Fatal("expected no match")
	}
	if _, ok := m.Match("anything", nil); ok {
		t.Fatal("expected no match with zero candidates")
	}
}

func TestMatchSkipsInactiveAndBroken(t *testing.T) {
	m := NewMatcher(nil)
	inactive := candidate("Inactive", "acme", false)
	broken := candidate("Broken", "([unclosed", true)
	blank := candidate("Blank", "", true)
	good := candidate("Good", "acme", true)

	got, ok := m.Match("ACME invoice", []Candidate{inactive, broken, blank, good})
	if !ok {
		t.Fatal("expected the good candidate to match")
	}
	if got.Supplier.ID != good.Supplier.ID {
		t.Errorf("matched %s, want Good", got.Supplier.Name)
	}
}

func TestMatchNilTemplate(t *testing.T) {
	m := NewMatcher(nil)
	c := Candidate{Supplier: &entity.Supplier{ID: uuid.New()}}

	if _, ok := m.Match("anything", []Candidate{c}); ok {
		t.Fatal("candidate without a template must not match")
	}
}
