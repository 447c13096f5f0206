package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Bundle is the fixed set of extraction patterns for one supplier template.
// All four patterns are required for a template to be approvable; the
// extractor still degrades gracefully when a pattern is blank so that rows
// created before validation existed keep working.
type Bundle struct {
	Check         string `json:"check"`        // supplier detection pattern
	InvoiceNumber string `json:"inv_no"`       // exactly one capture group
	Total         string `json:"total"`        // exactly one capture group
	LinePattern   string `json:"line_pattern"` // description, quantity, unit price
}

// BuildBundleJSONSchema returns the JSON-Schema the rule bundle is validated
// against at template creation time.
func BuildBundleJSONSchema() map[string]any {
	pattern := map[string]any{"type": "string", "minLength": 1}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"check":        pattern,
			"inv_no":       pattern,
			"total":        pattern,
			"line_pattern": pattern,
		},
		"required": []string{"check", "inv_no", "total", "line_pattern"},
	}
}

// ValidateJSON validates raw bundle JSON against the bundle schema.
func ValidateJSON(raw []byte) error {
	b, err := json.Marshal(BuildBundleJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("bundle.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("bundle.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal bundle: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("bundle does not match schema: %w", err)
	}
	return nil
}

// Parse validates raw JSON against the schema, decodes it, and checks that
// every pattern compiles with the expected capture-group arity. Templates are
// rejected here, at creation, rather than failing at match time.
func Parse(raw []byte) (Bundle, error) {
	if err := ValidateJSON(raw); err != nil {
		return Bundle{}, err
	}
	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return Bundle{}, fmt.Errorf("decode bundle: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

// Complete requires all four patterns to be present and valid. Template
// creation goes through this; the extractor alone tolerates blanks.
func (b Bundle) Complete() error {
	for name, p := range map[string]string{
		"check":        b.Check,
		"inv_no":       b.InvoiceNumber,
		"total":        b.Total,
		"line_pattern": b.LinePattern,
	} {
		if p == "" {
			return fmt.Errorf("%s pattern is required", name)
		}
	}
	return b.Validate()
}

// Validate checks that every pattern compiles and captures the right number
// of groups.
func (b Bundle) Validate() error {
	if err := checkPattern("check", b.Check, -1); err != nil {
		return err
	}
	if err := checkPattern("inv_no", b.InvoiceNumber, 1); err != nil {
		return err
	}
	if err := checkPattern("total", b.Total, 1); err != nil {
		return err
	}
	return checkPattern("line_pattern", b.LinePattern, 3)
}

// checkPattern compiles pattern and, when groups >= 0, requires exactly that
// many capture groups.
func checkPattern(name, pattern string, groups int) error {
	if pattern == "" {
		return nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("%s pattern does not compile: %w", name, err)
	}
	if groups >= 0 && re.NumSubexp() != groups {
		return fmt.Errorf("%s pattern must have exactly %d capture group(s), has %d", name, groups, re.NumSubexp())
	}
	return nil
}
