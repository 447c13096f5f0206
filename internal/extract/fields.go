package extract

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/opsfin/invoice-engine/constants"
	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/rules"
)

// Config holds the flat tax rate applied to extracted nets. The rate is used
// as configured; a zero rate means no tax. DefaultConfig supplies the
// standard 0.20.
type Config struct {
	TaxRate decimal.Decimal
}

func DefaultConfig() Config {
	return Config{TaxRate: decimal.RequireFromString("0.20")}
}

// LineItem is one extracted line with its exact computed total.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// Result is the structured output of applying a rule bundle to document text.
type Result struct {
	ExternalReference string
	DeclaredGross     *decimal.Decimal // nil when the total pattern found nothing
	Lines             []LineItem
	Net               decimal.Decimal
	Tax               decimal.Decimal
	Gross             decimal.Decimal
}

// Extractor applies a template's patterns to text. It is a pure function of
// (text, bundle); identical inputs produce identical results.
type Extractor struct {
	cfg    Config
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, logger: logger}
}

// Extract parses the invoice number, declared total and line items out of
// text. Absent patterns disable their step ("not found" rather than error);
// patterns that do not compile or that capture non-decimal values surface as
// ErrMalformedRule.
func (e *Extractor) Extract(text string, b rules.Bundle) (Result, error) {
	invoiceNo, _, err := firstCapture("inv_no", b.InvoiceNumber, text)
	if err != nil {
		return Result{}, err
	}
	if invoiceNo == "" {
		invoiceNo = constants.UnknownReference
	}

	declaredRaw, declaredFound, err := firstCapture("total", b.Total, text)
	if err != nil {
		return Result{}, err
	}
	var declared *decimal.Decimal
	if declaredFound {
		d, err := decimal.NewFromString(declaredRaw)
		if err != nil {
			return Result{}, fmt.Errorf("%w: total pattern captured non-decimal %q", common.ErrMalformedRule, declaredRaw)
		}
		declared = &d
	}

	lines, err := e.extractLines(text, b.LinePattern)
	if err != nil {
		return Result{}, err
	}

	net := decimal.Zero
	for _, l := range lines {
		net = net.Add(l.LineTotal)
	}
	tax := net.Mul(e.cfg.TaxRate)
	gross := net.Add(tax)

	if declared != nil && len(lines) == 0 {
		// a declared total with zero extracted lines usually means the line
		// pattern no longer fits the document layout
		e.logger.Warn("declared total present but no line items extracted",
			"declared_gross", declared.String(),
		)
	}

	return Result{
		ExternalReference: invoiceNo,
		DeclaredGross:     declared,
		Lines:             lines,
		Net:               net,
		Tax:               tax,
		Gross:             gross,
	}, nil
}

func (e *Extractor) extractLines(text, pattern string) ([]LineItem, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: line_pattern does not compile: %v", common.ErrMalformedRule, err)
	}
	matches := re.FindAllStringSubmatch(text, -1)
	lines := make([]LineItem, 0, len(matches))
	for _, m := range matches {
		if len(m) < 4 {
			return nil, fmt.Errorf("%w: line_pattern must capture description, quantity and unit price", common.ErrMalformedRule)
		}
		qty, err := decimal.NewFromString(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line_pattern captured non-decimal quantity %q", common.ErrMalformedRule, m[2])
		}
		price, err := decimal.NewFromString(m[3])
		if err != nil {
			return nil, fmt.Errorf("%w: line_pattern captured non-decimal unit price %q", common.ErrMalformedRule, m[3])
		}
		lines = append(lines, LineItem{
			Description: strings.TrimSpace(m[1]),
			Quantity:    qty,
			UnitPrice:   price,
			LineTotal:   qty.Mul(price),
		})
	}
	return lines, nil
}

// firstCapture returns the first capture group of pattern in text. A blank
// pattern disables the step; found reports whether anything matched.
func firstCapture(name, pattern, text string) (value string, found bool, err error) {
	if pattern == "" {
		return "", false, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", false, fmt.Errorf("%w: %s pattern does not compile: %v", common.ErrMalformedRule, name, err)
	}
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false, nil
	}
	return m[1], true, nil
}
