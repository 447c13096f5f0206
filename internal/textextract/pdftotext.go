package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/opsfin/invoice-engine/constants"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
}

// Extractor shells out to poppler's pdftotext for PDFs and reads plain-text
// files directly. Blank pages are skipped and pages are joined by a single
// newline.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("starting text extraction", "path", path, "ext", ext)

	switch ext {
	case "pdf":
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case "txt":
		b, err := os.ReadFile(path)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Text:     string(b),
			Pages:    1,
			Method:   "plain-text",
			Duration: time.Since(start),
		}, nil
	default:
		e.logger.Error("unsupported document extension", "extension", ext)
		return Result{}, fmt.Errorf("unsupported extension: %q", ext)
	}
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return Result{Warnings: []string{string(errb)}}, fmt.Errorf("pdftotext: %w", err)
	}

	// pdftotext emits a form-feed between pages
	pages := strings.Split(string(out), "\f")
	kept := make([]string, 0, len(pages))
	for _, p := range pages {
		if strings.TrimSpace(p) == "" {
			continue
		}
		kept = append(kept, strings.TrimRight(p, "\n"))
	}

	return Result{
		Text:   strings.Join(kept, "\n"),
		Pages:  len(pages),
		Method: "pdf-text",
	}, nil
}
