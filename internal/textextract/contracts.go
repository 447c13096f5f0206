package textextract

import (
	"context"
	"time"
)

// TextExtractor is the document-to-text collaborator: file -> plain text.
// The engine only requires the text blob; layout is not preserved.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (Result, error)
}

type Result struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "plain-text"
	Duration time.Duration
	Warnings []string
}
