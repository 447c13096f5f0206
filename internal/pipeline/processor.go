package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/entity"
	"github.com/opsfin/invoice-engine/internal/extract"
	"github.com/opsfin/invoice-engine/internal/match"
	"github.com/opsfin/invoice-engine/internal/reconcile"
	"github.com/opsfin/invoice-engine/internal/repository"
	"github.com/opsfin/invoice-engine/internal/textextract"
)

// CandidateSource lists each supplier's active template in matching order.
type CandidateSource interface {
	ListActiveCandidates(ctx context.Context) ([]match.Candidate, error)
}

// Recorder commits one processing attempt atomically.
type Recorder interface {
	Record(ctx context.Context, req *repository.RecordRequest) (*entity.Invoice, *entity.ProcessingRun, error)
}

// Result is the committed outcome of one document.
type Result struct {
	Supplier *entity.Supplier
	Template *entity.SupplierTemplate
	Invoice  *entity.Invoice
	Run      *entity.ProcessingRun
}

// Processor sequences match -> extract -> reconcile -> record for one
// document. It holds no cross-document state; one instance may process many
// documents concurrently, each attempt writing in its own transaction.
type Processor struct {
	Logger     *slog.Logger
	Text       textextract.TextExtractor
	Candidates CandidateSource
	Matcher    *match.Matcher
	Extractor  *extract.Extractor
	Reconciler *reconcile.Reconciler
	Recorder   Recorder
}

func NewProcessor(
	logger *slog.Logger,
	text textextract.TextExtractor,
	candidates CandidateSource,
	matcher *match.Matcher,
	extractor *extract.Extractor,
	reconciler *reconcile.Reconciler,
	recorder Recorder,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:     logger,
		Text:       text,
		Candidates: candidates,
		Matcher:    matcher,
		Extractor:  extractor,
		Reconciler: reconciler,
		Recorder:   recorder,
	}
}

// ProcessDocument extracts text from the file at path and processes it.
// Failures are one of common.ErrExtractionFailed, common.ErrNoMatch,
// common.ErrMalformedRule or common.ErrPersistenceFailed; the first failure
// ends the attempt and nothing is persisted on any of them. There are no
// internal retries.
func (p *Processor) ProcessDocument(ctx context.Context, path string) (*Result, error) {
	text, err := p.Text.Extract(ctx, path)
	if err != nil {
		p.Logger.Error("pipeline.text.failed", "path", path, "err", err)
		return nil, fmt.Errorf("%w: %v", common.ErrExtractionFailed, err)
	}
	p.Logger.Info("pipeline.text.ok",
		"path", path,
		"method", text.Method,
		"pages", text.Pages,
		"bytes", len(text.Text),
	)
	return p.ProcessText(ctx, text.Text)
}

// ProcessText runs the matcher, extractor, reconciler and recorder over an
// already-extracted text blob.
func (p *Processor) ProcessText(ctx context.Context, text string) (*Result, error) {
	candidates, err := p.Candidates.ListActiveCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing candidates: %v", common.ErrPersistenceFailed, err)
	}

	m, ok := p.Matcher.Match(text, candidates)
	if !ok {
		p.Logger.Info("pipeline.match.none", "candidates", len(candidates))
		return nil, common.ErrNoMatch
	}
	p.Logger.Info("pipeline.match.ok",
		"supplier_id", m.Supplier.ID,
		"template_id", m.Template.ID,
		"template_version", m.Template.Version,
	)

	extraction, err := p.Extractor.Extract(text, m.Template.Rules)
	if err != nil {
		p.Logger.Error("pipeline.extract.failed",
			"supplier_id", m.Supplier.ID,
			"template_id", m.Template.ID,
			"err", err,
		)
		return nil, err
	}
	p.Logger.Info("pipeline.extract.ok",
		"external_reference", extraction.ExternalReference,
		"lines", len(extraction.Lines),
		"net", extraction.Net.String(),
		"gross", extraction.Gross.String(),
	)

	outcome := p.Reconciler.Classify(extraction.Gross, extraction.DeclaredGross)

	invoice, run, err := p.Recorder.Record(ctx, &repository.RecordRequest{
		Supplier:   m.Supplier,
		Template:   m.Template,
		Extraction: extraction,
		Outcome:    outcome,
	})
	if err != nil {
		p.Logger.Error("pipeline.record.failed", "supplier_id", m.Supplier.ID, "err", err)
		return nil, err
	}
	p.Logger.Info("pipeline.record.ok",
		"invoice_id", invoice.ID,
		"status", run.Status,
		"notes", run.Notes,
	)

	return &Result{
		Supplier: m.Supplier,
		Template: m.Template,
		Invoice:  invoice,
		Run:      run,
	}, nil
}
