package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/opsfin/invoice-engine/constants"
	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/entity"
	"github.com/opsfin/invoice-engine/internal/extract"
	"github.com/opsfin/invoice-engine/internal/match"
	"github.com/opsfin/invoice-engine/internal/reconcile"
	"github.com/opsfin/invoice-engine/internal/repository"
	"github.com/opsfin/invoice-engine/internal/rules"
	"github.com/opsfin/invoice-engine/internal/textextract"
)

type fakeText struct {
	text string
	err  error
}

func (f *fakeText) Extract(context.Context, string) (textextract.Result, error) {
	if f.err != nil {
		return textextract.Result{}, f.err
	}
	return textextract.Result{Text: f.text, Pages: 1, Method: "plain-text"}, nil
}

type fakeCandidates struct {
	candidates []match.Candidate
	err        error
}

func (f *fakeCandidates) ListActiveCandidates(context.Context) ([]match.Candidate, error) {
	return f.candidates, f.err
}

type fakeRecorder struct {
	req   *repository.RecordRequest
	calls int
	err   error
}

func (f *fakeRecorder) Record(_ context.Context, req *repository.RecordRequest) (*entity.Invoice, *entity.ProcessingRun, error) {
	f.calls++
	f.req = req
	if f.err != nil {
		return nil, nil, f.err
	}
	inv := &entity.Invoice{
		ID:                uuid.New(),
		SupplierID:        req.Supplier.ID,
		ExternalReference: req.Extraction.ExternalReference,
	}
	run := &entity.ProcessingRun{
		ID:        uuid.New(),
		InvoiceID: inv.ID,
		Status:    req.Outcome.Status,
		Notes:     req.Outcome.Notes,
	}
	return inv, run, nil
}

const acmeInvoice = `ACME Ltd
Invoice No: INV-42

  Widget     2 x 10.00
  Gadget     1 x 5.00
  Part       5 x 1.00

Total Due: 36.00
`

func acmeCandidate(total string) match.Candidate {
	return match.Candidate{
		Supplier: &entity.Supplier{ID: uuid.New(), Name: "ACME Ltd"},
		Template: &entity.SupplierTemplate{
			ID:     uuid.New(),
			Active: true,
			Rules: rules.Bundle{
				Check:         `acme`,
				InvoiceNumber: `Invoice No:\s*(\S+)`,
				Total:         total,
				LinePattern:   `(?m)^\s+(.{1,40}?)\s+(\d+) x ([0-9.]+)$`,
			},
		},
	}
}

func newTestProcessor(text *fakeText, cands *fakeCandidates, rec *fakeRecorder) *Processor {
	return NewProcessor(
		nil,
		text,
		cands,
		match.NewMatcher(nil),
		extract.NewExtractor(extract.DefaultConfig(), nil),
		reconcile.NewReconciler(reconcile.DefaultConfig()),
		rec,
	)
}

func TestProcessDocumentSuccess(t *testing.T) {
	rec := &fakeRecorder{}
	p := newTestProcessor(
		&fakeText{text: acmeInvoice},
		&fakeCandidates{candidates: []match.Candidate{acmeCandidate(`Total Due:\s*([0-9.]+)`)}},
		rec,
	)

	res, err := p.ProcessDocument(context.Background(), "/tmp/acme.txt")
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}
	if res.Run.Status != constants.RunSuccess {
		t.Errorf("status = %s, want SUCCESS", res.Run.Status)
	}
	if res.Invoice.ExternalReference != "INV-42" {
		t.Errorf("reference = %q", res.Invoice.ExternalReference)
	}
	if rec.calls != 1 {
		t.Errorf("recorder calls = %d", rec.calls)
	}
	if got := rec.req.Extraction.Gross.String(); got != "36" && got != "36.00" && got != "36.0000" {
		t.Errorf("gross = %s", got)
	}
}

func TestProcessTextWarningBand(t *testing.T) {
	text := `ACME Ltd
Invoice No: INV-42

  Widget     2 x 10.00
  Gadget     1 x 5.00
  Part       5 x 1.00

Total Due: 36.03
`
	rec := &fakeRecorder{}
	p := newTestProcessor(
		&fakeText{},
		&fakeCandidates{candidates: []match.Candidate{acmeCandidate(`Total Due:\s*([0-9.]+)`)}},
		rec,
	)

	res, err := p.ProcessText(context.Background(), text)
	if err != nil {
		t.Fatalf("ProcessText: %v", err)
	}
	if res.Run.Status != constants.RunWarning {
		t.Errorf("status = %s, want WARNING", res.Run.Status)
	}
	if res.Run.Notes == "" {
		t.Error("warning run should carry notes")
	}
}

func TestProcessTextFailedBand(t *testing.T) {
	text := `ACME Ltd
Invoice No: INV-42

  Widget     2 x 10.00

Total Due: 99.00
`
	rec := &fakeRecorder{}
	p := newTestProcessor(
		&fakeText{},
		&fakeCandidates{candidates: []match.Candidate{acmeCandidate(`Total Due:\s*([0-9.]+)`)}},
		rec,
	)

	res, err := p.ProcessText(context.Background(), text)
	if err != nil {
		t.Fatalf("ProcessText: %v", err)
	}
	// a FAILED classification is still a committed outcome, not an error
	if res.Run.Status != constants.RunFailed {
		t.Errorf("status = %s, want FAILED", res.Run.Status)
	}
	if rec.calls != 1 {
		t.Errorf("recorder calls = %d", rec.calls)
	}
}

func TestProcessTextNoMatch(t *testing.T) {
	rec := &fakeRecorder{}
	p := newTestProcessor(
		&fakeText{},
		&fakeCandidates{candidates: []match.Candidate{acmeCandidate(`Total Due:\s*([0-9.]+)`)}},
		rec,
	)

	_, err := p.ProcessText(context.Background(), "invoice from Globex Corp")
	if !errors.Is(err, common.ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
	if rec.calls != 0 {
		t.Error("nothing may be persisted when no template matches")
	}
}

func TestProcessTextMalformedRule(t *testing.T) {
	rec := &fakeRecorder{}
	c := acmeCandidate(`Total Due(:)`) // captures a non-decimal
	p := newTestProcessor(&fakeText{}, &fakeCandidates{candidates: []match.Candidate{c}}, rec)

	_, err := p.ProcessText(context.Background(), acmeInvoice)
	if !errors.Is(err, common.ErrMalformedRule) {
		t.Fatalf("err = %v, want ErrMalformedRule", err)
	}
	if rec.calls != 0 {
		t.Error("nothing may be persisted when extraction fails")
	}
}

func TestProcessDocumentExtractionFailed(t *testing.T) {
	rec := &fakeRecorder{}
	p := newTestProcessor(
		&fakeText{err: errors.New("pdftotext: exit status 1")},
		&fakeCandidates{},
		rec,
	)

	_, err := p.ProcessDocument(context.Background(), "/tmp/broken.pdf")
	if !errors.Is(err, common.ErrExtractionFailed) {
		t.Fatalf("err = %v, want ErrExtractionFailed", err)
	}
	if rec.calls != 0 {
		t.Error("recorder must not run after a text extraction failure")
	}
}

func TestProcessTextRecorderFailure(t *testing.T) {
	rec := &fakeRecorder{err: common.ErrPersistenceFailed}
	p := newTestProcessor(
		&fakeText{},
		&fakeCandidates{candidates: []match.Candidate{acmeCandidate(`Total Due:\s*([0-9.]+)`)}},
		rec,
	)

	_, err := p.ProcessText(context.Background(), acmeInvoice)
	if !errors.Is(err, common.ErrPersistenceFailed) {
		t.Fatalf("err = %v, want ErrPersistenceFailed", err)
	}
}

func TestProcessTextCandidateListingFailure(t *testing.T) {
	rec := &fakeRecorder{}
	p := newTestProcessor(&fakeText{}, &fakeCandidates{err: errors.New("db down")}, rec)

	_, err := p.ProcessText(context.Background(), acmeInvoice)
	if !errors.Is(err, common.ErrPersistenceFailed) {
		t.Fatalf("err = %v, want ErrPersistenceFailed", err)
	}
}
