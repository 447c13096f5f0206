package textextract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakeRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.gotName = name
	f.gotArgs = args
	return f.stdout, f.stderr, f.err
}

func TestExtractPDFJoinsPages(t *testing.T) {
	runner := &fakeRunner{stdout: []byte("page one\n\fpage two\n\f\f  \n\fpage three\n")}
	e := NewExtractor(Config{Pdftotext: "pdftotext"}, nil)
	e.runner = runner

	res, err := e.Extract(context.Background(), "/tmp/invoice.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := "page one\npage two\npage three"
	if res.Text != want {
		t.Errorf("text = %q, want %q", res.Text, want)
	}
	if res.Method != "pdf-text" {
		t.Errorf("method = %q", res.Method)
	}
	if runner.gotName != "pdftotext" {
		t.Errorf("ran %q, want pdftotext", runner.gotName)
	}
	// last two args are the path and stdout marker
	if n := len(runner.gotArgs); n < 2 || runner.gotArgs[n-2] != "/tmp/invoice.pdf" || runner.gotArgs[n-1] != "-" {
		t.Errorf("args = %v", runner.gotArgs)
	}
}

func TestExtractPDFCommandFailure(t *testing.T) {
	runner := &fakeRunner{stderr: []byte("Syntax Error: bad xref"), err: errors.New("exit status 1")}
	e := NewExtractor(Config{}, nil)
	e.runner = runner

	res, err := e.Extract(context.Background(), "/tmp/bad.pdf")
	if err == nil {
		t.Fatal("expected error when pdftotext fails")
	}
	if len(res.Warnings) == 0 {
		t.Error("stderr should surface as a warning")
	}
}

func TestExtractPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice.txt")
	if err := os.WriteFile(path, []byte("ACME Ltd\nTotal Due: 36.00\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Method != "plain-text" || res.Pages != 1 {
		t.Errorf("method/pages = %q/%d", res.Method, res.Pages)
	}
	if res.Text != "ACME Ltd\nTotal Due: 36.00\n" {
		t.Errorf("text = %q", res.Text)
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	if _, err := e.Extract(context.Background(), "/tmp/invoice.docx"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestExtractMissingTextFile(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	if _, err := e.Extract(context.Background(), "/nonexistent/invoice.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
