package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/opsfin/invoice-engine/constants"
	"github.com/opsfin/invoice-engine/internal/async"
	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/export"
	"github.com/opsfin/invoice-engine/internal/extract"
	"github.com/opsfin/invoice-engine/internal/match"
	"github.com/opsfin/invoice-engine/internal/pipeline"
	"github.com/opsfin/invoice-engine/internal/reconcile"
	repo "github.com/opsfin/invoice-engine/internal/repository"
	"github.com/opsfin/invoice-engine/internal/textextract"
	"github.com/opsfin/invoice-engine/internal/utils"
)

// printError prints to stderr, falling back to stdout if stderr fails.
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir     = flag.String("dir", "", "directory of invoice documents to process (required)")
		out     = flag.String("out", "", "output XLSX path (optional, defaults to <dir>/../invoices.xlsx)")
		workers = flag.Int("workers", 4, "concurrent pipeline workers")
		fromStr = flag.String("from", "", "export filter: from date YYYY-MM-DD")
		toStr   = flag.String("to", "", "export filter: to date YYYY-MM-DD")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "invoices.xlsx")
	}

	var from, to *time.Time
	if *fromStr != "" {
		t, err := utils.ParseYMD(*fromStr)
		if err != nil {
			printError("Error: invalid --from date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		from = &t
	}
	if *toStr != "" {
		t, err := utils.ParseYMD(*toStr)
		if err != nil {
			printError("Error: invalid --to date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
		to = &t
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	templatesRepo := repo.NewTemplateRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	recorder := repo.NewOutcomeRecorder(entc, logger)

	processor := pipeline.NewProcessor(
		logger,
		textextract.NewExtractor(textextract.Config{Pdftotext: cfg.Extract.Pdftotext}, logger),
		templatesRepo,
		match.NewMatcher(logger),
		extract.NewExtractor(extract.Config{TaxRate: cfg.Engine.TaxRate}, logger),
		reconcile.NewReconciler(reconcile.Config{
			WarnTolerance: cfg.Engine.WarnTolerance,
			FailTolerance: cfg.Engine.FailTolerance,
		}),
		recorder,
	)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(*workers),
		async.WithQueueSize(1024),
		async.WithProcessTimeout(3*time.Minute),
	)

	// Walk the directory and queue every supported document.
	queued := 0
	err = filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		if err := queue.Enqueue(ctx, async.Job{Path: path, SubmittedAt: time.Now()}); err != nil {
			return err
		}
		queued++
		return nil
	})
	if err != nil {
		logger.Error("failed to walk directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("documents queued", "dir", *dir, "count", queued)

	// Drain before exporting so the workbook sees every outcome.
	queue.Shutdown(ctx)

	exporter := export.NewService(invoicesRepo, logger)
	xlsxBytes, err := exporter.ExportInvoicesXLSX(ctx, nil, from, to)
	if err != nil {
		logger.Error("failed to export invoices", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete", "queued", queued, "output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents queued: %d\n", queued)
	fmt.Printf("- Output: %s\n", *out)
}
