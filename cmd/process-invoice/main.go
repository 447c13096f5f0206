package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/extract"
	"github.com/opsfin/invoice-engine/internal/match"
	"github.com/opsfin/invoice-engine/internal/pipeline"
	"github.com/opsfin/invoice-engine/internal/reconcile"
	repo "github.com/opsfin/invoice-engine/internal/repository"
	"github.com/opsfin/invoice-engine/internal/textextract"
)

// printError prints to stderr, falling back to stdout if stderr fails.
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if flag.NArg() != 1 {
		printError("usage: process-invoice [-v] <document path>\n")
		os.Exit(2)
	}
	path := flag.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
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
		printError("Error: opening database: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	templatesRepo := repo.NewTemplateRepository(entc, logger)
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

	runCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	res, err := processor.ProcessDocument(runCtx, path)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNoMatch):
			printError("No approved supplier template matched %s\n", path)
			os.Exit(3)
		case errors.Is(err, common.ErrExtractionFailed):
			printError("Could not extract text from %s: %v\n", path, err)
			os.Exit(4)
		default:
			printError("Processing failed: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Supplier:  %s\n", res.Supplier.Name)
	fmt.Printf("Invoice:   %s (%s)\n", res.Invoice.ID, res.Invoice.ExternalReference)
	fmt.Printf("Status:    %s\n", res.Run.Status)
	if res.Run.Notes != "" {
		fmt.Printf("Notes:     %s\n", res.Run.Notes)
	}
}
