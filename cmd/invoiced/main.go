package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	invoicespb "github.com/opsfin/invoice-engine/gen/proto/invoices/v1"
	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/export"
	"github.com/opsfin/invoice-engine/internal/extract"
	"github.com/opsfin/invoice-engine/internal/match"
	"github.com/opsfin/invoice-engine/internal/pipeline"
	"github.com/opsfin/invoice-engine/internal/reconcile"
	repo "github.com/opsfin/invoice-engine/internal/repository"
	svc "github.com/opsfin/invoice-engine/internal/server"
	"github.com/opsfin/invoice-engine/internal/textextract"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	suppliersRepo := repo.NewSupplierRepository(entc, logger)
	templatesRepo := repo.NewTemplateRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	recorder := repo.NewOutcomeRecorder(entc, logger)

	textExtractor := textextract.NewExtractor(textextract.Config{
		Pdftotext: cfg.Extract.Pdftotext,
	}, logger)
	processor := pipeline.NewProcessor(
		logger,
		textExtractor,
		templatesRepo,
		match.NewMatcher(logger),
		extract.NewExtractor(extract.Config{TaxRate: cfg.Engine.TaxRate}, logger),
		reconcile.NewReconciler(reconcile.Config{
			WarnTolerance: cfg.Engine.WarnTolerance,
			FailTolerance: cfg.Engine.FailTolerance,
		}),
		recorder,
	)

	exporter := export.NewService(invoicesRepo, logger)

	invoicespb.RegisterSuppliersServiceServer(grpcServer, svc.NewSupplierServer(suppliersRepo, logger))
	invoicespb.RegisterTemplatesServiceServer(grpcServer, svc.NewTemplateServer(templatesRepo, logger))
	invoicespb.RegisterInvoicesServiceServer(grpcServer, svc.NewInvoiceServer(invoicesRepo, exporter, logger))
	invoicespb.RegisterProcessingServiceServer(grpcServer, svc.NewProcessServer(processor, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("invoice-engine listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
