package server

import (
	"context"
	"errors"
	"log/slog"

	invoicespb "github.com/opsfin/invoice-engine/gen/proto/invoices/v1"
	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/pipeline"
	"github.com/opsfin/invoice-engine/internal/utils"
)

type ProcessServer struct {
	invoicespb.UnimplementedProcessingServiceServer
	processor *pipeline.Processor
	logger    *slog.Logger
}

func NewProcessServer(processor *pipeline.Processor, logger *slog.Logger) *ProcessServer {
	return &ProcessServer{processor: processor, logger: logger}
}

// ProcessDocument runs one document through the full pipeline and returns the
// committed outcome. Failure kinds map to distinct status codes so callers
// can tell an unmatched document from a broken template.
func (s *ProcessServer) ProcessDocument(ctx context.Context, req *invoicespb.ProcessDocumentRequest) (*invoicespb.ProcessDocumentResponse, error) {
	if req.GetPath() == "" {
		return nil, common.InvalidArgumentError("path is required")
	}

	res, err := s.processor.ProcessDocument(ctx, req.GetPath())
	if err != nil {
		switch {
		case errors.Is(err, common.ErrExtractionFailed):
			return nil, common.InvalidArgumentError(err.Error())
		case errors.Is(err, common.ErrNoMatch):
			return nil, common.NotFoundError(err.Error())
		case errors.Is(err, common.ErrMalformedRule):
			return nil, common.FailedPreconditionError(err.Error())
		default:
			s.logger.Error("process document failed", "path", req.GetPath(), "error", err)
			return nil, common.InternalError("processing failed")
		}
	}

	return &invoicespb.ProcessDocumentResponse{
		Supplier: utils.ToPBSupplier(res.Supplier),
		Invoice:  utils.ToPBInvoice(res.Invoice),
		Run:      utils.ToPBProcessingRun(res.Run),
	}, nil
}
