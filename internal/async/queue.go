package async

import (
	"context"
	"time"
)

// Job is one document to push through the pipeline.
type Job struct {
	Path        string
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
