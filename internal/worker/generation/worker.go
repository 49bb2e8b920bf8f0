package worker_generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/babmate/core/internal/model"
)

//go:generate mockery --name=Generator --output=../../../mocks/worker --filename=generator.go
type Generator interface {
	Generate(ctx context.Context, job model.GenerationJob) error
}

// Worker consumes generation jobs from an in-process queue. Jobs are
// enqueued only after the transaction that created or reset the votes has
// committed, so the generator never acts on a phantom vote. Each job runs
// under its own timeout; a timed-out job is compensated by the generator
// like any other failure.
type Worker struct {
	jobs      chan model.GenerationJob
	generator Generator
	timeout   time.Duration

	logger *slog.Logger
}

type Option func(*Worker)

func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) {
		w.logger = logger
	}
}

func WithJobTimeout(timeout time.Duration) Option {
	return func(w *Worker) {
		w.timeout = timeout
	}
}

func New(generator Generator, queueSize int, opts ...Option) *Worker {
	if queueSize <= 0 {
		queueSize = 64 /* default */
	}

	w := &Worker{
		jobs:      make(chan model.GenerationJob, queueSize),
		generator: generator,
		timeout:   30 * time.Second,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Dispatch enqueues a job. Fire-and-forget: the creator returns a vote id
// in GENERATING immediately and clients poll for the outcome. Generation
// is gated by vote status, so a duplicate job on an already advanced vote
// is a no-op inside the generator.
func (w *Worker) Dispatch(job model.GenerationJob) {
	w.jobs <- job
}

// Run consumes jobs until the context is cancelled. Meant to be started
// once from app wiring as `go worker.Run(ctx)`.
func (w *Worker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-w.jobs:
			w.handle(ctx, job)
		}
	}
}

func (w *Worker) handle(ctx context.Context, job model.GenerationJob) {
	w.logger.Info("generation job started",
		slog.String("meeting_id", job.MeetingID.String()),
		slog.String("vote1_id", job.Round1VoteID.String()),
		slog.String("vote2_id", job.Round2VoteID.String()))

	jobCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := w.generator.Generate(jobCtx, job); err != nil {
		w.logger.Error("generation job failed",
			slog.String("meeting_id", job.MeetingID.String()),
			slog.String("error", err.Error()))
		return
	}

	w.logger.Info("generation job done",
		slog.String("meeting_id", job.MeetingID.String()))
}
