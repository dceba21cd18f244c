package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/barbershop/backend/internal/application/adapter"
	"github.com/barbershop/backend/internal/domain/entity"
	domainerror "github.com/barbershop/backend/internal/domain/error"
	"github.com/barbershop/backend/internal/integration/email/templates"
)

// WorkerConfig holds configuration for the digest worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// BatchResult counts what happened to the jobs of one polling round.
type BatchResult struct {
	Sent     int
	Retrying int
	Failed   int
}

// Total is the number of jobs handled in the round.
func (r BatchResult) Total() int {
	return r.Sent + r.Retrying + r.Failed
}

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeSent
	outcomeRetrying
	outcomeFailed
)

// Worker delivers queued report digests.
type Worker struct {
	queue    adapter.EmailQueueRepository
	sender   adapter.EmailSender
	renderer *templates.Renderer
	config   WorkerConfig
}

// NewWorker creates a new digest worker. Non-positive config values fall back
// to the defaults.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	defaults := DefaultWorkerConfig()
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	return &Worker{
		queue:    queue,
		sender:   sender,
		renderer: renderer,
		config:   config,
	}
}

// Start polls the queue until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Digest worker started",
		"poll_interval", w.config.PollInterval,
		"batch_size", w.config.BatchSize,
	)

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	for {
		w.ProcessNow(ctx)

		select {
		case <-ctx.Done():
			slog.Info("Digest worker shutting down")
			return
		case <-ticker.C:
		}
	}
}

// ProcessNow delivers the digests that are due and reports the outcome.
func (w *Worker) ProcessNow(ctx context.Context) BatchResult {
	var result BatchResult

	jobs, err := w.queue.GetPendingJobs(ctx, w.config.BatchSize)
	if err != nil {
		slog.Error("Failed to get pending digest jobs", "error", err)
		return result
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		switch w.deliver(ctx, job) {
		case outcomeSent:
			result.Sent++
		case outcomeRetrying:
			result.Retrying++
		case outcomeFailed:
			result.Failed++
		}
	}

	if result.Total() > 0 {
		slog.Info("Digest batch processed",
			"sent", result.Sent,
			"retrying", result.Retrying,
			"failed", result.Failed,
		)
	}
	return result
}

func (w *Worker) deliver(ctx context.Context, job *entity.EmailJob) outcome {
	logger := slog.With("job_id", job.ID, "recipient", job.RecipientEmail)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to claim digest job", "error", err)
		return outcomeSkipped
	}

	html, text, err := w.renderDigest(job)
	if err != nil {
		logger.Error("Failed to render digest", "error", err)
		return w.fail(ctx, logger, job, err, true)
	}

	sent, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		var emailErr *domainerror.EmailError
		permanent := errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure
		logger.Error("Failed to send digest", "error", err, "permanent", permanent)
		return w.fail(ctx, logger, job, err, permanent)
	}

	job.MarkSent(sent.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		// The provider accepted it; a lost status update would resend on restart.
		logger.Error("Failed to mark digest as sent", "error", err)
	}
	logger.Info("Digest sent", "resend_id", sent.ResendID)
	return outcomeSent
}

// renderDigest renders the job data; only report digests are queued.
func (w *Worker) renderDigest(job *entity.EmailJob) (string, string, error) {
	if job.TemplateType != entity.TemplateReportDigest {
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			fmt.Sprintf("unknown template type %q", job.TemplateType),
			domainerror.ErrTemplateRenderFailed,
		)
	}
	return w.renderer.Render(string(job.TemplateType), job.TemplateData)
}

func (w *Worker) fail(ctx context.Context, logger *slog.Logger, job *entity.EmailJob, err error, permanent bool) outcome {
	job.MarkFailed(err, permanent)
	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		logger.Error("Failed to record digest failure", "error", updateErr)
	}

	if job.Status == entity.EmailStatusFailed {
		logger.Warn("Digest permanently failed", "attempts", job.Attempts, "last_error", job.LastError)
		return outcomeFailed
	}
	logger.Info("Digest scheduled for retry", "attempts", job.Attempts, "scheduled_at", job.ScheduledAt)
	return outcomeRetrying
}
