package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"seating-service/internal/infra/broker"
	"seating-service/internal/infra/readstore"
	"seating-service/internal/infra/repository"
	sqlc "seating-service/internal/infra/sqlc/generated"
	"seating-service/internal/pkg/config"
	"seating-service/internal/pkg/errs"
	"seating-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JobStore is the outbox as seen from inside one claiming transaction.
type JobStore interface {
	Pending(ctx context.Context, limit int32) ([]*queries.NotificationJobView, error)
	Backlog(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error
}

// JobSource opens a transaction over the outbox. Jobs returned by Pending stay
// locked until fn returns.
type JobSource interface {
	Within(ctx context.Context, fn func(ctx context.Context, jobs JobStore) error) error
}

type pgJobSource struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPgJobSource(pool *pgxpool.Pool, q *sqlc.Queries) JobSource {
	return &pgJobSource{pool: pool, q: q}
}

func (s *pgJobSource) Within(ctx context.Context, fn func(ctx context.Context, jobs JobStore) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(ctx, &pgJobStore{
			reads:  readstore.NewOutboxReadStore(s.q, tx),
			writes: repository.NewNotificationRepository(s.q, tx),
		})
	})
}

type pgJobStore struct {
	reads  *readstore.OutboxReadStore
	writes *repository.NotificationRepository
}

func (s *pgJobStore) Pending(ctx context.Context, limit int32) ([]*queries.NotificationJobView, error) {
	return s.reads.DueJobs(ctx, limit)
}

func (s *pgJobStore) Backlog(ctx context.Context) (int64, error) {
	return s.reads.Backlog(ctx)
}

func (s *pgJobStore) UpdateStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error {
	return s.writes.UpdateJobStatus(ctx, jobID, status, lastError, runAt)
}

// NotificationDispatcher drains the booking notification outbox into the
// broker. A job that keeps failing is parked as failed after MaxAttempts.
type NotificationDispatcher struct {
	source    JobSource
	publisher broker.Publisher
	cfg       config.NotificationConfig
	now       func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewNotificationDispatcher(source JobSource, publisher broker.Publisher, cfg config.NotificationConfig) *NotificationDispatcher {
	return &NotificationDispatcher{
		source:    source,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

func (d *NotificationDispatcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.run(ctx)
	}()
	slog.Info("notification dispatcher started", "interval", d.cfg.PollInterval.String())
}

func (d *NotificationDispatcher) Stop() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	d.wg.Wait()
	slog.Info("notification dispatcher stopped")
}

func (d *NotificationDispatcher) run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if _, err := d.DispatchOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("notification dispatch failed", "error", err.Error())
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// DispatchOnce publishes one batch and returns how many jobs were sent.
func (d *NotificationDispatcher) DispatchOnce(ctx context.Context) (int, error) {
	sent := 0
	err := d.source.Within(ctx, func(ctx context.Context, jobs JobStore) error {
		pending, err := jobs.Pending(ctx, d.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range pending {
			status := repository.JobStatusSent
			runAt := d.now()
			var lastError *string

			if perr := d.publisher.Publish(ctx, job.Topic, job.Payload); perr != nil {
				msg := perr.Error()
				lastError = &msg
				status = repository.JobStatusQueued
				runAt = runAt.Add(d.retryDelay(job.Attempts + 1))
				if job.Attempts+1 >= d.cfg.MaxAttempts {
					status = repository.JobStatusFailed
				}
				slog.Warn("failed to publish notification",
					"job_id", job.ID.String(),
					"topic", job.Topic,
					"attempt", job.Attempts+1,
					"error", msg)
			}

			if err := jobs.UpdateStatus(ctx, job.ID, status, lastError, runAt); err != nil {
				return errs.Wrapf(err, "failed to update notification job %s", job.ID)
			}
			if status == repository.JobStatusSent {
				sent++
			}
		}
		if int32(len(pending)) == d.cfg.BatchSize {
			if backlog, err := jobs.Backlog(ctx); err == nil {
				slog.Info("notification backlog", "queued", backlog, "batch_size", d.cfg.BatchSize)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}

const maxRetryDelay = 10 * time.Minute

// retryDelay doubles the poll interval per failed attempt.
func (d *NotificationDispatcher) retryDelay(attempt int32) time.Duration {
	delay := d.cfg.PollInterval
	for i := int32(1); i < attempt; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}
