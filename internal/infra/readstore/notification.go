package readstore

import (
	"context"

	"seating-service/internal/infra"
	sqlc "seating-service/internal/infra/sqlc/generated"
	"seating-service/internal/pkg/pgconv"
	"seating-service/internal/usecase/queries"
)

type OutboxReadQueries interface {
	GetPendingNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error)
	CountQueuedNotificationJobs(ctx context.Context, db sqlc.DBTX) (int64, error)
}

// OutboxReadStore reads the booking notification outbox. It is bound to the
// dispatcher's claiming transaction.
type OutboxReadStore struct {
	queries OutboxReadQueries
	db      sqlc.DBTX
}

func NewOutboxReadStore(queries OutboxReadQueries, db sqlc.DBTX) *OutboxReadStore {
	return &OutboxReadStore{queries: queries, db: db}
}

// DueJobs locks the returned rows until the surrounding transaction ends.
// Rows claimed by another dispatcher are skipped.
func (s *OutboxReadStore) DueJobs(ctx context.Context, limit int32) ([]*queries.NotificationJobView, error) {
	rows, err := s.queries.GetPendingNotificationJobs(ctx, s.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim due notification jobs", err)
	}

	jobs := make([]*queries.NotificationJobView, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, &queries.NotificationJobView{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			Attempts:  row.Attempts,
			Status:    row.Status,
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return jobs, nil
}

// Backlog counts every queued job, due or not.
func (s *OutboxReadStore) Backlog(ctx context.Context) (int64, error) {
	n, err := s.queries.CountQueuedNotificationJobs(ctx, s.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count queued notification jobs", err)
	}
	return n, nil
}
