package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// warmedPeriods are the reporting windows the dashboard requests constantly;
// keeping them warm means those requests rarely pay for a full table scan.
var warmedPeriods = []queries.Period{
	queries.PeriodDay,
	queries.PeriodWeek,
	queries.PeriodMonth,
}

// StatsWarmupJob recomputes order statistics on a schedule so the cache in
// front of the statistics query stays populated within its TTL.
type StatsWarmupJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatsWarmupJob creates a job that refreshes the statistics cache every
// thirty seconds, just inside the cache TTL.
func NewStatsWarmupJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) *StatsWarmupJob {
	return &StatsWarmupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stats_warmup_job"),
	}
}

// Start begins the statistics warmup schedule.
func (j *StatsWarmupJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		j.warm(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats warmup job started (running every thirty seconds)")
	return nil
}

// Stop stops the statistics warmup schedule.
func (j *StatsWarmupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats warmup job stopped")
}

func (j *StatsWarmupJob) warm(ctx context.Context) {
	for _, period := range warmedPeriods {
		query, err := queries.NewGetOrderStatsQuery(period)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stats warmup query construction failed", "period", period.String(), "error", err)
			continue
		}

		if _, err := j.handler.Handle(ctx, query); err != nil {
			j.logger.ErrorContext(ctx, "Stats warmup failed", "period", period.String(), "error", err)
		}
	}
}
