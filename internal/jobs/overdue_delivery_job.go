// Package jobs contains the background schedules of the order service:
// overdue delivery monitoring and statistics cache warming.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueDeliveryJob periodically scans for orders still moving through the
// pipeline past their estimated delivery date and flags them for the support
// team. Detection only; the job never mutates orders.
type OverdueDeliveryJob struct {
	uowFactory commands.OrderUoWFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOverdueDeliveryJob creates a job that checks for overdue deliveries
// every ten minutes.
func NewOverdueDeliveryJob(uowFactory commands.OrderUoWFactory, logger *slog.Logger) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		uowFactory: uowFactory,
		cron:       cron.New(),
		logger:     logger.With("component", "overdue_delivery_job"),
	}
}

// Start begins the overdue delivery scan.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * *", func() {
		ctx := context.Background()
		if err := j.scan(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running every ten minutes)")
	return nil
}

// Stop stops the overdue delivery scan.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}

func (j *OverdueDeliveryJob) scan(ctx context.Context) error {
	uow := j.uowFactory.Create()

	overdue, err := uow.OrderRepository().GetAllOverdue(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	for _, o := range overdue {
		j.logger.WarnContext(ctx, "order is overdue",
			"order_id", o.ID().String(),
			"order_number", o.Number().String(),
			"status", o.Status().String(),
			"estimated_delivery_date", o.EstimatedDeliveryDate(),
		)
	}

	return nil
}
