package jobs

import (
	"context"
	"log/slog"

	"controltower/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderWatchJob periodically reports how many orders are still in flight.
// Runs every minute and logs a per-state breakdown of uncompleted orders.
type OrderWatchJob struct {
	handler queries.GetUncompletedOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderWatchJob creates a new job watching uncompleted orders.
func NewOrderWatchJob(handler queries.GetUncompletedOrdersQueryHandler, logger *slog.Logger) *OrderWatchJob {
	return &OrderWatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_watch_job"),
	}
}

// Start begins the order watch job to run every minute.
func (j *OrderWatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetUncompletedOrdersQuery()
		if err != nil {
			j.logger.ErrorContext(ctx, "Order watch job failed to build query", "error", err)
			return
		}

		orders, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order watch job failed", "error", err)
			return
		}

		byState := make(map[string]int)
		for _, ord := range orders {
			byState[ord.State]++
		}

		j.logger.InfoContext(ctx, "Uncompleted orders",
			"total", len(orders),
			"preparing", byState["PREPARING"],
			"prepared", byState["PREPARED"],
			"in_delivery", byState["IN_DELIVERY"],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order watch job started (running every minute)")
	return nil
}

// Stop stops the order watch job.
func (j *OrderWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order watch job stopped")
}
