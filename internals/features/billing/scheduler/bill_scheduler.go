// Package scheduler runs monthly bill generation on a cron spec.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"rentku_backend/internals/features/billing/bills/service"
	"rentku_backend/internals/helpers/dbtime"
)

// Generator is the part of the bill service the job needs.
type Generator interface {
	AutoGenerate(ctx context.Context, period dbtime.Period) (service.GenerationResult, error)
}

// RunOnce generates bills for the month containing now.
func RunOnce(ctx context.Context, g Generator, now time.Time) {
	period := dbtime.PeriodOf(now)
	res, err := g.AutoGenerate(ctx, period)
	if err != nil {
		slog.ErrorContext(ctx, "scheduled bill generation failed", "period", period.String(), "error", err)
		return
	}
	slog.InfoContext(ctx, "scheduled bill generation",
		"period", period.String(),
		"generated", res.Generated,
		"skipped", res.Skipped,
		"failed", res.Failed,
	)
}

// StartBillGenerationScheduler registers the monthly job on c. The cron
// should be built with SkipIfStillRunning so runs never overlap.
func StartBillGenerationScheduler(c *cron.Cron, g Generator, spec string) error {
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		RunOnce(ctx, g, dbtime.Now())
	})
	if err != nil {
		return err
	}
	slog.Info("bill generation scheduled", "spec", spec, "tz", dbtime.Location().String())
	return nil
}
