package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Task func(ctx context.Context) error

// Cron runs named tasks on cron schedules in UTC.
type Cron struct {
	scheduler gocron.Scheduler
}

func NewCron() (*Cron, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithLogger(&zerologAdapter{logger: log.With().Str("component", "scheduler").Logger()}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Cron{scheduler: s}, nil
}

// Add schedules task under name. The task receives ctx, so it stops doing work once ctx is cancelled.
func (c *Cron) Add(ctx context.Context, name, cronExpr string, task Task) error {
	_, err := c.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() {
			l := log.With().Str("task", name).Logger()
			l.Debug().Msg("running scheduled task")

			if err := task(l.WithContext(ctx)); err != nil {
				l.Error().Err(err).Msg("scheduled task failed")
			}
		}),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule %s with %q: %w", name, cronExpr, err)
	}

	log.Info().Str("task", name).Str("cron", cronExpr).Msg("scheduled task")

	return nil
}

func (c *Cron) Jobs() int {
	return len(c.scheduler.Jobs())
}

// Run starts the scheduler and blocks until ctx is cancelled.
func (c *Cron) Run(ctx context.Context) error {
	c.scheduler.Start()

	<-ctx.Done()

	if err := c.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to stop scheduler: %w", err)
	}

	return nil
}

type zerologAdapter struct {
	logger zerolog.Logger
}

func (z *zerologAdapter) Debug(msg string, args ...any) {
	z.logger.Debug().Fields(args).Msg(msg)
}

func (z *zerologAdapter) Error(msg string, args ...any) {
	z.logger.Error().Fields(args).Msg(msg)
}

func (z *zerologAdapter) Info(msg string, args ...any) {
	z.logger.Info().Fields(args).Msg(msg)
}

func (z *zerologAdapter) Warn(msg string, args ...any) {
	z.logger.Warn().Fields(args).Msg(msg)
}
