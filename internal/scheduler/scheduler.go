// Package scheduler runs the planner's periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/zapponejosh/veckoplan/internal/calendar"
	"github.com/zapponejosh/veckoplan/internal/config"
	"github.com/zapponejosh/veckoplan/internal/database"
)

const pruneTimeout = time.Minute

// Scheduler prunes events that have left the configured year range and
// announces the day's holiday.
type Scheduler struct {
	cronEngine *cron.Cron
	db         *database.DB
	cfg        *config.Config
	logger     *slog.Logger
	now        func() time.Time
}

// New creates a scheduler running in the configured time zone.
func New(db *database.DB, cfg *config.Config, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cronEngine: cron.New(
			cron.WithLocation(cfg.Location()),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		db:     db,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Start registers the jobs and starts the cron engine.
func (s *Scheduler) Start() error {
	if _, err := s.cronEngine.AddFunc(s.cfg.PruneSchedule, s.runDaily); err != nil {
		return fmt.Errorf("add prune job %q: %w", s.cfg.PruneSchedule, err)
	}

	s.cronEngine.Start()
	s.logger.Info("scheduler started",
		slog.String("prune_schedule", s.cfg.PruneSchedule),
		slog.String("timezone", s.cfg.Location().String()),
	)
	return nil
}

// Stop stops the engine and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cronEngine.Stop().Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runDaily() {
	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	if _, err := s.PruneEvents(ctx); err != nil {
		s.logger.Error("prune events failed", slog.Any("error", err))
	}
	s.LogToday()
}

// PruneEvents deletes events dated outside the year range around the current
// year.
func (s *Scheduler) PruneEvents(ctx context.Context) (int64, error) {
	first, last := s.cfg.EventYears(s.today().Year)
	firstDate := calendar.NewDate(first, time.January, 1)
	lastDate := calendar.NewDate(last, time.December, 31)

	removed, err := s.db.PruneEventsOutside(ctx, firstDate.String(), lastDate.String())
	if err != nil {
		return 0, err
	}

	s.logger.Info("pruned events",
		slog.Int64("removed", removed),
		slog.String("first", firstDate.String()),
		slog.String("last", lastDate.String()),
	)
	return removed, nil
}

// LogToday logs today's date and, if any, its holiday.
func (s *Scheduler) LogToday() {
	today := s.today()
	year, week := calendar.ISOWeek(today)

	attrs := []any{
		slog.String("date", today.String()),
		slog.String("week", fmt.Sprintf("%d-W%02d", year, week)),
	}
	if name, ok := calendar.HolidayName(today); ok {
		attrs = append(attrs, slog.String("holiday", name))
	}
	s.logger.Info("today", attrs...)
}

func (s *Scheduler) today() calendar.Date {
	return calendar.FromTime(s.now().In(s.cfg.Location()))
}
