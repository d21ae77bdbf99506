package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"MarketMonitor/internal/collector"
	"MarketMonitor/internal/model"
	"MarketMonitor/internal/notifier"
)

// RunResult summarizes the deliveries of one run.
type RunResult struct {
	Instruments int
	Blocks      int
	Sent        int
	Failed      int
}

// Scheduler runs the report pipeline once or on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  notifier.Sender
	Logger    *zap.Logger
	Ctx       context.Context
	Now       func() time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, sender notifier.Sender, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		Collector: col,
		Notifier:  sender,
		Logger:    logger,
		Ctx:       ctx,
		Now:       time.Now,
	}
}

// Register schedules the report run with a six-field cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Info("scheduler started", zap.Int("entries", len(s.Cron.Entries())))
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Logger.Info("scheduler stopped")
}

func (s *Scheduler) reportTask() {
	s.RunOnce(s.Ctx)
}

// RunOnce collects all reports and sends the header, one block per category and
// the top performers, in that order. A failed send is logged and the remaining
// blocks are still attempted. Nothing is sent when no instrument was reported.
func (s *Scheduler) RunOnce(ctx context.Context) RunResult {
	now := s.Now()
	s.Logger.Info("running report task", zap.Time("now", now))

	reports := s.Collector.Collect(ctx, now)
	res := RunResult{Instruments: collector.CountInstruments(reports)}
	if res.Instruments == 0 {
		s.Logger.Warn("no instrument reports produced, nothing to send")
		return res
	}

	categories := make([]string, 0, len(reports))
	for _, cr := range reports {
		if len(cr.Reports) == 0 {
			continue
		}
		categories = append(categories, notifier.FormatCategory(cr))
	}
	rankings := collector.TopPerformers(reports, model.PrimaryWindows, collector.TopN)

	blocks := make([]string, 0, len(categories)+2)
	blocks = append(blocks, notifier.FormatHeader(now, len(categories), res.Instruments))
	blocks = append(blocks, categories...)
	blocks = append(blocks, notifier.FormatTopPerformers(rankings))

	res.Blocks = len(blocks)
	for i, text := range blocks {
		if err := s.Notifier.Send(ctx, text); err != nil {
			res.Failed++
			s.Logger.Error("send notification", zap.Int("block", i), zap.Error(err))
			continue
		}
		res.Sent++
	}
	s.Logger.Info("report task finished",
		zap.Int("instruments", res.Instruments),
		zap.Int("sent", res.Sent),
		zap.Int("failed", res.Failed))
	return res
}
