package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"MarketMonitor/internal/collector"
	"MarketMonitor/internal/config"
	"MarketMonitor/internal/notifier"
	"MarketMonitor/internal/scheduler"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	logger, err := newLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("[FATAL] init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("config validation", zap.Error(err))
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.Provider == "vstrader" {
		fetcher = collector.NewVsTraderFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	logger.Info("data source selected", zap.String("source", fetcher.Name()))

	col := collector.NewCollector(fetcher, cfg.Instruments(), logger.Named("collector"))

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, logger.Named("telegram"))
	tn.APIBase = cfg.Telegram.APIBase

	// Context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, tn, logger.Named("scheduler"))

	// Without a schedule the process is a single run triggered by an external cron.
	if cfg.Schedule.Cron == "" {
		res := sched.RunOnce(ctx)
		logger.Info("run completed",
			zap.Int("instruments", res.Instruments),
			zap.Int("sent", res.Sent),
			zap.Int("failed", res.Failed))
		return
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		logger.Fatal("register cron task", zap.Error(err))
	}
	if os.Getenv("RUN_ON_START") == "true" {
		logger.Info("RUN_ON_START enabled, executing report task now")
		sched.RunOnce(ctx)
	}
	sched.Start()

	logger.Info("MarketMonitor is running", zap.String("cron", cfg.Schedule.Cron))
	<-ctx.Done()

	logger.Info("shutdown signal received, stopping")
	sched.Stop()
}

func newLogger(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
