package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gartstein/staff/internal/staff/config"
	"github.com/gartstein/staff/internal/staff/controller"
	"github.com/gartstein/staff/internal/staff/events"
	"github.com/gartstein/staff/internal/staff/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("failed to initialize logger: ", err)
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	company, err := cfg.BuildCompany()
	if err != nil {
		logger.Fatal("failed to build company roster", zap.Error(err))
	}

	producer, closeProducer := initProducer(cfg, logger)
	defer closeProducer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	staffSvc := controller.NewStaffService(producer, logger)

	logger.Info("Loaded company roster",
		zap.String("company", company.Title),
		zap.Int("employees", len(company.Employees())),
		zap.Strings("ceos", names(company.CEOs())),
		zap.Strings("managers", names(company.Managers())),
		zap.Strings("developers", names(company.Developers())),
	)

	staffSvc.PayAll(ctx, company)
}

// initLogger builds a Zap production logger at the configured level.
func initLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// initProducer connects to Kafka when brokers are configured, otherwise
// events are discarded.
func initProducer(cfg *config.Config, logger *zap.Logger) (controller.EventProducer, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("No Kafka brokers configured, staff events are disabled")
		return events.NopProducer{}, func() {}
	}
	producer, err := events.NewProducer(cfg.KafkaBrokers, logger, cfg.Topic)
	if err != nil {
		logger.Fatal("failed to initialize Kafka producer", zap.Error(err))
	}
	return producer, producer.Close
}

func names(members []models.Member) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.Profile().String())
	}
	return out
}
