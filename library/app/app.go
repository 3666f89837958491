package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/turnthepage/library-service/library/config"
	"github.com/turnthepage/library-service/library/internal/eventlog"
	"github.com/turnthepage/library-service/library/internal/handler"
	"github.com/turnthepage/library-service/library/internal/repository"
	"github.com/turnthepage/library-service/library/internal/repository/memory"
	"github.com/turnthepage/library-service/library/internal/server"
	"github.com/turnthepage/library-service/library/internal/service"
	"github.com/turnthepage/library-service/library/migrations"
	"github.com/turnthepage/library-service/pkg/kafka"
	"github.com/turnthepage/library-service/pkg/logger"
	"github.com/turnthepage/library-service/pkg/mailer"
	"github.com/turnthepage/library-service/pkg/postgres"
	"github.com/turnthepage/library-service/pkg/storage"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		repo    repository.Repository
		closeDB = func() {}
	)
	switch cfg.Storage {
	case config.StorageMemory:
		log.Warn("in-memory storage, data is lost on restart")
		repo = memory.New()
	default:
		db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			log.Fatal("db init", zap.Error(err))
		}
		pgRepo, err := repository.NewRepository(db, log)
		if err != nil {
			log.Fatal("repo", zap.Error(err))
		}
		repo, closeDB = pgRepo, db.Close
	}

	opts := []service.Option{
		service.WithLendingPolicy(service.LendingPolicy{
			LoanDays:   cfg.Lending.LoanDays,
			FinePerDay: cfg.Lending.FinePerDay,
		}),
		service.WithCountsCache(cfg.Dashboard.CacheTTL),
		service.WithMailer(mailer.New(cfg.SMTP)),
	}

	if cfg.S3.Enabled() {
		client, err := storage.NewS3Client(ctx, cfg.S3)
		if err != nil {
			log.Fatal("storage.NewS3Client", zap.Error(err))
		}
		opts = append(opts, service.WithCoverStore(storage.NewCoverStore(client, cfg.S3)))
	} else {
		log.Info("S3 is not configured, cover uploads are disabled")
	}

	var (
		producer *eventlog.Producer
		consumer sarama.ConsumerGroup
	)
	if cfg.Kafka.Enabled {
		async, err := kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewAsyncProducer", zap.Error(err))
		}
		producer = eventlog.NewProducer(async, kafka.AuditTopic, log)
		opts = append(opts, service.WithAuditSink(producer))

		consumer, err = kafka.NewConsumer(cfg.Kafka, kafka.AuditConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
	}

	svc := service.NewService(repo, log, opts...)
	if err := svc.Reconcile(ctx); err != nil {
		log.Warn("initial overdue sweep", zap.Error(err))
	}

	if consumer != nil {
		go kafka.Consume(ctx, consumer, handler.NewConsumer(svc.AppendAudit, log), log, kafka.AuditTopic)
	}

	h := handler.New(svc, cfg.Auth.Secret, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	svc.Close()
	cancel()
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			log.Error("consumer.Close", zap.Error(err))
		}
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	closeDB()
	_ = log.Sync()
	log.Info("Graceful shutdown finished")
}
