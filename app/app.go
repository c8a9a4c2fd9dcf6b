package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/campusbooks/bookshare-service/config"
	"github.com/campusbooks/bookshare-service/internal/allocation"
	"github.com/campusbooks/bookshare-service/internal/handler"
	"github.com/campusbooks/bookshare-service/internal/repository"
	"github.com/campusbooks/bookshare-service/internal/server"
	"github.com/campusbooks/bookshare-service/internal/service/borrow"
	"github.com/campusbooks/bookshare-service/internal/service/catalog"
	"github.com/campusbooks/bookshare-service/internal/service/donation"
	"github.com/campusbooks/bookshare-service/internal/stats"
	"github.com/campusbooks/bookshare-service/migrations"
	"github.com/campusbooks/bookshare-service/pkg/kafka"
	"github.com/campusbooks/bookshare-service/pkg/logger"
	"github.com/campusbooks/bookshare-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "bookshare")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, allocation.NewLowestCopyID(), log)
	if err != nil {
		return fmt.Errorf("repo %v", err)
	}

	borrowSvc := borrow.NewService(repo, log, cfg.Loan.PeriodDays)
	donationSvc := donation.NewService(repo, log)
	catalogSvc := catalog.NewService(repo, log)

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka.NewProducer %v", err)
	}
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumer %v", err)
	}

	h := handler.New(borrowSvc, donationSvc, catalogSvc, handler.NewEnqueuer(producer), log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gg, runCtx := errgroup.WithContext(runCtx)
	gg.Go(func() error {
		return srv.Run()
	})
	gg.Go(func() error {
		statsRepo := stats.NewRepository(db, log)
		return kafka.Consume(runCtx, consumer, stats.NewConsumer(statsRepo.Record, log), kafka.BorrowEventsTopic)
	})
	go func() {
		if err := gg.Wait(); err != nil {
			log.Error("runtime group", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	cancel()
	if err := consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
