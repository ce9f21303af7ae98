package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/simaogato/walletledger-backend/internal/adapter/events"
	amqppub "github.com/simaogato/walletledger-backend/internal/adapter/events/amqp"
	kafkapub "github.com/simaogato/walletledger-backend/internal/adapter/events/kafka"
	grpcadapter "github.com/simaogato/walletledger-backend/internal/adapter/grpc"
	walletledgerv1 "github.com/simaogato/walletledger-backend/internal/adapter/grpc/walletledger/v1"
	"github.com/simaogato/walletledger-backend/internal/adapter/repository/memory"
	"github.com/simaogato/walletledger-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/walletledger-backend/internal/config"
	"github.com/simaogato/walletledger-backend/internal/domain"
	"github.com/simaogato/walletledger-backend/internal/logger"
	"github.com/simaogato/walletledger-backend/internal/usecase/creditcard"
	"github.com/simaogato/walletledger-backend/internal/usecase/dashboard"
	"github.com/simaogato/walletledger-backend/internal/usecase/invoice"
	"github.com/simaogato/walletledger-backend/internal/usecase/ledger"
	"github.com/simaogato/walletledger-backend/internal/usecase/seeder"
	"github.com/simaogato/walletledger-backend/internal/usecase/transfer"
	"github.com/simaogato/walletledger-backend/internal/usecase/wallet"
)

// publisher is an event publisher that owns a broker connection
type publisher interface {
	domain.EventPublisher
	io.Closer
}

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
	})
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", logger.FieldError, err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", logger.FieldError, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// 1. Storage
	uow, closeStore, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// 2. Seed the operator catalogue
	if err := seeder.NewOperatorSeeder(uow, log).Seed(ctx); err != nil {
		return fmt.Errorf("seed operators: %w", err)
	}

	// 3. Event publisher
	pub, err := openPublisher(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Warn("failed to close event publisher", logger.FieldError, err)
		}
	}()

	// 4. Services (Use Cases)
	srv := grpcadapter.NewServer(grpcadapter.Services{
		Wallets:   wallet.NewWalletService(uow, log),
		Ledger:    ledger.NewLedgerService(uow, log),
		Transfers: transfer.NewTransferService(uow, pub, log),
		Cards:     creditcard.NewCardService(uow, log),
		Debts:     creditcard.NewDebtService(uow, pub, log),
		Invoices:  invoice.NewInvoiceService(uow, pub, log),
		Dashboard: dashboard.NewDashboardService(uow, log),
	})

	// 5. gRPC server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(log),
			grpcadapter.AuthInterceptor(cfg.APIToken),
		),
	)
	walletledgerv1.RegisterLedgerServiceServer(grpcServer, srv)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.ListenAddr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.ListenAddr(), err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("gRPC server listening", "addr", cfg.ListenAddr(), "backend", cfg.DataBackend, "events", cfg.EventBroker)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpclib.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down gracefully")
		shutdown(grpcServer, cfg.ShutdownTimeout, log)
		return nil
	})

	return g.Wait()
}

// openStore returns the configured unit of work and a function releasing it
func openStore(cfg *config.Config, log *logger.Logger) (domain.UnitOfWork, func(), error) {
	storeLog := log.WithComponent(logger.ComponentStorage)

	if cfg.DataBackend == config.BackendMemory {
		storeLog.Warn("using in-memory storage, data is lost on restart")
		return memory.NewStore(), func() {}, nil
	}

	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DBConnStr); err != nil {
			return nil, nil, err
		}
		storeLog.Info("database migrations applied")
	}

	db, err := postgres.NewDB(cfg.DBConnStr)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, func() {
		if err := db.Close(); err != nil {
			storeLog.Warn("failed to close database", logger.FieldError, err)
		}
	}, nil
}

func openPublisher(cfg *config.Config, log *logger.Logger) (publisher, error) {
	switch cfg.EventBroker {
	case config.BrokerKafka:
		return kafkapub.NewPublisher(cfg.KafkaBrokers), nil
	case config.BrokerAMQP:
		pub, err := amqppub.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, log)
		if err != nil {
			return nil, fmt.Errorf("connect to AMQP broker: %w", err)
		}
		return pub, nil
	default:
		return events.Noop{}, nil
	}
}

// shutdown drains in-flight RPCs, forcing a stop once timeout elapses
func shutdown(s *grpclib.Server, timeout time.Duration, log *logger.Logger) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		log.Info("gRPC server stopped")
	case <-time.After(timeout):
		log.Warn("graceful shutdown timed out, forcing stop", "timeout", timeout.String())
		s.Stop()
	}
}
