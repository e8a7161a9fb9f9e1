package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/sendmoney-backend/internal/adapter/grpc"
	httpadapter "github.com/simaogato/sendmoney-backend/internal/adapter/http"
	"github.com/simaogato/sendmoney-backend/internal/adapter/metrics"
	"github.com/simaogato/sendmoney-backend/internal/adapter/repository/memory"
	"github.com/simaogato/sendmoney-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/sendmoney-backend/internal/config"
	"github.com/simaogato/sendmoney-backend/internal/domain"
	"github.com/simaogato/sendmoney-backend/internal/session"
	"github.com/simaogato/sendmoney-backend/internal/usecase/conversion"
	"github.com/simaogato/sendmoney-backend/internal/usecase/dashboard"
	"github.com/simaogato/sendmoney-backend/internal/usecase/seeder"
	"github.com/simaogato/sendmoney-backend/internal/usecase/selector"
	"github.com/simaogato/sendmoney-backend/internal/usecase/transfer"
	"github.com/simaogato/sendmoney-backend/internal/usecase/wizard"
)

const appName = "sendmoney"

type stores struct {
	accounts domain.AccountRepository
	rates    domain.RateRepository
	results  domain.TransferRequestRepository
	pinger   httpadapter.Pinger
	close    func() error
}

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration and logging
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.LogLevel)
	slog.SetDefault(logger)
	logger.Info("Starting application", slog.String("name", appName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// 2. Repositories (Postgres when configured, in-memory otherwise)
	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	// 3. Reference data
	if err := seeder.NewReferenceSeeder(st.accounts, st.rates).Seed(ctx, seeder.DemoAccounts(), conversion.DefaultRates()); err != nil {
		return fmt.Errorf("failed to seed reference data: %w", err)
	}
	rates, err := st.rates.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load rates: %w", err)
	}
	table, err := conversion.NewTable(rates)
	if err != nil {
		return fmt.Errorf("failed to build rate table: %w", err)
	}
	logger.Info("Reference data ready", slog.Int("rates", len(rates)))

	// 4. Services (Use Cases)
	collector := metrics.NewCollector()
	transferService := transfer.NewService(
		st.accounts,
		st.results,
		selector.NewSelector(table, cfg.HomeCurrency),
		wizard.Config{StrictRecipient: cfg.StrictRecipient},
		transfer.WithRecorder(collector),
		transfer.WithLogger(logger),
		transfer.WithIdleTTL(cfg.WizardIdleTTL),
	)
	dashboardService := dashboard.NewDashboardService(st.accounts, table, cfg.HomeCurrency)
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)

	// 5. Transports
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.AuthInterceptor(sessions),
		),
	)
	grpcadapter.RegisterTransferWizardServer(grpcServer, grpcadapter.NewServer(transferService, dashboardService))
	reflection.Register(grpcServer)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpadapter.NewHandler(transferService, dashboardService, collector.Handler(), st.pinger, logger).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("gRPC server listening", slog.String("addr", cfg.GRPCAddr))
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		logger.Info("HTTP server listening", slog.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if n := transferService.Sweep(); n > 0 {
					logger.Info("Expired idle wizards", slog.Int("count", n))
				}
			}
		}
	})
	g.Go(func() error {
		// Graceful shutdown
		<-gctx.Done()
		logger.Info("Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		return err
	})

	if err := g.Wait(); err != nil && !errors.Is(err, grpclib.ErrServerStopped) {
		return err
	}
	logger.Info("Application shutdown complete")
	return nil
}

func setupLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler).With(slog.String("app", appName))
}

func openStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*stores, error) {
	if !cfg.UsesDatabase() {
		logger.Warn("No database configured, using in-memory stores")
		return &stores{
			accounts: memory.NewAccountRepository(),
			rates:    memory.NewRateRepository(),
			results:  memory.NewTransferRequestRepository(),
			close:    func() error { return nil },
		}, nil
	}

	db, err := postgres.NewDB(cfg.DBConnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("Connected to database")

	return &stores{
		accounts: postgres.NewAccountRepository(db),
		rates:    postgres.NewRateRepository(db),
		results:  postgres.NewTransferRequestRepository(db),
		pinger:   db,
		close:    db.Close,
	}, nil
}
