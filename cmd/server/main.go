package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"skc.dev/internal/animation"
	"skc.dev/internal/config"
	"skc.dev/internal/contact"
	"skc.dev/internal/handlers"
	"skc.dev/internal/logging"
	"skc.dev/internal/mailer"
	"skc.dev/internal/ratelimit"
	"skc.dev/internal/services"
	"skc.dev/static"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Setup logger
	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup mail
	sender := newSender(cfg, logger)
	mailEnabled := cfg.MailConfigured()
	if !mailEnabled {
		logger.Warn("mail provider not configured, contact form will be unavailable",
			zap.String("provider", cfg.Mail.Provider))
	}

	// 4. Setup contact sessions
	sessions := contact.NewStore(contact.Options{
		Sender:     sender,
		Location:   cfg.Contact.Location,
		ResetDelay: cfg.Contact.ResetDelay,
		Logger:     logger.Named("contact"),
	}, cfg.Contact.SessionTTL)
	defer sessions.Close()

	// 5. Setup rate limiting, shared through Redis when configured
	rdb, err := connectRedis(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}
	limiter := ratelimit.New(ratelimit.Config{
		Limit:      cfg.RateLimit.Requests,
		Window:     cfg.RateLimit.Window,
		KeyPrefix:  "skc:contact:",
		FailClosed: cfg.RateLimit.FailClosed,
	}, rdb, logger)
	defer limiter.Close()

	// 6. Setup router
	portfolio, err := services.NewPortfolioService(cfg.Portfolio, animation.Page())
	if err != nil {
		return err
	}
	router := handlers.SetupRoutes(handlers.Dependencies{
		Logger:      logger,
		Portfolio:   portfolio,
		Sessions:    sessions,
		MailEnabled: mailEnabled,
		Limiter:     limiter,
		Static:      static.FS(),
	})

	// 7. Start server
	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server",
			zap.String("addr", cfg.ServerAddr),
			zap.Bool("development", cfg.Development),
			zap.Bool("mail_enabled", mailEnabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}
	logger.Info("server exiting")
	return nil
}

func newSender(cfg *config.Config, logger *zap.Logger) mailer.Sender {
	m := cfg.Mail
	if m.Provider == config.ProviderSMTP {
		return mailer.NewSMTP(mailer.SMTPConfig{
			Host:     m.SMTPHost,
			Port:     m.SMTPPort,
			Username: m.SMTPUsername,
			Password: m.SMTPPassword,
			From:     m.SMTPFrom,
			To:       m.ContactTo,
		})
	}
	return mailer.NewEmailJS(mailer.EmailJSConfig{
		Endpoint:   m.Endpoint,
		PublicKey:  m.PublicKey,
		PrivateKey: m.PrivateKey,
		ServiceID:  m.ServiceID,
		TemplateID: m.TemplateID,
		Timeout:    m.Timeout,
	}, nil, logger)
}

// connectRedis returns nil when Redis is not configured. A configured but
// unreachable Redis is fatal only when the limiter fails closed.
func connectRedis(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	rdb, err := ratelimit.Connect(ctx, cfg.Redis.URL, cfg.Redis.Password)
	switch {
	case err == nil:
		logger.Info("rate limiting through redis")
		return rdb, nil
	case errors.Is(err, ratelimit.ErrRedisNotConfigured):
		logger.Info("redis not configured, rate limiting in memory")
		return nil, nil
	case cfg.RateLimit.FailClosed:
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	default:
		logger.Warn("redis unavailable, rate limiting in memory", zap.Error(err))
		return nil, nil
	}
}
