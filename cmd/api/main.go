package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"eats-backend/graph"
	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/app/users"
	"eats-backend/internal/auth"
	"eats-backend/internal/config"
	"eats-backend/internal/database"
	"eats-backend/internal/guard"
	"eats-backend/internal/logger"
	"eats-backend/internal/mail"
	"eats-backend/internal/observability"
	httptransport "eats-backend/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "eats-backend: %v\n", err)
		os.Exit(1)
	}
}

// run wires the application and blocks until the HTTP server stops. Errors
// are returned rather than fatal-logged so every deferred shutdown runs.
func run() error {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(database.Config{
		DSN:             cfg.Database.DSN,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        database.LogLevel(cfg.Database.LogLevel),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	mailer, err := newMailer(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize mailer: %w", err)
	}

	tokens := auth.NewTokenService(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	userService := users.NewService(database.NewUserRepository(db), mailer, tokens, log,
		users.WithLoginRate(rate.Every(time.Minute/time.Duration(cfg.Auth.LoginRate)), cfg.Auth.LoginRate),
	)
	restaurantService := restaurants.NewService(database.NewRestaurantRepository(db), cfg.Restaurants.PageSize, log)

	ops := graph.Operations()
	registry := graph.NewRegistry(ops)
	log.Info().
		Strs("operations", registry.PublicOf(graph.OperationNames(ops))).
		Msg("public GraphQL operations (no credential required)")

	schema := graph.NewExecutableSchema(graph.Config{
		Resolvers: &graph.Resolver{Users: userService, Catalog: restaurantService},
	})
	authorize := graph.AuthorizeRootFields(guard.New(registry, tokens, userService), log)

	if err := httptransport.New(cfg, log, schema, authorize).Run(ctx); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	log.Info().Msg("application exited cleanly")
	return nil
}

func newMailer(cfg config.Config, log zerolog.Logger) (users.Mailer, error) {
	if !cfg.MailEnabled() {
		log.Warn().Msg("MAILGUN_API_KEY not set, verification emails are not sent")
		return mail.NewNoop(log), nil
	}
	return mail.NewMailgun(mail.Config{
		APIKey:  cfg.Mail.APIKey,
		Domain:  cfg.Mail.Domain,
		From:    cfg.Mail.From,
		BaseURL: cfg.Mail.BaseURL,
		Timeout: 10 * time.Second,
	})
}

func loadEnvFiles() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
