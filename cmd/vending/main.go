package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/amirhossein-jamali/vending-machine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/vending-machine/internal/domain/port/core"
	"github.com/amirhossein-jamali/vending-machine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/vending-machine/internal/domain/usecase/machine"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/console"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/seed"
	timeProvider "github.com/amirhossein-jamali/vending-machine/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/vending-machine/internal/infrastructure/config"
)

func main() {
	env := pflag.StringP("env", "e", "", "configuration environment (development, test, production)")
	httpEnabled := pflag.Bool("http", false, "serve the HTTP API in addition to the console")
	noConsole := pflag.Bool("no-console", false, "do not start the interactive console")
	pflag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*env)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *httpEnabled {
		cfg.Server.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	if *noConsole && !cfg.Server.Enabled {
		log.Fatalf("Nothing to run: the console is disabled and the HTTP server is off")
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger, !*noConsole); err != nil {
		appLogger.Error("Vending machine stopped with an error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, appLogger coreport.Logger, withConsole bool) error {
	tp := timeProvider.NewRealTimeProvider()

	// Catalog
	products, err := repository.NewProductRepository(appLogger)
	if err != nil {
		return fmt.Errorf("create product repository: %w", err)
	}
	catalog, err := seed.Products(cfg.Catalog)
	if err != nil {
		return err
	}
	created, err := seed.LoadCatalog(ctx, products, catalog)
	if err != nil {
		return err
	}

	bankSeed, err := seed.Bank(cfg.Machine)
	if err != nil {
		return err
	}

	// Journal
	journal, closeJournal, err := openJournal(ctx, cfg, appLogger, tp)
	if err != nil {
		return err
	}
	defer closeJournal()

	m := machine.NewMachine(products, journal, entity.NewCoinBank(bankSeed), tp, appLogger)
	dispatcher := machine.NewDispatcher(appLogger, tp, cfg.Machine.DispatcherQueueSize)
	service := machine.NewService(m, dispatcher, tp, appLogger, cfg.Machine.OperationTimeout)
	defer service.Shutdown()

	appLogger.Info("Vending machine ready", map[string]any{
		"env":        cfg.Environment,
		"products":   created,
		"bank_total": bankSeed.Total(),
		"journal":    cfg.Journal.Driver,
	})

	// runCtx ends when a signal arrives or the console exits
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	serverErr := make(chan error, 1)
	var server *http.Server
	if cfg.Server.Enabled {
		server = newServer(cfg, service, appLogger, tp)
		go func() {
			appLogger.Info("Starting server", map[string]any{
				"address": server.Addr,
				"env":     cfg.Environment,
			})
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- fmt.Errorf("http server: %w", err)
				cancel()
			}
		}()
	}

	if withConsole {
		go func() {
			defer cancel()
			ui := console.NewConsole(service, os.Stdin, os.Stdout, appLogger, console.Options{
				Currency:      cfg.Machine.Currency,
				AdminPassword: cfg.Machine.AdminPassword,
				JournalLimit:  cfg.Journal.ListLimit,
			})
			if err := ui.Run(runCtx); err != nil {
				appLogger.Error("Console failed", map[string]any{"error": err.Error()})
			}
		}()
	}

	<-runCtx.Done()
	appLogger.Info("Shutting down...", nil)

	if server != nil {
		shutdownCtx, shutdownCancel := tp.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Server forced to shutdown", map[string]any{
				"error": err.Error(),
			})
		}
	}

	select {
	case err := <-serverErr:
		return err
	default:
	}

	appLogger.Info("Vending machine exited gracefully", nil)
	return nil
}

// openJournal returns the configured journal and a function releasing its resources
func openJournal(
	ctx context.Context,
	cfg *config.Config,
	appLogger coreport.Logger,
	tp coreport.TimeProvider,
) (persistence.SaleJournal, func(), error) {
	if cfg.Journal.Driver != config.JournalDriverPostgres {
		journal, err := repository.NewMemorySaleJournal(appLogger)
		if err != nil {
			return nil, nil, fmt.Errorf("create memory journal: %w", err)
		}
		return journal, func() {}, nil
	}

	dbManager := database.NewManager(database.NewConfig(cfg.Database), appLogger, tp)
	db, err := dbManager.Connect(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	closeDB := func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}

	if cfg.Database.AutoMigrate {
		if err := migration.NewMigrationManager(db, appLogger, tp).MigrateAll(ctx); err != nil {
			closeDB()
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	return repository.NewSaleJournalRepository(db, appLogger, tp, dbManager.QueryTimeout()), closeDB, nil
}

func newServer(cfg *config.Config, service *machine.Service, appLogger coreport.Logger, tp coreport.TimeProvider) *http.Server {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(
		router,
		handler.NewVendingHandler(service, appLogger, cfg.Machine.Currency),
		handler.NewAdminHandler(service, appLogger, cfg.Machine.Currency, cfg.Journal.ListLimit),
		cfg.Machine.AdminPassword,
		appLogger,
	)

	return &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
}
