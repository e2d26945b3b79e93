package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planetaryhours/internal/astro"
	"planetaryhours/internal/handlers"
	"planetaryhours/internal/logger"
	"planetaryhours/internal/repository"
	"planetaryhours/internal/repository/db"
	"planetaryhours/internal/server"
	"planetaryhours/internal/service"

	"github.com/spf13/viper"
)

const defaultRefreshTick = 1 * time.Second

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, astro.NewEngine(nil), loadSettings(log))
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// keep the persisted hour snapshot current
	go services.Refresher.Run(ctx, refreshTick())

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// loadSettings collects the service knobs from the loaded config.
func loadSettings(log *logger.Logger) service.Settings {
	var presets []service.Preset
	if err := viper.UnmarshalKey("presets", &presets); err != nil {
		log.Warnw("failed to parse presets; continuing without", "err", err)
	}

	key := viper.GetString("signing_key")
	if key == "" {
		log.Warnw("signing_key not set in config; using insecure default")
		key = "dev-only-key"
	}

	return service.Settings{
		UTCOffsetHours: viper.GetFloat64("utc_offset_hours"),
		SigningKey:     key,
		Presets:        presets,
	}
}

func refreshTick() time.Duration {
	if d := viper.GetDuration("refresh_tick"); d > 0 {
		return d
	}
	return defaultRefreshTick
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		dbPath = "app.db"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
