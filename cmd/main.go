package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "task_manager/docs"
	"task_manager/internal/config"
	"task_manager/internal/handlers"
	"task_manager/internal/logger"
	"task_manager/internal/repository"
	"task_manager/internal/repository/db"
	"task_manager/internal/server"
	"task_manager/internal/service"
	"task_manager/internal/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load configs/config.yml, .env and the environment
	cfg, err := config.Load("configs", "config")
	if err != nil {
		logger.Get(logger.InfoLevel, logger.ConsoleEncoding).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.LogLevel, cfg.LogEncoding)
	defer func() { _ = log.Sync() }()

	// open the configured store
	repos, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatalw("failed to open store", "driver", cfg.DB.Driver, "err", err)
	}
	defer closeStore()

	// wire dependencies
	services := service.NewService(repos, service.AuthConfig{
		SigningKey: cfg.SecretKey,
		TokenTTL:   cfg.TokenTTL,
	})
	store := session.NewStore(cfg.SecretKey, cfg.SessionMaxAge)
	apiHandler := handlers.NewHandler(services, log, store)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Addr(), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// openStore connects to MongoDB or opens the SQLite file, depending on db.driver.
// The returned func releases the connection.
func openStore(cfg *config.Config, log *logger.Logger) (*repository.Repository, func(), error) {
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		conn, err := db.InitDB(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("sqlite_opened", "path", cfg.SQLite.Path)
		return repository.NewRepository(conn), func() {
			if cerr := conn.Close(); cerr != nil {
				log.Errorw("failed to close sqlite", "err", cerr)
			}
		}, nil
	default:
		client, database, err := db.ConnectMongo(context.Background(), cfg.Mongo.URI, cfg.Mongo.DBName)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("mongo_connected", "db", cfg.Mongo.DBName)
		return repository.NewMongoRepository(database), func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if cerr := client.Disconnect(ctx); cerr != nil {
				log.Errorw("failed to disconnect mongo", "err", cerr)
			}
		}, nil
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, addr string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http_listening", "addr", addr)
		if err := srv.Run(addr, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
