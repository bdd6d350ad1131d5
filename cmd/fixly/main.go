// Command fixly runs the marketplace API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/fixly/fixly-api/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		slog.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	logger := bootstrap.InitLogger(cfg.IsDev)
	logger.InfoContext(ctx, "starting fixly api",
		"db_host", cfg.Postgres.Host,
		"db_port", cfg.Postgres.Port,
		"db_name", cfg.Postgres.Name,
		"http_addr", cfg.HTTP.Addr)

	dbCfg := bootstrap.DatabaseConfig{
		DBConfig:    cfg.Postgres,
		RedisConfig: cfg.Redis,
		Logger:      logger,
	}

	db, err := bootstrap.ConnectDB(dbCfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close database failed", "error", cerr)
		}
	}()

	redisClient, err := bootstrap.ConnectRedis(dbCfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := redisClient.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close redis failed", "error", cerr)
		}
	}()

	if err := bootstrap.RunMigrations(ctx, db, dbCfg); err != nil {
		return err
	}

	services := bootstrap.BuildServices(bootstrap.BuildServicesConfig{
		DB:     db,
		Redis:  redisClient,
		Config: cfg,
		Logger: logger,
	})

	return bootstrap.RunHTTPServer(ctx, bootstrap.HTTPServerConfig{
		Config:   cfg.HTTP,
		Services: services,
		Logger:   logger,
	})
}
