package bootstrap

import (
	"database/sql"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/fixly/fixly-api/config"
	redisadapter "github.com/fixly/fixly-api/internal/adapters/redis"
	"github.com/fixly/fixly-api/internal/data"
	"github.com/fixly/fixly-api/internal/service"
)

// BuildServicesConfig contains dependencies for service construction.
type BuildServicesConfig struct {
	DB     *sql.DB
	Redis  goredis.UniversalClient
	Config config.AppConfig
	Logger *slog.Logger
}

// BuildServices constructs the repositories and services for the API.
func BuildServices(cfg BuildServicesConfig) ServiceContainer {
	repoOpts := data.RepoOptions{QueryTimeout: cfg.Config.Postgres.QueryTimeout}

	postingRepo := data.NewPostingRepoWithOptions(cfg.DB, repoOpts)
	bidRepo := data.NewBidRepoWithOptions(cfg.DB, repoOpts)
	engagementRepo := data.NewEngagementRepoWithOptions(cfg.DB, repoOpts)
	revoker := redisadapter.NewRevocationStoreWithPrefix(cfg.Redis, cfg.Config.Auth.RevocationPrefix)

	return ServiceContainer{
		Postings: service.NewPostingService(service.PostingServiceOptions{
			Repo:   postingRepo,
			Logger: cfg.Logger,
		}),
		Bids: service.NewBidService(service.BidServiceOptions{
			Bids:     bidRepo,
			Postings: postingRepo,
			Logger:   cfg.Logger,
		}),
		Engagements: service.NewEngagementService(service.EngagementServiceOptions{
			Repo:   engagementRepo,
			Logger: cfg.Logger,
		}),
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Secret:  []byte(cfg.Config.Auth.JWTSecret),
			Revoker: revoker,
			Logger:  cfg.Logger,
		}),
	}
}
