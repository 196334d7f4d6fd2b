package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/postboard/config"
	"github.com/oksasatya/postboard/internal/domain/event"
	"github.com/oksasatya/postboard/internal/domain/repository"
	"github.com/oksasatya/postboard/internal/infrastructure/postgres"
	"github.com/oksasatya/postboard/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	events      event.Publisher

	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config {
	if cfg == nil {
		cfg = config.Load()
	}
	return cfg
}
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger {
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return logger
}
func SetPGPool(p *pgxpool.Pool) { pgPool = p }
func GetPGPool() *pgxpool.Pool { return pgPool }
func SetRedis(r *redis.Client) { redisClient = r }
func GetRedis() *redis.Client { return redisClient }

// SetEvents installs the lifecycle event publisher. nil means events are off.
func SetEvents(p event.Publisher) { events = p }
func GetEvents() event.Publisher {
	if events == nil {
		return event.Nop{}
	}
	return events
}

// SetRepositories overrides the store. Used for STORE_DRIVER=memory and tests.
func SetRepositories(u repository.UserRepository, p repository.PostRepository, c repository.CommentRepository) {
	users, posts, comments = u, p, c
}

// Repositories returns the configured store, falling back to postgres
// repositories over the shared pool.
func Repositories() (repository.UserRepository, repository.PostRepository, repository.CommentRepository) {
	if users != nil && posts != nil && comments != nil {
		return users, posts, comments
	}
	return postgres.NewUserRepository(pgPool), postgres.NewPostRepository(pgPool), postgres.NewCommentRepository(pgPool)
}

// Reset clears every singleton.
func Reset() {
	cfg, logger, pgPool, redisClient, events = nil, nil, nil, nil, nil
	users, posts, comments = nil, nil, nil
}
