package main

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/aliskhannn/art-quiz-bot/internal/config"
	"github.com/aliskhannn/art-quiz-bot/internal/infra/postgres"
	"github.com/aliskhannn/art-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/art-quiz-bot/internal/infra/redisstore"
	"github.com/aliskhannn/art-quiz-bot/internal/service"
	"github.com/aliskhannn/art-quiz-bot/internal/storage"
)

// stores are the persistence backends selected by storage.driver.
type stores struct {
	streaks   service.StreakRepository
	users     service.UserRepository
	tx        service.Transactor
	quizCache service.QuizCache

	closers []func()
}

func (s *stores) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func openStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*stores, error) {
	s := &stores{}

	var rdb *redis.Client
	if cfg.UsesRedis() {
		client, err := redisstore.NewClient(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		rdb = client
		s.closers = append(s.closers, func() { _ = client.Close() })
		logger.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))
	}

	if cfg.Quiz.Cache == config.DriverRedis {
		s.quizCache = redisstore.NewQuizCache(rdb)
	}

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			s.close()
			return nil, err
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			s.close()
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		s.closers = append(s.closers, pool.Close)
		s.usePostgres(pool)
		logger.Info("connected to postgres")

	case config.DriverRedis:
		s.streaks = redisstore.NewStreakRepository(rdb)
		s.users = redisstore.NewUserRepository(rdb)

	default:
		s.streaks = storage.NewStreakStorage()
		s.users = storage.NewUserStorage()
		logger.Warn("using in-memory storage, streaks are lost on restart")
	}

	return s, nil
}

func (s *stores) usePostgres(pool *pgxpool.Pool) {
	s.streaks = repository.NewStreakRepository(pool)
	s.users = repository.NewUserRepository(pool)
	s.tx = postgres.NewTransactor(pool)
}
