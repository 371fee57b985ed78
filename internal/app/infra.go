package app

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/lib/pq"

	"github.com/rahulbhardwaj94/IMDB-Clone/internal/config"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/db"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/logger"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/redis"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/session"
	"github.com/rahulbhardwaj94/IMDB-Clone/internal/user"
)

type Infra struct {
	Users    user.Store
	Sessions session.Store

	closers []func() error
}

// setupInfra wires the account and session stores. Postgres and Redis
// are used when configured; otherwise both fall back to in-process
// memory (the base configuration).
func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	infra := &Infra{}

	if cfg.DatabaseDSN != "" {
		sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}

		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, err
		}

		if err := db.RunMigration(ctx, sqlDB); err != nil {
			return nil, err
		}

		infra.Users = user.NewPostgresStore(&db.DB{DB: sqlDB})
		infra.closers = append(infra.closers, sqlDB.Close)

		logger.Info("database ready", nil)
	} else {
		infra.Users = user.NewMemoryStore()
		logger.Warn("no DATABASE_DSN set, accounts held in memory", nil)
	}

	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}

		infra.Sessions = session.NewRedisStore(redisClient.Client)
		infra.closers = append(infra.closers, redisClient.Close)

		logger.Info("redis ready", nil)
	} else {
		infra.Sessions = session.NewMemoryStore()
		logger.Info("sessions held in memory", nil)
	}

	return infra, nil
}

func (i *Infra) Close() error {
	var errs []error
	for _, close := range i.closers {
		if err := close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
