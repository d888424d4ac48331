package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mohammadpnp/creations-admin/internal/config"
	"github.com/mohammadpnp/creations-admin/internal/domain/catalog"
	"github.com/mohammadpnp/creations-admin/internal/infrastructure/cache"
	"github.com/mohammadpnp/creations-admin/internal/infrastructure/storage"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens every backing service. The returned close func releases them
// in reverse order and is safe to call when Connect failed.
func Connect(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Dependencies, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return Dependencies{}, closeAll, fmt.Errorf("connect database: %w", err)
	}
	closers = append(closers, func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	pool, err := OpenPool(ctx, cfg)
	if err != nil {
		return Dependencies{}, closeAll, err
	}
	closers = append(closers, pool.Close)

	revalidator, closeRevalidator, err := NewRevalidator(ctx, cfg, logger)
	if err != nil {
		return Dependencies{}, closeAll, err
	}
	closers = append(closers, closeRevalidator)

	client, err := storage.NewS3Client(ctx, storage.S3Config{
		Endpoint:        cfg.S3Endpoint,
		Region:          cfg.S3Region,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
	})
	if err != nil {
		return Dependencies{}, closeAll, err
	}

	return Dependencies{
		DB:          db,
		Pool:        pool,
		Revalidator: revalidator,
		Objects:     storage.NewS3Store(client, cfg.MediaBucket, cfg.MediaPublicBaseURL),
		Logger:      logger,
	}, closeAll, nil
}

func OpenPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// NewRevalidator publishes to Redis when REDIS_URL is set and only logs otherwise.
func NewRevalidator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (catalog.Revalidator, func(), error) {
	if cfg.RedisURL == "" {
		logger.Warn("REDIS_URL not set, page revalidation is log only")
		return cache.NewLogRevalidator(logger), func() {}, nil
	}

	client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, func() {}, err
	}
	return cache.NewRedisRevalidator(client), func() {
		if err := client.Close(); err != nil {
			logger.Warn("close redis client", zap.Error(err))
		}
	}, nil
}
