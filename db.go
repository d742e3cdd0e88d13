package main

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mikios34/storefront-backend/entity"
)

func setupDatabase(dsn string, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	if err := db.AutoMigrate(entity.All()...); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	return db
}

// setupRedis returns nil when Redis is not configured or unreachable; flash
// messages then fall back to process memory.
func setupRedis(url string, logger *zap.Logger) *redis.Client {
	if url == "" {
		logger.Info("REDIS_URL not configured, flash messages kept in memory")
		return nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		logger.Warn("failed to parse Redis URL, flash messages kept in memory", zap.Error(err))
		return nil
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("failed to connect to Redis, flash messages kept in memory", zap.Error(err))
		_ = client.Close()
		return nil
	}
	logger.Info("connected to Redis for flash messages")
	return client
}
