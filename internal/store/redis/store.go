package redis

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ekpss/quizapp/internal/logger"
)

// Store handles Redis operations for bookmark collections and catalog content
type Store struct {
	client *redis.Client
	logger logger.Logger
	now    func() time.Time
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client, log logger.Logger) *Store {
	return &Store{
		client: client,
		logger: log,
		now:    time.Now,
	}
}
