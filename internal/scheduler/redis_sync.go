package scheduler

import (
	"context"

	"github.com/ekpss/quizapp/internal/index"
	"github.com/ekpss/quizapp/internal/logger"
)

// RedisSyncer syncs content from Redis to the catalog on startup
type RedisSyncer struct {
	store   ContentStore
	catalog *index.Catalog
	logger  logger.Logger
}

// NewRedisSyncer creates a new Redis syncer
func NewRedisSyncer(
	store ContentStore,
	catalog *index.Catalog,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		store:   store,
		catalog: catalog,
		logger:  log,
	}
}

// Sync loads content from Redis and updates the catalog
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	rs.logger.Info("syncing content from redis to memory")

	subjects, err := rs.store.GetAllSubjects(ctx)
	if err != nil {
		return err
	}

	if len(subjects) == 0 {
		rs.logger.Info("no content found in redis")
		return nil
	}

	rs.catalog.Update(subjects)

	rs.logger.Info("synced content from redis",
		logger.Int("subjects", len(subjects)))

	return nil
}
