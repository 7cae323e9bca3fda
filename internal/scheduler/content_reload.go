package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/ekpss/quizapp/internal/domain"
	"github.com/ekpss/quizapp/internal/index"
	"github.com/ekpss/quizapp/internal/logger"
	"github.com/ekpss/quizapp/internal/sources/content"
)

// ContentStore persists catalog content between restarts
type ContentStore interface {
	SaveSubjectsMany(ctx context.Context, subjects []*domain.SubjectContent) error
	GetAllSubjects(ctx context.Context) ([]*domain.SubjectContent, error)
	DeleteSubject(ctx context.Context, slug string) error
}

// ContentReloader handles periodic reloading of the content file
type ContentReloader struct {
	loader        *content.Loader
	mapper        *content.Mapper
	store         ContentStore
	catalog       *index.Catalog
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// DefaultReloadInterval replaces a non-positive reload interval
const DefaultReloadInterval = time.Hour

// NewContentReloader creates a new content reloader. store may be nil.
func NewContentReloader(
	contentFile string,
	store ContentStore,
	catalog *index.Catalog,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *ContentReloader {
	if interval <= 0 {
		interval = DefaultReloadInterval
	}
	return &ContentReloader{
		loader:        content.NewLoader(contentFile),
		mapper:        content.NewMapper(),
		store:         store,
		catalog:       catalog,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the content once, then keeps reloading it in the background.
// A failed first load is only fatal when the catalog is still empty.
func (cr *ContentReloader) Start(ctx context.Context) error {
	if err := cr.Reload(ctx); err != nil {
		if cr.catalog.Count() == 0 {
			return fmt.Errorf("initial reload failed: %w", err)
		}
		cr.logger.Warn("initial reload failed, serving synced content",
			logger.Int("subjects", cr.catalog.Count()),
			logger.Error(err))
	}

	ticker := time.NewTicker(cr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload content",
						logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload content",
						logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (cr *ContentReloader) Stop() {
	close(cr.stopCh)
}

// Reload loads the content file and updates catalog + store
func (cr *ContentReloader) Reload(ctx context.Context) error {
	cr.logger.Info("reloading content", logger.String("file", cr.loader.Path()))

	file, err := cr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	subjects, err := cr.mapper.MapSubjects(file)
	if err != nil {
		return fmt.Errorf("failed to map content: %w", err)
	}

	cr.logger.Info("loaded content",
		logger.Int("subjects", len(subjects)))

	// Subjects that disappeared from the file
	kept := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		kept[s.Subject.Slug] = true
	}
	var removed []string
	for _, s := range cr.catalog.Subjects() {
		if !kept[s.Slug] {
			removed = append(removed, s.Slug)
		}
	}

	cr.catalog.Update(subjects)

	// Update Redis store (best effort)
	if cr.store == nil {
		return nil
	}
	for _, slug := range removed {
		if err := cr.store.DeleteSubject(ctx, slug); err != nil {
			cr.logger.Warn("failed to delete removed subject from redis",
				logger.String("slug", slug),
				logger.Error(err))
		}
	}
	if err := cr.store.SaveSubjectsMany(ctx, cr.catalog.All()); err != nil {
		cr.logger.Warn("failed to save content to redis",
			logger.Error(err))
		// Don't fail - the catalog is the primary source
	} else {
		cr.logger.Info("content saved to redis")
	}

	return nil
}
