package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ekpss/quizapp/internal/domain"
	"github.com/ekpss/quizapp/internal/logger"
)

// SaveSubjectsMany stores the catalog content of several subjects (bulk operation)
func (s *Store) SaveSubjectsMany(ctx context.Context, subjects []*domain.SubjectContent) error {
	pipe := s.client.Pipeline()

	for _, subject := range subjects {
		data, err := json.Marshal(subject)
		if err != nil {
			return fmt.Errorf("failed to marshal subject %s: %w", subject.Subject.Slug, err)
		}

		pipe.Set(ctx, SubjectKey(subject.Subject.Slug), data, 0)
		pipe.SAdd(ctx, AllSubjectsKey(), subject.Subject.Slug)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save subjects: %w", err)
	}

	return nil
}

// GetSubject retrieves the content of one subject by slug
func (s *Store) GetSubject(ctx context.Context, slug string) (*domain.SubjectContent, error) {
	data, err := s.client.Get(ctx, SubjectKey(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("subject not found: %s", slug)
		}
		return nil, fmt.Errorf("failed to get subject: %w", err)
	}

	var subject domain.SubjectContent
	if err := json.Unmarshal(data, &subject); err != nil {
		return nil, fmt.Errorf("failed to unmarshal subject: %w", err)
	}

	return &subject, nil
}

// GetAllSubjects retrieves the content of every persisted subject
func (s *Store) GetAllSubjects(ctx context.Context) ([]*domain.SubjectContent, error) {
	slugs, err := s.client.SMembers(ctx, AllSubjectsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get subject slugs: %w", err)
	}

	subjects := make([]*domain.SubjectContent, 0, len(slugs))
	for _, slug := range slugs {
		subject, err := s.GetSubject(ctx, slug)
		if err != nil {
			s.logger.Warn("skipping unreadable subject",
				logger.String("slug", slug),
				logger.Error(err))
			continue
		}
		subjects = append(subjects, subject)
	}

	return subjects, nil
}

// DeleteSubject removes one subject's content
func (s *Store) DeleteSubject(ctx context.Context, slug string) error {
	if err := s.client.Del(ctx, SubjectKey(slug)).Err(); err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}

	if err := s.client.SRem(ctx, AllSubjectsKey(), slug).Err(); err != nil {
		return fmt.Errorf("failed to remove subject from set: %w", err)
	}

	return nil
}

// Ping checks that Redis answers
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
