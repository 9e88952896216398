// Package subject manages the tracked players a user records stats for.
package subject

import (
	"context"
	"fmt"
	"time"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
	"github.com/Lestat2Lioncourt/discord-bot/internal/logger"
	"github.com/Lestat2Lioncourt/discord-bot/internal/repository"
)

const (
	cacheSize = 256
	cacheTTL  = 5 * time.Minute
)

// Service manages subjects.
type Service interface {
	// Create registers a new subject for the owner.
	Create(ctx context.Context, ownerID, name string) (*domain.Subject, error)

	// Get returns a subject, enforcing that it belongs to ownerID.
	Get(ctx context.Context, ownerID string, id int64) (*domain.Subject, error)

	// List returns the owner's subjects; domain.ErrNoSubjects when empty.
	List(ctx context.Context, ownerID string) ([]*domain.Subject, error)
}

type service struct {
	repo  repository.SubjectRepository
	cache *subjectCache
}

// NewService creates a subject service
func NewService(repo repository.SubjectRepository) Service {
	return &service{
		repo:  repo,
		cache: newSubjectCache(cacheSize, cacheTTL),
	}
}

func (s *service) Create(ctx context.Context, ownerID, name string) (*domain.Subject, error) {
	log := logger.FromContext(ctx)

	id, err := s.repo.Create(ctx, ownerID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}
	s.cache.Invalidate(ownerID)

	log.Info("Subject created", "ownerID", ownerID, "subjectID", id, "name", name)
	return &domain.Subject{ID: id, OwnerID: ownerID, Name: name, CreatedAt: time.Now()}, nil
}

func (s *service) Get(ctx context.Context, ownerID string, id int64) (*domain.Subject, error) {
	subject, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subject.OwnerID != ownerID {
		return nil, domain.ErrSubjectNotFound
	}
	return subject, nil
}

func (s *service) List(ctx context.Context, ownerID string) ([]*domain.Subject, error) {
	if cached, ok := s.cache.Get(ownerID); ok {
		return cached, nil
	}

	subjects, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	if len(subjects) == 0 {
		return nil, domain.ErrNoSubjects
	}

	s.cache.Set(ownerID, subjects)
	return subjects, nil
}
