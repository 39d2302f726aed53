package contact

import (
	"context"
	"fmt"
	"sync"

	"github.com/ignite/contact-directory/internal/domain"
	"github.com/ignite/contact-directory/internal/metrics"
	"github.com/ignite/contact-directory/internal/pkg/logger"
)

// Service runs submissions against a repository. It is safe for concurrent
// use: the duplicate check and the append for one submission happen under a
// single lock, so two concurrent submissions of the same name cannot both be
// accepted.
type Service struct {
	mu      sync.Mutex
	repo    Repository
	metrics *metrics.Recorder
}

// NewService creates a contact service backed by the given repository.
// rec may be nil.
func NewService(repo Repository, rec *metrics.Recorder) *Service {
	rec.SetStored(repo.Count())
	return &Service{repo: repo, metrics: rec}
}

// Create validates sub and, when accepted, appends the resulting contact.
// The returned error is non-nil only when the repository fails; validation
// failures are reported in the Result.
func (s *Service) Create(ctx context.Context, sub domain.Submission) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := Submit(sub, s.repo)
	if !res.Accepted() {
		s.metrics.Submission(metrics.OutcomeRejected)
		for _, e := range res.Errors {
			s.metrics.ValidationError(e.Field, string(e.Kind))
		}
		logger.Info("contact rejected",
			"errors", len(res.Errors),
			"first_name", sub.FirstName,
			"last_name", sub.LastName,
		)
		return res, nil
	}

	if err := s.repo.Append(res.Contact); err != nil {
		logger.Error("contact append failed", "error", err)
		return Result{}, fmt.Errorf("append contact: %w", err)
	}

	s.metrics.Submission(metrics.OutcomeAccepted)
	s.metrics.SetStored(s.repo.Count())
	logger.Info("contact accepted",
		"id", res.Contact.ID,
		"first_name", res.Contact.FirstName,
		"last_name", res.Contact.LastName,
		"phone_number", res.Contact.PhoneNumber,
	)
	return res, nil
}

// List returns every stored contact in display order.
func (s *Service) List(ctx context.Context) []domain.Contact {
	return Sorted(s.repo)
}

// Count returns the number of stored contacts.
func (s *Service) Count(ctx context.Context) int {
	return s.repo.Count()
}
