// Package status keeps the append-only status check log.
package status

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"lumiere-backend/internal/domain"
)

// MaxList caps how many records List returns.
const MaxList = 1000

var ErrClientNameRequired = errors.New("client_name is required")

// Repository stores status checks in insertion order.
type Repository interface {
	Insert(ctx context.Context, c domain.StatusCheck) error
	List(ctx context.Context, limit int) ([]domain.StatusCheck, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Record(ctx context.Context, clientName string) (domain.StatusCheck, error) {
	if clientName == "" {
		return domain.StatusCheck{}, ErrClientNameRequired
	}
	c := domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return domain.StatusCheck{}, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]domain.StatusCheck, error) {
	return s.repo.List(ctx, MaxList)
}
