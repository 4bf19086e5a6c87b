package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidArgument = errors.New("missing or invalid field")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

// List is the only read that needs no session.
func (s *Service) List(ctx context.Context, gameID string) ([]Review, error) {
	if strings.TrimSpace(gameID) == "" {
		return nil, ErrInvalidArgument
	}
	out, err := s.repo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Review{}
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, userID, userName string, req CreateRequest) (*Review, error) {
	if strings.TrimSpace(req.GameID) == "" ||
		strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Content) == "" {
		return nil, ErrInvalidArgument
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidArgument
	}
	if userName == "" {
		userName = "Anonymous"
	}

	now := time.Now()
	rv := &Review{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserName:  userName,
		GameID:    req.GameID,
		Rating:    req.Rating,
		Title:     req.Title,
		Content:   req.Content,
		Helpful:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) MarkHelpful(ctx context.Context, reviewID string) error {
	if strings.TrimSpace(reviewID) == "" {
		return ErrInvalidArgument
	}
	return s.repo.IncrementHelpful(ctx, reviewID)
}

func (s *Service) Delete(ctx context.Context, userID, reviewID string) error {
	if strings.TrimSpace(reviewID) == "" {
		return ErrInvalidArgument
	}
	return s.repo.DeleteOwned(ctx, userID, reviewID)
}
