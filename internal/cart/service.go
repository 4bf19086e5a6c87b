package cart

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidArgument = errors.New("missing or invalid field")
)

// Service enforces the cart rules in front of the repository: required
// fields, price normalization, one line per game.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) List(ctx context.Context, userID string) ([]Item, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (s *Service) Add(ctx context.Context, userID, gameID, storeName, price string) (*Item, error) {
	gameID = strings.TrimSpace(gameID)
	storeName = strings.TrimSpace(storeName)
	if gameID == "" || storeName == "" || strings.TrimSpace(price) == "" {
		return nil, ErrInvalidArgument
	}
	normalized, err := NormalizePrice(price)
	if err != nil {
		return nil, ErrInvalidArgument
	}

	it := &Item{
		ID:        uuid.NewString(),
		UserID:    userID,
		GameID:    gameID,
		StoreName: storeName,
		Price:     normalized,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Insert(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *Service) Remove(ctx context.Context, userID, gameID string) error {
	if strings.TrimSpace(gameID) == "" {
		return ErrInvalidArgument
	}
	return s.repo.DeleteByUserGame(ctx, userID, gameID)
}

// NormalizePrice renders a caller-supplied price as a non-negative
// fixed-point string with two decimals ("59.9" -> "59.90").
func NormalizePrice(raw string) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	if d.IsNegative() {
		return "", errors.New("negative price")
	}
	return d.StringFixed(2), nil
}
