// Package wishlist keeps a per-user set of saved game ids. Unlike the cart
// there is no price snapshot: membership is the only state.
package wishlist

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidArgument = errors.New("missing game id")

type Entry struct {
	UserID    string    `json:"user_id"`
	GameID    string    `json:"game_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
	Add(ctx context.Context, userID, gameID string) error
	Remove(ctx context.Context, userID, gameID string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT user_id, game_id, created_at
		FROM wishlist_items WHERE user_id=$1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.UserID, &e.GameID, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Add is idempotent: re-adding a wished game is a no-op.
func (r *PGRepo) Add(ctx context.Context, userID, gameID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO wishlist_items (user_id, game_id, created_at)
		VALUES ($1,$2,NOW())
		ON CONFLICT (user_id, game_id) DO NOTHING
	`, userID, gameID)
	return err
}

func (r *PGRepo) Remove(ctx context.Context, userID, gameID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		DELETE FROM wishlist_items WHERE user_id=$1 AND game_id=$2
	`, userID, gameID)
	return err
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) List(ctx context.Context, userID string) ([]Entry, error) {
	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Entry{}
	}
	return out, nil
}

func (s *Service) Add(ctx context.Context, userID, gameID string) error {
	if strings.TrimSpace(gameID) == "" {
		return ErrInvalidArgument
	}
	return s.repo.Add(ctx, userID, gameID)
}

func (s *Service) Remove(ctx context.Context, userID, gameID string) error {
	if strings.TrimSpace(gameID) == "" {
		return ErrInvalidArgument
	}
	return s.repo.Remove(ctx, userID, gameID)
}
