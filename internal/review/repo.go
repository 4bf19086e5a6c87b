package review

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound  = errors.New("review not found")
	ErrDuplicate = errors.New("review already exists for this game")
)

type Repository interface {
	ListByGame(ctx context.Context, gameID string) ([]Review, error)
	Insert(ctx context.Context, rv *Review) error
	IncrementHelpful(ctx context.Context, reviewID string) error
	DeleteOwned(ctx context.Context, userID, reviewID string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) ListByGame(ctx context.Context, gameID string) ([]Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, user_name, game_id, rating, title, content, helpful, created_at, updated_at
		FROM reviews WHERE game_id=$1
		ORDER BY created_at DESC
	`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.UserName, &rv.GameID, &rv.Rating,
			&rv.Title, &rv.Content, &rv.Helpful, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *PGRepo) Insert(ctx context.Context, rv *Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO reviews (id, user_id, user_name, game_id, rating, title, content, helpful, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,0,NOW(),NOW())
	`, rv.ID, rv.UserID, rv.UserName, rv.GameID, rv.Rating, rv.Title, rv.Content)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// IncrementHelpful bumps the counter server-side so concurrent calls never
// lose updates.
func (r *PGRepo) IncrementHelpful(ctx context.Context, reviewID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE reviews SET helpful = helpful + 1, updated_at = NOW()
		WHERE id=$1
	`, reviewID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOwned matches on id AND user_id in one statement; a miss on either
// reads the same as the review not existing.
func (r *PGRepo) DeleteOwned(ctx context.Context, userID, reviewID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM reviews WHERE id=$1 AND user_id=$2
	`, reviewID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
