package cart

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrDuplicate means the (user, game) pair already has a cart line.
	ErrDuplicate = errors.New("item already in cart")
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Item, error)
	Insert(ctx context.Context, it *Item) error
	DeleteByUserGame(ctx context.Context, userID, gameID string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, game_id, store_name, price::text, created_at
		FROM cart_items WHERE user_id=$1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.UserID, &it.GameID, &it.StoreName, &it.Price, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PGRepo) Insert(ctx context.Context, it *Item) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO cart_items (id, user_id, game_id, store_name, price, created_at)
		VALUES ($1,$2,$3,$4,$5,NOW())
	`, it.ID, it.UserID, it.GameID, it.StoreName, it.Price)
	if err != nil {
		// unique_violation on (user_id, game_id): concurrent adds get one winner
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// DeleteByUserGame is idempotent: removing a line that is not there is fine.
func (r *PGRepo) DeleteByUserGame(ctx context.Context, userID, gameID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		DELETE FROM cart_items WHERE user_id=$1 AND game_id=$2
	`, userID, gameID)
	return err
}
