package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound  = errors.New("order not found")
	ErrEmptyCart = errors.New("cart is empty")
)

// TitleResolver maps a game id to its catalog title at checkout time.
type TitleResolver func(gameID string) (string, bool)

type Repository interface {
	// CreateFromCart converts the user's cart into an order atomically:
	// read cart, compute total, insert order + items, clear cart.
	CreateFromCart(ctx context.Context, userID, paymentMethod, idemKey string, resolve TitleResolver) (*Order, []Item, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	GetItems(ctx context.Context, orderID string) ([]Item, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) CreateFromCart(ctx context.Context, userID, paymentMethod, idemKey string, resolve TitleResolver) (*Order, []Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// A retried checkout carrying the same key returns the order the first
	// attempt created instead of billing the (now empty) cart again.
	if idemKey != "" {
		if o, items, err := r.findByIdemKey(ctx, tx, userID, idemKey); err == nil {
			return o, items, tx.Commit(ctx)
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, err
		}
	}

	// Lock the cart rows so a concurrent checkout for the same user waits
	// here and then sees an empty cart. No line is ever billed twice.
	rows, err := tx.Query(ctx, `
		SELECT id, game_id, store_name, price::text
		FROM cart_items WHERE user_id=$1
		ORDER BY created_at, id
		FOR UPDATE
	`, userID)
	if err != nil {
		return nil, nil, err
	}
	type cartLine struct {
		id, gameID, storeName, price string
	}
	var lines []cartLine
	for rows.Next() {
		var l cartLine
		if err := rows.Scan(&l.id, &l.gameID, &l.storeName, &l.price); err != nil {
			rows.Close()
			return nil, nil, err
		}
		lines = append(lines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	if len(lines) == 0 {
		return nil, nil, ErrEmptyCart
	}

	total := decimal.Zero
	for _, l := range lines {
		d, err := decimal.NewFromString(l.price)
		if err != nil {
			return nil, nil, err
		}
		total = total.Add(d)
	}

	o := &Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		TotalAmount:   total.StringFixed(2),
		Status:        StatusCompleted,
		PaymentMethod: paymentMethod,
		CreatedAt:     time.Now(),
	}
	var key any
	if idemKey != "" {
		key = idemKey
	}
	if _, err := tx.Exec(ctx, `
		INSERT INTO orders (id, user_id, total_amount, status, payment_method, idempotency_key, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW())
	`, o.ID, o.UserID, o.TotalAmount, o.Status, o.PaymentMethod, key); err != nil {
		return nil, nil, err
	}

	for _, l := range lines {
		title, ok := resolve(l.gameID)
		if !ok {
			// cart and catalog are not FK-enforced against each other
			title = "Unknown Game"
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, game_id, game_title, store_name, price, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,NOW())
		`, uuid.NewString(), o.ID, l.gameID, title, l.storeName, l.price); err != nil {
			return nil, nil, err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id=$1`, userID); err != nil {
		return nil, nil, err
	}

	items, err := getItemsTx(ctx, tx, o.ID)
	if err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}
	return o, items, nil
}

func (r *PGRepo) findByIdemKey(ctx context.Context, tx pgx.Tx, userID, idemKey string) (*Order, []Item, error) {
	var o Order
	err := tx.QueryRow(ctx, `
		SELECT id, user_id, total_amount::text, status, payment_method, created_at
		FROM orders WHERE user_id=$1 AND idempotency_key=$2
	`, userID, idemKey).Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.PaymentMethod, &o.CreatedAt)
	if err != nil {
		return nil, nil, err
	}
	items, err := getItemsTx(ctx, tx, o.ID)
	if err != nil {
		return nil, nil, err
	}
	return &o, items, nil
}

func getItemsTx(ctx context.Context, tx pgx.Tx, orderID string) ([]Item, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, order_id, game_id, game_title, store_name, price::text, created_at
		FROM order_items WHERE order_id=$1
		ORDER BY created_at, id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.GameID, &it.GameTitle, &it.StoreName, &it.Price, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, total_amount::text, status, payment_method, created_at
		FROM orders WHERE user_id=$1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.PaymentMethod, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetItems(ctx context.Context, orderID string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, game_id, game_title, store_name, price::text, created_at
		FROM order_items WHERE order_id=$1
		ORDER BY created_at, id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.GameID, &it.GameTitle, &it.StoreName, &it.Price, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
