package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type memRepo struct {
	items []Item
}

func (m *memRepo) ListByUser(ctx context.Context, userID string) ([]Item, error) {
	var out []Item
	for _, it := range m.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memRepo) Insert(ctx context.Context, it *Item) error {
	for _, existing := range m.items {
		if existing.UserID == it.UserID && existing.GameID == it.GameID {
			return ErrDuplicate
		}
	}
	m.items = append(m.items, *it)
	return nil
}

func (m *memRepo) DeleteByUserGame(ctx context.Context, userID, gameID string) error {
	kept := m.items[:0]
	for _, it := range m.items {
		if !(it.UserID == userID && it.GameID == gameID) {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return nil
}

func TestNormalizePrice(t *testing.T) {
	cases := map[string]string{
		"59.99":  "59.99",
		"59.9":   "59.90",
		"60":     "60.00",
		" 14.99": "14.99",
		"0":      "0.00",
	}
	for in, want := range cases {
		got, err := NormalizePrice(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}

	for _, bad := range []string{"", "abc", "12,50", "-1.00"} {
		_, err := NormalizePrice(bad)
		require.Error(t, err, bad)
	}
}

func TestAdd_ValidatesAndNormalizes(t *testing.T) {
	svc := NewService(&memRepo{})
	ctx := context.Background()

	it, err := svc.Add(ctx, "u1", "1", "Steam", "59.9")
	require.NoError(t, err)
	require.Equal(t, "59.90", it.Price)
	require.NotEmpty(t, it.ID)

	_, err = svc.Add(ctx, "u1", "", "Steam", "59.99")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.Add(ctx, "u1", "2", "  ", "59.99")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.Add(ctx, "u1", "2", "Steam", "cheap")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAdd_DuplicatePassesThrough(t *testing.T) {
	svc := NewService(&memRepo{})
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "1", "Steam", "59.99")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "u1", "1", "GOG", "49.99")
	require.ErrorIs(t, err, ErrDuplicate)

	// a different user can hold the same game
	_, err = svc.Add(ctx, "u2", "1", "Steam", "59.99")
	require.NoError(t, err)
}

func TestList_NeverNil(t *testing.T) {
	svc := NewService(&memRepo{})
	items, err := svc.List(context.Background(), "nobody")
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestRemove_MissingGameIsNoop(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Add(ctx, "u1", "1", "Steam", "59.99")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "u1", "999"))
	items, _ := svc.List(ctx, "u1")
	require.Len(t, items, 1)

	require.NoError(t, svc.Remove(ctx, "u1", "1"))
	require.NoError(t, svc.Remove(ctx, "u1", "1"))
	items, _ = svc.List(ctx, "u1")
	require.Empty(t, items)
}
