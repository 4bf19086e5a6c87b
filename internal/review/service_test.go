package review

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type memRepo struct {
	reviews []Review
}

func (m *memRepo) ListByGame(ctx context.Context, gameID string) ([]Review, error) {
	var out []Review
	for i := len(m.reviews) - 1; i >= 0; i-- {
		if m.reviews[i].GameID == gameID {
			out = append(out, m.reviews[i])
		}
	}
	return out, nil
}

func (m *memRepo) Insert(ctx context.Context, rv *Review) error {
	for _, existing := range m.reviews {
		if existing.UserID == rv.UserID && existing.GameID == rv.GameID {
			return ErrDuplicate
		}
	}
	m.reviews = append(m.reviews, *rv)
	return nil
}

func (m *memRepo) IncrementHelpful(ctx context.Context, reviewID string) error {
	for i := range m.reviews {
		if m.reviews[i].ID == reviewID {
			m.reviews[i].Helpful++
			m.reviews[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (m *memRepo) DeleteOwned(ctx context.Context, userID, reviewID string) error {
	for i := range m.reviews {
		if m.reviews[i].ID == reviewID && m.reviews[i].UserID == userID {
			m.reviews = append(m.reviews[:i], m.reviews[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func TestCreate_RatingBounds(t *testing.T) {
	svc := NewService(&memRepo{})
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.Create(ctx, "u1", "Ada", CreateRequest{GameID: "1", Rating: rating, Title: "t", Content: "c"})
		require.ErrorIs(t, err, ErrInvalidArgument, "rating %d", rating)
	}
	for rating := 1; rating <= 5; rating++ {
		svc := NewService(&memRepo{})
		rv, err := svc.Create(ctx, "u1", "Ada", CreateRequest{GameID: "1", Rating: rating, Title: "t", Content: "c"})
		require.NoError(t, err)
		require.Equal(t, rating, rv.Rating)
		require.Zero(t, rv.Helpful)
	}
}

func TestCreate_RequiredFields(t *testing.T) {
	svc := NewService(&memRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, "u1", "Ada", CreateRequest{Rating: 3, Title: "t", Content: "c"})
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.Create(ctx, "u1", "Ada", CreateRequest{GameID: "1", Rating: 3, Content: "c"})
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = svc.Create(ctx, "u1", "Ada", CreateRequest{GameID: "1", Rating: 3, Title: "t"})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCreate_SecondReviewSameGameRejected(t *testing.T) {
	svc := NewService(&memRepo{})
	ctx := context.Background()
	req := CreateRequest{GameID: "1", Rating: 3, Title: "ok", Content: "fine"}

	_, err := svc.Create(ctx, "u1", "Ada", req)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", "Ada", req)
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestCreate_AnonymousFallback(t *testing.T) {
	svc := NewService(&memRepo{})
	rv, err := svc.Create(context.Background(), "u1", "", CreateRequest{GameID: "1", Rating: 4, Title: "t", Content: "c"})
	require.NoError(t, err)
	require.Equal(t, "Anonymous", rv.UserName)
}

func TestMarkHelpful_MissingID(t *testing.T) {
	svc := NewService(&memRepo{})
	require.ErrorIs(t, svc.MarkHelpful(context.Background(), ""), ErrInvalidArgument)
	require.ErrorIs(t, svc.MarkHelpful(context.Background(), "ghost"), ErrNotFound)
}

func TestDelete_OwnershipEnforced(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	rv, err := svc.Create(ctx, "u1", "Ada", CreateRequest{GameID: "1", Rating: 5, Title: "t", Content: "c"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, "u2", rv.ID), ErrNotFound)
	require.Len(t, repo.reviews, 1)

	require.NoError(t, svc.Delete(ctx, "u1", rv.ID))
	require.Empty(t, repo.reviews)
}

func TestList_NewestFirst(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, "u1", "Ada", CreateRequest{GameID: "1", Rating: 4, Title: "first", Content: "c"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, "u2", "Bob", CreateRequest{GameID: "1", Rating: 2, Title: "second", Content: "c"})
	require.NoError(t, err)

	out, err := svc.List(ctx, "1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, second.ID, out[0].ID)
	require.Equal(t, first.ID, out[1].ID)
}
