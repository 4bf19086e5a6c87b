package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biblion/gamevault/internal/catalog"
)

type memRepo struct {
	lastPayment string
	lastIdemKey string
	orders      []Order
	items       map[string][]Item
	cart        []struct{ gameID, storeName, price string }
}

func (m *memRepo) CreateFromCart(ctx context.Context, userID, paymentMethod, idemKey string, resolve TitleResolver) (*Order, []Item, error) {
	m.lastPayment = paymentMethod
	m.lastIdemKey = idemKey
	if len(m.cart) == 0 {
		return nil, nil, ErrEmptyCart
	}
	o := Order{ID: "o1", UserID: userID, TotalAmount: "0.00", Status: StatusCompleted, PaymentMethod: paymentMethod}
	var items []Item
	for i, l := range m.cart {
		title, ok := resolve(l.gameID)
		if !ok {
			title = "Unknown Game"
		}
		items = append(items, Item{ID: string(rune('a' + i)), OrderID: o.ID, GameID: l.gameID, GameTitle: title, StoreName: l.storeName, Price: l.price})
	}
	m.cart = nil
	m.orders = append(m.orders, o)
	if m.items == nil {
		m.items = map[string][]Item{}
	}
	m.items[o.ID] = items
	return &o, items, nil
}

func (m *memRepo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	var out []Order
	for i := len(m.orders) - 1; i >= 0; i-- {
		if m.orders[i].UserID == userID {
			out = append(out, m.orders[i])
		}
	}
	return out, nil
}

func (m *memRepo) GetItems(ctx context.Context, orderID string) ([]Item, error) {
	return m.items[orderID], nil
}

func TestPlaceOrder_DefaultsPaymentMethod(t *testing.T) {
	repo := &memRepo{cart: []struct{ gameID, storeName, price string }{{"1", "Steam", "59.99"}}}
	svc := NewService(repo, catalog.Default())

	out, err := svc.PlaceOrder(context.Background(), "u1", "", "")
	require.NoError(t, err)
	require.Equal(t, "card", repo.lastPayment)
	require.Equal(t, "completed", out.Status)
}

func TestPlaceOrder_KeepsCallerPaymentMethod(t *testing.T) {
	repo := &memRepo{cart: []struct{ gameID, storeName, price string }{{"1", "Steam", "59.99"}}}
	svc := NewService(repo, catalog.Default())

	_, err := svc.PlaceOrder(context.Background(), "u1", "crypto", "key-1")
	require.NoError(t, err)
	require.Equal(t, "crypto", repo.lastPayment)
	require.Equal(t, "key-1", repo.lastIdemKey)
}

func TestPlaceOrder_TitleSnapshots(t *testing.T) {
	repo := &memRepo{cart: []struct{ gameID, storeName, price string }{
		{"1", "Steam", "59.99"},
		{"bogus", "GOG", "9.99"},
	}}
	svc := NewService(repo, catalog.Default())

	out, err := svc.PlaceOrder(context.Background(), "u1", "card", "")
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	require.Equal(t, "Elden Ring", out.Items[0].GameTitle)
	require.Equal(t, "Unknown Game", out.Items[1].GameTitle)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	svc := NewService(&memRepo{}, catalog.Default())
	_, err := svc.PlaceOrder(context.Background(), "u1", "card", "")
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestListOrders_JoinsItemsPerOrder(t *testing.T) {
	repo := &memRepo{
		orders: []Order{
			{ID: "o1", UserID: "u1", TotalAmount: "59.99"},
			{ID: "o2", UserID: "u1", TotalAmount: "14.99"},
			{ID: "o3", UserID: "someone-else", TotalAmount: "1.00"},
		},
		items: map[string][]Item{
			"o1": {{ID: "a", OrderID: "o1", GameID: "1"}},
			"o2": {{ID: "b", OrderID: "o2", GameID: "8"}},
		},
	}
	svc := NewService(repo, catalog.Default())

	out, err := svc.ListOrders(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "o2", out[0].ID) // newest first
	require.Equal(t, "o1", out[1].ID)
	require.Len(t, out[0].Items, 1)
	require.Equal(t, "8", out[0].Items[0].GameID)
	require.Len(t, out[1].Items, 1)
	require.Equal(t, "1", out[1].Items[0].GameID)
}
