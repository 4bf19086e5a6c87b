package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()
	require.NotEmpty(t, cat.List())

	g, ok := cat.Get("1")
	require.True(t, ok)
	require.Equal(t, "Elden Ring", g.Title)
	require.NotEmpty(t, g.Stores)

	title, ok := cat.Title("9")
	require.True(t, ok)
	require.Equal(t, "The Witcher 3: Wild Hunt", title)

	_, ok = cat.Get("does-not-exist")
	require.False(t, ok)
	_, ok = cat.Title("does-not-exist")
	require.False(t, ok)
}

func TestStaticIndexesByID(t *testing.T) {
	cat := NewStatic([]Game{
		{ID: "x", Title: "X", Stores: []Store{{Name: "Steam", Price: "1.00"}}},
	})
	g, ok := cat.Get("x")
	require.True(t, ok)
	require.Equal(t, "X", g.Title)
}
