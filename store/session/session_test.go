package session

import (
	"context"
	"testing"
	"time"

	"oasis/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := New(16, time.Minute)

	session, err := store.CreateBrowse(ctx)
	require.Nil(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, core.TypeFilterAll, session.TypeFilter)
	assert.Empty(t, session.Selected)

	session.Selected = append(session.Selected, "btc")
	require.Nil(t, store.SaveBrowse(ctx, session))

	found, err := store.FindBrowse(ctx, session.ID)
	require.Nil(t, err)
	assert.Equal(t, []string{"btc"}, found.Selected)

	_, err = store.FindBrowse(ctx, "missing")
	assert.Equal(t, core.ErrSessionNotFound, err)
}

func TestCheckoutSessionExpiry(t *testing.T) {
	ctx := context.Background()
	store := New(16, 10*time.Millisecond)

	session, err := store.CreateCheckout(ctx, []*core.LineItem{{AssetID: "btc"}})
	require.Nil(t, err)

	found, err := store.FindCheckout(ctx, session.ID)
	require.Nil(t, err)
	require.Len(t, found.Items, 1)

	time.Sleep(30 * time.Millisecond)

	_, err = store.FindCheckout(ctx, session.ID)
	assert.Equal(t, core.ErrSessionNotFound, err)
}
