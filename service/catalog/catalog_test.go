package catalog

import (
	"context"
	"testing"

	"oasis/core"
	assetstore "oasis/store/asset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookups(t *testing.T) {
	ctx := context.Background()
	srv := New(assetstore.New())

	assert.Equal(t, "Bitcoin", srv.NameOf(ctx, "btc"))
	assert.Equal(t, "USDT", srv.SymbolOf(ctx, "usdt-trc20"))
	assert.Equal(t, "Tron Network", srv.NetworkOf(ctx, "usdt-trc20"))
	assert.Equal(t, "42350", srv.PriceOf(ctx, "btc").String())
}

func TestLookupFallbacks(t *testing.T) {
	ctx := context.Background()
	srv := New(assetstore.New())

	assert.Equal(t, core.UnknownAssetName, srv.NameOf(ctx, "xyz"))
	assert.Equal(t, core.UnknownAssetSymbol, srv.SymbolOf(ctx, "xyz"))
	assert.Equal(t, core.UnknownAssetNetwork, srv.NetworkOf(ctx, "xyz"))
	assert.True(t, srv.PriceOf(ctx, "xyz").IsZero())
}

func TestListAssets(t *testing.T) {
	ctx := context.Background()
	srv := New(assetstore.New())

	assets, err := srv.ListAssets(ctx)
	require.Nil(t, err)
	require.Len(t, assets, 8)
}
