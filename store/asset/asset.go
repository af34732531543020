package asset

import (
	"context"

	"oasis/core"
	"oasis/pkg/number"
)

type assetStore struct {
	assets []*core.Asset
	index  map[string]*core.Asset
}

// New new asset store seeded with the fixed catalog.
// The catalog is immutable after construction; in production this
// store is the piece a live pricing service would replace.
func New() core.IAssetStore {
	assets := []*core.Asset{
		{
			ID:        "btc",
			Name:      "Bitcoin",
			Symbol:    "BTC",
			Network:   "Bitcoin Network",
			Type:      core.AssetTypeCryptocurrency,
			Price:     number.Decimal("42350.00"),
			Change24h: number.Decimal("2.5"),
		},
		{
			ID:        "eth",
			Name:      "Ethereum",
			Symbol:    "ETH",
			Network:   "Ethereum Chain",
			Type:      core.AssetTypeCryptocurrency,
			Price:     number.Decimal("2650.00"),
			Change24h: number.Decimal("-1.2"),
		},
		{
			ID:        "bnb",
			Name:      "Binance Coin",
			Symbol:    "BNB",
			Network:   "BSC Chain",
			Type:      core.AssetTypeCryptocurrency,
			Price:     number.Decimal("315.00"),
			Change24h: number.Decimal("3.8"),
		},
		{
			ID:        "trx",
			Name:      "Tron",
			Symbol:    "TRX",
			Network:   "Tron Network",
			Type:      core.AssetTypeCryptocurrency,
			Price:     number.Decimal("0.105"),
			Change24h: number.Decimal("5.2"),
		},
		{
			ID:        "usdt-erc20",
			Name:      "Tether USD",
			Symbol:    "USDT",
			Network:   "Ethereum Chain",
			Type:      core.AssetTypeToken,
			Standard:  core.StandardERC20,
			Price:     number.Decimal("1.00"),
			Change24h: number.Decimal("0.1"),
		},
		{
			ID:        "usdc-erc20",
			Name:      "USD Coin",
			Symbol:    "USDC",
			Network:   "Ethereum Chain",
			Type:      core.AssetTypeToken,
			Standard:  core.StandardERC20,
			Price:     number.Decimal("1.00"),
			Change24h: number.Decimal("0.0"),
		},
		{
			ID:        "usdt-trc20",
			Name:      "Tether USD",
			Symbol:    "USDT",
			Network:   "Tron Network",
			Type:      core.AssetTypeToken,
			Standard:  core.StandardTRC20,
			Price:     number.Decimal("1.00"),
			Change24h: number.Decimal("0.1"),
		},
		{
			ID:        "busd-bep20",
			Name:      "Binance USD",
			Symbol:    "BUSD",
			Network:   "BSC Chain",
			Type:      core.AssetTypeToken,
			Standard:  core.StandardBEP20,
			Price:     number.Decimal("1.00"),
			Change24h: number.Decimal("0.0"),
		},
	}

	index := make(map[string]*core.Asset, len(assets))
	for _, a := range assets {
		index[a.ID] = a
	}

	return &assetStore{
		assets: assets,
		index:  index,
	}
}

func (s *assetStore) All(ctx context.Context) ([]*core.Asset, error) {
	assets := make([]*core.Asset, len(s.assets))
	copy(assets, s.assets)
	return assets, nil
}

func (s *assetStore) Find(ctx context.Context, id string) (*core.Asset, error) {
	if a, ok := s.index[id]; ok {
		return a, nil
	}

	return nil, core.ErrAssetNotFound
}
