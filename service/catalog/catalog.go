package catalog

import (
	"context"

	"oasis/core"

	"github.com/shopspring/decimal"
)

type service struct {
	assetStore core.IAssetStore
}

// New new catalog service
func New(assetStr core.IAssetStore) core.ICatalogService {
	return &service{
		assetStore: assetStr,
	}
}

func (s *service) ListAssets(ctx context.Context) ([]*core.Asset, error) {
	return s.assetStore.All(ctx)
}

func (s *service) NameOf(ctx context.Context, id string) string {
	if a, err := s.assetStore.Find(ctx, id); err == nil {
		return a.Name
	}

	return core.UnknownAssetName
}

func (s *service) SymbolOf(ctx context.Context, id string) string {
	if a, err := s.assetStore.Find(ctx, id); err == nil {
		return a.Symbol
	}

	return core.UnknownAssetSymbol
}

func (s *service) NetworkOf(ctx context.Context, id string) string {
	if a, err := s.assetStore.Find(ctx, id); err == nil {
		return a.Network
	}

	return core.UnknownAssetNetwork
}

func (s *service) PriceOf(ctx context.Context, id string) decimal.Decimal {
	if a, err := s.assetStore.Find(ctx, id); err == nil {
		return a.Price
	}

	return decimal.Zero
}
