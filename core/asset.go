package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// AssetType asset kind
type AssetType string

const (
	// AssetTypeCryptocurrency native chain coin
	AssetTypeCryptocurrency AssetType = "cryptocurrency"
	// AssetTypeToken token on a host chain
	AssetTypeToken AssetType = "token"
)

// token standards
const (
	StandardERC20 = "ERC-20"
	StandardTRC20 = "TRC-20"
	StandardBEP20 = "BEP-20"
)

// fallback display values for ids missing from the catalog
const (
	UnknownAssetName    = "Unknown Asset"
	UnknownAssetSymbol  = "UNK"
	UnknownAssetNetwork = "Unknown Network"
)

// Asset catalog entry. Standard is set iff Type is token.
type Asset struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Symbol    string          `json:"symbol"`
	Network   string          `json:"network"`
	Type      AssetType       `json:"type"`
	Standard  string          `json:"standard,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Change24h decimal.Decimal `json:"change_24h"`
}

// IAssetStore asset store interface
type IAssetStore interface {
	All(ctx context.Context) ([]*Asset, error)
	Find(ctx context.Context, id string) (*Asset, error)
}

// ICatalogService catalog interface. The lookup methods are total:
// an unrecognized id yields the fallback value, never an error.
type ICatalogService interface {
	ListAssets(ctx context.Context) ([]*Asset, error)
	NameOf(ctx context.Context, id string) string
	SymbolOf(ctx context.Context, id string) string
	NetworkOf(ctx context.Context, id string) string
	PriceOf(ctx context.Context, id string) decimal.Decimal
}
