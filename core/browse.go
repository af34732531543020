package core

import "context"

// TypeFilter narrows the visible catalog by asset type
type TypeFilter string

const (
	// TypeFilterAll identity filter
	TypeFilterAll TypeFilter = "all"
	// TypeFilterCryptocurrency cryptocurrencies only
	TypeFilterCryptocurrency TypeFilter = "cryptocurrency"
	// TypeFilterToken tokens only
	TypeFilterToken TypeFilter = "token"
)

// Valid check the filter value
func (f TypeFilter) Valid() bool {
	switch f {
	case TypeFilterAll, TypeFilterCryptocurrency, TypeFilterToken:
		return true
	}
	return false
}

// Match report whether an asset of the given type passes the filter
func (f TypeFilter) Match(t AssetType) bool {
	return f == TypeFilterAll || string(f) == string(t)
}

// IBrowseService browse & select interface
type IBrowseService interface {
	SetSearchTerm(session *BrowseSession, term string)
	SetTypeFilter(session *BrowseSession, f TypeFilter) error
	VisibleAssets(ctx context.Context, session *BrowseSession) ([]*Asset, error)
	ToggleSelected(session *BrowseSession, id string, included bool)
	ClearSelection(session *BrowseSession)
}
