package views

import (
	"oasis/core"
	"oasis/pkg/number"

	"github.com/spf13/cast"
)

// Asset asset view with display-formatted price and change
type Asset struct {
	core.Asset
	PriceText  string `json:"price_text"`
	ChangeText string `json:"change_text"`
	Selected   bool   `json:"selected"`
}

// Browse browse view: the visible catalog plus the session's selection
type Browse struct {
	SessionID      string   `json:"session_id"`
	Assets         []*Asset `json:"assets"`
	Selected       []string `json:"selected"`
	SelectionLabel string   `json:"selection_label"`
}

// NewAsset build an asset view
func NewAsset(a *core.Asset, selected bool) *Asset {
	return &Asset{
		Asset:      *a,
		PriceText:  number.Money(a.Price),
		ChangeText: number.SignedPercent(a.Change24h),
		Selected:   selected,
	}
}

// NewBrowse build a browse view
func NewBrowse(session *core.BrowseSession, assets []*core.Asset) *Browse {
	selected := make(map[string]bool, len(session.Selected))
	for _, id := range session.Selected {
		selected[id] = true
	}

	assetViews := make([]*Asset, 0, len(assets))
	for _, a := range assets {
		assetViews = append(assetViews, NewAsset(a, selected[a.ID]))
	}

	label := ""
	if n := len(session.Selected); n == 1 {
		label = "1 asset selected"
	} else if n > 1 {
		label = cast.ToString(n) + " assets selected"
	}

	return &Browse{
		SessionID:      session.ID,
		Assets:         assetViews,
		Selected:       session.Selected,
		SelectionLabel: label,
	}
}
