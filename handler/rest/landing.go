package rest

import (
	"net/http"

	"oasis/core"
	"oasis/handler/render"
	"oasis/handler/views"
)

var tokenStandards = []*views.TokenStandard{
	{Name: core.StandardERC20, Description: "Ethereum tokens"},
	{Name: core.StandardTRC20, Description: "Tron tokens"},
	{Name: core.StandardBEP20, Description: "BSC tokens"},
}

var paymentOptions = []*views.PaymentOption{
	{Name: string(core.PaymentMethodCryptocurrency), Description: "Direct crypto payments"},
	{Name: string(core.PaymentMethodCashApp), Description: "Quick mobile payments"},
	{Name: string(core.PaymentMethodVenmo), Description: "Social payments"},
	{Name: string(core.PaymentMethodBankTransfer), Description: "ACH & Wire transfers"},
}

var features = []*views.Feature{
	{Title: "Secure Transactions", Description: "Multi-signature wallets and cold storage protection"},
	{Title: "Fast Processing", Description: "Quick confirmation and delivery to your wallet"},
	{Title: "Multiple Tokens", Description: "Support for major cryptocurrencies and token standards"},
}

func indexHandler(catalogSrv core.ICatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assets, err := catalogSrv.ListAssets(r.Context())
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		assetViews := make([]*views.Asset, 0, len(assets))
		for _, a := range assets {
			assetViews = append(assetViews, views.NewAsset(a, false))
		}

		render.JSON(w, &views.Landing{
			Assets:         assetViews,
			TokenStandards: tokenStandards,
			PaymentOptions: paymentOptions,
			Features:       features,
		})
	}
}
