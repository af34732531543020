package rest

import (
	"net/http"

	"oasis/core"
	"oasis/handler/param"
	"oasis/handler/render"
	"oasis/handler/views"

	"github.com/shopspring/decimal"
)

// purchaseHandler is the purchase view entry point. An existing
// checkout session renders as-is; otherwise the incoming selection
// token is decoded and resolved into a fresh session. A missing or
// malformed token sends the visitor back to the browse flow.
func purchaseHandler(sessionStr core.ISessionStore, transferSrv core.ITransferService, checkoutSrv core.ICheckoutService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Session string `json:"session"`
			Assets  string `json:"assets"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if params.Session != "" {
			if session, err := sessionStr.FindCheckout(ctx, params.Session); err == nil {
				render.JSON(w, views.NewCheckout(session, checkoutSrv.Summarize(session)))
				return
			}
		}

		ids, err := transferSrv.Deserialize(params.Assets)
		if err != nil {
			http.Redirect(w, r, BrowsePath, http.StatusFound)
			return
		}

		items, err := transferSrv.Resolve(ctx, ids)
		if err != nil {
			http.Redirect(w, r, BrowsePath, http.StatusFound)
			return
		}

		session, err := sessionStr.CreateCheckout(ctx, items)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, views.NewCheckout(session, checkoutSrv.Summarize(session)))
	}
}

func quantityHandler(sessionStr core.ISessionStore, checkoutSrv core.ICheckoutService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Session  string          `json:"session"`
			Asset    string          `json:"asset"`
			Quantity decimal.Decimal `json:"quantity"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		session, err := sessionStr.FindCheckout(ctx, params.Session)
		if err != nil {
			renderErr(w, err)
			return
		}

		if err := checkoutSrv.SetQuantity(session, params.Asset, params.Quantity); err != nil {
			renderErr(w, err)
			return
		}

		if err := sessionStr.SaveCheckout(ctx, session); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, views.NewCheckout(session, checkoutSrv.Summarize(session)))
	}
}

func paymentMethodHandler(sessionStr core.ISessionStore, checkoutSrv core.ICheckoutService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Session string `json:"session"`
			Method  string `json:"method"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		session, err := sessionStr.FindCheckout(ctx, params.Session)
		if err != nil {
			renderErr(w, err)
			return
		}

		if err := checkoutSrv.SetPaymentMethod(session, core.PaymentMethod(params.Method)); err != nil {
			renderErr(w, err)
			return
		}

		if err := sessionStr.SaveCheckout(ctx, session); err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, views.NewCheckout(session, checkoutSrv.Summarize(session)))
	}
}

func submitHandler(sessionStr core.ISessionStore, checkoutSrv core.ICheckoutService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Session string `json:"session"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		session, err := sessionStr.FindCheckout(ctx, params.Session)
		if err != nil {
			renderErr(w, err)
			return
		}

		conf, err := checkoutSrv.Submit(ctx, session)
		if err != nil {
			renderErr(w, err)
			return
		}

		render.JSON(w, views.NewConfirmation(conf))
	}
}
