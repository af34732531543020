package rest

import (
	"errors"
	"net/http"

	"oasis/core"
	"oasis/handler/render"

	"github.com/go-chi/chi"
)

// BrowsePath the browse flow entry; malformed checkout entries
// redirect here.
const BrowsePath = "/buy"

// Handle handle rest api request
func Handle(sessionStore core.ISessionStore, catalogService core.ICatalogService, browseService core.IBrowseService, transferService core.ITransferService, checkoutService core.ICheckoutService) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/index", indexHandler(catalogService))
	router.Get("/assets", assetsHandler(sessionStore, browseService))
	router.Post("/selection/toggle", toggleHandler(sessionStore, browseService))
	router.Delete("/selection", clearHandler(sessionStore, browseService))
	router.Get("/selection/checkout-url", checkoutURLHandler(sessionStore, transferService))
	router.Get("/purchase", purchaseHandler(sessionStore, transferService, checkoutService))
	router.Put("/purchase/quantity", quantityHandler(sessionStore, checkoutService))
	router.Put("/purchase/payment-method", paymentMethodHandler(sessionStore, checkoutService))
	router.Post("/purchase/submit", submitHandler(sessionStore, checkoutService))

	return router
}

func renderErr(w http.ResponseWriter, err error) {
	var code core.ErrorCode
	if errors.As(err, &code) {
		render.Error(w, http.StatusBadRequest, int(code), errors.New(code.Hint()))
		return
	}

	render.BadRequest(w, err)
}
