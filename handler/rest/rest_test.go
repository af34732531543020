package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"oasis/core"
	"oasis/service/browse"
	"oasis/service/catalog"
	"oasis/service/checkout"
	"oasis/service/payment"
	"oasis/service/transfer"
	assetstore "oasis/store/asset"
	sessionstore "oasis/store/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler() http.Handler {
	assetStore := assetstore.New()
	sessionStore := sessionstore.New(64, time.Minute)
	catalogSrv := catalog.New(assetStore)

	return Handle(
		sessionStore,
		catalogSrv,
		browse.New(catalogSrv),
		transfer.New(catalogSrv, 32),
		checkout.New(payment.New(), false),
	)
}

func doJSON(t *testing.T, handler http.Handler, method, target string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.Nil(t, err)
		reader = strings.NewReader(string(data))
	} else {
		reader = strings.NewReader("")
	}

	r := httptest.NewRequest(method, target, reader)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	var resp map[string]interface{}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}

	return w, resp
}

func TestIndex(t *testing.T) {
	handler := newHandler()

	w, resp := doJSON(t, handler, http.MethodGet, "/index", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Len(t, resp["assets"], 8)
	assert.Len(t, resp["token_standards"], 3)
	assert.Len(t, resp["payment_options"], 4)
	assert.Len(t, resp["features"], 3)
}

func TestAssetsFilter(t *testing.T) {
	handler := newHandler()

	w, resp := doJSON(t, handler, http.MethodGet, "/assets?search=eth&type=cryptocurrency", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, resp["session_id"])

	assets := resp["assets"].([]interface{})
	require.Len(t, assets, 1)
	first := assets[0].(map[string]interface{})
	assert.Equal(t, "eth", first["id"])
	assert.Equal(t, "$2,650.00", first["price_text"])
	assert.Equal(t, "-1.2%", first["change_text"])
}

func TestAssetsBadFilter(t *testing.T) {
	handler := newHandler()

	w, resp := doJSON(t, handler, http.MethodGet, "/assets?type=nft", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, float64(core.ErrInvalidTypeFilter), resp["code"])
}

func TestPurchaseWithoutToken(t *testing.T) {
	handler := newHandler()

	w, _ := doJSON(t, handler, http.MethodGet, "/purchase", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, BrowsePath, w.Header().Get("Location"))
}

func TestPurchaseMalformedToken(t *testing.T) {
	handler := newHandler()

	w, _ := doJSON(t, handler, http.MethodGet, "/purchase?assets="+url.QueryEscape("{broken"), nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, BrowsePath, w.Header().Get("Location"))
}

func TestPurchaseUnknownAsset(t *testing.T) {
	handler := newHandler()

	token := url.QueryEscape(`["xyz"]`)
	w, resp := doJSON(t, handler, http.MethodGet, "/purchase?assets="+token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := resp["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, core.UnknownAssetName, item["name"])
	assert.Equal(t, core.UnknownAssetSymbol, item["symbol"])
	assert.Equal(t, "$0.0000", item["total_text"])
}

func TestBuyToSubmitFlow(t *testing.T) {
	handler := newHandler()

	// browse and select bitcoin
	w, resp := doJSON(t, handler, http.MethodGet, "/assets", nil)
	require.Equal(t, http.StatusOK, w.Code)
	browseSession := resp["session_id"].(string)

	w, resp = doJSON(t, handler, http.MethodPost, "/selection/toggle", map[string]interface{}{
		"session":  browseSession,
		"asset":    "btc",
		"selected": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"btc"}, resp["selected"])

	// handoff url
	w, resp = doJSON(t, handler, http.MethodGet, "/selection/checkout-url?session="+browseSession, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/purchase?assets=%5B%22btc%22%5D", resp["url"])

	// purchase view resolves the token
	w, resp = doJSON(t, handler, http.MethodGet, "/purchase?assets=%5B%22btc%22%5D", nil)
	require.Equal(t, http.StatusOK, w.Code)
	checkoutSession := resp["session_id"].(string)

	summary := resp["summary"].(map[string]interface{})
	assert.Equal(t, "$42,350.00", summary["subtotal_text"])
	assert.Equal(t, "$847.00", summary["fee_text"])
	assert.Equal(t, "$43,197.00", summary["grand_total_text"])

	// submit without a payment method is blocked
	w, resp = doJSON(t, handler, http.MethodPost, "/purchase/submit", map[string]interface{}{
		"session": checkoutSession,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please select a payment method", resp["msg"])

	// quantity edit reprices the line and the summary
	w, resp = doJSON(t, handler, http.MethodPut, "/purchase/quantity", map[string]interface{}{
		"session":  checkoutSession,
		"asset":    "btc",
		"quantity": "2",
	})
	require.Equal(t, http.StatusOK, w.Code)
	summary = resp["summary"].(map[string]interface{})
	assert.Equal(t, "$84,700.00", summary["subtotal_text"])
	assert.Equal(t, "$86,394.00", summary["grand_total_text"])

	// sub-floor quantity is a silent no-op
	w, resp = doJSON(t, handler, http.MethodPut, "/purchase/quantity", map[string]interface{}{
		"session":  checkoutSession,
		"asset":    "btc",
		"quantity": "0.0001",
	})
	require.Equal(t, http.StatusOK, w.Code)
	summary = resp["summary"].(map[string]interface{})
	assert.Equal(t, "$84,700.00", summary["subtotal_text"])

	// choose a method and submit
	w, _ = doJSON(t, handler, http.MethodPut, "/purchase/payment-method", map[string]interface{}{
		"session": checkoutSession,
		"method":  "Venmo",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, handler, http.MethodPost, "/purchase/submit", map[string]interface{}{
		"session": checkoutSession,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Venmo", resp["method"])
	assert.Equal(t, "$86,394.00", resp["amount_text"])
	assert.NotEmpty(t, resp["trace_id"])
}

func TestSubmitEmptyCheckout(t *testing.T) {
	handler := newHandler()

	w, resp := doJSON(t, handler, http.MethodGet, "/purchase?assets=%5B%5D", nil)
	require.Equal(t, http.StatusOK, w.Code)
	checkoutSession := resp["session_id"].(string)

	w, resp = doJSON(t, handler, http.MethodPost, "/purchase/submit", map[string]interface{}{
		"session": checkoutSession,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, float64(core.ErrEmptyCheckout), resp["code"])
}

func TestCheckoutSessionExpired(t *testing.T) {
	handler := newHandler()

	w, resp := doJSON(t, handler, http.MethodPut, "/purchase/quantity", map[string]interface{}{
		"session":  "missing",
		"asset":    "btc",
		"quantity": "2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, float64(core.ErrSessionNotFound), resp["code"])
}
