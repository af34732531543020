package core

import (
	"context"

	"github.com/shopspring/decimal"
)

var (
	// FeeRate fixed processing fee rate
	FeeRate = decimal.New(2, -2)
	// MinQuantity lowest purchasable quantity per line item
	MinQuantity = decimal.New(1, -3)
)

// PaymentMethod payment method choice
type PaymentMethod string

const (
	// PaymentMethodCryptocurrency direct crypto payments
	PaymentMethodCryptocurrency PaymentMethod = "Cryptocurrency"
	// PaymentMethodCashApp quick mobile payments
	PaymentMethodCashApp PaymentMethod = "CashApp"
	// PaymentMethodVenmo social payments
	PaymentMethodVenmo PaymentMethod = "Venmo"
	// PaymentMethodBankTransfer ACH & wire transfers
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
)

// PaymentMethods all accepted methods, display order
var PaymentMethods = []PaymentMethod{
	PaymentMethodCryptocurrency,
	PaymentMethodCashApp,
	PaymentMethodVenmo,
	PaymentMethodBankTransfer,
}

// Valid check the method value
func (m PaymentMethod) Valid() bool {
	for _, method := range PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// LineItem a selected asset with an editable purchase quantity.
// Total is always Price * Quantity, never set directly.
type LineItem struct {
	AssetID  string          `json:"asset_id"`
	Name     string          `json:"name"`
	Symbol   string          `json:"symbol"`
	Network  string          `json:"network"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// OrderSummary totals derived from the current line items
type OrderSummary struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Fee        decimal.Decimal `json:"fee"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// ICheckoutService purchase summary interface
type ICheckoutService interface {
	SetQuantity(session *CheckoutSession, assetID string, quantity decimal.Decimal) error
	SetPaymentMethod(session *CheckoutSession, method PaymentMethod) error
	Summarize(session *CheckoutSession) *OrderSummary
	Submit(ctx context.Context, session *CheckoutSession) (*PaymentConfirmation, error)
}
