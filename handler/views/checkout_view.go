package views

import (
	"oasis/core"
	"oasis/pkg/number"
)

// LineItem line item view with display-formatted amounts
type LineItem struct {
	core.LineItem
	PriceText string `json:"price_text"`
	TotalText string `json:"total_text"`
}

// Summary order summary view
type Summary struct {
	core.OrderSummary
	SubtotalText   string `json:"subtotal_text"`
	FeeText        string `json:"fee_text"`
	GrandTotalText string `json:"grand_total_text"`
}

// Checkout purchase summary view
type Checkout struct {
	SessionID      string               `json:"session_id"`
	Items          []*LineItem          `json:"items"`
	PaymentMethod  core.PaymentMethod   `json:"payment_method,omitempty"`
	PaymentMethods []core.PaymentMethod `json:"payment_methods"`
	Summary        *Summary             `json:"summary"`
}

// Confirmation submit acknowledgement view
type Confirmation struct {
	TraceID    string             `json:"trace_id"`
	Method     core.PaymentMethod `json:"method"`
	AmountText string             `json:"amount_text"`
	Message    string             `json:"message"`
}

// NewCheckout build a checkout view
func NewCheckout(session *core.CheckoutSession, summary *core.OrderSummary) *Checkout {
	items := make([]*LineItem, 0, len(session.Items))
	for _, item := range session.Items {
		items = append(items, &LineItem{
			LineItem:  *item,
			PriceText: number.Money(item.Price),
			TotalText: number.Money(item.Total),
		})
	}

	return &Checkout{
		SessionID:      session.ID,
		Items:          items,
		PaymentMethod:  session.PaymentMethod,
		PaymentMethods: core.PaymentMethods,
		Summary: &Summary{
			OrderSummary:   *summary,
			SubtotalText:   number.Money(summary.Subtotal),
			FeeText:        number.Money(summary.Fee),
			GrandTotalText: number.Money(summary.GrandTotal),
		},
	}
}

// NewConfirmation build a confirmation view
func NewConfirmation(conf *core.PaymentConfirmation) *Confirmation {
	return &Confirmation{
		TraceID:    conf.TraceID,
		Method:     conf.Method,
		AmountText: number.Money(conf.Amount),
		Message:    conf.Message,
	}
}
