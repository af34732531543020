package checkout

import (
	"context"

	"oasis/core"

	"github.com/shopspring/decimal"
)

type service struct {
	gateway        core.PaymentGateway
	strictQuantity bool
}

// New new checkout service. With strictQuantity false a sub-floor
// quantity edit keeps the previous quantity silently, matching the
// forgiving input behavior of the product; true surfaces the error.
func New(gateway core.PaymentGateway, strictQuantity bool) core.ICheckoutService {
	return &service{
		gateway:        gateway,
		strictQuantity: strictQuantity,
	}
}

func (s *service) SetQuantity(session *core.CheckoutSession, assetID string, quantity decimal.Decimal) error {
	if quantity.LessThan(core.MinQuantity) {
		if s.strictQuantity {
			return core.ErrInvalidQuantity
		}
		return nil
	}

	for _, item := range session.Items {
		if item.AssetID == assetID {
			item.Quantity = quantity
			item.Total = item.Price.Mul(quantity)
			break
		}
	}

	return nil
}

func (s *service) SetPaymentMethod(session *core.CheckoutSession, method core.PaymentMethod) error {
	if !method.Valid() {
		return core.ErrInvalidPaymentMethod
	}

	session.PaymentMethod = method
	return nil
}

func (s *service) Summarize(session *core.CheckoutSession) *core.OrderSummary {
	subtotal := decimal.Zero
	for _, item := range session.Items {
		subtotal = subtotal.Add(item.Total)
	}

	fee := subtotal.Mul(core.FeeRate)

	return &core.OrderSummary{
		Subtotal:   subtotal,
		Fee:        fee,
		GrandTotal: subtotal.Add(fee),
	}
}

func (s *service) Submit(ctx context.Context, session *core.CheckoutSession) (*core.PaymentConfirmation, error) {
	if len(session.Items) == 0 {
		return nil, core.ErrEmptyCheckout
	}

	if session.PaymentMethod == "" {
		return nil, core.ErrMissingPaymentMethod
	}

	summary := s.Summarize(session)

	return s.gateway.Collect(ctx, &core.PaymentRequest{
		Items:      session.Items,
		Method:     session.PaymentMethod,
		GrandTotal: summary.GrandTotal,
	})
}
