package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentRequest handoff payload for the payment collaborator
type PaymentRequest struct {
	Items      []*LineItem     `json:"items"`
	Method     PaymentMethod   `json:"method"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// PaymentConfirmation acknowledgement of an accepted handoff
type PaymentConfirmation struct {
	TraceID string          `json:"trace_id"`
	Method  PaymentMethod   `json:"method"`
	Amount  decimal.Decimal `json:"amount"`
	Message string          `json:"message"`
}

// PaymentGateway external payment collaborator
type PaymentGateway interface {
	Collect(ctx context.Context, req *PaymentRequest) (*PaymentConfirmation, error)
}
