package payment

import (
	"context"
	"fmt"

	"oasis/core"
	"oasis/pkg/number"

	"github.com/fatih/structs"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

type gateway struct{}

// New new logging payment gateway. This is the stand-in for the real
// payment processor: it records the handoff payload and confirms the
// amount and method without moving money.
func New() core.PaymentGateway {
	return &gateway{}
}

func (g *gateway) Collect(ctx context.Context, req *core.PaymentRequest) (*core.PaymentConfirmation, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	logrus.WithField("trace_id", id.String()).
		WithFields(structs.Map(req)).
		Info("proceeding to payment")

	return &core.PaymentConfirmation{
		TraceID: id.String(),
		Method:  req.Method,
		Amount:  req.GrandTotal,
		Message: fmt.Sprintf("Payment processing would begin here. Total: %s, Method: %s", number.Money(req.GrandTotal), req.Method),
	}, nil
}
