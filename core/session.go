package core

import "context"

// BrowseSession state owned by the browse & select view
type BrowseSession struct {
	ID         string     `json:"id"`
	SearchTerm string     `json:"search_term"`
	TypeFilter TypeFilter `json:"type_filter"`
	Selected   []string   `json:"selected"`
}

// CheckoutSession state owned by the purchase summary view.
// It exists only after an incoming selection token resolved; a
// missing or malformed token never produces a session.
type CheckoutSession struct {
	ID            string        `json:"id"`
	Items         []*LineItem   `json:"items"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// ISessionStore session store interface
type ISessionStore interface {
	CreateBrowse(ctx context.Context) (*BrowseSession, error)
	FindBrowse(ctx context.Context, id string) (*BrowseSession, error)
	SaveBrowse(ctx context.Context, session *BrowseSession) error
	CreateCheckout(ctx context.Context, items []*LineItem) (*CheckoutSession, error)
	FindCheckout(ctx context.Context, id string) (*CheckoutSession, error)
	SaveCheckout(ctx context.Context, session *CheckoutSession) error
}
