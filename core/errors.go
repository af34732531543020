package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unkown
	ErrUnknown ErrorCode = 100000

	// ErrAssetNotFound no such asset in the catalog
	ErrAssetNotFound ErrorCode = 100100
	// ErrMalformedSelection the selection token is missing or unreadable
	ErrMalformedSelection ErrorCode = 100101
	// ErrInvalidQuantity quantity below the purchasable floor
	ErrInvalidQuantity ErrorCode = 100102
	// ErrMissingPaymentMethod submit without a payment method
	ErrMissingPaymentMethod ErrorCode = 100103
	// ErrInvalidPaymentMethod method outside the accepted set
	ErrInvalidPaymentMethod ErrorCode = 100104
	// ErrEmptyCheckout submit with no line items
	ErrEmptyCheckout ErrorCode = 100105
	// ErrInvalidTypeFilter filter outside all/cryptocurrency/token
	ErrInvalidTypeFilter ErrorCode = 100106
	// ErrSessionNotFound session expired or never existed
	ErrSessionNotFound ErrorCode = 100107
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}

// Hint user facing message
func (e ErrorCode) Hint() string {
	switch e {
	case ErrAssetNotFound:
		return "asset not found"
	case ErrMalformedSelection:
		return "selection could not be read"
	case ErrInvalidQuantity:
		return "quantity must be at least 0.001"
	case ErrMissingPaymentMethod:
		return "Please select a payment method"
	case ErrInvalidPaymentMethod:
		return "unsupported payment method"
	case ErrEmptyCheckout:
		return "no assets selected"
	case ErrInvalidTypeFilter:
		return "unsupported asset type filter"
	case ErrSessionNotFound:
		return "session expired"
	default:
		return "unexpected error"
	}
}
