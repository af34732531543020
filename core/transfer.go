package core

import "context"

// ITransferService selection transfer interface. Serialize produces the
// url-safe token carried on the assets query parameter; Deserialize is
// the untrusted side and fails with ErrMalformedSelection.
type ITransferService interface {
	Serialize(ids []string) string
	Deserialize(token string) ([]string, error)
	Resolve(ctx context.Context, ids []string) ([]*LineItem, error)
}
