package transfer

import (
	"context"
	"encoding/json"
	"net/url"

	"oasis/core"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

type service struct {
	catalogSrv   core.ICatalogService
	maxSelection int
}

// New new transfer service
func New(catalogSrv core.ICatalogService, maxSelection int) core.ITransferService {
	return &service{
		catalogSrv:   catalogSrv,
		maxSelection: maxSelection,
	}
}

func (s *service) Serialize(ids []string) string {
	if ids == nil {
		ids = []string{}
	}

	data, _ := json.Marshal(ids)
	return url.QueryEscape(string(data))
}

// Deserialize decodes a selection token back into the ordered id
// sequence. The token crosses a navigation boundary and is untrusted:
// anything but a bounded json array of strings is rejected.
func (s *service) Deserialize(token string) ([]string, error) {
	if token == "" {
		return nil, core.ErrMalformedSelection
	}

	raw, err := url.QueryUnescape(token)
	if err != nil {
		return nil, core.ErrMalformedSelection
	}

	if !govalidator.IsJSON(raw) {
		return nil, core.ErrMalformedSelection
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil || ids == nil {
		return nil, core.ErrMalformedSelection
	}

	if len(ids) > s.maxSelection {
		return nil, core.ErrMalformedSelection
	}

	return ids, nil
}

// Resolve maps ids through the catalog into line items with an
// initial quantity of one. Ids missing from the catalog become
// fallback items priced at zero rather than failing the flow.
func (s *service) Resolve(ctx context.Context, ids []string) ([]*core.LineItem, error) {
	items := make([]*core.LineItem, 0, len(ids))
	for _, id := range ids {
		price := s.catalogSrv.PriceOf(ctx, id)
		items = append(items, &core.LineItem{
			AssetID:  id,
			Name:     s.catalogSrv.NameOf(ctx, id),
			Symbol:   s.catalogSrv.SymbolOf(ctx, id),
			Network:  s.catalogSrv.NetworkOf(ctx, id),
			Price:    price,
			Quantity: decimal.New(1, 0),
			Total:    price,
		})
	}

	return items, nil
}
