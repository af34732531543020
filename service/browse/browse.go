package browse

import (
	"context"
	"strings"

	"oasis/core"
)

type service struct {
	catalogSrv core.ICatalogService
}

// New new browse service
func New(catalogSrv core.ICatalogService) core.IBrowseService {
	return &service{
		catalogSrv: catalogSrv,
	}
}

func (s *service) SetSearchTerm(session *core.BrowseSession, term string) {
	session.SearchTerm = term
}

func (s *service) SetTypeFilter(session *core.BrowseSession, f core.TypeFilter) error {
	if !f.Valid() {
		return core.ErrInvalidTypeFilter
	}

	session.TypeFilter = f
	return nil
}

// VisibleAssets filters the catalog by the session's search term and
// type filter, preserving catalog order. The term matches name or
// symbol only, case-insensitive; the network never matches.
func (s *service) VisibleAssets(ctx context.Context, session *core.BrowseSession) ([]*core.Asset, error) {
	assets, err := s.catalogSrv.ListAssets(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(session.SearchTerm)

	visible := make([]*core.Asset, 0, len(assets))
	for _, a := range assets {
		if !strings.Contains(strings.ToLower(a.Name), term) &&
			!strings.Contains(strings.ToLower(a.Symbol), term) {
			continue
		}

		if !session.TypeFilter.Match(a.Type) {
			continue
		}

		visible = append(visible, a)
	}

	return visible, nil
}

func (s *service) ToggleSelected(session *core.BrowseSession, id string, included bool) {
	idx := -1
	for i, selected := range session.Selected {
		if selected == id {
			idx = i
			break
		}
	}

	if included && idx < 0 {
		session.Selected = append(session.Selected, id)
	} else if !included && idx >= 0 {
		session.Selected = append(session.Selected[:idx], session.Selected[idx+1:]...)
	}
}

func (s *service) ClearSelection(session *core.BrowseSession) {
	session.Selected = []string{}
}
