package session

import (
	"context"
	"time"

	"oasis/core"

	"github.com/bluele/gcache"
	"github.com/gofrs/uuid"
)

type sessionStore struct {
	browse   gcache.Cache
	checkout gcache.Cache
	expire   time.Duration
}

// New new session store backed by in-memory lru caches.
// Sessions are working state for a single visit; losing one only
// sends the visitor back to the browse flow.
func New(capacity int, expire time.Duration) core.ISessionStore {
	return &sessionStore{
		browse:   gcache.New(capacity).LRU().Build(),
		checkout: gcache.New(capacity).LRU().Build(),
		expire:   expire,
	}
}

func (s *sessionStore) CreateBrowse(ctx context.Context) (*core.BrowseSession, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	session := &core.BrowseSession{
		ID:         id.String(),
		TypeFilter: core.TypeFilterAll,
		Selected:   []string{},
	}

	if err := s.browse.SetWithExpire(session.ID, session, s.expire); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *sessionStore) FindBrowse(ctx context.Context, id string) (*core.BrowseSession, error) {
	v, err := s.browse.Get(id)
	if err != nil {
		return nil, core.ErrSessionNotFound
	}

	return v.(*core.BrowseSession), nil
}

func (s *sessionStore) SaveBrowse(ctx context.Context, session *core.BrowseSession) error {
	return s.browse.SetWithExpire(session.ID, session, s.expire)
}

func (s *sessionStore) CreateCheckout(ctx context.Context, items []*core.LineItem) (*core.CheckoutSession, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	session := &core.CheckoutSession{
		ID:    id.String(),
		Items: items,
	}

	if err := s.checkout.SetWithExpire(session.ID, session, s.expire); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *sessionStore) FindCheckout(ctx context.Context, id string) (*core.CheckoutSession, error) {
	v, err := s.checkout.Get(id)
	if err != nil {
		return nil, core.ErrSessionNotFound
	}

	return v.(*core.CheckoutSession), nil
}

func (s *sessionStore) SaveCheckout(ctx context.Context, session *core.CheckoutSession) error {
	return s.checkout.SetWithExpire(session.ID, session, s.expire)
}
