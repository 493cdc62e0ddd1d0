package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AliJone/Gaza/internal/cache"
	"github.com/AliJone/Gaza/internal/models"
	"github.com/AliJone/Gaza/internal/utils"
)

// CatalogService answers the public read patterns against the entry
// store: full visible listing, detail lookup by id, and free-text
// search. Listing and search only ever return entries whose status is
// not pending; the detail lookup historically bypasses that filter,
// which is kept behind the detailIncludePending switch.
type CatalogService struct {
	store                EntryStore
	listCache            *cache.CatalogCache
	detailIncludePending bool
}

// NewCatalogService constructs a CatalogService. listCache may be nil,
// in which case every listing call goes to the store.
func NewCatalogService(store EntryStore, listCache *cache.CatalogCache, detailIncludePending bool) *CatalogService {
	return &CatalogService{
		store:                store,
		listCache:            listCache,
		detailIncludePending: detailIncludePending,
	}
}

// ListVisible returns all entries that are not pending moderation, in
// stable store order. The result is served from cache when available.
func (s *CatalogService) ListVisible(ctx context.Context) ([]models.Entry, error) {
	if s.listCache != nil {
		entries, hit, err := s.listCache.GetVisible(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("catalog cache read failed, falling back to store")
		} else if hit {
			return entries, nil
		}
	}

	entries, err := s.store.ListVisible()
	if err != nil {
		return nil, storeErr(err)
	}

	if s.listCache != nil {
		if err := s.listCache.SetVisible(ctx, entries); err != nil {
			log.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return entries, nil
}

// GetByID returns the entry with the given id. A malformed id yields
// ErrInvalidIdentifier before the store is consulted; a missing entry
// yields ErrNotFound. Pending entries are returned unless the service
// was configured to hide them from the detail view.
func (s *CatalogService) GetByID(id string) (*models.Entry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrInvalidIdentifier
	}

	entry, err := s.store.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, storeErr(err)
	}

	if !s.detailIncludePending && entry.Status == models.StatusPending {
		return nil, utils.ErrNotFound
	}
	return entry, nil
}

// Search returns visible entries matching the query as a
// case-insensitive substring of the name, product name, or product
// description. An empty query matches every visible entry.
func (s *CatalogService) Search(query string) ([]models.Entry, error) {
	entries, err := s.store.SearchVisible(query)
	if err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

// storeErr wraps a store failure so handlers can map it to a 503.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", utils.ErrStoreUnavailable, err)
}
