package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AliJone/Gaza/internal/cache"
	"github.com/AliJone/Gaza/internal/models"
	"github.com/AliJone/Gaza/internal/utils"
)

// ModerationService is the administrative side of the entry lifecycle:
// it inspects the full queue (pending included) and transitions entries
// out of pending. Public submissions only ever create pending entries;
// this service is the one place a status changes afterwards.
type ModerationService struct {
	store     EntryStore
	listCache *cache.CatalogCache
}

// NewModerationService constructs a ModerationService. listCache may be
// nil; when present it is invalidated on every status change.
func NewModerationService(store EntryStore, listCache *cache.CatalogCache) *ModerationService {
	return &ModerationService{store: store, listCache: listCache}
}

// ListEntries returns all entries, optionally filtered by exact status.
func (s *ModerationService) ListEntries(status string) ([]models.Entry, error) {
	entries, err := s.store.ListAll(status)
	if err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

// SetStatus transitions an entry to the given status and drops the
// cached public listing so the change is visible immediately.
func (s *ModerationService) SetStatus(ctx context.Context, id string, status models.EntryStatus) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrInvalidIdentifier
	}
	if status == "" {
		return utils.ErrInvalidStatus
	}

	if err := s.store.UpdateStatus(id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrNotFound
		}
		return storeErr(err)
	}

	if s.listCache != nil {
		if err := s.listCache.Invalidate(ctx); err != nil {
			log.Warn().Err(err).Msg("catalog cache invalidation failed")
		}
	}

	log.Info().Str("entry_id", id).Str("status", string(status)).Msg("Entry status updated")
	return nil
}

// PendingCount returns the size of the moderation backlog.
func (s *ModerationService) PendingCount() (int, error) {
	n, err := s.store.CountByStatus(models.StatusPending)
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}
