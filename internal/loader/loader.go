package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/AliJone/Gaza/internal/models"
	"github.com/AliJone/Gaza/internal/service"
)

// Record is a pre-formed catalog entry as it appears in a seed file.
// Unlike public submissions, records may carry a logo, a whyLink, and
// any status; no validation is applied.
type Record struct {
	Name               string   `json:"name"`
	ProductName        string   `json:"productName"`
	ProductDescription string   `json:"productDescription"`
	Categories         []string `json:"categories"`
	ProofLink          string   `json:"proofLink"`
	ExplanationText    *string  `json:"explanationText"`
	Alternatives       *string  `json:"alternatives"`
	Logo               *string  `json:"logo"`
	WhyLink            *string  `json:"whyLink"`
	Status             string   `json:"status"`
}

// ListingCache is the slice of the cache layer the loader needs:
// dropping the cached public listing after entries change underneath it.
type ListingCache interface {
	Invalidate(ctx context.Context) error
}

// Loader inserts pre-formed entries into the store. It is an
// administrative path invoked out of band, never from the HTTP surface.
type Loader struct {
	store service.EntryStore
	cache ListingCache
}

// New constructs a Loader. cache may be nil for offline loads; when
// present it is invalidated after any record is stored.
func New(store service.EntryStore, cache ListingCache) *Loader {
	return &Loader{store: store, cache: cache}
}

// Load inserts the records one by one. Failures are logged and skipped;
// there is no rollback of previously inserted records. It returns the
// number of records stored. If anything was stored, the cached public
// listing is dropped so the new entries appear immediately.
func (l *Loader) Load(ctx context.Context, records []Record) int {
	inserted := 0
	for i, rec := range records {
		entry := toEntry(rec)
		if err := l.store.Insert(entry); err != nil {
			log.Error().Err(err).Int("index", i).Str("name", rec.Name).Msg("Failed to load record")
			continue
		}
		inserted++
	}

	if inserted > 0 && l.cache != nil {
		if err := l.cache.Invalidate(ctx); err != nil {
			log.Warn().Err(err).Msg("catalog cache invalidation failed")
		}
	}
	return inserted
}

// LoadFile reads a JSON array of records from path and loads it.
func (l *Loader) LoadFile(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("could not read seed file: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return 0, fmt.Errorf("could not parse seed file: %w", err)
	}

	return l.Load(ctx, records), nil
}

// toEntry converts a seed record into a storable entry. Records without
// a status load as published: historically a document with no status
// field was treated as visible, and the loader keeps that meaning.
func toEntry(rec Record) *models.Entry {
	status := models.EntryStatus(rec.Status)
	if status == "" {
		status = models.StatusPublished
	}
	return &models.Entry{
		Name:               rec.Name,
		ProductName:        rec.ProductName,
		ProductDescription: rec.ProductDescription,
		Categories:         rec.Categories,
		ProofLink:          rec.ProofLink,
		ExplanationText:    rec.ExplanationText,
		Alternatives:       rec.Alternatives,
		Logo:               rec.Logo,
		WhyLink:            rec.WhyLink,
		Status:             status,
	}
}
