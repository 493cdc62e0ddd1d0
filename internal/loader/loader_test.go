package loader

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliJone/Gaza/internal/models"
)

// flakyStore fails Insert for entries whose name matches failName.
type flakyStore struct {
	entries  []models.Entry
	failName string
}

func (s *flakyStore) Insert(e *models.Entry) error {
	if e.Name == s.failName {
		return errors.New("insert failed")
	}
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	s.entries = append(s.entries, *e)
	return nil
}

func (s *flakyStore) ListVisible() ([]models.Entry, error)          { return nil, nil }
func (s *flakyStore) GetByID(string) (*models.Entry, error)         { return nil, sql.ErrNoRows }
func (s *flakyStore) SearchVisible(string) ([]models.Entry, error)  { return nil, nil }
func (s *flakyStore) UpdateStatus(string, models.EntryStatus) error { return nil }
func (s *flakyStore) ListAll(string) ([]models.Entry, error)        { return nil, nil }
func (s *flakyStore) CountByStatus(models.EntryStatus) (int, error) { return 0, nil }

// spyCache records invalidation calls.
type spyCache struct {
	invalidations int
	err           error
}

func (c *spyCache) Invalidate(ctx context.Context) error {
	c.invalidations++
	return c.err
}

func TestLoadDefaultsMissingStatusToPublished(t *testing.T) {
	store := &flakyStore{}
	l := New(store, nil)

	logo := "https://example.com/7up.jpg"
	n := l.Load(context.Background(), []Record{
		{
			Name:               "7up",
			ProductName:        "7up",
			ProductDescription: "7up",
			Categories:         []string{"DRINKS"},
			ProofLink:          "https://example.com/proof",
			Logo:               &logo,
		},
	})

	assert.Equal(t, 1, n)
	require.Len(t, store.entries, 1)
	assert.Equal(t, models.StatusPublished, store.entries[0].Status)
	require.NotNil(t, store.entries[0].Logo)
}

func TestLoadKeepsExplicitStatus(t *testing.T) {
	store := &flakyStore{}
	l := New(store, nil)

	n := l.Load(context.Background(), []Record{
		{Name: "Queue Me", ProductDescription: "x", Status: "pending"},
	})

	assert.Equal(t, 1, n)
	assert.Equal(t, models.StatusPending, store.entries[0].Status)
}

func TestLoadContinuesPastFailures(t *testing.T) {
	store := &flakyStore{failName: "Broken"}
	l := New(store, nil)

	n := l.Load(context.Background(), []Record{
		{Name: "First"},
		{Name: "Broken"},
		{Name: "Third"},
	})

	assert.Equal(t, 2, n)
	require.Len(t, store.entries, 2)
	assert.Equal(t, "First", store.entries[0].Name)
	assert.Equal(t, "Third", store.entries[1].Name)
}

func TestLoadInvalidatesListingCache(t *testing.T) {
	// Loaded entries change what the public listing should show, so
	// the cached listing must be dropped once anything was stored.
	store := &flakyStore{}
	listCache := &spyCache{}
	l := New(store, listCache)

	n := l.Load(context.Background(), []Record{
		{Name: "7up"},
		{Name: "Pepsi"},
	})

	assert.Equal(t, 2, n)
	assert.Equal(t, 1, listCache.invalidations)
}

func TestLoadSkipsInvalidationWhenNothingStored(t *testing.T) {
	store := &flakyStore{failName: "Broken"}
	listCache := &spyCache{}
	l := New(store, listCache)

	n := l.Load(context.Background(), []Record{{Name: "Broken"}})

	assert.Equal(t, 0, n)
	assert.Equal(t, 0, listCache.invalidations)
}

func TestLoadToleratesInvalidationFailure(t *testing.T) {
	store := &flakyStore{}
	listCache := &spyCache{err: errors.New("redis down")}
	l := New(store, listCache)

	n := l.Load(context.Background(), []Record{{Name: "7up"}})

	assert.Equal(t, 1, n)
	require.Len(t, store.entries, 1)
}

func TestLoadFile(t *testing.T) {
	seed := `[
		{
			"logo": "https://example.com/7up.jpg",
			"name": "7up",
			"whyLink": "https://example.com/target/7up",
			"productName": "7up",
			"productDescription": "7up",
			"categories": ["DRINKS"],
			"explanationText": null,
			"alternatives": null,
			"proofLink": "https://example.com/proof"
		}
	]`
	path := filepath.Join(t.TempDir(), "entries.json")
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	store := &flakyStore{}
	listCache := &spyCache{}
	n, err := New(store, listCache).LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, store.entries, 1)
	assert.Nil(t, store.entries[0].ExplanationText)
	require.NotNil(t, store.entries[0].WhyLink)
	assert.Equal(t, 1, listCache.invalidations)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := New(&flakyStore{}, nil).LoadFile(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
