package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliJone/Gaza/internal/models"
	"github.com/AliJone/Gaza/internal/utils"
)

func entry(name, productName, description string, status models.EntryStatus) models.Entry {
	return models.Entry{
		Name:               name,
		ProductName:        productName,
		ProductDescription: description,
		Categories:         []string{"FOOD"},
		ProofLink:          "https://example.com/proof",
		Status:             status,
	}
}

func TestListVisibleExcludesPending(t *testing.T) {
	store := seedStore(
		entry("7up", "7up", "7up", models.StatusPublished),
		entry("Pending Co", "", "x", models.StatusPending),
	)
	svc := NewCatalogService(store, nil, true)

	entries, err := svc.ListVisible(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "7up", entries[0].Name)
}

func TestSearchNeverReturnsPending(t *testing.T) {
	store := seedStore(
		entry("Pending Co", "Pending Co", "Pending Co", models.StatusPending),
	)
	svc := NewCatalogService(store, nil, true)

	for _, q := range []string{"", "Pending", "pending co", "Co"} {
		entries, err := svc.Search(q)
		require.NoError(t, err)
		assert.Empty(t, entries, "query %q must not surface pending entries", q)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	store := seedStore(
		entry("Coca-Cola", "Coca-Cola", "Soft drink", models.StatusPublished),
	)
	svc := NewCatalogService(store, nil, true)

	lower, err := svc.Search("coca")
	require.NoError(t, err)
	upper, err := svc.Search("COCA")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
	require.Len(t, lower, 1)
}

func TestSearchMatchesAnyField(t *testing.T) {
	store := seedStore(
		entry("BrandOnly", "other", "other", models.StatusPublished),
		entry("other", "ProductOnly", "other", models.StatusPublished),
		entry("other", "other", "DescriptionOnly", models.StatusPublished),
	)
	svc := NewCatalogService(store, nil, true)

	tests := []struct {
		query string
		want  string
	}{
		{"brandonly", "BrandOnly"},
		{"productonly", "other"},
		{"descriptiononly", "other"},
	}
	for _, tt := range tests {
		entries, err := svc.Search(tt.query)
		require.NoError(t, err)
		require.Len(t, entries, 1, "query %q", tt.query)
		assert.Equal(t, tt.want, entries[0].Name)
	}
}

func TestSearchEmptyQueryReturnsAllVisible(t *testing.T) {
	store := seedStore(
		entry("7up", "7up", "7up", models.StatusPublished),
		entry("Aero", "Aero", "Aero", models.StatusPublished),
		entry("Hidden", "Hidden", "Hidden", models.StatusPending),
	)
	svc := NewCatalogService(store, nil, true)

	entries, err := svc.Search("")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSearchNoMatches(t *testing.T) {
	store := seedStore(
		entry("7up", "7up", "7up", models.StatusPublished),
	)
	svc := NewCatalogService(store, nil, true)

	entries, err := svc.Search("nonexistent")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetByIDInvalidIdentifier(t *testing.T) {
	svc := NewCatalogService(seedStore(), nil, true)

	_, err := svc.GetByID("not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrInvalidIdentifier)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewCatalogService(seedStore(), nil, true)

	_, err := svc.GetByID("a2e8b7d0-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestGetByIDReturnsPendingEntry(t *testing.T) {
	// The detail view historically bypasses the visibility filter.
	store := seedStore(entry("Pending Co", "", "x", models.StatusPending))
	svc := NewCatalogService(store, nil, true)

	got, err := svc.GetByID(store.entries[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestGetByIDHidesPendingWhenConfigured(t *testing.T) {
	store := seedStore(entry("Pending Co", "", "x", models.StatusPending))
	svc := NewCatalogService(store, nil, false)

	_, err := svc.GetByID(store.entries[0].ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListVisibleWrapsStoreFailure(t *testing.T) {
	store := &fakeEntryStore{listErr: assert.AnError}
	svc := NewCatalogService(store, nil, true)

	_, err := svc.ListVisible(context.Background())
	assert.ErrorIs(t, err, utils.ErrStoreUnavailable)
}
