package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliJone/Gaza/internal/models"
)

func TestEntryPayloadRoundTripPreservesCreatedAt(t *testing.T) {
	// Entry serializes created_at as "-" for API responses; the cache
	// payload must still carry it so a cache hit returns the entry the
	// store would.
	created := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)
	alt := "local brands"
	entries := []models.Entry{
		{
			ID:                 "a2e8b7d0-0000-4000-8000-000000000001",
			Name:               "7up",
			ProductName:        "7up",
			ProductDescription: "7up",
			Categories:         []string{"DRINKS"},
			ProofLink:          "https://example.com/proof",
			Alternatives:       &alt,
			Status:             models.StatusPublished,
			CreatedAt:          created,
			UpdatedAt:          created,
		},
	}

	raw, err := encodeEntries(entries)
	require.NoError(t, err)

	got, err := decodeEntries(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].CreatedAt.Equal(created), "created_at lost in cache round trip")
	assert.Equal(t, entries[0].ID, got[0].ID)
	assert.Equal(t, entries[0].Categories, got[0].Categories)
	require.NotNil(t, got[0].Alternatives)
	assert.Equal(t, alt, *got[0].Alternatives)
	assert.Equal(t, models.StatusPublished, got[0].Status)
}

func TestDecodeEntriesCorruptPayload(t *testing.T) {
	_, err := decodeEntries([]byte("not json"))
	assert.Error(t, err)
}
