package service

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AliJone/Gaza/internal/models"
)

// fakeEntryStore is an in-memory EntryStore implementing the same
// contract as the SQL repository.
type fakeEntryStore struct {
	entries   []models.Entry
	insertErr error
	listErr   error
}

func (f *fakeEntryStore) ListVisible() ([]models.Entry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Entry{}
	for _, e := range f.entries {
		if e.Status != models.StatusPending {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryStore) GetByID(id string) (*models.Entry, error) {
	for i := range f.entries {
		if f.entries[i].ID == id {
			e := f.entries[i]
			return &e, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeEntryStore) SearchVisible(query string) ([]models.Entry, error) {
	q := strings.ToLower(query)
	out := []models.Entry{}
	for _, e := range f.entries {
		if e.Status == models.StatusPending {
			continue
		}
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.ProductName), q) ||
			strings.Contains(strings.ToLower(e.ProductDescription), q) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryStore) Insert(e *models.Entry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeEntryStore) UpdateStatus(id string, status models.EntryStatus) error {
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries[i].Status = status
			f.entries[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeEntryStore) ListAll(status string) ([]models.Entry, error) {
	out := []models.Entry{}
	for _, e := range f.entries {
		if status == "" || string(e.Status) == status {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryStore) CountByStatus(status models.EntryStatus) (int, error) {
	n := 0
	for _, e := range f.entries {
		if e.Status == status {
			n++
		}
	}
	return n, nil
}

// seedStore builds a fake store pre-populated with the given entries,
// assigning ids as the real store would.
func seedStore(entries ...models.Entry) *fakeEntryStore {
	f := &fakeEntryStore{}
	for i := range entries {
		e := entries[i]
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		f.entries = append(f.entries, e)
	}
	return f
}
