package handler

import (
	"database/sql"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AliJone/Gaza/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memStore is an in-memory service.EntryStore for handler tests.
type memStore struct {
	entries   []models.Entry
	insertErr error
}

func (m *memStore) ListVisible() ([]models.Entry, error) {
	out := []models.Entry{}
	for _, e := range m.entries {
		if e.Status != models.StatusPending {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memStore) GetByID(id string) (*models.Entry, error) {
	for i := range m.entries {
		if m.entries[i].ID == id {
			e := m.entries[i]
			return &e, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memStore) SearchVisible(query string) ([]models.Entry, error) {
	q := strings.ToLower(query)
	out := []models.Entry{}
	for _, e := range m.entries {
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

func (m *memStore) Insert(e *models.Entry) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memStore) UpdateStatus(id string, status models.EntryStatus) error {
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries[i].Status = status
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memStore) ListAll(status string) ([]models.Entry, error) {
	out := []models.Entry{}
	for _, e := range m.entries {
		if status == "" || string(e.Status) == status {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memStore) CountByStatus(status models.EntryStatus) (int, error) {
	n := 0
	for _, e := range m.entries {
		if e.Status == status {
			n++
		}
	}
	return n, nil
}

func published(name string) models.Entry {
	return models.Entry{
		ID:                 uuid.NewString(),
		Name:               name,
		ProductName:        name,
		ProductDescription: name,
		Categories:         []string{"FOOD"},
		ProofLink:          "https://example.com/proof",
		Status:             models.StatusPublished,
	}
}

func pending(name string) models.Entry {
	return models.Entry{
		ID:                 uuid.NewString(),
		Name:               name,
		ProductDescription: "x",
		Categories:         []string{"FOOD"},
		ProofLink:          "https://example.com/proof",
		Status:             models.StatusPending,
	}
}
