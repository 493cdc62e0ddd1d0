package service

import "github.com/AliJone/Gaza/internal/models"

// EntryStore is the persistence capability the catalog services depend
// on. The production implementation is repository.EntryRepository;
// tests substitute an in-memory fake.
type EntryStore interface {
	ListVisible() ([]models.Entry, error)
	GetByID(id string) (*models.Entry, error)
	SearchVisible(query string) ([]models.Entry, error)
	Insert(e *models.Entry) error
	UpdateStatus(id string, status models.EntryStatus) error
	ListAll(status string) ([]models.Entry, error)
	CountByStatus(status models.EntryStatus) (int, error)
}
