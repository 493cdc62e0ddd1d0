package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/AliJone/Gaza/internal/models"
)

// EntryRepository handles data access for catalog entries.
//
// The visibility rule (pending entries never appear in listings or
// search results) lives in the SQL predicates here, so every read path
// that goes through ListVisible or SearchVisible enforces it at the
// point where data leaves the store.
type EntryRepository struct {
	db *sqlx.DB
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(db *sqlx.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// ListVisible returns every entry that is not pending moderation.
// Order is stable across calls absent writes.
func (r *EntryRepository) ListVisible() ([]models.Entry, error) {
	const q = `
        SELECT * FROM entries
        WHERE status <> 'pending'
        ORDER BY created_at, id`

	var entries []models.Entry
	if err := r.db.Select(&entries, q); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByID returns a single entry by id regardless of status.
func (r *EntryRepository) GetByID(id string) (*models.Entry, error) {
	const q = `SELECT * FROM entries WHERE id = $1 LIMIT 1`

	var e models.Entry
	if err := r.db.Get(&e, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &e, nil
}

// SearchVisible returns non-pending entries whose name, product name, or
// product description contains the query, case-insensitively. An empty
// query matches every visible entry.
func (r *EntryRepository) SearchVisible(query string) ([]models.Entry, error) {
	const q = `
        SELECT * FROM entries
        WHERE status <> 'pending'
        AND (name ILIKE '%' || $1 || '%'
            OR product_name ILIKE '%' || $1 || '%'
            OR product_description ILIKE '%' || $1 || '%')
        ORDER BY created_at, id`

	var entries []models.Entry
	if err := r.db.Select(&entries, q, query); err != nil {
		return nil, err
	}
	return entries, nil
}

// Insert stores a new entry. The id, created_at and updated_at columns
// are assigned by the store and written back onto the entry.
func (r *EntryRepository) Insert(e *models.Entry) error {
	const q = `
        INSERT INTO entries (name, product_name, product_description, categories,
            proof_link, explanation_text, alternatives, logo, why_link, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(q,
		e.Name,
		e.ProductName,
		e.ProductDescription,
		e.Categories,
		e.ProofLink,
		e.ExplanationText,
		e.Alternatives,
		e.Logo,
		e.WhyLink,
		e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// UpdateStatus transitions an entry to a new moderation status.
// Returns sql.ErrNoRows when no entry has the given id.
func (r *EntryRepository) UpdateStatus(id string, status models.EntryStatus) error {
	const q = `UPDATE entries SET status = $2, updated_at = NOW() WHERE id = $1`

	res, err := r.db.Exec(q, id, status)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListAll returns every entry, optionally filtered by exact status.
// Used by the moderation queue view; includes pending entries.
func (r *EntryRepository) ListAll(status string) ([]models.Entry, error) {
	q := `SELECT * FROM entries WHERE ($1 = '' OR status = $1) ORDER BY created_at, id`

	var entries []models.Entry
	if err := r.db.Select(&entries, q, status); err != nil {
		return nil, err
	}
	return entries, nil
}

// CountByStatus returns the number of entries in the given status.
func (r *EntryRepository) CountByStatus(status models.EntryStatus) (int, error) {
	const q = `SELECT COUNT(1) FROM entries WHERE status = $1`

	var n int
	if err := r.db.Get(&n, q, status); err != nil {
		return 0, err
	}
	return n, nil
}
