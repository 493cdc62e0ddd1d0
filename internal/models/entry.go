package models

import (
	"time"

	"github.com/lib/pq"
)

// EntryStatus enumerates the moderation states of a catalog entry.
// The query logic only distinguishes pending from everything else.
type EntryStatus string

const (
	StatusPending   EntryStatus = "pending"
	StatusPublished EntryStatus = "published"
	StatusRejected  EntryStatus = "rejected"
)

// Entry represents a boycotted product/brand record in the catalog.
// Fields are tagged for both DB scanning and JSON serialization.
// ExplanationText and Alternatives keep an explicit null when absent,
// so they are never omitted from responses.
type Entry struct {
	ID                 string         `db:"id" json:"id"`
	Name               string         `db:"name" json:"name"`
	ProductName        string         `db:"product_name" json:"productName"`
	ProductDescription string         `db:"product_description" json:"productDescription"`
	Categories         pq.StringArray `db:"categories" json:"categories"`
	ProofLink          string         `db:"proof_link" json:"proofLink"`
	ExplanationText    *string        `db:"explanation_text" json:"explanationText"`
	Alternatives       *string        `db:"alternatives" json:"alternatives"`
	Logo               *string        `db:"logo" json:"logo,omitempty"`
	WhyLink            *string        `db:"why_link" json:"whyLink,omitempty"`
	Status             EntryStatus    `db:"status" json:"status"`
	CreatedAt          time.Time      `db:"created_at" json:"-"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updatedAt"`
}
