package service

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/AliJone/Gaza/internal/models"
	"github.com/AliJone/Gaza/internal/utils"
)

// SubmissionInput enumerates exactly the fields a public submission may
// carry. Anything else in the request body (including a status) is
// ignored by binding; submitters cannot publish their own entries.
type SubmissionInput struct {
	Name               string `json:"name" form:"name"`
	ProductDescription string `json:"productDescription" form:"productDescription"`
	Categories         string `json:"categories" form:"categories"`
	ProofLink          string `json:"proofLink" form:"proofLink"`
	ExplanationText    string `json:"explanationText" form:"explanationText"`
	Alternatives       string `json:"alternatives" form:"alternatives"`
}

// SubmissionService validates and persists new pending entries from
// untrusted input.
type SubmissionService struct {
	store EntryStore
}

// NewSubmissionService constructs a SubmissionService.
func NewSubmissionService(store EntryStore) *SubmissionService {
	return &SubmissionService{store: store}
}

// Submit validates the input and stores a new entry with status
// pending. It returns ErrMissingRequiredField when any of name,
// productDescription, categories, or proofLink is empty; nothing is
// written in that case.
func (s *SubmissionService) Submit(input SubmissionInput) (*models.Entry, error) {
	if input.Name == "" || input.ProductDescription == "" || input.Categories == "" || input.ProofLink == "" {
		return nil, utils.ErrMissingRequiredField
	}

	entry := &models.Entry{
		Name:               input.Name,
		ProductDescription: input.ProductDescription,
		Categories:         SplitCategories(input.Categories),
		ProofLink:          input.ProofLink,
		ExplanationText:    optional(input.ExplanationText),
		Alternatives:       optional(input.Alternatives),
		Status:             models.StatusPending,
	}

	if err := s.store.Insert(entry); err != nil {
		return nil, storeErr(err)
	}

	log.Info().Str("entry_id", entry.ID).Str("name", entry.Name).Msg("New submission stored for review")
	return entry, nil
}

// SplitCategories turns the raw comma-separated category string into
// the stored sequence: split on ",", trim surrounding whitespace from
// each piece. Empty pieces from malformed input (e.g. a trailing comma)
// are kept as-is.
func SplitCategories(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// optional maps an empty form value to an explicit null.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
