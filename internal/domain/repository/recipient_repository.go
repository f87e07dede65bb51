package repository

import (
	"context"

	"hyperlocal/internal/domain/entity"

	"github.com/google/uuid"
)

// RecipientQuery is the directory lookup criteria. Localities, Town and
// ProfessionCategories are already folded with entity.NormalizeTerm; the store
// must compare them against LOWER(TRIM(column)).
type RecipientQuery struct {
	Localities           []string
	Town                 string
	ProfessionCategories []string
	BloodGroup           string
	ExcludeID            uuid.UUID
}

// RecipientRepository is the read-only view of the user directory.
type RecipientRepository interface {
	// FindRecipientsByQuery returns every directory user matching the criteria.
	FindRecipientsByQuery(ctx context.Context, query RecipientQuery) ([]*entity.Recipient, error)

	// FindRecipientByID retrieves a single recipient.
	FindRecipientByID(ctx context.Context, id uuid.UUID) (*entity.Recipient, error)
}
