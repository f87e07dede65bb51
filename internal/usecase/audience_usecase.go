package usecase

import (
	"context"

	"hyperlocal/internal/domain/entity"

	"github.com/google/uuid"
)

// AudienceUsecase defines the interface for audience resolution
type AudienceUsecase interface {
	// ResolveAudience returns the deduplicated recipients matching scope and filters,
	// never including excludeID. Directory failures fail the whole call.
	ResolveAudience(ctx context.Context, scope entity.AudienceScope, filters entity.AudienceFilters, excludeID uuid.UUID) ([]*entity.Recipient, error)
}
