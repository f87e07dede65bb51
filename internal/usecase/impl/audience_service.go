package impl

import (
	"context"
	"log/slog"
	"strings"

	"hyperlocal/internal/domain/entity"
	domainerrors "hyperlocal/internal/domain/errors"
	"hyperlocal/internal/domain/repository"
	"hyperlocal/internal/usecase"

	"github.com/google/uuid"
)

const recipientDirectory = "recipient_directory"

type audienceService struct {
	logger        *slog.Logger
	recipientRepo repository.RecipientRepository
}

// NewAudienceService creates a new audience resolver
func NewAudienceService(
	logger *slog.Logger,
	recipientRepo repository.RecipientRepository,
) usecase.AudienceUsecase {
	return &audienceService{
		logger:        logger,
		recipientRepo: recipientRepo,
	}
}

// ResolveAudience queries the directory with normalized terms, then re-checks
// every row in memory so that store quirks can never widen the audience.
func (s *audienceService) ResolveAudience(
	ctx context.Context,
	scope entity.AudienceScope,
	filters entity.AudienceFilters,
	excludeID uuid.UUID,
) ([]*entity.Recipient, error) {
	if scope.IsEmpty() {
		return nil, domainerrors.ErrEmptyAudienceScope
	}

	query := repository.RecipientQuery{
		Localities:           scope.NormalizedLocalities(),
		Town:                 entity.NormalizeTerm(scope.Town),
		ProfessionCategories: filters.NormalizedProfessions(),
		BloodGroup:           strings.TrimSpace(filters.BloodGroup),
		ExcludeID:            excludeID,
	}

	found, err := s.recipientRepo.FindRecipientsByQuery(ctx, query)
	if err != nil {
		s.logger.Error("[Audience] Directory lookup failed", slog.Any("error", err))

		return nil, domainerrors.NewDependencyError(recipientDirectory, err)
	}

	seen := make(map[uuid.UUID]struct{}, len(found))
	audience := make([]*entity.Recipient, 0, len(found))
	for _, recipient := range found {
		if recipient == nil || recipient.ID == excludeID {
			continue
		}
		if !scope.Contains(recipient) || !filters.Allows(recipient) {
			continue
		}
		if _, dup := seen[recipient.ID]; dup {
			continue
		}
		seen[recipient.ID] = struct{}{}
		audience = append(audience, recipient)
	}

	s.logger.Debug("[Audience] Resolved",
		slog.Int("matched", len(found)),
		slog.Int("audience", len(audience)),
	)

	return audience, nil
}
