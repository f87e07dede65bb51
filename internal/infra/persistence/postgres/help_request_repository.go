package postgres

import (
	"context"
	"time"

	"hyperlocal/internal/domain/entity"
	domainerrors "hyperlocal/internal/domain/errors"
	"hyperlocal/internal/domain/repository"
	"hyperlocal/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// normalizedStatus mirrors entity.NormalizeStatusToken so mixed historical
// spellings ("Pending", "In Progress", " open") match the canonical tokens.
const normalizedStatus = "LOWER(REPLACE(REPLACE(TRIM(status), '-', '_'), ' ', '_'))"

type helpRequestRepository struct {
	db *gorm.DB
}

// NewHelpRequestRepository is the constructor for helpRequestRepository.
func NewHelpRequestRepository(db *gorm.DB) repository.HelpRequestRepository {
	return &helpRequestRepository{
		db: db,
	}
}

// FindOpenFollowUps lists requests whose normalized status is open and
// whose follow-up has not finished, oldest first.
func (repo *helpRequestRepository) FindOpenFollowUps(ctx context.Context) ([]*entity.HelpRequest, error) {
	var requestModels []*model.HelpRequestModel

	if err := repo.db.WithContext(ctx).
		Where(normalizedStatus+" IN ?", entity.OpenStatusTokens()).
		Where("follow_up_complete = ?", false).
		Where("follow_up_stage < ?", entity.FinalFollowUpStage).
		Order("created_at ASC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find open follow-ups")
	}

	requests := make([]*entity.HelpRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toHelpRequestDomain(requestM))
	}

	return requests, nil
}

// AdvanceFollowUpStage is a compare-and-set on (stage, complete, status).
// Zero affected rows means another writer moved the request first or it closed.
func (repo *helpRequestRepository) AdvanceFollowUpStage(ctx context.Context, advance repository.StageAdvance) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.HelpRequestModel{}).
		Where("id = ?", advance.RequestID).
		Where("follow_up_stage = ?", advance.ExpectedStage).
		Where("follow_up_complete = ?", false).
		Where(normalizedStatus+" IN ?", entity.OpenStatusTokens()).
		Updates(map[string]any{
			"follow_up_stage":            advance.NextStage,
			"follow_up_last_notified_at": advance.LastNotifiedAt,
			"follow_up_complete":         advance.Complete,
			"updated_at":                 time.Now(),
		})

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to advance follow-up stage")
	}

	return result.RowsAffected == 1, nil
}

func toHelpRequestDomain(data *model.HelpRequestModel) *entity.HelpRequest {
	if data == nil {
		return nil
	}

	lastNotifiedAt := data.CreatedAt
	if data.FollowUpLastNotifiedAt != nil {
		lastNotifiedAt = *data.FollowUpLastNotifiedAt
	}

	return &entity.HelpRequest{
		ID:          data.ID,
		RequesterID: data.RequesterID,
		Title:       data.Title,
		Status:      entity.ParseRequestStatus(data.Status),
		FollowUp: entity.FollowUpState{
			Stage:          data.FollowUpStage,
			LastNotifiedAt: lastNotifiedAt,
			Complete:       data.FollowUpComplete,
		},
		CreatedAt: data.CreatedAt,
	}
}
