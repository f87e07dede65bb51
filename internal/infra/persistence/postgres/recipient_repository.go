package postgres

import (
	"context"
	"strings"

	"hyperlocal/internal/domain/entity"
	"hyperlocal/internal/domain/repository"
	"hyperlocal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type recipientRepository struct {
	db *gorm.DB
}

// NewRecipientRepository is the constructor for recipientRepository.
func NewRecipientRepository(db *gorm.DB) repository.RecipientRepository {
	return &recipientRepository{
		db: db,
	}
}

// FindRecipientsByQuery runs the directory lookup. Text columns are compared
// trimmed and lower-cased; blood group is compared upper-cased.
func (repo *recipientRepository) FindRecipientsByQuery(ctx context.Context, query repository.RecipientQuery) ([]*entity.Recipient, error) {
	if len(query.Localities) == 0 && query.Town == "" {
		return []*entity.Recipient{}, nil
	}

	var scope *gorm.DB
	switch {
	case len(query.Localities) > 0 && query.Town != "":
		scope = repo.db.Where("LOWER(TRIM(locality)) IN ?", query.Localities).
			Or("LOWER(TRIM(town)) = ?", query.Town)
	case len(query.Localities) > 0:
		scope = repo.db.Where("LOWER(TRIM(locality)) IN ?", query.Localities)
	default:
		scope = repo.db.Where("LOWER(TRIM(town)) = ?", query.Town)
	}

	tx := repo.db.WithContext(ctx).
		Model(&model.RecipientModel{}).
		Where("deleted_at IS NULL").
		Where(scope)

	if len(query.ProfessionCategories) > 0 {
		tx = tx.Where("LOWER(TRIM(profession_category)) IN ?", query.ProfessionCategories)
	}
	if bloodGroup := strings.TrimSpace(query.BloodGroup); bloodGroup != "" {
		tx = tx.Where("UPPER(TRIM(blood_group)) = ?", strings.ToUpper(bloodGroup))
	}
	if query.ExcludeID != uuid.Nil {
		tx = tx.Where("id <> ?", query.ExcludeID)
	}

	var recipientModels []*model.RecipientModel
	if err := tx.Order("created_at ASC").Find(&recipientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query recipient directory")
	}

	recipients := make([]*entity.Recipient, 0, len(recipientModels))
	for _, recipientM := range recipientModels {
		recipients = append(recipients, toRecipientDomain(recipientM))
	}

	return recipients, nil
}

// FindRecipientByID retrieves a recipient by its unique ID.
func (repo *recipientRepository) FindRecipientByID(ctx context.Context, id uuid.UUID) (*entity.Recipient, error) {
	var recipientM model.RecipientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&recipientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipientNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipient by ID")
	}

	return toRecipientDomain(&recipientM), nil
}

func toRecipientDomain(data *model.RecipientModel) *entity.Recipient {
	if data == nil {
		return nil
	}

	return &entity.Recipient{
		ID:                 data.ID,
		Name:               data.Name,
		EmailAddress:       data.Email,
		PushToken:          data.PushToken,
		Locality:           data.Locality,
		Town:               data.Town,
		BloodGroup:         data.BloodGroup,
		ProfessionCategory: data.ProfessionCategory,
	}
}
