package postgres

import (
	"context"

	"hyperlocal/internal/domain/entity"
	domainerrors "hyperlocal/internal/domain/errors"
	"hyperlocal/internal/domain/repository"
	"hyperlocal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a delivered notification record.
func (repo *notificationRepository) CreateNotification(ctx context.Context, record *entity.NotificationRecord) error {
	if record == nil {
		return errors.New("notification record is nil")
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	notificationM := fromNotificationDomain(record)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		switch classifyViolation(err) {
		case foreignKeyViolation:
			return repository.ErrRecipientNotFound
		case uniqueViolation:
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("duplicate notification id")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
		}
	}

	record.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationsByRecipient retrieves a recipient's notifications, newest first.
func (repo *notificationRepository) FindNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*entity.NotificationRecord, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by recipient")
	}

	records := make([]*entity.NotificationRecord, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		records = append(records, toNotificationDomain(notificationM))
	}

	return records, nil
}

// MarkAsRead flags a notification as read. The recipient must own it.
func (repo *notificationRepository) MarkAsRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_id = ?", notificationID, recipientID).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification as read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.NotificationRecord {
	if data == nil {
		return nil
	}

	return &entity.NotificationRecord{
		ID:             data.ID,
		RecipientID:    data.RecipientID,
		Title:          data.Title,
		Body:           data.Body,
		Category:       data.Category,
		Link:           data.Link,
		DeliveryMethod: entity.DeliveryMethod(data.DeliveryMethod),
		Delivered:      data.Delivered,
		IsRead:         data.IsRead,
		CreatedAt:      data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.NotificationRecord) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:             data.ID,
		RecipientID:    data.RecipientID,
		Title:          data.Title,
		Body:           data.Body,
		Category:       data.Category,
		Link:           data.Link,
		DeliveryMethod: string(data.DeliveryMethod),
		Delivered:      data.Delivered,
		IsRead:         data.IsRead,
		CreatedAt:      data.CreatedAt,
	}
}
