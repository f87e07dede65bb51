package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// One row exists per recipient that at least one channel reached.
type NotificationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	RecipientID    uuid.UUID `gorm:"column:recipient_id;type:uuid;not null;index"`
	Title          string    `gorm:"type:text;not null"`
	Body           string    `gorm:"type:text;not null"`
	Category       string    `gorm:"type:varchar(32);not null"`
	Link           string    `gorm:"type:text"`
	DeliveryMethod string    `gorm:"column:delivery_method;type:varchar(8);not null"`
	Delivered      bool      `gorm:"not null"`
	IsRead         bool      `gorm:"column:is_read;not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
