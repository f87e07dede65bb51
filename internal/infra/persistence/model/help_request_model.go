package model

import (
	"time"

	"github.com/google/uuid"
)

// HelpRequestModel mirrors the 'help_requests' columns the follow-up scheduler reads and advances.
type HelpRequestModel struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primary_key"`
	RequesterID            uuid.UUID  `gorm:"column:requester_id;type:uuid;not null;index"`
	Title                  string     `gorm:"type:text;not null"`
	Status                 string     `gorm:"type:varchar(32);not null;index"`
	FollowUpStage          int        `gorm:"column:follow_up_stage;not null;default:0"`
	FollowUpLastNotifiedAt *time.Time `gorm:"column:follow_up_last_notified_at"`
	FollowUpComplete       bool       `gorm:"column:follow_up_complete;not null;default:false"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (HelpRequestModel) TableName() string {
	return "help_requests"
}
