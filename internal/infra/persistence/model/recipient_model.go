package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipientModel mirrors the directory columns of the 'users' table that audience
// resolution and delivery read. Rows are owned by the account service; this
// module never writes them.
type RecipientModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Name               string    `gorm:"type:varchar(100)"`
	Email              string    `gorm:"type:varchar(255)"`
	PushToken          string    `gorm:"column:push_token;type:text"`
	Locality           string    `gorm:"type:varchar(120);index"`
	Town               string    `gorm:"type:varchar(120);index"`
	BloodGroup         string    `gorm:"column:blood_group;type:varchar(8)"`
	ProfessionCategory string    `gorm:"column:profession_category;type:varchar(64)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (RecipientModel) TableName() string {
	return "users"
}
