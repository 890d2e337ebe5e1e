package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Activity struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GroupUid    string    `gorm:"size:64;index" json:"group_uid"`
	GroupName   string    `gorm:"-" json:"group_name,omitempty"`
	UserUid     string    `gorm:"size:64" json:"user_uid"`
	Type        string    `gorm:"not null;size:30" json:"type"` // group_created, member_joined, member_left, item_added, item_claimed, item_purchased, settlement
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
