package services

import (
	"log"

	"gorm.io/gorm"

	"shopsync-backend/models"
)

// ActivityLog is the durable per-group event feed, kept in Postgres. With no
// database configured every call is a no-op — the feed is an add-on, not a
// dependency of the core flows.
type ActivityLog struct {
	db *gorm.DB
}

func NewActivityLog(db *gorm.DB) *ActivityLog {
	return &ActivityLog{db: db}
}

func (a *ActivityLog) Record(groupUid, userUid, activityType, description string) {
	if a.db == nil {
		return
	}
	activity := models.Activity{
		GroupUid:    groupUid,
		UserUid:     userUid,
		Type:        activityType,
		Description: description,
	}
	if err := a.db.Create(&activity).Error; err != nil {
		log.Printf("❌ Failed to record activity: %v", err)
	}
}

func (a *ActivityLog) ForGroup(groupUid string, limit, offset int) []models.Activity {
	if a.db == nil {
		return nil
	}
	var activities []models.Activity
	a.db.Where("group_uid = ?", groupUid).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&activities)
	return activities
}

func (a *ActivityLog) ForGroups(groupUids []string, limit, offset int) []models.Activity {
	if a.db == nil || len(groupUids) == 0 {
		return nil
	}
	var activities []models.Activity
	a.db.Where("group_uid IN ?", groupUids).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&activities)
	return activities
}
