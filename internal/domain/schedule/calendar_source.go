package schedule

import (
	"time"

	"gorm.io/datatypes"
)

// CalendarSource is an ICS feed whose events are imported into a user's
// schedule.
type CalendarSource struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	User   *User  `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	URL    string `gorm:"type:text;not null;column:url" json:"url"`

	// DefaultActivity is applied to imported events that carry no CATEGORIES.
	DefaultActivity *string `gorm:"type:text" json:"default_activity,omitempty"`

	ETag         string         `gorm:"type:text;column:etag;not null;default:''" json:"-"`
	LastModified string         `gorm:"type:text;not null;default:''" json:"-"`
	LastSyncedAt *time.Time     `json:"last_synced_at,omitempty"`
	LastSyncMeta datatypes.JSON `json:"last_sync_meta,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (CalendarSource) TableName() string { return "calendar_sources" }
