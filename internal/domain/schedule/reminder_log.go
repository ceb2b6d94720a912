package schedule

import (
	"time"

	"gorm.io/datatypes"
)

type ReminderLog struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    *User  `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	EventID uint   `gorm:"not null;index" json:"event_id"`
	Event   *Event `gorm:"constraint:OnDelete:CASCADE;foreignKey:EventID;references:ID" json:"-"`

	ReminderText string `gorm:"type:text;not null" json:"reminder_text"`
	// sensor / user / app
	TriggeredBy *string `gorm:"type:text" json:"triggered_by,omitempty"`

	// Items is the item list that was shown, as a JSON array of strings.
	Items datatypes.JSON `json:"items,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

func (ReminderLog) TableName() string { return "reminder_logs" }
