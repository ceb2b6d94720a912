package schedule

import (
	"strings"
	"time"
)

// Event is a single scheduled appointment. ActType, StartTime, EndTime and
// Location are nullable because both hand-entered and imported events may
// lack them.
type Event struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"not null;index;index:idx_event_external,unique,priority:1" json:"user_id"`
	User   *User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`

	ActType  *string `gorm:"type:text;column:act_type;index" json:"act_type"`
	Title    string  `gorm:"type:text;not null" json:"title"`
	Location *string `gorm:"type:text" json:"location"`

	StartTime *time.Time `gorm:"index;index:idx_event_external,unique,priority:3" json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	// Set only for events imported from a calendar feed.
	CalendarSourceID *uint   `gorm:"index" json:"calendar_source_id,omitempty"`
	ExternalUID      *string `gorm:"type:text;column:external_uid;index:idx_event_external,unique,priority:2" json:"external_uid,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Event) TableName() string { return "events" }

// Activity returns the activity tag or "" when the event has none.
func (e *Event) Activity() string {
	if e == nil || e.ActType == nil {
		return ""
	}
	return strings.TrimSpace(*e.ActType)
}

// Place returns the trimmed location or "".
func (e *Event) Place() string {
	if e == nil || e.Location == nil {
		return ""
	}
	return strings.TrimSpace(*e.Location)
}

// Overlaps reports whether both events have a full time range and the ranges
// intersect. Touching endpoints do not overlap.
func (e *Event) Overlaps(o *Event) bool {
	if e == nil || o == nil {
		return false
	}
	if e.StartTime == nil || e.EndTime == nil || o.StartTime == nil || o.EndTime == nil {
		return false
	}
	return !(!e.EndTime.After(*o.StartTime) || !o.EndTime.After(*e.StartTime))
}
