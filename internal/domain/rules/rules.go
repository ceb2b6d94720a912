package rules

import "time"

// ActivityItemRule maps an activity type to an item with a weight. Rows are
// not unique on (act_type, item_name, shoe_type); duplicates add up.
type ActivityItemRule struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ActType  string `gorm:"type:text;not null;column:act_type;index" json:"act_type"`
	ItemName string `gorm:"type:text;not null" json:"item_name"`

	// BasePriority defaults to 1 on insert; a NULL read back scores as 0.
	BasePriority *int `gorm:"default:1" json:"base_priority"`
	// ShoeType nil means the rule applies whatever the user wears.
	ShoeType *string `gorm:"type:text;column:shoe_type;index" json:"shoe_type"`
	// IsDefault marks a must-carry item for the activity.
	IsDefault bool `gorm:"not null;default:false" json:"is_default"`
	// TimeTag is stored but not used for scoring.
	TimeTag *string `gorm:"type:text" json:"time_tag,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (ActivityItemRule) TableName() string { return "activity_item_rules" }

func (r *ActivityItemRule) Weight() int {
	if r == nil || r.BasePriority == nil {
		return 0
	}
	return *r.BasePriority
}

// AppliesTo reports whether the rule is generic or bound to shoe.
func (r *ActivityItemRule) AppliesTo(shoe string) bool {
	return r.ShoeType == nil || *r.ShoeType == shoe
}

// ShoeCommonItem is an item always suggested when a given shoe is worn. A row
// is keyed either by a concrete shoe (ShoeID) or by a shoe type.
type ShoeCommonItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	ShoeID   *uint   `gorm:"index" json:"shoe_id,omitempty"`
	ShoeType *string `gorm:"type:text;index" json:"shoe_type,omitempty"`
	ItemName string  `gorm:"type:text;not null" json:"item_name"`
	Position int     `gorm:"not null;default:0" json:"position"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (ShoeCommonItem) TableName() string { return "shoe_common_items" }

// EncounterRule surfaces ItemName when the owner's schedule overlaps, in time
// and place, with the counterpart's.
type EncounterRule struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	OwnerUserID       uint   `gorm:"not null;index" json:"owner_user_id"`
	CounterpartUserID uint   `gorm:"not null;index" json:"counterpart_user_id"`
	ItemName          string `gorm:"type:text;not null" json:"item_name"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (EncounterRule) TableName() string { return "encounter_rules" }
