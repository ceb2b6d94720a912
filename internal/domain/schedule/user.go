package schedule

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null;column:name" json:"name"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

func (User) TableName() string { return "users" }

// UserShoe is a physical pair of shoes registered to a user. The shoe sensor
// reports its ID; the recommendation engine only ever sees ShoeType.
type UserShoe struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	ShoeType  string    `gorm:"type:text;not null;column:shoe_type;index" json:"shoe_type"`
	Label     string    `gorm:"type:text;not null;default:''" json:"label"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (UserShoe) TableName() string { return "user_shoes" }
