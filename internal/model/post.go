package model

import "time"

// Post is a feed entry owned by a user.
type Post struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	MediaURL  string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

func (Post) TableName() string { return "post" }
