package model

import "time"

// Message is one direct message between two users. Rows are immutable
// once written; there is no edit, read-state or delete path. History
// ordering is CreatedAt ascending with ID as the tiebreak, so two
// messages written in the same clock tick still come back in
// insertion order.
type Message struct {
	ID            uint   `gorm:"primaryKey"`
	SenderID      uint   `gorm:"not null;index"`
	ReceiverID    uint   `gorm:"not null;index"`
	Content       string `gorm:"type:text;not null"`
	AttachmentURL string `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
}

func (Message) TableName() string { return "message" }
