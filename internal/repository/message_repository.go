package repository

import (
	"social-platform/internal/model"

	"gorm.io/gorm"
)

// MessageRepository is the append-only data access layer for direct
// messages. There is deliberately no update or delete path here:
// messages are immutable once written.
type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create appends a message. Sender/receiver existence is checked at
// the service layer before this is called.
func (r *MessageRepository) Create(message *model.Message) error {
	return r.db.Create(message).Error
}

// History returns every message between the two users, in either
// direction, ascending by creation time with the insertion id as the
// tiebreak. The pair is symmetric: History(a, b) == History(b, a).
func (r *MessageRepository) History(userA, userB uint) ([]*model.Message, error) {
	var messages []*model.Message
	err := r.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userA, userB, userB, userA,
	).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	return messages, err
}

// Counterpart is a user the caller shares at least one message with.
type Counterpart struct {
	ID         uint   `json:"id"`
	FullName   string `json:"full_name"`
	ProfilePic string `json:"profile_pic,omitempty"`
}

// Counterparts returns the distinct users the given user has
// exchanged messages with.
func (r *MessageRepository) Counterparts(userID uint) ([]*Counterpart, error) {
	var counterparts []*Counterpart
	err := r.db.Table("user").
		Select("DISTINCT user.id, user.full_name, user.profile_pic").
		Joins("JOIN message ON user.id = message.sender_id OR user.id = message.receiver_id").
		Where("(message.sender_id = ? OR message.receiver_id = ?) AND user.id <> ?",
			userID, userID, userID).
		Scan(&counterparts).Error
	return counterparts, err
}
