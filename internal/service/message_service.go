package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"social-platform/internal/apperr"
	"social-platform/internal/model"
	"social-platform/internal/repository"
	"social-platform/pkg/logger"
	"social-platform/pkg/redis"
	"social-platform/pkg/response"

	"go.uber.org/zap"
)

// Relay delivers a payload to a user's live channel, if one is open.
// Implemented by the websocket hub; nil disables live delivery (the
// persisted row is still written, which is the durability guarantee).
type Relay interface {
	SendToUser(userID uint, payload []byte) bool
}

// MessageEnvelope is the frame pushed over live channels for a
// persisted message. The same envelope goes to the receiver (if
// online) and back to the sender as the acknowledgement carrying the
// canonical id and timestamp.
type MessageEnvelope struct {
	Type string `json:"type"`
	*response.MessageInfo
}

// MessageService persists direct messages and fans them out to live
// channels.
type MessageService struct {
	messageRepo *repository.MessageRepository
	userRepo    *repository.UserRepository
	relay       Relay
}

func NewMessageService(messageRepo *repository.MessageRepository, userRepo *repository.UserRepository, relay Relay) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		relay:       relay,
	}
}

// Send persists the message and then attempts live delivery: forward
// to the receiver's channel if one is open, and echo to the sender's
// channel unconditionally. A failed or absent channel write is never
// retried; the receiver picks the message up from history instead.
func (s *MessageService) Send(senderID, receiverID uint, content, attachmentURL string) (*model.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", apperr.ErrInvalidInput)
	}

	if _, err := s.userRepo.GetByID(senderID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrForeignKey
		}
		return nil, err
	}
	if _, err := s.userRepo.GetByID(receiverID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrForeignKey
		}
		return nil, err
	}

	message := &model.Message{
		SenderID:      senderID,
		ReceiverID:    receiverID,
		Content:       content,
		AttachmentURL: attachmentURL,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	if redis.Enabled() {
		if err := redis.InvalidateCounterparts(senderID, receiverID); err != nil {
			logger.Warn("invalidate counterpart cache", zap.Error(err))
		}
	}

	if s.relay != nil {
		envelope := MessageEnvelope{
			Type:        "message",
			MessageInfo: response.FilterMessageInfo(message),
		}
		payload, err := json.Marshal(envelope)
		if err == nil {
			delivered := s.relay.SendToUser(receiverID, payload)
			if !delivered {
				logger.Debug("receiver offline, message persisted only",
					zap.Uint("receiver_id", receiverID),
					zap.Uint("message_id", message.ID),
				)
			}
			// Echo to the sender regardless, as the persistence ack.
			s.relay.SendToUser(senderID, payload)
		}
	}

	return message, nil
}

// History returns the full conversation between the caller and the
// given counterpart, oldest first. Any authenticated caller may read
// any pair it names itself into; there is no further check.
func (s *MessageService) History(callerID, otherID uint) ([]*model.Message, error) {
	return s.messageRepo.History(callerID, otherID)
}

// Counterparts lists the users the caller has exchanged at least one
// message with, served from the redis cache when warm.
func (s *MessageService) Counterparts(userID uint) ([]*repository.Counterpart, error) {
	if redis.Enabled() {
		if cached, err := redis.GetCachedCounterparts(userID); err == nil {
			out := make([]*repository.Counterpart, 0, len(cached))
			for _, cc := range cached {
				out = append(out, &repository.Counterpart{
					ID:         cc.UserID,
					FullName:   cc.FullName,
					ProfilePic: cc.ProfilePic,
				})
			}
			return out, nil
		}
	}

	counterparts, err := s.messageRepo.Counterparts(userID)
	if err != nil {
		return nil, err
	}

	if redis.Enabled() {
		cached := make([]redis.CachedCounterpart, 0, len(counterparts))
		for _, cp := range counterparts {
			cached = append(cached, redis.CachedCounterpart{
				UserID:     cp.ID,
				FullName:   cp.FullName,
				ProfilePic: cp.ProfilePic,
			})
		}
		if err := redis.CacheCounterparts(userID, cached); err != nil {
			logger.Warn("cache counterparts", zap.Error(err))
		}
	}

	return counterparts, nil
}
