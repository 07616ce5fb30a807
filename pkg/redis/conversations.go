package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// CachedCounterpart is one entry of a user's conversation list: a
// user the caller has exchanged at least one message with.
type CachedCounterpart struct {
	UserID     uint   `json:"user_id"`
	FullName   string `json:"full_name"`
	ProfilePic string `json:"profile_pic,omitempty"`
}

const (
	conversationsKeyPrefix = "social:conversations:user:"
	conversationsTTL       = 5 * time.Minute
)

// CacheCounterparts stores a user's conversation list.
func CacheCounterparts(userID uint, counterparts []CachedCounterpart) error {
	if client == nil {
		return fmt.Errorf("redis not initialized")
	}

	data, err := json.Marshal(counterparts)
	if err != nil {
		return fmt.Errorf("marshal counterparts: %w", err)
	}

	key := fmt.Sprintf("%s%d", conversationsKeyPrefix, userID)
	return client.Set(ctx, key, data, conversationsTTL).Err()
}

// GetCachedCounterparts returns the cached conversation list, or an
// error on miss.
func GetCachedCounterparts(userID uint) ([]CachedCounterpart, error) {
	if client == nil {
		return nil, fmt.Errorf("redis not initialized")
	}

	key := fmt.Sprintf("%s%d", conversationsKeyPrefix, userID)
	data, err := client.Get(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("get counterparts: %w", err)
	}

	var counterparts []CachedCounterpart
	if err := json.Unmarshal([]byte(data), &counterparts); err != nil {
		return nil, fmt.Errorf("unmarshal counterparts: %w", err)
	}
	return counterparts, nil
}

// InvalidateCounterparts drops the cached lists of both participants
// after a new message creates or refreshes a conversation.
func InvalidateCounterparts(userIDs ...uint) error {
	if client == nil {
		return fmt.Errorf("redis not initialized")
	}

	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, fmt.Sprintf("%s%d", conversationsKeyPrefix, id))
	}
	return client.Del(ctx, keys...).Err()
}
