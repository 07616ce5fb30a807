package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// PresenceData mirrors a user's live-channel status for UI reads
// ("who is online"). The authoritative routing table is the in-process
// hub; this mirror is best-effort and expires on its own, so a crashed
// process leaks nothing.
type PresenceData struct {
	UserID   uint      `json:"user_id"`
	FullName string    `json:"full_name"`
	Status   string    `json:"status"` // online/offline
	LastSeen time.Time `json:"last_seen"`
}

const (
	presenceKeyPrefix = "social:presence:user:"
	onlineUsersKey    = "social:online:users"
	presenceTTL       = 2 * time.Minute // 2x ping interval
)

// SetUserPresence records a user's channel status with TTL and keeps
// the online-users set in sync.
func SetUserPresence(userID uint, fullName string, status string) error {
	if client == nil {
		return fmt.Errorf("redis not initialized")
	}

	key := fmt.Sprintf("%s%d", presenceKeyPrefix, userID)

	presence := PresenceData{
		UserID:   userID,
		FullName: fullName,
		Status:   status,
		LastSeen: time.Now(),
	}

	data, err := json.Marshal(presence)
	if err != nil {
		return fmt.Errorf("marshal presence: %w", err)
	}

	if err := client.Set(ctx, key, data, presenceTTL).Err(); err != nil {
		return fmt.Errorf("set presence: %w", err)
	}

	if status == "online" {
		err = client.SAdd(ctx, onlineUsersKey, userID).Err()
	} else {
		err = client.SRem(ctx, onlineUsersKey, userID).Err()
	}
	if err != nil {
		return fmt.Errorf("update online set: %w", err)
	}

	return nil
}

// RefreshUserPresence extends the TTL of an online entry.
func RefreshUserPresence(userID uint) error {
	if client == nil {
		return fmt.Errorf("redis not initialized")
	}

	key := fmt.Sprintf("%s%d", presenceKeyPrefix, userID)
	return client.Expire(ctx, key, presenceTTL).Err()
}

// GetUserPresence returns the mirrored status for one user.
func GetUserPresence(userID uint) (*PresenceData, error) {
	if client == nil {
		return nil, fmt.Errorf("redis not initialized")
	}

	key := fmt.Sprintf("%s%d", presenceKeyPrefix, userID)
	data, err := client.Get(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("get presence: %w", err)
	}

	var presence PresenceData
	if err := json.Unmarshal([]byte(data), &presence); err != nil {
		return nil, fmt.Errorf("unmarshal presence: %w", err)
	}
	return &presence, nil
}

// IsUserOnline reports membership in the online-users set.
func IsUserOnline(userID uint) (bool, error) {
	if client == nil {
		return false, fmt.Errorf("redis not initialized")
	}

	return client.SIsMember(ctx, onlineUsersKey, userID).Result()
}
