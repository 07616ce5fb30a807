package model

import (
	"time"
)

// User is an account on the platform.
// Email is unique; the password is stored only as a bcrypt hash.
// VerificationToken is a one-time value consumed by the verify
// endpoint, nil once the account is verified.
// Admin delete removes the row together with everything it owns
// (posts, likes, comments, messages) - see UserRepository.Delete.
type User struct {
	ID                uint      `gorm:"primaryKey"`
	FullName          string    `gorm:"type:varchar(128);not null"`
	Email             string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	PasswordHash      string    `gorm:"type:varchar(255);not null"`
	DOB               string    `gorm:"type:varchar(32)"`
	Phone             string    `gorm:"type:varchar(32)"`
	Bio               string    `gorm:"type:text"`
	ProfilePic        string    `gorm:"type:varchar(255)"`
	IsAdmin           bool      `gorm:"not null;default:false"`
	IsBlocked         bool      `gorm:"not null;default:false"`
	IsVerified        bool      `gorm:"not null;default:false"`
	VerificationToken *string   `gorm:"type:varchar(64);index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (User) TableName() string { return "user" }
