package response

import (
	"errors"
	"net/http"
	"time"

	"social-platform/internal/apperr"
	"social-platform/internal/model"

	"github.com/gin-gonic/gin"
)

// Response is the unified JSON envelope.
type Response struct {
	Code    int         `json:"code"` // 0 on success, HTTP status on error
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a 200 envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage writes a 200 envelope with a custom message.
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Created writes a 201 envelope.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: message,
		Data:    data,
	})
}

// Error writes an error envelope with the given HTTP status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Code:    status,
		Message: message,
	})
}

// FromError maps an error to its HTTP status using the apperr
// taxonomy and writes the envelope. Unrecognized errors become 500s
// with a generic message so internals never leak to clients.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrInvalidCredential),
		errors.Is(err, apperr.ErrInvalidInput),
		errors.Is(err, apperr.ErrDuplicateEmail),
		errors.Is(err, apperr.ErrForeignKey),
		errors.Is(err, apperr.ErrInvalidToken):
		Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrUnverified),
		errors.Is(err, apperr.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrBlocked),
		errors.Is(err, apperr.ErrForbidden):
		Error(c, http.StatusForbidden, err.Error())
	default:
		Error(c, http.StatusInternalServerError, "internal server error")
	}
}

// BadRequest writes a 400 envelope.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// UserInfo is the user projection safe to return to clients. The
// password hash and verification token never appear here.
type UserInfo struct {
	ID         uint   `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	DOB        string `json:"dob,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Bio        string `json:"bio,omitempty"`
	ProfilePic string `json:"profile_pic,omitempty"`
	IsAdmin    bool   `json:"is_admin"`
	IsVerified bool   `json:"is_verified"`
	IsBlocked  bool   `json:"is_blocked,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// FilterUserInfo converts a user row into its safe projection.
func FilterUserInfo(user *model.User) *UserInfo {
	if user == nil {
		return nil
	}

	return &UserInfo{
		ID:         user.ID,
		FullName:   user.FullName,
		Email:      user.Email,
		DOB:        user.DOB,
		Phone:      user.Phone,
		Bio:        user.Bio,
		ProfilePic: user.ProfilePic,
		IsAdmin:    user.IsAdmin,
		IsVerified: user.IsVerified,
		IsBlocked:  user.IsBlocked,
		CreatedAt:  user.CreatedAt.Format(time.RFC3339),
	}
}

// LoginResponse is the login payload.
type LoginResponse struct {
	User        *UserInfo `json:"user"`
	AccessToken string    `json:"access_token"`
}

// RegisterResponse is the registration payload. AccessToken is set
// only when verification is not required; VerificationToken is set
// only when it is.
type RegisterResponse struct {
	User              *UserInfo `json:"user"`
	AccessToken       string    `json:"access_token,omitempty"`
	VerificationToken string    `json:"verification_token,omitempty"`
}

// MessageInfo is the message projection shared by the REST and
// channel paths.
type MessageInfo struct {
	ID            uint   `json:"id"`
	SenderID      uint   `json:"sender_id"`
	ReceiverID    uint   `json:"receiver_id"`
	Content       string `json:"content"`
	AttachmentURL string `json:"attachment_url,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// FilterMessageInfo converts a message row into its wire projection.
func FilterMessageInfo(message *model.Message) *MessageInfo {
	if message == nil {
		return nil
	}

	return &MessageInfo{
		ID:            message.ID,
		SenderID:      message.SenderID,
		ReceiverID:    message.ReceiverID,
		Content:       message.Content,
		AttachmentURL: message.AttachmentURL,
		CreatedAt:     message.CreatedAt.Format(time.RFC3339),
	}
}

// FilterMessageList converts message rows in order.
func FilterMessageList(messages []*model.Message) []*MessageInfo {
	out := make([]*MessageInfo, 0, len(messages))
	for _, m := range messages {
		out = append(out, FilterMessageInfo(m))
	}
	return out
}
