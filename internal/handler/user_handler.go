package handler

import (
	"strconv"

	"social-platform/internal/service"
	"social-platform/pkg/logger"
	"social-platform/pkg/response"
	"social-platform/pkg/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves registration, verification, login and the
// profile/search reads.
type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Register creates an account. Depending on the configured policy the
// response carries either a verification token (to be confirmed via
// the verify endpoint) or a ready session token.
func (h *UserHandler) Register(c *gin.Context) {
	type req struct {
		FullName string `json:"full_name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		DOB      string `json:"dob"`
		Phone    string `json:"phone"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Register(r.FullName, r.Email, r.Password, r.DOB, r.Phone)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if result.VerificationToken != "" {
		// Stand-in for the verification email.
		logger.Info("verification link issued",
			zap.String("email", result.User.Email),
			zap.String("link", "/api/v1/auth/verify/"+result.VerificationToken),
		)
	}

	response.Created(c, "user created", &response.RegisterResponse{
		User:              response.FilterUserInfo(result.User),
		AccessToken:       result.AccessToken,
		VerificationToken: result.VerificationToken,
	})
}

// Verify consumes a one-time verification token.
func (h *UserHandler) Verify(c *gin.Context) {
	if err := h.service.Verify(c.Param("token")); err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, "email verified, you can now log in", nil)
}

// Login checks credentials and returns a session token with the safe
// user projection.
func (h *UserHandler) Login(c *gin.Context) {
	type req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, accessToken, err := h.service.Login(r.Email, r.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.SuccessWithMessage(c, "login successful", &response.LoginResponse{
		User:        response.FilterUserInfo(user),
		AccessToken: accessToken,
	})
}

// Me returns the caller's own profile.
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.service.GetByID(token.GetUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, response.FilterUserInfo(user))
}

// UpdateMe applies the caller-editable profile fields.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	type req struct {
		FullName   string `json:"full_name" binding:"required"`
		Bio        string `json:"bio"`
		ProfilePic string `json:"profile_pic"`
	}
	var r req
	if err := c.ShouldBindJSON(&r); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.UpdateProfile(token.GetUserID(c), r.FullName, r.Bio, r.ProfilePic)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithMessage(c, "profile updated", response.FilterUserInfo(user))
}

// GetUser returns another user's profile.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	user, err := h.service.GetByID(uint(id))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, response.FilterUserInfo(user))
}

// Search finds users by name substring.
func (h *UserHandler) Search(c *gin.Context) {
	users, err := h.service.Search(c.Query("q"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	out := make([]*response.UserInfo, 0, len(users))
	for _, u := range users {
		out = append(out, response.FilterUserInfo(u))
	}
	response.Success(c, out)
}
