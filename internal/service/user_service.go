package service

import (
	"errors"
	"fmt"
	"strings"

	"social-platform/internal/apperr"
	"social-platform/internal/model"
	"social-platform/internal/repository"
	"social-platform/pkg/password"
	"social-platform/pkg/token"

	"github.com/google/uuid"
)

// UserService implements registration, verification and login, plus
// the profile and search reads.
type UserService struct {
	repo                *repository.UserRepository
	tokenService        *token.Service
	requireVerification bool
}

func NewUserService(repo *repository.UserRepository, tokenService *token.Service, requireVerification bool) *UserService {
	return &UserService{
		repo:                repo,
		tokenService:        tokenService,
		requireVerification: requireVerification,
	}
}

// RegisterResult is what registration hands back. Exactly one of
// AccessToken and VerificationToken is set, depending on the
// configured policy.
type RegisterResult struct {
	User              *model.User
	AccessToken       string
	VerificationToken string
}

// Register creates an account. Under the verification policy the
// account starts unverified and the returned one-time token must be
// consumed via Verify before login succeeds; otherwise the account is
// live immediately and a session token is returned.
func (s *UserService) Register(fullName, email, plainPassword, dob, phone string) (*RegisterResult, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" || email == "" || plainPassword == "" {
		return nil, fmt.Errorf("%w: full name, email and password are required", apperr.ErrInvalidInput)
	}

	if _, err := s.repo.GetByEmail(email); err == nil {
		return nil, apperr.ErrDuplicateEmail
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		DOB:          dob,
		Phone:        phone,
	}

	result := &RegisterResult{User: user}
	if s.requireVerification {
		verificationToken := uuid.NewString()
		user.VerificationToken = &verificationToken
		result.VerificationToken = verificationToken
	} else {
		user.IsVerified = true
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	if !s.requireVerification {
		accessToken, err := s.tokenService.Generate(user.ID, user.IsAdmin)
		if err != nil {
			return nil, err
		}
		result.AccessToken = accessToken
	}

	return result, nil
}

// Verify consumes a one-time verification token and marks the account
// verified.
func (s *UserService) Verify(verificationToken string) error {
	user, err := s.repo.GetByVerificationToken(verificationToken)
	if err != nil {
		return err
	}
	return s.repo.MarkVerified(user.ID)
}

// Login checks credentials and issues a session token. Gating order:
// unknown email, unverified account, blocked account, then the
// password itself.
func (s *UserService) Login(email, plainPassword string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || plainPassword == "" {
		return nil, "", apperr.ErrInvalidCredential
	}

	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if !user.IsVerified {
		return nil, "", apperr.ErrUnverified
	}
	if user.IsBlocked {
		return nil, "", apperr.ErrBlocked
	}
	if !password.Verify(plainPassword, user.PasswordHash) {
		return nil, "", apperr.ErrInvalidCredential
	}

	accessToken, err := s.tokenService.Generate(user.ID, user.IsAdmin)
	if err != nil {
		return nil, "", err
	}
	return user, accessToken, nil
}

// GetByID returns a single account.
func (s *UserService) GetByID(id uint) (*model.User, error) {
	return s.repo.GetByID(id)
}

// UpdateProfile applies the caller-editable profile fields.
func (s *UserService) UpdateProfile(id uint, fullName, bio, profilePic string) (*model.User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is required", apperr.ErrInvalidInput)
	}
	if err := s.repo.UpdateProfile(id, fullName, bio, profilePic); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// Search finds regular users by name substring.
func (s *UserService) Search(q string) ([]*model.User, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, nil
	}
	return s.repo.SearchByName(q, 10)
}
