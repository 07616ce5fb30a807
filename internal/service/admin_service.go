package service

import (
	"social-platform/internal/model"
	"social-platform/internal/repository"
)

// AdminService implements the moderation surface. Role gating happens
// in the middleware; these methods assume an admin caller.
type AdminService struct {
	userRepo *repository.UserRepository
	postRepo *repository.PostRepository
}

func NewAdminService(userRepo *repository.UserRepository, postRepo *repository.PostRepository) *AdminService {
	return &AdminService{userRepo: userRepo, postRepo: postRepo}
}

// Stats holds the aggregate counts shown on the admin dashboard.
type Stats struct {
	TotalUsers int64 `json:"total_users"`
	TotalPosts int64 `json:"total_posts"`
}

// GetStats counts regular accounts and posts.
func (s *AdminService) GetStats() (*Stats, error) {
	users, err := s.userRepo.CountNonAdmins()
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.CountPosts()
	if err != nil {
		return nil, err
	}
	return &Stats{TotalUsers: users, TotalPosts: posts}, nil
}

// ListUsers returns every regular account.
func (s *AdminService) ListUsers() ([]*model.User, error) {
	return s.userRepo.ListNonAdmins()
}

// SetBlocked blocks or unblocks an account. A blocked account keeps
// its existing sessions only until they expire; new logins fail.
func (s *AdminService) SetBlocked(userID uint, blocked bool) error {
	return s.userRepo.SetBlocked(userID, blocked)
}

// DeleteUser removes an account and cascades to everything it owns.
func (s *AdminService) DeleteUser(userID uint) error {
	return s.userRepo.Delete(userID)
}
