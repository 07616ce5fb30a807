package repository

import (
	"errors"

	"social-platform/internal/apperr"
	"social-platform/internal/model"

	"gorm.io/gorm"
)

// UserRepository is the data access layer for accounts.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var u model.User
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var u model.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByVerificationToken(token string) (*model.User, error) {
	var u model.User
	if err := r.db.Where("verification_token = ?", token).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrInvalidToken
		}
		return nil, err
	}
	return &u, nil
}

// MarkVerified flips the verified flag and consumes the one-time
// token in a single update.
func (r *UserRepository) MarkVerified(id uint) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_verified":        true,
			"verification_token": nil,
		}).Error
}

// UpdateProfile applies the caller-editable fields only.
func (r *UserRepository) UpdateProfile(id uint, fullName, bio, profilePic string) error {
	return r.db.Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"full_name":   fullName,
			"bio":         bio,
			"profile_pic": profilePic,
		}).Error
}

// SearchByName finds non-admin users whose name contains q.
func (r *UserRepository) SearchByName(q string, limit int) ([]*model.User, error) {
	var users []*model.User
	err := r.db.Where("full_name LIKE ? AND is_admin = ?", "%"+q+"%", false).
		Limit(limit).
		Find(&users).Error
	return users, err
}

// ListNonAdmins returns every regular account, for the admin surface.
func (r *UserRepository) ListNonAdmins() ([]*model.User, error) {
	var users []*model.User
	err := r.db.Where("is_admin = ?", false).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) SetBlocked(id uint, blocked bool) error {
	res := r.db.Model(&model.User{}).
		Where("id = ?", id).
		Update("is_blocked", blocked)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *UserRepository) CountNonAdmins() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("is_admin = ?", false).Count(&count).Error
	return count, err
}

// Delete removes the account and everything it owns: likes and
// comments it wrote, likes and comments on its posts, its posts, and
// messages it sent or received. Runs in one transaction so a failure
// leaves no half-deleted account.
func (r *UserRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&model.Post{}).Where("user_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&model.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ? OR receiver_id = ?", id, id).Delete(&model.Message{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
}
