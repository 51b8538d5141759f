package authorization

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// UserStore wraps user persistence.
type UserStore struct {
	db *gorm.DB
}

func (s *UserStore) Create(ctx context.Context, user *User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("authorization: create user: %w", err)
	}
	return nil
}

// FindByUsername looks up a user by exact, case-sensitive username.
// Returns gorm.ErrRecordNotFound when no such user exists.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByID(ctx context.Context, id uint64) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameExists reports whether the exact username is already taken.
func (s *UserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, fmt.Errorf("authorization: count users: %w", err)
	}
	return count > 0, nil
}
