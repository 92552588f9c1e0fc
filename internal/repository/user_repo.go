package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"gymadmin/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByLogin resolves a user by username or email, matching the login form
// which accepts either.
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	login = strings.TrimSpace(login)
	var u domain.User
	err := r.db.WithContext(ctx).
		Where("(username = ? OR LOWER(email) = ?) AND is_active = ?", login, strings.ToLower(login), true).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.User{}).Where("username = ?", username)
	if excludeID > 0 {
		q = q.Where("id != ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
	if excludeID > 0 {
		q = q.Where("id != ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", id).
		Update("last_login", time.Now().UTC()).Error
}
