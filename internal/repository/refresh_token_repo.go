package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gymadmin/internal/domain"
)

// RefreshTokenRepository provides DB access for server-side session records.
type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, t *domain.RefreshToken) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *RefreshTokenRepository) GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *RefreshTokenRepository) Revoke(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.RefreshToken{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", time.Now().UTC()).Error
}

func (r *RefreshTokenRepository) RevokeByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Model(&domain.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", time.Now().UTC()).Error
}

// DeleteStale removes expired tokens and revoked tokens older than the given
// cutoff. Used by cmd/auth_cleanup.
func (r *RefreshTokenRepository) DeleteStale(ctx context.Context, revokedBefore time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at < ? OR (revoked_at IS NOT NULL AND revoked_at < ?)", time.Now().UTC(), revokedBefore).
		Delete(&domain.RefreshToken{})
	return res.RowsAffected, res.Error
}
