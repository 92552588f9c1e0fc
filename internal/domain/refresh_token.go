package domain

import "time"

// RefreshToken is a server-side session record. Only the SHA-256 hash of the
// raw token is stored; tokens are rotated on every refresh and revoked on
// logout.
type RefreshToken struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	UserID int64 `json:"user_id" gorm:"index;not null"`
	User   User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	TokenHash string `json:"-" gorm:"size:64;uniqueIndex;not null"`

	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"index;not null"`
	RevokedAt *time.Time `json:"revoked_at" gorm:"index"`
}

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}
