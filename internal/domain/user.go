package domain

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// UserRoleLabels maps role values to their display names.
var UserRoleLabels = map[UserRole]string{
	RoleAdmin: "Administrator",
	RoleStaff: "Staff Member",
}

type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"size:50;uniqueIndex"`
	Email        string     `json:"email" gorm:"size:255;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"column:password_hash"`
	Role         UserRole   `json:"role" gorm:"size:20"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ValidUserRole(r UserRole) bool {
	_, ok := UserRoleLabels[r]
	return ok
}
