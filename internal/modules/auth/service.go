package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymadmin/internal/domain"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

type Service struct {
	users      UserStore
	tokens     RefreshTokenStore
	jwt        TokenIssuer
	refreshTTL time.Duration
	now        func() time.Time
}

func NewService(users UserStore, tokens RefreshTokenStore, jwt TokenIssuer, refreshTTL time.Duration) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		jwt:        jwt,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

type LoginResult struct {
	User   *domain.User
	Tokens TokenPair
}

// Register creates a staff account. Admins are only made by the seeder or by
// hand.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	fields, err := s.validateRegistration(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleStaff,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) validateRegistration(ctx context.Context, req RegisterRequest) (map[string]string, error) {
	fields := map[string]string{}

	switch {
	case req.Username == "":
		fields["username"] = "Username is required."
	case len(req.Username) < 3 || len(req.Username) > 50:
		fields["username"] = "Username must be between 3 and 50 characters."
	case !usernamePattern.MatchString(req.Username):
		fields["username"] = "Username can only contain letters, numbers, and underscores."
	default:
		taken, err := s.users.UsernameExists(ctx, req.Username, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			fields["username"] = "Username is already taken."
		}
	}

	switch {
	case req.Email == "":
		fields["email"] = "Email is required."
	case !validEmail(req.Email):
		fields["email"] = "Please enter a valid email address."
	default:
		taken, err := s.users.EmailExists(ctx, req.Email, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			fields["email"] = "Email is already registered."
		}
	}

	switch {
	case req.Password == "":
		fields["password"] = "Password is required."
	case len(req.Password) < 6:
		fields["password"] = "Password must be at least 6 characters."
	}

	switch {
	case req.ConfirmPassword == "":
		fields["confirm_password"] = "Please confirm your password."
	case req.ConfirmPassword != req.Password:
		fields["confirm_password"] = "Passwords do not match."
	}

	return fields, nil
}

// Login accepts a username or an email address. Inactive accounts and
// unknown logins fail the same way as a wrong password.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Tokens: tokens}, nil
}

// Refresh rotates the refresh token: the presented one is revoked and a new
// pair issued. Expired, revoked and unknown tokens all map to
// ErrInvalidRefresh.
func (s *Service) Refresh(ctx context.Context, rawToken string) (*LoginResult, error) {
	record, err := s.tokens.GetByHash(ctx, hashToken(rawToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	if record.IsRevoked() || record.IsExpired(s.now()) {
		return nil, ErrInvalidRefresh
	}

	user, err := s.users.GetByID(ctx, record.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidRefresh
	}

	if err := s.tokens.Revoke(ctx, record.ID); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Tokens: tokens}, nil
}

// Logout revokes the presented refresh token. An unknown token is not an
// error; logout is idempotent.
func (s *Service) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}

	record, err := s.tokens.GetByHash(ctx, hashToken(rawToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.tokens.Revoke(ctx, record.ID)
}

// LogoutAll revokes every live session of the user.
func (s *Service) LogoutAll(ctx context.Context, userID int64) error {
	return s.tokens.RevokeByUser(ctx, userID)
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *Service) issueTokens(ctx context.Context, user *domain.User) (TokenPair, error) {
	access, err := s.jwt.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return TokenPair{}, err
	}

	raw, err := newRefreshToken()
	if err != nil {
		return TokenPair{}, err
	}

	err = s.tokens.Create(ctx, &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(raw),
		ExpiresAt: s.now().Add(s.refreshTTL),
	})
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: raw}, nil
}

// newRefreshToken returns 32 bytes of entropy as hex. Only the SHA-256 of it
// is stored.
func newRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// Public strips the credential fields for responses.
func Public(u *domain.User) UserPublic {
	return UserPublic{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
