package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/tasks/internal/tasks/domain"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/pkg/cryptox"
	"github.com/aussiebroadwan/tasks/pkg/idx"
	"github.com/aussiebroadwan/tasks/pkg/jwtx"
	"github.com/aussiebroadwan/tasks/pkg/slogx"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 64
	maxNameLen     = 100
	maxPasswordLen = 1024
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

type AuthService struct {
	Store    store.Store
	Hasher   *cryptox.Hasher
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string

	// TokenTTL is the access token lifetime. Zero uses jwtx.DefaultAccessTokenTTL.
	TokenTTL time.Duration

	// Now is the clock used for timestamps and token issuance. Nil uses time.Now.
	Now func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// RegisterParams are the inputs to RegisterUser.
type RegisterParams struct {
	Username  string
	Email     *string
	FirstName string
	LastName  string
	Password  string
}

// IssuedToken is a signed access token with its lifetime.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
	TTL       time.Duration
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// RegisterUser validates the input, hashes the password and stores an
// active user.
func (s *AuthService) RegisterUser(ctx context.Context, p RegisterParams) (domain.User, error) {
	l := slogx.FromContext(ctx)

	username := strings.TrimSpace(p.Username)
	if err := validateUsername(username); err != nil {
		return domain.User{}, err
	}
	if strings.TrimSpace(p.Password) == "" {
		return domain.User{}, invalid("password", "password is required")
	}
	if len(p.Password) > maxPasswordLen {
		return domain.User{}, invalid("password", "password must be at most %d bytes", maxPasswordLen)
	}

	firstName := strings.TrimSpace(p.FirstName)
	lastName := strings.TrimSpace(p.LastName)
	if utf8.RuneCountInString(firstName) > maxNameLen {
		return domain.User{}, invalid("first_name", "first_name must be at most %d characters", maxNameLen)
	}
	if utf8.RuneCountInString(lastName) > maxNameLen {
		return domain.User{}, invalid("last_name", "last_name must be at most %d characters", maxNameLen)
	}

	email, err := normaliseEmail(p.Email)
	if err != nil {
		return domain.User{}, err
	}

	hash, err := s.Hasher.HashPassword(p.Password)
	if err != nil {
		return domain.User{}, err
	}

	now := s.now()
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Username:     username,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	l.Info("user registered", slog.String("user_id", user.ID), slog.String("username", user.Username))
	return user, nil
}

// Authenticate checks a username and password. Unknown users, inactive
// users and wrong passwords all return ErrInvalidCredentials after the same
// amount of hashing work.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)
	username = strings.TrimSpace(username)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return domain.User{}, err
		}
		_ = s.Hasher.VerifyPassword(password, s.dummy())
		l.Info("login failed", slog.String("reason", "unknown_user"))
		return domain.User{}, ErrInvalidCredentials
	}

	if err := s.Hasher.VerifyPassword(password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrMismatch) {
			l.Warn("stored password hash is unreadable", slog.String("user_id", user.ID), slog.Any("err", err))
		}
		l.Info("login failed", slog.String("reason", "bad_password"), slog.String("user_id", user.ID))
		return domain.User{}, ErrInvalidCredentials
	}

	if !user.Active {
		l.Info("login failed", slog.String("reason", "inactive"), slog.String("user_id", user.ID))
		return domain.User{}, ErrInvalidCredentials
	}

	if s.Hasher.NeedsRehash(user.PasswordHash) {
		s.rehash(ctx, user, password)
	}

	return user, nil
}

// rehash upgrades a legacy hash. Failure leaves the old hash in place.
func (s *AuthService) rehash(ctx context.Context, user domain.User, password string) {
	l := slogx.FromContext(ctx)

	hash, err := s.Hasher.HashPassword(password)
	if err == nil {
		err = s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash)
	}
	if err != nil {
		l.Warn("password rehash failed", slog.String("user_id", user.ID), slog.Any("err", err))
		return
	}
	l.Info("password hash upgraded", slog.String("user_id", user.ID))
}

// IssueToken signs an access token for user. A non-positive ttl falls back
// to the service TokenTTL, then to jwtx.DefaultAccessTokenTTL.
func (s *AuthService) IssueToken(user domain.User, ttl time.Duration) (IssuedToken, error) {
	if ttl <= 0 {
		ttl = s.TokenTTL
	}
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(user.Username, user.ID, s.Issuer, ttl, s.now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return IssuedToken{}, err
	}

	return IssuedToken{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		TTL:       ttl,
	}, nil
}

// VerifyToken checks the signature and lifetime of raw and returns the
// identity it asserts.
func (s *AuthService) VerifyToken(raw string) (domain.Identity, error) {
	claims, err := s.Verifier.Verify(raw)
	if err != nil {
		switch {
		case errors.Is(err, jwtx.ErrExpired):
			return domain.Identity{}, ErrTokenExpired
		case errors.Is(err, jwtx.ErrInvalidClaim):
			return domain.Identity{}, ErrMalformedClaims
		default:
			return domain.Identity{}, ErrInvalidToken
		}
	}

	if claims.Subject == "" || claims.UserID == "" {
		return domain.Identity{}, ErrMalformedClaims
	}

	return domain.Identity{Username: claims.Subject, UserID: claims.UserID}, nil
}

// Login authenticates and issues a token with the configured lifetime.
func (s *AuthService) Login(ctx context.Context, username, password string) (IssuedToken, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return IssuedToken{}, err
	}

	tok, err := s.IssueToken(user, 0)
	if err != nil {
		return IssuedToken{}, err
	}

	slogx.FromContext(ctx).Info("token issued", slog.String("user_id", user.ID), slog.Time("expires_at", tok.ExpiresAt))
	return tok, nil
}

// dummy returns a hash with the same cost as real ones, computed once.
func (s *AuthService) dummy() string {
	s.dummyOnce.Do(func() {
		hash, err := s.Hasher.HashPassword(idx.New().String())
		if err != nil {
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

func validateUsername(username string) error {
	if username == "" {
		return invalid("username", "username is required")
	}
	n := utf8.RuneCountInString(username)
	if n < minUsernameLen || n > maxUsernameLen {
		return invalid("username", "username must be between %d and %d characters", minUsernameLen, maxUsernameLen)
	}
	if !usernamePattern.MatchString(username) {
		return invalid("username", "username may only contain letters, digits, '_', '.' and '-'")
	}
	return nil
}

func normaliseEmail(email *string) (*string, error) {
	if email == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*email)
	if trimmed == "" {
		return nil, nil
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return nil, invalid("email", "email is not a valid address")
	}
	return &trimmed, nil
}
