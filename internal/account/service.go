package account

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/skillsmatch/careermatch/internal/account/entity"
	"github.com/skillsmatch/careermatch/internal/account/repo"
)

var (
	ErrDuplicate      = repo.ErrDuplicate
	ErrBadCredentials = errors.New("invalid credentials")
)

// PasswordHasher defines minimal hashing interface (abstract so we can swap to argon2 later).
type PasswordHasher interface {
	Hash(pw string) (string, error)
	Verify(hash, pw string) bool
}

// BcryptHasher implementation.
type BcryptHasher struct{ Cost int }

func (b BcryptHasher) Hash(pw string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify fails closed: any internal bcrypt error reads as a mismatch.
func (b BcryptHasher) Verify(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// Service orchestrates signup, credential checks, and profile updates.
type Service struct {
	repo   repo.Repository
	hasher PasswordHasher
}

func NewService(r repo.Repository, hasher PasswordHasher) *Service {
	if hasher == nil {
		hasher = BcryptHasher{Cost: 12}
	}
	return &Service{repo: r, hasher: hasher}
}

// Signup creates an account with a hashed password. The plaintext is
// never retained. Username/email collisions surface as ErrDuplicate.
func (s *Service) Signup(ctx context.Context, username, email, password string) (*entity.Account, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, errors.New("username, email and password are required")
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &entity.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
}

// Authenticate verifies a username/password pair. Every failure mode
// (unknown user, wrong password, hashing fault) collapses into
// ErrBadCredentials so the caller cannot tell which part was wrong.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entity.Account, error) {
	a, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(a.PasswordHash, password) {
		return nil, ErrBadCredentials
	}
	return a, nil
}

// SaveProfile applies a partial profile update to the account; fields
// left nil keep their stored values.
func (s *Service) SaveProfile(ctx context.Context, id int64, u entity.ProfileUpdate) (*entity.Account, error) {
	return s.repo.UpdateProfile(ctx, id, u)
}
