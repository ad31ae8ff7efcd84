package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/skillsmatch/careermatch/internal/account/entity"
)

// Sentinel errors returned by the repository layer.
var (
	ErrNotFound  = errors.New("account not found")
	ErrDuplicate = errors.New("username or email already taken")
)

// uniqueViolation is the Postgres error code for unique-constraint hits.
const uniqueViolation = "23505"

// Repository is the data-access contract for accounts. The Postgres
// implementation below is the production one; tests substitute fakes.
type Repository interface {
	Create(ctx context.Context, a *entity.Account) (*entity.Account, error)
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)
	GetByToken(ctx context.Context, token string) (*entity.Account, error)
	UpdateProfile(ctx context.Context, id int64, u entity.ProfileUpdate) (*entity.Account, error)
	UpdateToken(ctx context.Context, id int64, token *string) error
}

const accountColumns = `id, username, email, password_hash, name, skills, bio,
	favorite_subject, personality_type, session_token, created_at, updated_at, last_login_at`

// AccountRepo provides account data access backed by Postgres via sqlx.
type AccountRepo struct {
	db *sqlx.DB
}

func NewAccountRepo(db *sqlx.DB) *AccountRepo { return &AccountRepo{db: db} }

// EnsureTable creates the accounts table if not exists (idempotent).
// This is a convenience for early development; prefer migrations in production.
func (r *AccountRepo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS accounts (
  id BIGSERIAL PRIMARY KEY,
  username TEXT UNIQUE NOT NULL,
  email TEXT UNIQUE NOT NULL,
  password_hash TEXT NOT NULL,
  name TEXT,
  skills TEXT,
  bio TEXT,
  favorite_subject TEXT,
  personality_type TEXT,
  session_token TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  last_login_at TIMESTAMPTZ
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_session_token ON accounts(session_token);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

// Create inserts a new account. A username or email collision yields
// ErrDuplicate.
func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) (*entity.Account, error) {
	const q = `INSERT INTO accounts (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + accountColumns
	var row entity.Account
	if err := r.db.GetContext(ctx, &row, q, a.Username, a.Email, a.PasswordHash); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return &row, nil
}

// GetByUsername fetches by username or returns ErrNotFound.
func (r *AccountRepo) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	const q = `SELECT ` + accountColumns + ` FROM accounts WHERE username=$1`
	var row entity.Account
	if err := r.db.GetContext(ctx, &row, q, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get account by username: %w", err)
	}
	return &row, nil
}

// GetByToken resolves a session token to its account. An empty token
// never matches and short-circuits without a query.
func (r *AccountRepo) GetByToken(ctx context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	const q = `SELECT ` + accountColumns + ` FROM accounts WHERE session_token=$1`
	var row entity.Account
	if err := r.db.GetContext(ctx, &row, q, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get account by token: %w", err)
	}
	return &row, nil
}

// UpdateProfile applies a partial profile update: only supplied fields
// overwrite stored values. An empty update degenerates to a fetch.
func (r *AccountRepo) UpdateProfile(ctx context.Context, id int64, u entity.ProfileUpdate) (*entity.Account, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	add := func(col string, v *string) {
		if v == nil {
			return
		}
		args = append(args, *v)
		sets = append(sets, fmt.Sprintf("%s=$%d", col, len(args)))
	}
	add("name", u.Name)
	add("skills", u.Skills)
	add("bio", u.Bio)
	add("favorite_subject", u.FavoriteSubject)
	add("personality_type", u.PersonalityType)
	if len(sets) == 0 {
		return r.getByID(ctx, id)
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE accounts SET %s, updated_at=NOW() WHERE id=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), accountColumns)
	var row entity.Account
	if err := r.db.GetContext(ctx, &row, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &row, nil
}

// UpdateToken sets or clears (nil) the single session token slot.
func (r *AccountRepo) UpdateToken(ctx context.Context, id int64, token *string) error {
	var q string
	if token != nil {
		q = `UPDATE accounts SET session_token=$2, last_login_at=NOW(), updated_at=NOW() WHERE id=$1`
	} else {
		q = `UPDATE accounts SET session_token=NULL, updated_at=NOW() WHERE id=$1`
	}
	var err error
	if token != nil {
		_, err = r.db.ExecContext(ctx, q, id, *token)
	} else {
		_, err = r.db.ExecContext(ctx, q, id)
	}
	if err != nil {
		return fmt.Errorf("update session token: %w", err)
	}
	return nil
}

func (r *AccountRepo) getByID(ctx context.Context, id int64) (*entity.Account, error) {
	const q = `SELECT ` + accountColumns + ` FROM accounts WHERE id=$1`
	var row entity.Account
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}
	return &row, nil
}
