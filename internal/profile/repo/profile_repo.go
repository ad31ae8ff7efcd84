package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/skillsmatch/careermatch/internal/profile/entity"
)

var ErrNotFound = errors.New("profile not found")

// Repository is the data-access contract for guest profiles.
type Repository interface {
	Create(ctx context.Context, p *entity.Profile) error
	Latest(ctx context.Context) (*entity.Profile, error)
}

// ProfileRepo stores guest profile submissions in Postgres.
type ProfileRepo struct {
	db *sqlx.DB
}

func NewProfileRepo(db *sqlx.DB) *ProfileRepo { return &ProfileRepo{db: db} }

// EnsureTable creates the profiles table if it does not already exist.
func (r *ProfileRepo) EnsureTable(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS profiles (
  id varchar(32) PRIMARY KEY,
  name TEXT NOT NULL,
  skills TEXT NOT NULL,
  bio TEXT NOT NULL DEFAULT '',
  personality_type TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_profiles_created_at ON profiles (created_at);
`
	_, err := r.db.ExecContext(ctx, ddl)
	return err
}

// Create inserts a guest profile. The caller supplies the ID.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	const q = `INSERT INTO profiles (id, name, skills, bio, personality_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`
	if err := r.db.QueryRowxContext(ctx, q, p.ID, p.Name, p.Skills, p.Bio, p.PersonalityType).Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// Latest returns the most recent guest profile or ErrNotFound.
func (r *ProfileRepo) Latest(ctx context.Context) (*entity.Profile, error) {
	const q = `SELECT id, name, skills, bio, personality_type, created_at
		FROM profiles ORDER BY created_at DESC, id DESC LIMIT 1`
	var row entity.Profile
	if err := r.db.GetContext(ctx, &row, q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("latest profile: %w", err)
	}
	return &row, nil
}
