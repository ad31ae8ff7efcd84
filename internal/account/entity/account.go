package entity

import "time"

// Account represents a row in the `accounts` table: login credentials
// plus the optional self-assessment profile fields. Nullable columns
// are pointers so partial updates can tell "absent" from "cleared".
type Account struct {
	ID              int64      `db:"id" json:"id"`
	Username        string     `db:"username" json:"username"`
	Email           string     `db:"email" json:"email"`
	PasswordHash    string     `db:"password_hash" json:"-"`
	Name            *string    `db:"name" json:"name,omitempty"`
	Skills          *string    `db:"skills" json:"skills,omitempty"`
	Bio             *string    `db:"bio" json:"bio,omitempty"`
	FavoriteSubject *string    `db:"favorite_subject" json:"favorite_subject,omitempty"`
	PersonalityType *string    `db:"personality_type" json:"personality_type,omitempty"`
	SessionToken    *string    `db:"session_token" json:"-"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
	LastLoginAt     *time.Time `db:"last_login_at" json:"-"`
}

// ProfileUpdate carries a partial profile mutation: nil fields leave
// the stored value unchanged.
type ProfileUpdate struct {
	Name            *string
	Skills          *string
	Bio             *string
	FavoriteSubject *string
	PersonalityType *string
}

// Empty reports whether the update carries no fields at all.
func (u ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Skills == nil && u.Bio == nil &&
		u.FavoriteSubject == nil && u.PersonalityType == nil
}
