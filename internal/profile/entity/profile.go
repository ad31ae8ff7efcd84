package entity

import "time"

// Profile is a guest (logged-out) self-assessment submission. It lives
// in its own table and never touches the accounts table; the canonical
// field name for the free-text skills is Skills regardless of what the
// submitting form calls it.
type Profile struct {
	ID              string    `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Skills          string    `db:"skills" json:"skills"`
	Bio             string    `db:"bio" json:"bio"`
	PersonalityType string    `db:"personality_type" json:"personality_type,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
