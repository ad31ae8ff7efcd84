package profile

import (
	"context"
	"errors"
	"strings"

	"github.com/skillsmatch/careermatch/internal/profile/entity"
	"github.com/skillsmatch/careermatch/internal/profile/repo"
	"github.com/skillsmatch/careermatch/pkg/utilities"
)

// defaultBio fills in when a guest leaves the biography blank.
const defaultBio = "Exploring careers!"

// Service handles the legacy anonymous profile path: submissions made
// without a session are kept as standalone records.
type Service struct {
	repo repo.Repository
}

func NewService(r repo.Repository) *Service { return &Service{repo: r} }

// Save stores a guest submission and returns the stored record.
func (s *Service) Save(ctx context.Context, name, skills, bio, personalityType string) (*entity.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if strings.TrimSpace(bio) == "" {
		bio = defaultBio
	}
	p := &entity.Profile{
		ID:              utilities.NewKSUID(),
		Name:            name,
		Skills:          skills,
		Bio:             bio,
		PersonalityType: personalityType,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Latest returns the most recent guest profile, or (nil, nil) when no
// guest has submitted one yet.
func (s *Service) Latest(ctx context.Context) (*entity.Profile, error) {
	p, err := s.repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}
