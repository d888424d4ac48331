package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/creations-admin/internal/domain/account"
)

type GetProfileInput struct {
	ID string
}

type ProfileOutput struct {
	ID        string     `json:"id"`
	Username  *string    `json:"username"`
	FullName  *string    `json:"full_name"`
	Website   *string    `json:"website"`
	AvatarURL *string    `json:"avatar_url"`
	Role      string     `json:"role"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type GetProfile interface {
	Execute(ctx context.Context, in GetProfileInput) (ProfileOutput, error)
}

type getProfile struct {
	repo domain.ProfileRepository
}

func NewGetProfile(repo domain.ProfileRepository) GetProfile {
	return &getProfile{repo: repo}
}

func (uc *getProfile) Execute(ctx context.Context, in GetProfileInput) (ProfileOutput, error) {
	if _, err := uuid.Parse(in.ID); err != nil {
		return ProfileOutput{}, ErrInvalidUserID
	}

	profile, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return ProfileOutput{}, ErrProfileNotFound
		}
		return ProfileOutput{}, fmt.Errorf("%w: %v", ErrGetProfile, err)
	}

	return toProfileOutput(profile), nil
}

func toProfileOutput(p *domain.Profile) ProfileOutput {
	role := p.Role
	if role == "" {
		role = domain.RoleUser
	}
	return ProfileOutput{
		ID:        p.ID,
		Username:  p.Username,
		FullName:  p.FullName,
		Website:   p.Website,
		AvatarURL: p.AvatarURL,
		Role:      string(role),
		UpdatedAt: p.UpdatedAt,
	}
}
