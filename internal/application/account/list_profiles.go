package account

import (
	"context"
	"fmt"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/account"
)

type ListProfiles interface {
	Execute(ctx context.Context, actor domain.Principal) ([]ProfileOutput, error)
}

type listProfiles struct {
	repo domain.ProfileRepository
}

func NewListProfiles(repo domain.ProfileRepository) ListProfiles {
	return &listProfiles{repo: repo}
}

// Execute lists admins first, then editors, then plain users.
func (uc *listProfiles) Execute(ctx context.Context, actor domain.Principal) ([]ProfileOutput, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	profiles, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListProfiles, err)
	}

	out := make([]ProfileOutput, 0, len(profiles))
	for i := range profiles {
		out = append(out, toProfileOutput(&profiles[i]))
	}
	return out, nil
}
