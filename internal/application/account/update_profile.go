package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/account"
	"go.uber.org/zap"
)

const accountPath = "/account"

type UpdateProfileInput struct {
	Username  string `validate:"required,max=64"`
	FullName  string `validate:"max=255"`
	Website   string `validate:"omitempty,url"`
	AvatarURL string `validate:"omitempty,url"`
}

type UpdateProfile interface {
	Execute(ctx context.Context, actor domain.Principal, in UpdateProfileInput) (ProfileOutput, error)
}

type updateProfile struct {
	repo        domain.ProfileRepository
	revalidator revalidator
	logger      *zap.Logger
}

func NewUpdateProfile(repo domain.ProfileRepository, r revalidator, logger *zap.Logger) UpdateProfile {
	return &updateProfile{repo: repo, revalidator: r, logger: logger}
}

// Execute edits the caller's own profile.
func (uc *updateProfile) Execute(ctx context.Context, actor domain.Principal, in UpdateProfileInput) (ProfileOutput, error) {
	if !actor.IsAuthenticated() {
		return ProfileOutput{}, domain.ErrUnauthenticated
	}

	in = UpdateProfileInput{
		Username:  strings.TrimSpace(in.Username),
		FullName:  strings.TrimSpace(in.FullName),
		Website:   strings.TrimSpace(in.Website),
		AvatarURL: strings.TrimSpace(in.AvatarURL),
	}
	if err := validate.Struct(in); err != nil {
		return ProfileOutput{}, fmt.Errorf("%w: %v", ErrInvalidProfileInput, err)
	}

	profile, err := uc.repo.UpdateProfile(ctx, actor.UserID, domain.ProfileChanges{
		Username:  in.Username,
		FullName:  optionalText(in.FullName),
		Website:   optionalText(in.Website),
		AvatarURL: optionalText(in.AvatarURL),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			return ProfileOutput{}, ErrUsernameTaken
		case errors.Is(err, domain.ErrProfileNotFound):
			return ProfileOutput{}, ErrProfileNotFound
		}
		return ProfileOutput{}, fmt.Errorf("%w: %v", ErrUpdateProfile, err)
	}

	if err := uc.revalidator.Revalidate(ctx, accountPath); err != nil {
		uc.logger.Error("revalidate paths", zap.String("path", accountPath), zap.Error(err))
	}

	return toProfileOutput(profile), nil
}

func optionalText(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
