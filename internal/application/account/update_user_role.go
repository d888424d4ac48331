package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	domain "github.com/mohammadpnp/creations-admin/internal/domain/account"
	"go.uber.org/zap"
)

const adminUsersPath = "/admin/users"

var validate = validator.New(validator.WithRequiredStructEnabled())

type revalidator interface {
	Revalidate(ctx context.Context, paths ...string) error
}

type UpdateUserRoleInput struct {
	UserID string
	Role   string `validate:"required,oneof=user editor admin"`
}

type UpdateUserRoleOutput struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type UpdateUserRole interface {
	Execute(ctx context.Context, actor domain.Principal, in UpdateUserRoleInput) (UpdateUserRoleOutput, error)
}

type updateUserRole struct {
	repo        domain.ProfileRepository
	revalidator revalidator
	logger      *zap.Logger
}

func NewUpdateUserRole(repo domain.ProfileRepository, r revalidator, logger *zap.Logger) UpdateUserRole {
	return &updateUserRole{repo: repo, revalidator: r, logger: logger}
}

func (uc *updateUserRole) Execute(ctx context.Context, actor domain.Principal, in UpdateUserRoleInput) (UpdateUserRoleOutput, error) {
	if err := actor.RequireAdmin(); err != nil {
		return UpdateUserRoleOutput{}, err
	}
	if _, err := uuid.Parse(in.UserID); err != nil {
		return UpdateUserRoleOutput{}, ErrInvalidUserID
	}
	if err := validate.Struct(in); err != nil {
		return UpdateUserRoleOutput{}, ErrInvalidRole
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return UpdateUserRoleOutput{}, err
	}

	if err := uc.repo.UpdateRole(ctx, in.UserID, role); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return UpdateUserRoleOutput{}, ErrProfileNotFound
		}
		return UpdateUserRoleOutput{}, fmt.Errorf("%w: %v", ErrUpdateRole, err)
	}

	uc.logger.Info("user role updated",
		zap.String("actor_id", actor.UserID),
		zap.String("user_id", in.UserID),
		zap.String("role", string(role)),
	)
	if err := uc.revalidator.Revalidate(ctx, adminUsersPath); err != nil {
		uc.logger.Error("revalidate paths", zap.String("path", adminUsersPath), zap.Error(err))
	}

	return UpdateUserRoleOutput{UserID: in.UserID, Role: string(role)}, nil
}
