package account

import "context"

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)
	UpdateRole(ctx context.Context, id string, role Role) error
	UpdateProfile(ctx context.Context, id string, changes ProfileChanges) (*Profile, error)
	// List returns every profile grouped by role.
	List(ctx context.Context) ([]Profile, error)
}
