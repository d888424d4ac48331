package account

type Role string

const (
	RoleUser   Role = "user"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// Roles lists every assignable role.
var Roles = []Role{RoleUser, RoleEditor, RoleAdmin}

func ParseRole(raw string) (Role, error) {
	for _, r := range Roles {
		if string(r) == raw {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

// Principal is the authenticated caller on whose behalf an operation runs.
// The zero value is anonymous.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

// System is used by operator tooling that runs outside a user session.
func System() Principal {
	return Principal{UserID: "system", Role: RoleAdmin}
}

func (p Principal) IsAuthenticated() bool {
	return p.UserID != ""
}

// RequireAdmin returns nil only for an authenticated admin.
func (p Principal) RequireAdmin() error {
	if !p.IsAuthenticated() {
		return ErrUnauthenticated
	}
	if p.Role != RoleAdmin {
		return ErrForbidden
	}
	return nil
}

// RequireContentEditor allows admins and editors.
func (p Principal) RequireContentEditor() error {
	if !p.IsAuthenticated() {
		return ErrUnauthenticated
	}
	if p.Role != RoleAdmin && p.Role != RoleEditor {
		return ErrForbidden
	}
	return nil
}
