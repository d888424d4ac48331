package account

import "time"

type Profile struct {
	ID        string
	Username  *string
	FullName  *string
	Website   *string
	AvatarURL *string
	Role      Role
	UpdatedAt *time.Time
}

// ProfileChanges holds the self-editable profile fields.
type ProfileChanges struct {
	Username  string
	FullName  *string
	Website   *string
	AvatarURL *string
}
