package models

import "time"

// Profile mirrors the auth user id; rows are created by the auth platform.
type Profile struct {
	ID        string  `gorm:"type:uuid;primaryKey"`
	Username  *string `gorm:"type:text;uniqueIndex:profiles_username_key"`
	FullName  *string `gorm:"type:text"`
	Website   *string `gorm:"type:text"`
	AvatarURL *string `gorm:"column:avatar_url;type:text"`
	Role      string  `gorm:"type:text;not null;default:user"`
	UpdatedAt *time.Time
}

func (Profile) TableName() string {
	return "profiles"
}
