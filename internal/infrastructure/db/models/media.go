package models

import "time"

type Media struct {
	ID                string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	StorageBucketID   string  `gorm:"type:text;not null"`
	StorageObjectPath string  `gorm:"type:text;not null"`
	AltText           *string `gorm:"type:text"`
	Title             *string `gorm:"type:text"`
	Caption           *string `gorm:"type:text"`
	OriginalFilename  *string `gorm:"type:text"`
	MimeType          *string `gorm:"type:text"`
	SizeKB            *int64  `gorm:"column:size_kb"`
	UploadedBy        *string `gorm:"type:uuid"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Media) TableName() string {
	return "media"
}
