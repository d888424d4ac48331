package models

import "time"

type Article struct {
	ID        int64   `gorm:"primaryKey"`
	Title     string  `gorm:"type:text;not null"`
	Slug      string  `gorm:"type:text;not null;uniqueIndex:articles_slug_key"`
	Excerpt   *string `gorm:"type:text"`
	Content   string  `gorm:"type:text;not null"`
	ImageURL  *string `gorm:"column:image_url;type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Article) TableName() string {
	return "articles"
}
