package models

import (
	"time"

	"github.com/lib/pq"
)

type Product struct {
	ID            int64          `gorm:"primaryKey"`
	Name          string         `gorm:"type:text;not null"`
	Slug          string         `gorm:"type:text;not null;uniqueIndex:products_slug_key"`
	Description   *string        `gorm:"type:text"`
	Price         float64        `gorm:"type:numeric(12,2);not null"`
	ImageURL      *string        `gorm:"column:image_url;type:text"`
	Images        pq.StringArray `gorm:"type:text[]"`
	ProductType   *string        `gorm:"type:text"`
	StockQuantity int            `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Product) TableName() string {
	return "products"
}

type Category struct {
	ID          int64   `gorm:"primaryKey"`
	Name        string  `gorm:"type:text;not null;uniqueIndex:categories_name_key"`
	Slug        string  `gorm:"type:text;not null;uniqueIndex:categories_slug_key"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (Category) TableName() string {
	return "categories"
}
