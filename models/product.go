package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Image       string         `json:"image"`
	Images      StringList     `gorm:"type:text" json:"images"`
	CategoryID  string         `gorm:"index" json:"category"` // loose slug reference, no FK constraint
	Stock       int            `json:"stock"`
	Highlights  StringList     `gorm:"type:text" json:"highlights,omitempty"`
	Sizes       StringList     `gorm:"type:text" json:"sizes,omitempty"`
	SizeGuide   string         `json:"size_guide,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
