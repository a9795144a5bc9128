package models

// Category is keyed by its slug. Products reference it through a plain
// string column, referential integrity is not enforced.
type Category struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}
