package models

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleEditor  Role = "editor"
	RoleUser    Role = "user"
)

func ValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleManager, RoleEditor, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Name         string         `json:"name"`
	Email        string         `gorm:"unique;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         Role           `gorm:"type:VARCHAR(20);default:'user'" json:"role"`
	AddressBook  []AddressEntry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"address_book"`
	Cart         Cart           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
}

type AddressEntry struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     string `gorm:"index" json:"-"`
	Kind       string `gorm:"type:VARCHAR(20)" json:"kind"` // shipping or billing
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postal_code"`
}
