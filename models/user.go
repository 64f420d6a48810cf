package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:180;not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;size:180;not null" json:"email"`
	PasswordHash string     `gorm:"size:255" json:"-"` // never sent to clients
	Role         string     `gorm:"size:20;default:staff" json:"role"` // admin | staff
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
