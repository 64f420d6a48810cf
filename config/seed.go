package config

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
)

// SeedAdmin creates the bootstrap admin account once. Credentials come from
// ADMIN_EMAIL / ADMIN_PASSWORD with dev defaults.
func SeedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@saimotors.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var cnt int64
	DB.Model(&models.User{}).Where("email = ?", email).Count(&cnt)
	if cnt > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	admin := models.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("seed admin: %v", err)
		return
	}
	log.Printf("seeded admin account %s", email)
}
