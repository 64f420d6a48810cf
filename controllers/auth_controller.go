package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/config"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/utils"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

func Register(c *gin.Context) {
	var in RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	var exist int64
	config.DB.Model(&models.User{}).Where("email = ?", in.Email).Count(&exist)
	if exist > 0 {
		utils.Error(c, http.StatusBadRequest, "Email already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to create account", err)
		return
	}

	role := in.Role
	if role != "admin" {
		role = "staff"
	}
	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to create account", err)
		return
	}
	utils.Created(c, "Account created", user)
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND is_active = true", in.Email).First(&user).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		utils.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	config.DB.Save(&user)

	token, err := utils.GenerateToken(user.ID, user.Name, user.Role)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"data":    user,
	})
}

func Profile(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found", nil)
		return
	}
	utils.Success(c, "Profile fetched", user)
}
