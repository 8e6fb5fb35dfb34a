package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"HRDeskGo/config"
	"HRDeskGo/models"
	"HRDeskGo/services"
	"HRDeskGo/utils"
)

// AuthController handles account registration and session lifecycle.
type AuthController struct {
	sessions *services.TokenSessions
}

func NewAuthController(sessions *services.TokenSessions) *AuthController {
	return &AuthController{sessions: sessions}
}

// Register creates an account and returns a session token.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	user := models.User{
		ID:           utils.GenerateID(),
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		config.Logger.Errorw("user creation failed",
			"error", err,
			"email", user.Email,
		)
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}
	config.Logger.Infow("user created",
		"userID", user.ID,
		"email", user.Email,
	)

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.GetDisplayName(),
			"email": user.Email,
		},
	})
}

// Login authenticates an account and returns a session token.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user)
	if result.Error != nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&user).Update("last_login", now).Error; err != nil {
		config.Logger.Warnw("failed to record last login", "error", err, "userID", user.ID)
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.GetDisplayName(),
			"email": user.Email,
		},
	})
}

// Logout revokes the current token. Later session lookups fail until a
// new login.
func (ac *AuthController) Logout(c *gin.Context) {
	token := c.GetString(services.SessionTokenKey)
	if err := ac.sessions.Revoke(c, token); err != nil {
		config.Logger.Errorw("logout failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// Me returns the authenticated account.
func (ac *AuthController) Me(c *gin.Context) {
	uid := c.GetString("uid")

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("user lookup failed", "error", err, "userID", uid)
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": models.UserResponse{
			ID:    user.ID,
			Name:  user.GetDisplayName(),
			Email: user.Email,
		},
	})
}
