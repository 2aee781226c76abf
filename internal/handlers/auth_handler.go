package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kirienkoandrew/HairCut-1/internal/config"
	domain "github.com/kirienkoandrew/HairCut-1/internal/domain/scheduling"
	"github.com/kirienkoandrew/HairCut-1/internal/models"
	"github.com/kirienkoandrew/HairCut-1/internal/notify"
	"github.com/kirienkoandrew/HairCut-1/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	notify *notify.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, notifier *notify.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, notify: notifier}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone" binding:"required"`

	ProfessionID uint   `json:"profession_id" binding:"required"`
	About        string `json:"about"`
	WorkStart    string `json:"work_start" binding:"required"`
	WorkEnd      string `json:"work_end" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register onboards a master: user account plus a pending profile.
// The profile stays pending until an administrator activates it.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone"})
		return
	}

	if _, err := domain.ParseWorkWindow(req.WorkStart, req.WorkEnd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_work_window"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
		return
	}

	var profession models.Profession
	if err := h.db.First(&profession, req.ProfessionID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profession_not_found"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         "master",
	}

	profile := models.MasterProfile{
		ProfessionID: profession.ID,
		Phone:        req.Phone,
		About:        req.About,
		WorkStart:    req.WorkStart,
		WorkEnd:      req.WorkEnd,
		Status:       models.MasterStatusPending,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(&profile).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_register_master"})
		return
	}

	h.notify.MasterRegistered(&profile, &user)

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
		},
		"master": gin.H{
			"id":         profile.ID,
			"status":     profile.Status,
			"work_start": profile.WorkStart,
			"work_end":   profile.WorkEnd,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	resp := gin.H{
		"token":   token,
		"user_id": user.ID,
		"email":   user.Email,
	}

	// explicit lookup: master_id is present only when a profile exists
	var profile models.MasterProfile
	if err := h.db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
		resp["master_id"] = profile.ID
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  float64(user.ID),
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
