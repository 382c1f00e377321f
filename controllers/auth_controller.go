package controllers

import (
	"net/http"
	"strings"

	"tour-admin-backend/middleware"
	"tour-admin-backend/models"
	"tour-admin-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login signs a subject in and gates on the admin role: a valid password
// without the admin grant is signed out immediately and rejected.
func (a *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	email := strings.TrimSpace(payload.Email)
	password := payload.Password
	if email == "" || password == "" {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	var user models.AdminUser
	if err := a.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	isAdmin, err := middleware.HasRole(a.DB, user.ID, models.RoleAdmin)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to check role")
		return
	}
	if !isAdmin {
		_ = middleware.ClearSessionUser(c)
		utils.JSONError(c, http.StatusForbidden, "Access denied. Admin privileges required.")
		return
	}

	if err := middleware.SetSessionUser(c, user.ID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start session")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"id":        user.ID,
		"full_name": user.FullName,
		"email":     user.Email,
	})
}

func (a *AuthController) Logout(c *gin.Context) {
	if err := middleware.ClearSessionUser(c); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to end session")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "signed out"})
}

// Me returns the current subject, for the layout chrome.
func (a *AuthController) Me(c *gin.Context) {
	userID := middleware.SessionUserID(c)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "not signed in")
		return
	}

	var user models.AdminUser
	if err := a.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "not signed in")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"id":        user.ID,
		"full_name": user.FullName,
		"email":     user.Email,
	})
}
