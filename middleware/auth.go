package middleware

import (
	"net/http"

	"tour-admin-backend/models"
	"tour-admin-backend/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const sessionUserIDKey = "user_id"

// SetSessionUser stores the authenticated subject in the cookie session.
func SetSessionUser(c *gin.Context, userID string) error {
	session := sessions.Default(c)
	session.Set(sessionUserIDKey, userID)
	return session.Save()
}

// ClearSessionUser signs the subject out.
func ClearSessionUser(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionUserIDKey)
	return session.Save()
}

// SessionUserID returns the current subject id, empty when not signed in.
func SessionUserID(c *gin.Context) string {
	session := sessions.Default(c)
	v := session.Get(sessionUserIDKey)
	if v == nil {
		return ""
	}
	id, _ := v.(string)
	return id
}

// HasRole checks the user_roles table for a role grant.
func HasRole(db *gorm.DB, userID, role string) (bool, error) {
	var count int64
	err := db.Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	return count > 0, err
}

// RequireAdmin gates a route group: the session must carry a subject and the
// subject must hold the admin role. Anything else is rejected before the
// handler runs.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := SessionUserID(c)
		if userID == "" {
			utils.JSONError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		isAdmin, err := HasRole(db, userID, models.RoleAdmin)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to check role")
			c.Abort()
			return
		}
		if !isAdmin {
			utils.JSONError(c, http.StatusForbidden, "admin privileges required")
			c.Abort()
			return
		}

		c.Set(sessionUserIDKey, userID)
		c.Next()
	}
}
