package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"tour-admin-backend/models"
	"tour-admin-backend/services"
)

func setupRoleRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	rc := NewRoleController(services.NewRoleService(db))

	r := gin.New()
	r.GET("/api/roles", rc.List)
	r.POST("/api/roles", rc.Assign)
	r.DELETE("/api/roles/:id", rc.Remove)
	return r
}

func TestRoleAssignAndList(t *testing.T) {
	db := setupAuthDB(t)
	r := setupRoleRouter(db)
	user := createUser(t, db, "mod@example.com", "secret123")

	w := doJSON(r, http.MethodPost, "/api/roles", gin.H{"user_id": user.ID, "role": models.RoleModerator})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.RoleModerator, decodeData(t, w)["role"])

	w = doJSON(r, http.MethodGet, "/api/roles", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assignments := decodeBody(t, w)["data"].([]interface{})
	assert.Len(t, assignments, 1)
	first := assignments[0].(map[string]interface{})
	assert.Equal(t, user.ID, first["user_id"])
	assert.Equal(t, "mod@example.com", first["email"])
	assert.Equal(t, models.RoleModerator, first["role"])
}

func TestRoleAssignRejectsUnknownRole(t *testing.T) {
	db := setupAuthDB(t)
	r := setupRoleRouter(db)
	user := createUser(t, db, "mod@example.com", "secret123")

	w := doJSON(r, http.MethodPost, "/api/roles", gin.H{"user_id": user.ID, "role": "superuser"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoleAssignDuplicateConflicts(t *testing.T) {
	db := setupAuthDB(t)
	r := setupRoleRouter(db)
	user := createUser(t, db, "admin@example.com", "secret123", models.RoleAdmin)

	w := doJSON(r, http.MethodPost, "/api/roles", gin.H{"user_id": user.ID, "role": models.RoleAdmin})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRoleAssignUnknownUser(t *testing.T) {
	db := setupAuthDB(t)
	r := setupRoleRouter(db)

	w := doJSON(r, http.MethodPost, "/api/roles", gin.H{"user_id": "no-such-user", "role": models.RoleAdmin})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoleRemove(t *testing.T) {
	db := setupAuthDB(t)
	r := setupRoleRouter(db)
	user := createUser(t, db, "mod@example.com", "secret123", models.RoleModerator)

	var assignment models.UserRole
	assert.NoError(t, db.First(&assignment, "user_id = ?", user.ID).Error)

	w := doJSON(r, http.MethodDelete, "/api/roles/"+assignment.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/roles/"+assignment.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
