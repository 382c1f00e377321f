package controllers

import (
	"errors"
	"net/http"

	"tour-admin-backend/services"
	"tour-admin-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RoleController manages which users hold which application roles.
type RoleController struct {
	roles *services.RoleService
}

func NewRoleController(roles *services.RoleService) *RoleController {
	return &RoleController{roles: roles}
}

func (rc *RoleController) List(c *gin.Context) {
	assignments, err := rc.roles.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch role assignments")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, assignments)
}

type roleAssignPayload struct {
	UserID string `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

func (rc *RoleController) Assign(c *gin.Context) {
	var payload roleAssignPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "user_id and role are required")
		return
	}

	assignment, err := rc.roles.Assign(payload.UserID, payload.Role)
	switch {
	case err == nil:
		utils.JSONSuccess(c, http.StatusCreated, assignment)
	case errors.Is(err, services.ErrInvalidRole):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrRoleAssigned):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(c, http.StatusNotFound, "user not found")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to assign role")
	}
}

func (rc *RoleController) Remove(c *gin.Context) {
	if err := rc.roles.Remove(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "role assignment not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to remove role")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "role removed"})
}
