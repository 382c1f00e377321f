package services

import (
	"errors"
	"fmt"

	"tour-admin-backend/models"

	"gorm.io/gorm"
)

var (
	// ErrInvalidRole marks a role name outside the known vocabulary.
	ErrInvalidRole = errors.New("invalid role")
	// ErrRoleAssigned means the user already holds the requested role.
	ErrRoleAssigned = errors.New("role already assigned")
)

var roleVocabulary = []string{
	models.RoleAdmin,
	models.RoleModerator,
	models.RoleUser,
}

// RoleAssignment is one user-role row joined with the holder's identity, the
// shape the role management screen lists.
type RoleAssignment struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// RoleService manages user-role assignments. Roles themselves are a fixed
// vocabulary; only the user-to-role mapping is editable.
type RoleService struct {
	DB *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{DB: db}
}

func roleAllowed(role string) bool {
	for _, r := range roleVocabulary {
		if r == role {
			return true
		}
	}
	return false
}

func (s *RoleService) List() ([]RoleAssignment, error) {
	var rows []RoleAssignment
	err := s.DB.Model(&models.UserRole{}).
		Select("user_roles.id, user_roles.user_id, user_roles.role, admin_users.email, admin_users.full_name").
		Joins("JOIN admin_users ON admin_users.id = user_roles.user_id").
		Order("admin_users.email ASC, user_roles.role ASC").
		Scan(&rows).Error
	return rows, err
}

// Assign grants a role to a user. The user must exist and must not already
// hold the role.
func (s *RoleService) Assign(userID, role string) (models.UserRole, error) {
	if !roleAllowed(role) {
		return models.UserRole{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	var user models.AdminUser
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		return models.UserRole{}, err
	}

	var count int64
	if err := s.DB.Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error; err != nil {
		return models.UserRole{}, err
	}
	if count > 0 {
		return models.UserRole{}, fmt.Errorf("%w: %s", ErrRoleAssigned, role)
	}

	assignment := models.UserRole{UserID: userID, Role: role}
	if err := s.DB.Create(&assignment).Error; err != nil {
		return models.UserRole{}, err
	}
	return assignment, nil
}

func (s *RoleService) Remove(id string) error {
	result := s.DB.Where("id = ?", id).Delete(&models.UserRole{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
