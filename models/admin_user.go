package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminUser struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	FullName string `gorm:"size:255" json:"full_name"`
	Email    string `gorm:"uniqueIndex;size:150;not null" json:"email"`
	Password string `gorm:"size:255" json:"-"` // store hashed password, never return in JSON

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
