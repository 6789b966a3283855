// internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:users_id" json:"users_id"`

	UserEmail        string `gorm:"not null;uniqueIndex;column:users_email" json:"users_email"`
	UserPasswordHash string `gorm:"not null;column:users_password_hash"     json:"-"`
	UserFullName     string `gorm:"not null;column:users_full_name"         json:"users_full_name"`

	UserRole     string `gorm:"not null;default:teacher;column:users_role"   json:"users_role"`
	UserIsActive bool   `gorm:"not null;default:true;column:users_is_active" json:"users_is_active"`

	UserCreatedAt time.Time      `gorm:"column:users_created_at;autoCreateTime" json:"users_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:users_updated_at;autoUpdateTime" json:"users_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:users_deleted_at;index"          json:"users_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
