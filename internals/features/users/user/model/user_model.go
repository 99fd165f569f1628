// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleViewer = "viewer"
)

type UserModel struct {
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id;default:gen_random_uuid()"`

	UserName  string `json:"user_name" gorm:"type:varchar(80);not null;column:user_name"`
	UserEmail string `json:"user_email" gorm:"type:varchar(120);not null;uniqueIndex;column:user_email"`

	// bcrypt hash, never the plaintext
	UserPassword string `json:"-" gorm:"type:varchar(100);not null;column:user_password"`

	UserRole string `json:"user_role" gorm:"type:varchar(20);not null;default:'viewer';column:user_role"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UserPassword = string(hash)
	return nil
}

func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(plain)) == nil
}
