package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a User can carry.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is the account behind a storefront session.
type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string         `json:"name" gorm:"type:text;not null"`
	Email        string         `json:"email" gorm:"type:text;uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"type:text"`
	FirebaseUID  *string        `json:"firebase_uid,omitempty" gorm:"type:text;uniqueIndex;default:null"`
	Role         string         `json:"role" gorm:"type:text;index;not null"`
	Active       bool           `json:"active" gorm:"default:true;index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// DisplayName is the name shown to the user on rendered pages.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
