package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerAddress stores one shipping address per user.
type CustomerAddress struct {
	UID       uuid.UUID `json:"uid" gorm:"column:uid;type:uuid;primaryKey"`
	Address   string    `json:"address" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CustomerAddress) TableName() string { return "customer_address" }
