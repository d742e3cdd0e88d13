package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File is a stored upload. URI carries a stream scheme such as
// "public://images/shoe.jpg" and is resolved to a URL at render time.
type File struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID   *uuid.UUID     `json:"owner_id,omitempty" gorm:"type:uuid;index;default:null"`
	Filename  string         `json:"filename" gorm:"type:text;not null"`
	URI       string         `json:"uri" gorm:"type:text;uniqueIndex;not null"`
	MimeType  string         `json:"mime_type" gorm:"type:text"`
	Size      int64          `json:"size" gorm:"type:bigint;default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
