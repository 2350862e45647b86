package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an authenticated user in the system. Industry is a soft
// foreign key into industry_insights.industry; it stays nil until onboarding
// completes.
type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string         `json:"name" gorm:"size:255;not null"`
	Email        string         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Industry     *string        `json:"industry,omitempty" gorm:"size:255;index"`
	Experience   int            `json:"experience" gorm:"default:0"`
	Bio          string         `json:"bio" gorm:"type:text"`
	Skills       StringList     `json:"skills" gorm:"type:json"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsOnboarded reports whether the user has picked an industry.
func (u *User) IsOnboarded() bool {
	return u.Industry != nil && *u.Industry != ""
}
