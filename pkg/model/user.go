package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UUID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4()"`
	Username     string    `gorm:"uniqueIndex"`
	Email        string    `gorm:"uniqueIndex"`
	PasswordHash string
	Active       bool `gorm:"default:true"`

	Profile Profile
}

type Profile struct {
	gorm.Model
	UserID     uint `gorm:"uniqueIndex"`
	PictureURL string

	User *User `gorm:"foreignKey:UserID"`
}
