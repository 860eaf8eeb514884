package models

import (
	"time"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string    `json:"email" gorm:"type:text;uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"type:text"`
	PasswordHash string    `json:"-" gorm:"type:text;not null"`
	CDate        time.Time `json:"cdate" gorm:"->;<-:create;not null;default:CURRENT_TIMESTAMP"`
}

type AuthToken struct {
	Token  string    `json:"token" gorm:"primaryKey;type:text"`
	UserID int64     `json:"userID" gorm:"index;not null"`
	User   User      `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	CDate  time.Time `json:"cdate" gorm:"->;<-:create;not null;default:CURRENT_TIMESTAMP"`
}

type Tag struct {
	ID     int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID int64  `json:"userID" gorm:"index;not null"`
	User   User   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Name   string `json:"name" gorm:"type:text;not null"`
}

type Ingredient struct {
	ID     int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID int64  `json:"userID" gorm:"index;not null"`
	User   User   `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Name   string `json:"name" gorm:"type:text;not null"`
}

type Recipe struct {
	ID          int64        `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      int64        `json:"userID" gorm:"index;not null"`
	User        User         `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
	Title       string       `json:"title" gorm:"type:text;not null"`
	TimeMinutes int          `json:"timeMinutes" gorm:"not null;default:0"`
	Price       float64      `json:"price" gorm:"type:decimal(5,2);not null;default:0"`
	Link        string       `json:"link" gorm:"type:text"`
	Image       *string      `json:"image" gorm:"type:text"`
	Tags        []Tag        `json:"tags" gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE;"`
	Ingredients []Ingredient `json:"ingredients" gorm:"many2many:recipe_ingredients;constraint:OnDelete:CASCADE;"`
	CDate       time.Time    `json:"cdate" gorm:"->;<-:create;not null;default:CURRENT_TIMESTAMP"`
}
