package models

import "gorm.io/gorm"

type Admin struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;size:191"`
	Password string `json:"-"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
