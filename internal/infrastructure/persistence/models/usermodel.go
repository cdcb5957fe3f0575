package models

import "time"

type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"size:255"`
	Email        string `gorm:"not null;size:255;uniqueIndex:idx_users_email"`
	PasswordHash string `gorm:"not null;size:255"`
	Role         string `gorm:"not null;default:operator;size:20"`
	Active       bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}
