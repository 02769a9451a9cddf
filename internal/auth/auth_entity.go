package auth

import "time"

type User struct {
	ID               int    `gorm:"primaryKey"`
	Username         string `gorm:"uniqueIndex"`
	PasswordHash     string
	Role             string
	BusinessEntityID *int // linked employee, nil for pure system accounts
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (User) TableName() string { return "users" }
