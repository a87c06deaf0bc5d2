package models

import (
	"agendai/tools"
	"time"
)

/************************************************
/**** MARK: USER ROLES ****/
/************************************************/
const USER_ROLE_FREE = "free"
const USER_ROLE_PRO = "pro"
const USER_ROLE_ADMIN = "admin"

// User representa uma conta no sistema.
type User struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name         string     `gorm:"not null" json:"name" form:"name"`
	Email        string     `gorm:"not null;unique" json:"email" form:"email"`
	Password     string     `gorm:"not null" json:"password,omitempty" form:"password"`
	Role         string     `gorm:"not null;default:'free'" json:"role" form:"role"`
	ProfilePhoto string     `gorm:"column:profile_photo;default:''" json:"profile_photo" form:"profile_photo"`
	CoverPhoto   string     `gorm:"column:cover_photo;default:''" json:"cover_photo" form:"cover_photo"`
	Bio          string     `gorm:"default:''" json:"bio" form:"bio"`
	CreatedAt    *time.Time `json:"created_at" form:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at" form:"updated_at"`
}

func (user User) MissingFields() string {
	if user.Name == "" {
		return "name"
	} else if user.Email == "" {
		return "email"
	} else if user.Password == "" {
		return "password"
	} else if tools.CheckPassword(user.Password) != "" {
		return tools.CheckPassword(user.Password)
	}
	return ""
}

func (user User) IsAdmin() bool {
	return user.Role == USER_ROLE_ADMIN
}

// FirstName devolve o nome até o primeiro espaço (usado nas mensagens da Lucy).
func (user User) FirstName() string {
	for i, r := range user.Name {
		if r == ' ' {
			return user.Name[:i]
		}
	}
	return user.Name
}

func IsRoleValid(role string) bool {
	return role == USER_ROLE_FREE || role == USER_ROLE_PRO || role == USER_ROLE_ADMIN
}
