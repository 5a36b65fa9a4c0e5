package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered customer (or admin) of the restaurant
type User struct {
	BaseModel
	Username    string `gorm:"type:varchar(64);uniqueIndex;not null" json:"username" validate:"required"`
	Email       string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password    string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Role        string `gorm:"type:varchar(10);default:'user'" json:"role"`
	StreakCount int    `gorm:"default:0" json:"streak_count"` // Bumped on every successful order

	Orders []Order `json:"orders,omitempty"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsAdmin reports whether the user can access the admin panel
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	StreakCount int       `json:"streak_count"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		StreakCount: u.StreakCount,
	}
}
