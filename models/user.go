package models

import "time"

const (
	// RoleAdmin pengurus: full access
	RoleAdmin = "admin"
	// RoleMember warga: read-only access
	RoleMember = "member"
)

// User is an account that can sign in. Password always holds a bcrypt
// hash, never plaintext.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"`
	Role      string    `json:"role" gorm:"size:10;not null;default:member"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name
func (User) TableName() string {
	return "users"
}
