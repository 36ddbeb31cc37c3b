package model

import "time"

// UserModel holds admin and member accounts. Passwords are stored and
// compared in plaintext, matching the legacy site; the comparison lives
// behind a single function in the auth controller so it can be swapped
// for a hashed check later.
type UserModel struct {
	ID        int       `gorm:"column:id;primaryKey" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(100);not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"column:password;type:text;not null" json:"-"`
	Name      string    `gorm:"column:name;type:text;not null" json:"name"`
	Email     string    `gorm:"column:email;type:text;not null" json:"email"`
	Role      string    `gorm:"column:role;type:varchar(20);not null;default:member" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName sets the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)
