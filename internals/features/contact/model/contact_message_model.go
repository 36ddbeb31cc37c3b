package model

import "time"

// ContactMessageModel is created by the public contact form. The only
// state transition is unread -> read, triggered by an admin.
type ContactMessageModel struct {
	ID        int       `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Subject   string    `gorm:"column:subject;type:varchar(255);not null" json:"subject"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	IsRead    bool      `gorm:"column:is_read;not null" json:"isRead"`
}

// TableName sets the table name for ContactMessageModel
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}
