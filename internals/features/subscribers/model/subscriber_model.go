package model

import "time"

// SubscriberModel is a newsletter subscription. Email is unique and
// subscribing twice with the same email returns the existing row instead
// of erroring (idempotent subscribe).
type SubscriberModel struct {
	ID        int       `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	IsActive  bool      `gorm:"column:is_active;not null" json:"isActive"`
}

// TableName sets the table name for SubscriberModel
func (SubscriberModel) TableName() string {
	return "subscribers"
}
