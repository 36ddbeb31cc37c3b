package model

type ServiceModel struct {
	ID          int    `gorm:"column:id;primaryKey" json:"id"`
	Title       string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string `gorm:"column:description;type:text;not null" json:"description"`
	Icon        string `gorm:"column:icon;type:varchar(100);not null" json:"icon"`
	// Inactive services are still returned by the list endpoint; the
	// frontend dims them instead of hiding them.
	IsActive bool `gorm:"column:is_active;not null" json:"isActive"`
}

// TableName sets the table name for ServiceModel
func (ServiceModel) TableName() string {
	return "services"
}

type ServiceUpdate struct {
	Title       *string
	Description *string
	Icon        *string
	IsActive    *bool
}
