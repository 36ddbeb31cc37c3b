package model

import "time"

// PageModel is a CMS page looked up by slug. Content is an opaque string:
// some pages carry markdown, others a JSON blob, by producer convention.
// The storage layer imposes no structure on it.
type PageModel struct {
	ID        int       `gorm:"column:id;primaryKey" json:"id"`
	Slug      string    `gorm:"column:slug;type:varchar(255);not null;uniqueIndex" json:"slug"`
	Title     string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// TableName sets the table name for PageModel
func (PageModel) TableName() string {
	return "pages"
}

type PageUpdate struct {
	Slug    *string
	Title   *string
	Content *string
}
