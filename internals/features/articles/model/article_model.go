package model

import "time"

type ArticleModel struct {
	ID          int       `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	Summary     string    `gorm:"column:summary;type:text;not null" json:"summary"`
	Image       *string   `gorm:"column:image;type:text" json:"image"`
	Category    string    `gorm:"column:category;type:varchar(100);not null" json:"category"`
	PublishedAt time.Time `gorm:"column:published_at" json:"publishedAt"`
	// Weak reference to users.id, display only. No FK constraint, no
	// cascade: deleting a user leaves the article's authorId dangling.
	AuthorID *int `gorm:"column:author_id" json:"authorId"`
}

// TableName sets the table name for ArticleModel
func (ArticleModel) TableName() string {
	return "articles"
}

// ArticleUpdate carries the fields a partial update may change. Nil
// fields keep their stored value.
type ArticleUpdate struct {
	Title    *string
	Content  *string
	Summary  *string
	Image    *string
	Category *string
	AuthorID *int
}
