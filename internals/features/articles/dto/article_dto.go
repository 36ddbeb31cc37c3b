package dto

import (
	"time"

	"sinafite_backend/internals/features/articles/model"
)

// ============================
// Response DTO
// ============================

type ArticleDTO struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Summary     string    `json:"summary"`
	Image       *string   `json:"image"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"publishedAt"`
	AuthorID    *int      `json:"authorId"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateArticleRequest struct {
	Title    string  `json:"title" validate:"required,min=3,max=255"`
	Content  string  `json:"content" validate:"required"`
	Summary  string  `json:"summary" validate:"required"`
	Image    *string `json:"image"`
	Category string  `json:"category" validate:"required,max=100"`
	AuthorID *int    `json:"authorId"`
}

func (r CreateArticleRequest) ToModel() model.ArticleModel {
	return model.ArticleModel{
		Title:    r.Title,
		Content:  r.Content,
		Summary:  r.Summary,
		Image:    r.Image,
		Category: r.Category,
		AuthorID: r.AuthorID,
	}
}

type UpdateArticleRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=3,max=255"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	Summary  *string `json:"summary" validate:"omitempty,min=1"`
	Image    *string `json:"image"`
	Category *string `json:"category" validate:"omitempty,min=1,max=100"`
	AuthorID *int    `json:"authorId"`
}

func (r UpdateArticleRequest) ToUpdate() model.ArticleUpdate {
	return model.ArticleUpdate{
		Title:    r.Title,
		Content:  r.Content,
		Summary:  r.Summary,
		Image:    r.Image,
		Category: r.Category,
		AuthorID: r.AuthorID,
	}
}

// ============================
// Converter
// ============================

func ToArticleDTO(m model.ArticleModel) ArticleDTO {
	return ArticleDTO{
		ID:          m.ID,
		Title:       m.Title,
		Content:     m.Content,
		Summary:     m.Summary,
		Image:       m.Image,
		Category:    m.Category,
		PublishedAt: m.PublishedAt,
		AuthorID:    m.AuthorID,
	}
}
