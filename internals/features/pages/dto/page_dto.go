package dto

import (
	"time"

	"sinafite_backend/internals/features/pages/model"
)

// ============================
// Response DTO
// ============================

type PageDTO struct {
	ID        int       `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreatePageRequest struct {
	Slug    string `json:"slug" validate:"required,min=1,max=255"`
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

func (r CreatePageRequest) ToModel() model.PageModel {
	return model.PageModel{
		Slug:    r.Slug,
		Title:   r.Title,
		Content: r.Content,
	}
}

type UpdatePageRequest struct {
	Slug    *string `json:"slug" validate:"omitempty,min=1,max=255"`
	Title   *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

func (r UpdatePageRequest) ToUpdate() model.PageUpdate {
	return model.PageUpdate{
		Slug:    r.Slug,
		Title:   r.Title,
		Content: r.Content,
	}
}

// ============================
// Converter
// ============================

func ToPageDTO(m model.PageModel) PageDTO {
	return PageDTO{
		ID:        m.ID,
		Slug:      m.Slug,
		Title:     m.Title,
		Content:   m.Content,
		UpdatedAt: m.UpdatedAt,
	}
}
