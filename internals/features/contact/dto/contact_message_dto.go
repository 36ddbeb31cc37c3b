package dto

import (
	"time"

	"sinafite_backend/internals/features/contact/model"
)

// ============================
// Response DTO
// ============================

type ContactMessageDTO struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	IsRead    bool      `json:"isRead"`
}

// ============================
// Create Request DTO
// ============================

type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
}

func (r CreateContactMessageRequest) ToModel() model.ContactMessageModel {
	return model.ContactMessageModel{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

// ============================
// Converter
// ============================

func ToContactMessageDTO(m model.ContactMessageModel) ContactMessageDTO {
	return ContactMessageDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
		IsRead:    m.IsRead,
	}
}
