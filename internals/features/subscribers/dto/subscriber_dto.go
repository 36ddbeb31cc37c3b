package dto

import (
	"time"

	"sinafite_backend/internals/features/subscribers/model"
)

// ============================
// Response DTO
// ============================

type SubscriberDTO struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	IsActive  bool      `json:"isActive"`
}

// ============================
// Create Request DTO
// ============================

type CreateSubscriberRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

func (r CreateSubscriberRequest) ToModel() model.SubscriberModel {
	return model.SubscriberModel{
		Name:  r.Name,
		Email: r.Email,
	}
}

// ============================
// Converter
// ============================

func ToSubscriberDTO(m model.SubscriberModel) SubscriberDTO {
	return SubscriberDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		IsActive:  m.IsActive,
	}
}
