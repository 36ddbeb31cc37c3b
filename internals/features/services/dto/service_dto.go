package dto

import "sinafite_backend/internals/features/services/model"

// ============================
// Response DTO
// ============================

type ServiceDTO struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsActive    bool   `json:"isActive"`
}

// ============================
// Create & Update Request DTO
// ============================

// IsActive is not part of the insert shape: new services start active and
// an admin toggles the flag through an update.
type CreateServiceRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon" validate:"required,max=100"`
}

func (r CreateServiceRequest) ToModel() model.ServiceModel {
	return model.ServiceModel{
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
	}
}

type UpdateServiceRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Icon        *string `json:"icon" validate:"omitempty,min=1,max=100"`
	IsActive    *bool   `json:"isActive"`
}

func (r UpdateServiceRequest) ToUpdate() model.ServiceUpdate {
	return model.ServiceUpdate{
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
		IsActive:    r.IsActive,
	}
}

// ============================
// Converter
// ============================

func ToServiceDTO(m model.ServiceModel) ServiceDTO {
	return ServiceDTO{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Icon:        m.Icon,
		IsActive:    m.IsActive,
	}
}
