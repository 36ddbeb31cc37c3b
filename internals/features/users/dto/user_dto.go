package dto

import "sinafite_backend/internals/features/users/model"

// ============================
// Response DTO
// ============================

// UserDTO is the public view of an account. It never carries the
// password.
type UserDTO struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ============================
// Request DTO
// ============================

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Role     string `json:"role" validate:"omitempty,oneof=admin member"`
}

func (r RegisterRequest) ToModel() model.UserModel {
	return model.UserModel{
		Username: r.Username,
		Password: r.Password,
		Name:     r.Name,
		Email:    r.Email,
		Role:     r.Role,
	}
}

// ============================
// Converter
// ============================

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:       m.ID,
		Username: m.Username,
		Name:     m.Name,
		Email:    m.Email,
		Role:     m.Role,
	}
}
