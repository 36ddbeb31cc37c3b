package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sinafite_backend/internals/features/users/dto"
	helper "sinafite_backend/internals/helpers"
	"sinafite_backend/internals/storage"
)

var validateAuth = validator.New()

type AuthController struct {
	Store storage.UserStore
}

func NewAuthController(store storage.UserStore) *AuthController {
	return &AuthController{Store: store}
}

// passwordMatches is the single place credentials are compared. The
// legacy site stores plaintext passwords and compares by equality; keep
// that behavior here so swapping in a salted hash later touches only
// this function.
func passwordMatches(stored, given string) bool {
	return stored == given
}

// =============================
// Login
// =============================
// Unknown username and wrong password produce the same 401 so the
// response never reveals whether an account exists.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(err)
	}

	user, err := ctrl.Store.GetByUsername(body.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}
	if !passwordMatches(user.Password, body.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(dto.ToUserDTO(*user))
}

// =============================
// Register
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(err)
	}

	user := body.ToModel()
	created, err := ctrl.Store.Create(&user)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return fiber.NewError(fiber.StatusConflict, "Username already taken")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToUserDTO(*created))
}
