package route

import (
	"github.com/gofiber/fiber/v2"

	"sinafite_backend/internals/features/users/controller"
	"sinafite_backend/internals/storage"
)

func AuthRoutes(api fiber.Router, store storage.UserStore) {
	ctrl := controller.NewAuthController(store)

	auth := api.Group("/auth")
	auth.Post("/login", ctrl.Login)
	auth.Post("/register", ctrl.Register)
}
