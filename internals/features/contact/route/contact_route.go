package route

import (
	"github.com/gofiber/fiber/v2"

	"sinafite_backend/internals/features/contact/controller"
	"sinafite_backend/internals/storage"
)

func ContactRoutes(api fiber.Router, store storage.ContactMessageStore) {
	ctrl := controller.NewContactMessageController(store)

	contact := api.Group("/contact")
	contact.Post("/", ctrl.CreateContactMessage)
	contact.Get("/", ctrl.GetAllContactMessages)
	contact.Put("/:id/read", ctrl.MarkMessageAsRead)
	contact.Delete("/:id", ctrl.DeleteContactMessage)
}
