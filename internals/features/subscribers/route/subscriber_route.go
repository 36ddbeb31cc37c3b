package route

import (
	"github.com/gofiber/fiber/v2"

	"sinafite_backend/internals/features/subscribers/controller"
	"sinafite_backend/internals/storage"
)

func SubscriberRoutes(api fiber.Router, store storage.SubscriberStore) {
	ctrl := controller.NewSubscriberController(store)

	subscribers := api.Group("/subscribers")
	subscribers.Post("/", ctrl.CreateSubscriber)
	subscribers.Get("/", ctrl.GetAllSubscribers)
	subscribers.Delete("/:id", ctrl.DeleteSubscriber)
}
