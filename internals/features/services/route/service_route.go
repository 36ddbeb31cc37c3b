package route

import (
	"github.com/gofiber/fiber/v2"

	"sinafite_backend/internals/features/services/controller"
	"sinafite_backend/internals/storage"
)

func ServiceRoutes(api fiber.Router, store storage.ServiceStore) {
	ctrl := controller.NewServiceController(store)

	services := api.Group("/services")
	services.Get("/", ctrl.GetAllServices)
	services.Get("/:id", ctrl.GetServiceByID)
	services.Post("/", ctrl.CreateService)
	services.Put("/:id", ctrl.UpdateService)
	services.Delete("/:id", ctrl.DeleteService)
}
