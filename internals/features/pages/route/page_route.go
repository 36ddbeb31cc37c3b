package route

import (
	"github.com/gofiber/fiber/v2"

	"sinafite_backend/internals/features/pages/controller"
	"sinafite_backend/internals/storage"
)

func PageRoutes(api fiber.Router, store storage.PageStore) {
	ctrl := controller.NewPageController(store)

	pages := api.Group("/pages")
	pages.Get("/", ctrl.GetAllPages)
	pages.Get("/:slug", ctrl.GetPageBySlug)
	pages.Post("/", ctrl.CreatePage)
	pages.Put("/:id", ctrl.UpdatePage)
	pages.Delete("/:id", ctrl.DeletePage)
}
