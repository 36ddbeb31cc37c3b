package route

import (
	"github.com/gofiber/fiber/v2"

	"sinafite_backend/internals/features/articles/controller"
	"sinafite_backend/internals/storage"
)

func ArticleRoutes(api fiber.Router, store storage.ArticleStore) {
	ctrl := controller.NewArticleController(store)

	articles := api.Group("/articles")
	articles.Get("/", ctrl.GetAllArticles)
	articles.Get("/category/:category", ctrl.GetArticlesByCategory)
	articles.Get("/:id", ctrl.GetArticleByID)
	articles.Post("/", ctrl.CreateArticle)
	articles.Put("/:id", ctrl.UpdateArticle)
	articles.Delete("/:id", ctrl.DeleteArticle)
}
