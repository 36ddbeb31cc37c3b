package routes

import (
	"github.com/gofiber/fiber/v2"

	articleRoute "sinafite_backend/internals/features/articles/route"
	contactRoute "sinafite_backend/internals/features/contact/route"
	pageRoute "sinafite_backend/internals/features/pages/route"
	serviceRoute "sinafite_backend/internals/features/services/route"
	subscriberRoute "sinafite_backend/internals/features/subscribers/route"
	authRoute "sinafite_backend/internals/features/users/route"
	"sinafite_backend/internals/storage"
)

// SetupRoutes registers every API route under /api against the selected
// storage backend.
func SetupRoutes(app *fiber.App, store *storage.Store) {
	BaseRoutes(app)

	api := app.Group("/api")

	articleRoute.ArticleRoutes(api, store.Articles)
	serviceRoute.ServiceRoutes(api, store.Services)
	contactRoute.ContactRoutes(api, store.Messages)
	subscriberRoute.SubscriberRoutes(api, store.Subscribers)
	pageRoute.PageRoutes(api, store.Pages)
	authRoute.AuthRoutes(api, store.Users)
}
