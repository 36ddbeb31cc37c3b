package storage

import (
	"errors"

	articleModel "sinafite_backend/internals/features/articles/model"
	contactModel "sinafite_backend/internals/features/contact/model"
	pageModel "sinafite_backend/internals/features/pages/model"
	serviceModel "sinafite_backend/internals/features/services/model"
	subscriberModel "sinafite_backend/internals/features/subscribers/model"
	userModel "sinafite_backend/internals/features/users/model"
)

var (
	// ErrNotFound is returned by id and slug lookups that miss.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a create or update would violate a
	// uniqueness invariant (username, page slug). Subscriber email is not
	// a conflict case: subscribing twice returns the existing row.
	ErrConflict = errors.New("duplicate value for unique field")
)

// One interface per entity family. Both implementations (in-memory and
// GORM/Postgres) must behave identically: uniqueness checks happen in
// this layer, not just in the database schema.
//
// Shared semantics:
//   - List(limit): limit <= 0 returns the full collection. Articles and
//     contact messages sort descending by their time field, everything
//     else in insertion (id) order.
//   - Create fills server-generated fields (id, timestamps, flags) and
//     returns the stored row.
//   - Delete is idempotent-success: true even when nothing matched.

type UserStore interface {
	Count() (int64, error)
	GetByID(id int) (*userModel.UserModel, error)
	GetByUsername(username string) (*userModel.UserModel, error)
	// Create returns ErrConflict when the username is already taken.
	Create(in *userModel.UserModel) (*userModel.UserModel, error)
}

type ArticleStore interface {
	List(limit int) ([]articleModel.ArticleModel, error)
	GetByID(id int) (*articleModel.ArticleModel, error)
	ListByCategory(category string) ([]articleModel.ArticleModel, error)
	Create(in *articleModel.ArticleModel) (*articleModel.ArticleModel, error)
	Update(id int, patch articleModel.ArticleUpdate) (*articleModel.ArticleModel, error)
	Delete(id int) (bool, error)
}

type ServiceStore interface {
	List(limit int) ([]serviceModel.ServiceModel, error)
	GetByID(id int) (*serviceModel.ServiceModel, error)
	Create(in *serviceModel.ServiceModel) (*serviceModel.ServiceModel, error)
	Update(id int, patch serviceModel.ServiceUpdate) (*serviceModel.ServiceModel, error)
	Delete(id int) (bool, error)
}

type ContactMessageStore interface {
	List(limit int) ([]contactModel.ContactMessageModel, error)
	Create(in *contactModel.ContactMessageModel) (*contactModel.ContactMessageModel, error)
	// MarkRead reports whether the message exists. Marking an already
	// read message is a no-op success.
	MarkRead(id int) (bool, error)
	Delete(id int) (bool, error)
}

type SubscriberStore interface {
	List(limit int) ([]subscriberModel.SubscriberModel, error)
	// Create is idempotent on email: a duplicate returns the existing
	// subscriber, never a second row and never an error.
	Create(in *subscriberModel.SubscriberModel) (*subscriberModel.SubscriberModel, error)
	Delete(id int) (bool, error)
}

type PageStore interface {
	List(limit int) ([]pageModel.PageModel, error)
	GetBySlug(slug string) (*pageModel.PageModel, error)
	// Create returns ErrConflict when the slug is already taken.
	Create(in *pageModel.PageModel) (*pageModel.PageModel, error)
	// Update refreshes updatedAt and returns ErrConflict when a slug
	// change collides with another page.
	Update(id int, patch pageModel.PageUpdate) (*pageModel.PageModel, error)
	Delete(id int) (bool, error)
}

// Store bundles every entity store behind one handle. The backing
// implementation is chosen once at startup (STORAGE_DRIVER).
type Store struct {
	Users       UserStore
	Articles    ArticleStore
	Services    ServiceStore
	Messages    ContactMessageStore
	Subscribers SubscriberStore
	Pages       PageStore
}
