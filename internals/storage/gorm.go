package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	articleModel "sinafite_backend/internals/features/articles/model"
	contactModel "sinafite_backend/internals/features/contact/model"
	pageModel "sinafite_backend/internals/features/pages/model"
	serviceModel "sinafite_backend/internals/features/services/model"
	subscriberModel "sinafite_backend/internals/features/subscribers/model"
	userModel "sinafite_backend/internals/features/users/model"
)

// NewGormStore builds the Postgres-backed store. Observable behavior must
// match the memory store exactly, so the uniqueness invariants (username,
// subscriber email, page slug) are checked here with explicit queries
// rather than delegated to the unique indexes.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:       &gormUsers{db: db},
		Articles:    &gormArticles{db: db},
		Services:    &gormServices{db: db},
		Messages:    &gormMessages{db: db},
		Subscribers: &gormSubscribers{db: db},
		Pages:       &gormPages{db: db},
	}
}

func translateGormError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

/* ====================== USERS ====================== */

type gormUsers struct {
	db *gorm.DB
}

func (s *gormUsers) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&userModel.UserModel{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (s *gormUsers) GetByID(id int) (*userModel.UserModel, error) {
	var row userModel.UserModel
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &row, nil
}

func (s *gormUsers) GetByUsername(username string) (*userModel.UserModel, error) {
	var row userModel.UserModel
	if err := s.db.First(&row, "username = ?", username).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &row, nil
}

func (s *gormUsers) Create(in *userModel.UserModel) (*userModel.UserModel, error) {
	var n int64
	if err := s.db.Model(&userModel.UserModel{}).Where("username = ?", in.Username).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrConflict
	}
	row := *in
	if row.Role == "" {
		row.Role = userModel.RoleMember
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

/* ====================== ARTICLES ====================== */

type gormArticles struct {
	db *gorm.DB
}

func (s *gormArticles) List(limit int) ([]articleModel.ArticleModel, error) {
	q := s.db.Order("published_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []articleModel.ArticleModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormArticles) GetByID(id int) (*articleModel.ArticleModel, error) {
	var row articleModel.ArticleModel
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &row, nil
}

func (s *gormArticles) ListByCategory(category string) ([]articleModel.ArticleModel, error) {
	var rows []articleModel.ArticleModel
	if err := s.db.Where("category = ?", category).Order("published_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormArticles) Create(in *articleModel.ArticleModel) (*articleModel.ArticleModel, error) {
	row := *in
	if row.PublishedAt.IsZero() {
		row.PublishedAt = time.Now()
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormArticles) Update(id int, patch articleModel.ArticleUpdate) (*articleModel.ArticleModel, error) {
	var row articleModel.ArticleModel
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	if patch.Title != nil {
		row.Title = *patch.Title
	}
	if patch.Content != nil {
		row.Content = *patch.Content
	}
	if patch.Summary != nil {
		row.Summary = *patch.Summary
	}
	if patch.Image != nil {
		row.Image = patch.Image
	}
	if patch.Category != nil {
		row.Category = *patch.Category
	}
	if patch.AuthorID != nil {
		row.AuthorID = patch.AuthorID
	}
	if err := s.db.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormArticles) Delete(id int) (bool, error) {
	if err := s.db.Delete(&articleModel.ArticleModel{}, "id = ?", id).Error; err != nil {
		return false, err
	}
	return true, nil
}

/* ====================== SERVICES ====================== */

type gormServices struct {
	db *gorm.DB
}

func (s *gormServices) List(limit int) ([]serviceModel.ServiceModel, error) {
	q := s.db.Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []serviceModel.ServiceModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormServices) GetByID(id int) (*serviceModel.ServiceModel, error) {
	var row serviceModel.ServiceModel
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &row, nil
}

func (s *gormServices) Create(in *serviceModel.ServiceModel) (*serviceModel.ServiceModel, error) {
	row := *in
	row.IsActive = true
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormServices) Update(id int, patch serviceModel.ServiceUpdate) (*serviceModel.ServiceModel, error) {
	var row serviceModel.ServiceModel
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	if patch.Title != nil {
		row.Title = *patch.Title
	}
	if patch.Description != nil {
		row.Description = *patch.Description
	}
	if patch.Icon != nil {
		row.Icon = *patch.Icon
	}
	if patch.IsActive != nil {
		row.IsActive = *patch.IsActive
	}
	// Save with Select so an isActive=false toggle is not dropped as a
	// zero value.
	if err := s.db.Model(&row).Select("title", "description", "icon", "is_active").Updates(map[string]interface{}{
		"title":       row.Title,
		"description": row.Description,
		"icon":        row.Icon,
		"is_active":   row.IsActive,
	}).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormServices) Delete(id int) (bool, error) {
	if err := s.db.Delete(&serviceModel.ServiceModel{}, "id = ?", id).Error; err != nil {
		return false, err
	}
	return true, nil
}

/* ====================== CONTACT MESSAGES ====================== */

type gormMessages struct {
	db *gorm.DB
}

func (s *gormMessages) List(limit int) ([]contactModel.ContactMessageModel, error) {
	q := s.db.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []contactModel.ContactMessageModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormMessages) Create(in *contactModel.ContactMessageModel) (*contactModel.ContactMessageModel, error) {
	row := *in
	row.IsRead = false
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormMessages) MarkRead(id int) (bool, error) {
	res := s.db.Model(&contactModel.ContactMessageModel{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *gormMessages) Delete(id int) (bool, error) {
	if err := s.db.Delete(&contactModel.ContactMessageModel{}, "id = ?", id).Error; err != nil {
		return false, err
	}
	return true, nil
}

/* ====================== SUBSCRIBERS ====================== */

type gormSubscribers struct {
	db *gorm.DB
}

func (s *gormSubscribers) List(limit int) ([]subscriberModel.SubscriberModel, error) {
	q := s.db.Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []subscriberModel.SubscriberModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormSubscribers) Create(in *subscriberModel.SubscriberModel) (*subscriberModel.SubscriberModel, error) {
	var existing subscriberModel.SubscriberModel
	err := s.db.First(&existing, "email = ?", in.Email).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	row := *in
	row.IsActive = true
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormSubscribers) Delete(id int) (bool, error) {
	if err := s.db.Delete(&subscriberModel.SubscriberModel{}, "id = ?", id).Error; err != nil {
		return false, err
	}
	return true, nil
}

/* ====================== PAGES ====================== */

type gormPages struct {
	db *gorm.DB
}

func (s *gormPages) List(limit int) ([]pageModel.PageModel, error) {
	q := s.db.Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []pageModel.PageModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormPages) GetBySlug(slug string) (*pageModel.PageModel, error) {
	var row pageModel.PageModel
	if err := s.db.First(&row, "slug = ?", slug).Error; err != nil {
		return nil, translateGormError(err)
	}
	return &row, nil
}

func (s *gormPages) Create(in *pageModel.PageModel) (*pageModel.PageModel, error) {
	var n int64
	if err := s.db.Model(&pageModel.PageModel{}).Where("slug = ?", in.Slug).Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrConflict
	}
	row := *in
	row.UpdatedAt = time.Now()
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormPages) Update(id int, patch pageModel.PageUpdate) (*pageModel.PageModel, error) {
	var row pageModel.PageModel
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, translateGormError(err)
	}
	if patch.Slug != nil && *patch.Slug != row.Slug {
		var n int64
		if err := s.db.Model(&pageModel.PageModel{}).Where("slug = ? AND id <> ?", *patch.Slug, id).Count(&n).Error; err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrConflict
		}
		row.Slug = *patch.Slug
	}
	if patch.Title != nil {
		row.Title = *patch.Title
	}
	if patch.Content != nil {
		row.Content = *patch.Content
	}
	row.UpdatedAt = time.Now()
	if err := s.db.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormPages) Delete(id int) (bool, error) {
	if err := s.db.Delete(&pageModel.PageModel{}, "id = ?", id).Error; err != nil {
		return false, err
	}
	return true, nil
}
