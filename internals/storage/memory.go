package storage

import (
	"sort"
	"time"

	articleModel "sinafite_backend/internals/features/articles/model"
	contactModel "sinafite_backend/internals/features/contact/model"
	pageModel "sinafite_backend/internals/features/pages/model"
	serviceModel "sinafite_backend/internals/features/services/model"
	subscriberModel "sinafite_backend/internals/features/subscribers/model"
	userModel "sinafite_backend/internals/features/users/model"
)

// NewMemoryStore builds the map-backed store. Ids are assigned from a
// monotonic per-entity counter starting at 1 and are never reused, even
// after deletes. The maps carry no lock: the memory driver is a
// development and test fallback, never run under concurrent mutation.
func NewMemoryStore() *Store {
	return &Store{
		Users:       &memUsers{rows: map[int]userModel.UserModel{}, nextID: 1},
		Articles:    &memArticles{rows: map[int]articleModel.ArticleModel{}, nextID: 1},
		Services:    &memServices{rows: map[int]serviceModel.ServiceModel{}, nextID: 1},
		Messages:    &memMessages{rows: map[int]contactModel.ContactMessageModel{}, nextID: 1},
		Subscribers: &memSubscribers{rows: map[int]subscriberModel.SubscriberModel{}, nextID: 1},
		Pages:       &memPages{rows: map[int]pageModel.PageModel{}, nextID: 1},
	}
}

/* ====================== USERS ====================== */

type memUsers struct {
	rows   map[int]userModel.UserModel
	nextID int
}

func (s *memUsers) Count() (int64, error) {
	return int64(len(s.rows)), nil
}

func (s *memUsers) GetByID(id int) (*userModel.UserModel, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (s *memUsers) GetByUsername(username string) (*userModel.UserModel, error) {
	for _, row := range s.rows {
		if row.Username == username {
			row := row
			return &row, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memUsers) Create(in *userModel.UserModel) (*userModel.UserModel, error) {
	if _, err := s.GetByUsername(in.Username); err == nil {
		return nil, ErrConflict
	}
	row := *in
	row.ID = s.nextID
	s.nextID++
	if row.Role == "" {
		row.Role = userModel.RoleMember
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	s.rows[row.ID] = row
	return &row, nil
}

/* ====================== ARTICLES ====================== */

type memArticles struct {
	rows   map[int]articleModel.ArticleModel
	nextID int
}

func (s *memArticles) List(limit int) ([]articleModel.ArticleModel, error) {
	out := make([]articleModel.ArticleModel, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row)
	}
	sortArticlesDesc(out)
	return truncate(out, limit), nil
}

func (s *memArticles) GetByID(id int) (*articleModel.ArticleModel, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (s *memArticles) ListByCategory(category string) ([]articleModel.ArticleModel, error) {
	out := make([]articleModel.ArticleModel, 0)
	for _, row := range s.rows {
		if row.Category == category {
			out = append(out, row)
		}
	}
	sortArticlesDesc(out)
	return out, nil
}

func (s *memArticles) Create(in *articleModel.ArticleModel) (*articleModel.ArticleModel, error) {
	row := *in
	row.ID = s.nextID
	s.nextID++
	if row.PublishedAt.IsZero() {
		row.PublishedAt = time.Now()
	}
	s.rows[row.ID] = row
	return &row, nil
}

func (s *memArticles) Update(id int, patch articleModel.ArticleUpdate) (*articleModel.ArticleModel, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
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
	s.rows[id] = row
	return &row, nil
}

func (s *memArticles) Delete(id int) (bool, error) {
	delete(s.rows, id)
	return true, nil
}

/* ====================== SERVICES ====================== */

type memServices struct {
	rows   map[int]serviceModel.ServiceModel
	nextID int
}

func (s *memServices) List(limit int) ([]serviceModel.ServiceModel, error) {
	out := make([]serviceModel.ServiceModel, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return truncate(out, limit), nil
}

func (s *memServices) GetByID(id int) (*serviceModel.ServiceModel, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (s *memServices) Create(in *serviceModel.ServiceModel) (*serviceModel.ServiceModel, error) {
	row := *in
	row.ID = s.nextID
	s.nextID++
	row.IsActive = true
	s.rows[row.ID] = row
	return &row, nil
}

func (s *memServices) Update(id int, patch serviceModel.ServiceUpdate) (*serviceModel.ServiceModel, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
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
	s.rows[id] = row
	return &row, nil
}

func (s *memServices) Delete(id int) (bool, error) {
	delete(s.rows, id)
	return true, nil
}

/* ====================== CONTACT MESSAGES ====================== */

type memMessages struct {
	rows   map[int]contactModel.ContactMessageModel
	nextID int
}

func (s *memMessages) List(limit int) ([]contactModel.ContactMessageModel, error) {
	out := make([]contactModel.ContactMessageModel, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return truncate(out, limit), nil
}

func (s *memMessages) Create(in *contactModel.ContactMessageModel) (*contactModel.ContactMessageModel, error) {
	row := *in
	row.ID = s.nextID
	s.nextID++
	row.IsRead = false
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	s.rows[row.ID] = row
	return &row, nil
}

func (s *memMessages) MarkRead(id int) (bool, error) {
	row, ok := s.rows[id]
	if !ok {
		return false, nil
	}
	row.IsRead = true
	s.rows[id] = row
	return true, nil
}

func (s *memMessages) Delete(id int) (bool, error) {
	delete(s.rows, id)
	return true, nil
}

/* ====================== SUBSCRIBERS ====================== */

type memSubscribers struct {
	rows   map[int]subscriberModel.SubscriberModel
	nextID int
}

func (s *memSubscribers) List(limit int) ([]subscriberModel.SubscriberModel, error) {
	out := make([]subscriberModel.SubscriberModel, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return truncate(out, limit), nil
}

func (s *memSubscribers) Create(in *subscriberModel.SubscriberModel) (*subscriberModel.SubscriberModel, error) {
	for _, row := range s.rows {
		if row.Email == in.Email {
			row := row
			return &row, nil
		}
	}
	row := *in
	row.ID = s.nextID
	s.nextID++
	row.IsActive = true
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}
	s.rows[row.ID] = row
	return &row, nil
}

func (s *memSubscribers) Delete(id int) (bool, error) {
	delete(s.rows, id)
	return true, nil
}

/* ====================== PAGES ====================== */

type memPages struct {
	rows   map[int]pageModel.PageModel
	nextID int
}

func (s *memPages) List(limit int) ([]pageModel.PageModel, error) {
	out := make([]pageModel.PageModel, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return truncate(out, limit), nil
}

func (s *memPages) GetBySlug(slug string) (*pageModel.PageModel, error) {
	for _, row := range s.rows {
		if row.Slug == slug {
			row := row
			return &row, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memPages) Create(in *pageModel.PageModel) (*pageModel.PageModel, error) {
	if _, err := s.GetBySlug(in.Slug); err == nil {
		return nil, ErrConflict
	}
	row := *in
	row.ID = s.nextID
	s.nextID++
	row.UpdatedAt = time.Now()
	s.rows[row.ID] = row
	return &row, nil
}

func (s *memPages) Update(id int, patch pageModel.PageUpdate) (*pageModel.PageModel, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Slug != nil && *patch.Slug != row.Slug {
		if other, err := s.GetBySlug(*patch.Slug); err == nil && other.ID != id {
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
	s.rows[id] = row
	return &row, nil
}

func (s *memPages) Delete(id int) (bool, error) {
	delete(s.rows, id)
	return true, nil
}

/* ====================== SHARED ====================== */

func sortArticlesDesc(rows []articleModel.ArticleModel) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].PublishedAt.After(rows[j].PublishedAt) })
}

func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && limit < len(rows) {
		return rows[:limit]
	}
	return rows
}
