package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sinafite_backend/internals/features/articles/dto"
	helper "sinafite_backend/internals/helpers"
	"sinafite_backend/internals/storage"
)

var validateArticle = validator.New()

type ArticleController struct {
	Store storage.ArticleStore
}

func NewArticleController(store storage.ArticleStore) *ArticleController {
	return &ArticleController{Store: store}
}

// =============================
// Get All Articles
// =============================
func (ctrl *ArticleController) GetAllArticles(c *fiber.Ctx) error {
	limit, err := helper.ParseLimitQuery(c)
	if err != nil {
		return err
	}

	articles, err := ctrl.Store.List(limit)
	if err != nil {
		return err
	}

	result := make([]dto.ArticleDTO, 0, len(articles))
	for _, a := range articles {
		result = append(result, dto.ToArticleDTO(a))
	}
	return c.JSON(result)
}

// =============================
// Get Article By ID
// =============================
func (ctrl *ArticleController) GetArticleByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return err
	}

	article, err := ctrl.Store.GetByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Article not found")
		}
		return err
	}
	return c.JSON(dto.ToArticleDTO(*article))
}

// =============================
// Get Articles By Category
// =============================
func (ctrl *ArticleController) GetArticlesByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	articles, err := ctrl.Store.ListByCategory(category)
	if err != nil {
		return err
	}

	result := make([]dto.ArticleDTO, 0, len(articles))
	for _, a := range articles {
		result = append(result, dto.ToArticleDTO(a))
	}
	return c.JSON(result)
}

// =============================
// Create Article
// =============================
func (ctrl *ArticleController) CreateArticle(c *fiber.Ctx) error {
	var body dto.CreateArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.ValidationError(err)
	}

	article := body.ToModel()
	created, err := ctrl.Store.Create(&article)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToArticleDTO(*created))
}

// =============================
// Update Article
// =============================
func (ctrl *ArticleController) UpdateArticle(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return err
	}

	var body dto.UpdateArticleRequest
	if err := helper.BindStrict(c, &body); err != nil {
		return err
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.ValidationError(err)
	}

	updated, err := ctrl.Store.Update(id, body.ToUpdate())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Article not found")
		}
		return err
	}
	return c.JSON(dto.ToArticleDTO(*updated))
}

// =============================
// Delete Article
// =============================
func (ctrl *ArticleController) DeleteArticle(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return err
	}

	if _, err := ctrl.Store.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
