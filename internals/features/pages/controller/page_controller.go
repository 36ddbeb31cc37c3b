package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sinafite_backend/internals/features/pages/dto"
	helper "sinafite_backend/internals/helpers"
	"sinafite_backend/internals/storage"
)

var validatePage = validator.New()

type PageController struct {
	Store storage.PageStore
}

func NewPageController(store storage.PageStore) *PageController {
	return &PageController{Store: store}
}

// =============================
// Get All Pages
// =============================
func (ctrl *PageController) GetAllPages(c *fiber.Ctx) error {
	limit, err := helper.ParseLimitQuery(c)
	if err != nil {
		return err
	}

	pages, err := ctrl.Store.List(limit)
	if err != nil {
		return err
	}

	result := make([]dto.PageDTO, 0, len(pages))
	for _, p := range pages {
		result = append(result, dto.ToPageDTO(p))
	}
	return c.JSON(result)
}

// =============================
// Get Page By Slug
// =============================
func (ctrl *PageController) GetPageBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	page, err := ctrl.Store.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Page not found")
		}
		return err
	}
	return c.JSON(dto.ToPageDTO(*page))
}

// =============================
// Create Page
// =============================
func (ctrl *PageController) CreatePage(c *fiber.Ctx) error {
	var body dto.CreatePageRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validatePage.Struct(&body); err != nil {
		return helper.ValidationError(err)
	}

	page := body.ToModel()
	created, err := ctrl.Store.Create(&page)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return fiber.NewError(fiber.StatusConflict, "A page with this slug already exists")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToPageDTO(*created))
}

// =============================
// Update Page
// =============================
func (ctrl *PageController) UpdatePage(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return err
	}

	var body dto.UpdatePageRequest
	if err := helper.BindStrict(c, &body); err != nil {
		return err
	}
	if err := validatePage.Struct(&body); err != nil {
		return helper.ValidationError(err)
	}

	updated, err := ctrl.Store.Update(id, body.ToUpdate())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Page not found")
		}
		if errors.Is(err, storage.ErrConflict) {
			return fiber.NewError(fiber.StatusConflict, "A page with this slug already exists")
		}
		return err
	}
	return c.JSON(dto.ToPageDTO(*updated))
}

// =============================
// Delete Page
// =============================
func (ctrl *PageController) DeletePage(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return err
	}

	if _, err := ctrl.Store.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
