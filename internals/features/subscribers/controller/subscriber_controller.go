package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sinafite_backend/internals/features/subscribers/dto"
	helper "sinafite_backend/internals/helpers"
	"sinafite_backend/internals/storage"
)

var validateSubscriber = validator.New()

type SubscriberController struct {
	Store storage.SubscriberStore
}

func NewSubscriberController(store storage.SubscriberStore) *SubscriberController {
	return &SubscriberController{Store: store}
}

// =============================
// Subscribe (public)
// =============================
// Subscribing an email that already exists returns the same success
// envelope without creating a second row.
func (ctrl *SubscriberController) CreateSubscriber(c *fiber.Ctx) error {
	var body dto.CreateSubscriberRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSubscriber.Struct(&body); err != nil {
		return helper.ValidationError(err)
	}

	subscriber := body.ToModel()
	if _, err := ctrl.Store.Create(&subscriber); err != nil {
		return err
	}
	return helper.Submit(c, "Subscription successful")
}

// =============================
// Get All Subscribers (admin)
// =============================
func (ctrl *SubscriberController) GetAllSubscribers(c *fiber.Ctx) error {
	limit, err := helper.ParseLimitQuery(c)
	if err != nil {
		return err
	}

	subscribers, err := ctrl.Store.List(limit)
	if err != nil {
		return err
	}

	result := make([]dto.SubscriberDTO, 0, len(subscribers))
	for _, s := range subscribers {
		result = append(result, dto.ToSubscriberDTO(s))
	}
	return c.JSON(result)
}

// =============================
// Delete Subscriber (admin)
// =============================
func (ctrl *SubscriberController) DeleteSubscriber(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return err
	}

	if _, err := ctrl.Store.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
