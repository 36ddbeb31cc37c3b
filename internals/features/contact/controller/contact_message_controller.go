package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sinafite_backend/internals/features/contact/dto"
	helper "sinafite_backend/internals/helpers"
	"sinafite_backend/internals/storage"
)

var validateContact = validator.New()

type ContactMessageController struct {
	Store storage.ContactMessageStore
}

func NewContactMessageController(store storage.ContactMessageStore) *ContactMessageController {
	return &ContactMessageController{Store: store}
}

// =============================
// Submit Contact Message (public)
// =============================
// Fire-and-forget: the response is a success envelope, not the stored
// message.
func (ctrl *ContactMessageController) CreateContactMessage(c *fiber.Ctx) error {
	var body dto.CreateContactMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&body); err != nil {
		return helper.ValidationError(err)
	}

	message := body.ToModel()
	if _, err := ctrl.Store.Create(&message); err != nil {
		return err
	}
	return helper.Submit(c, "Message sent successfully")
}

// =============================
// Get All Contact Messages (admin)
// =============================
func (ctrl *ContactMessageController) GetAllContactMessages(c *fiber.Ctx) error {
	limit, err := helper.ParseLimitQuery(c)
	if err != nil {
		return err
	}

	messages, err := ctrl.Store.List(limit)
	if err != nil {
		return err
	}

	result := make([]dto.ContactMessageDTO, 0, len(messages))
	for _, m := range messages {
		result = append(result, dto.ToContactMessageDTO(m))
	}
	return c.JSON(result)
}

// =============================
// Mark Message As Read (admin)
// =============================
// unread -> read is the only transition and it is one-way; marking an
// already read message succeeds again.
func (ctrl *ContactMessageController) MarkMessageAsRead(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return err
	}

	found, err := ctrl.Store.MarkRead(id)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Message not found")
	}
	return c.JSON(fiber.Map{"success": true})
}

// =============================
// Delete Contact Message (admin)
// =============================
func (ctrl *ContactMessageController) DeleteContactMessage(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return err
	}

	if _, err := ctrl.Store.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
