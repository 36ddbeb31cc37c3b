package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sinafite_backend/internals/features/services/dto"
	helper "sinafite_backend/internals/helpers"
	"sinafite_backend/internals/storage"
)

var validateService = validator.New()

type ServiceController struct {
	Store storage.ServiceStore
}

func NewServiceController(store storage.ServiceStore) *ServiceController {
	return &ServiceController{Store: store}
}

// =============================
// Get All Services
// =============================
// Inactive services are included; filtering on isActive is left to the
// caller.
func (ctrl *ServiceController) GetAllServices(c *fiber.Ctx) error {
	limit, err := helper.ParseLimitQuery(c)
	if err != nil {
		return err
	}

	services, err := ctrl.Store.List(limit)
	if err != nil {
		return err
	}

	result := make([]dto.ServiceDTO, 0, len(services))
	for _, s := range services {
		result = append(result, dto.ToServiceDTO(s))
	}
	return c.JSON(result)
}

// =============================
// Get Service By ID
// =============================
func (ctrl *ServiceController) GetServiceByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return err
	}

	service, err := ctrl.Store.GetByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}
		return err
	}
	return c.JSON(dto.ToServiceDTO(*service))
}

// =============================
// Create Service
// =============================
func (ctrl *ServiceController) CreateService(c *fiber.Ctx) error {
	var body dto.CreateServiceRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateService.Struct(&body); err != nil {
		return helper.ValidationError(err)
	}

	service := body.ToModel()
	created, err := ctrl.Store.Create(&service)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToServiceDTO(*created))
}

// =============================
// Update Service
// =============================
func (ctrl *ServiceController) UpdateService(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return err
	}

	var body dto.UpdateServiceRequest
	if err := helper.BindStrict(c, &body); err != nil {
		return err
	}
	if err := validateService.Struct(&body); err != nil {
		return helper.ValidationError(err)
	}

	updated, err := ctrl.Store.Update(id, body.ToUpdate())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}
		return err
	}
	return c.JSON(dto.ToServiceDTO(*updated))
}

// =============================
// Delete Service
// =============================
func (ctrl *ServiceController) DeleteService(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c)
	if err != nil {
		return err
	}

	if _, err := ctrl.Store.Delete(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
