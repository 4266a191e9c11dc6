package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medcare/medcare-server/models"
	"github.com/medcare/medcare-server/services"
	"github.com/medcare/medcare-server/utils"
)

type ServiceController struct {
	catalog *services.CatalogService
}

func NewServiceController(catalog *services.CatalogService) *ServiceController {
	return &ServiceController{catalog: catalog}
}

// GetAllServices godoc
// @Summary Get all medical services
// @Description Get all medical services
// @Tags services
// @Accept json
// @Produce json
// @Success 200 {array} models.MedicalService
// @Failure 500 {object} utils.ErrorResponse
// @Router /services [get]
func (ctrl *ServiceController) GetAllServices(c *fiber.Ctx) error {
	catalog, err := ctrl.catalog.List()
	if err != nil {
		return utils.RespondError(c, "Failed to fetch services", err)
	}
	return c.JSON(catalog)
}

// GetService godoc
// @Summary Get a medical service by ID
// @Description Get a medical service by ID
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} models.MedicalService
// @Failure 404 {object} utils.ErrorResponse
// @Router /services/{id} [get]
func (ctrl *ServiceController) GetService(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service ID",
			Error:   err.Error(),
		})
	}
	service, err := ctrl.catalog.Get(id)
	if err != nil {
		return utils.RespondError(c, "Service not found", err)
	}
	return c.JSON(service)
}

// CreateService godoc
// @Summary Create a new medical service
// @Description Create a service; duration must be positive, price non-negative
// @Tags services
// @Accept json
// @Produce json
// @Param service body models.MedicalService true "Service"
// @Success 201 {object} models.MedicalService
// @Failure 400 {object} utils.ErrorResponse
// @Router /services [post]
func (ctrl *ServiceController) CreateService(c *fiber.Ctx) error {
	var service models.MedicalService
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	created, err := ctrl.catalog.Create(&service)
	if err != nil {
		return utils.RespondError(c, "Failed to create service", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateService godoc
// @Summary Update a medical service by ID
// @Description Update a medical service by ID
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param service body models.MedicalService true "Service"
// @Success 200 {object} models.MedicalService
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /services/{id} [put]
func (ctrl *ServiceController) UpdateService(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service ID",
			Error:   err.Error(),
		})
	}
	var service models.MedicalService
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	service.ID = id
	updated, err := ctrl.catalog.Update(&service)
	if err != nil {
		return utils.RespondError(c, "Failed to update service", err)
	}
	return c.JSON(updated)
}

// DeleteService godoc
// @Summary Delete a medical service by ID
// @Description Delete a medical service by ID
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /services/{id} [delete]
func (ctrl *ServiceController) DeleteService(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service ID",
			Error:   err.Error(),
		})
	}
	if err := ctrl.catalog.Delete(id); err != nil {
		return utils.RespondError(c, "Failed to delete service", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
