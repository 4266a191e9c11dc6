package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medcare/medcare-server/models"
	"github.com/medcare/medcare-server/services"
	"github.com/medcare/medcare-server/utils"
)

type DoctorController struct {
	doctors *services.DoctorService
}

func NewDoctorController(doctors *services.DoctorService) *DoctorController {
	return &DoctorController{doctors: doctors}
}

// GetAllDoctors godoc
// @Summary Get all doctors
// @Description Get all doctors, optionally filtered by specialization
// @Tags doctors
// @Accept json
// @Produce json
// @Param specialization query string false "Specialization filter"
// @Success 200 {array} models.Doctor
// @Failure 500 {object} utils.ErrorResponse
// @Router /doctors [get]
func (ctrl *DoctorController) GetAllDoctors(c *fiber.Ctx) error {
	var (
		doctors []models.Doctor
		err     error
	)
	if specialization := c.Query("specialization"); specialization != "" {
		doctors, err = ctrl.doctors.ListBySpecialization(specialization)
	} else {
		doctors, err = ctrl.doctors.List()
	}
	if err != nil {
		return utils.RespondError(c, "Failed to fetch doctors", err)
	}
	return c.JSON(doctors)
}

// GetDoctor godoc
// @Summary Get a doctor by ID
// @Description Get a doctor by ID
// @Tags doctors
// @Accept json
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} models.Doctor
// @Failure 404 {object} utils.ErrorResponse
// @Router /doctors/{id} [get]
func (ctrl *DoctorController) GetDoctor(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid doctor ID",
			Error:   err.Error(),
		})
	}
	doctor, err := ctrl.doctors.Get(id)
	if err != nil {
		return utils.RespondError(c, "Doctor not found", err)
	}
	return c.JSON(doctor)
}

// CreateDoctor godoc
// @Summary Create a new doctor
// @Description Create a doctor; the work-hours string must be "HH:MM-HH:MM"
// @Tags doctors
// @Accept json
// @Produce json
// @Param doctor body models.Doctor true "Doctor"
// @Success 201 {object} models.Doctor
// @Failure 400 {object} utils.ErrorResponse
// @Router /doctors [post]
func (ctrl *DoctorController) CreateDoctor(c *fiber.Ctx) error {
	var doctor models.Doctor
	if err := c.BodyParser(&doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	created, err := ctrl.doctors.Create(&doctor)
	if err != nil {
		return utils.RespondError(c, "Failed to create doctor", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateDoctor godoc
// @Summary Update a doctor by ID
// @Description Update a doctor by ID
// @Tags doctors
// @Accept json
// @Produce json
// @Param id path int true "Doctor ID"
// @Param doctor body models.Doctor true "Doctor"
// @Success 200 {object} models.Doctor
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /doctors/{id} [put]
func (ctrl *DoctorController) UpdateDoctor(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid doctor ID",
			Error:   err.Error(),
		})
	}
	var doctor models.Doctor
	if err := c.BodyParser(&doctor); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	doctor.ID = id
	updated, err := ctrl.doctors.Update(&doctor)
	if err != nil {
		return utils.RespondError(c, "Failed to update doctor", err)
	}
	return c.JSON(updated)
}

// DeleteDoctor godoc
// @Summary Delete a doctor by ID
// @Description Delete a doctor by ID
// @Tags doctors
// @Accept json
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /doctors/{id} [delete]
func (ctrl *DoctorController) DeleteDoctor(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid doctor ID",
			Error:   err.Error(),
		})
	}
	if err := ctrl.doctors.Delete(id); err != nil {
		return utils.RespondError(c, "Failed to delete doctor", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
