package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/medcare/medcare-server/models"
	"github.com/medcare/medcare-server/services"
	"github.com/medcare/medcare-server/utils"
)

type AppointmentController struct {
	appointments *services.AppointmentService
}

func NewAppointmentController(appointments *services.AppointmentService) *AppointmentController {
	return &AppointmentController{appointments: appointments}
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parseTimeQuery(c *fiber.Ctx, name string) (time.Time, error) {
	return time.Parse(time.RFC3339, c.Query(name))
}

// GetAllAppointments godoc
// @Summary Get all appointments
// @Description Get all appointments
// @Tags appointments
// @Accept json
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments [get]
func (ctrl *AppointmentController) GetAllAppointments(c *fiber.Ctx) error {
	appointments, err := ctrl.appointments.List()
	if err != nil {
		return utils.RespondError(c, "Failed to fetch appointments", err)
	}
	return c.JSON(appointments)
}

// GetAppointment godoc
// @Summary Get an appointment by ID
// @Description Get an appointment by ID
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /appointments/{id} [get]
func (ctrl *AppointmentController) GetAppointment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
			Error:   err.Error(),
		})
	}
	appointment, err := ctrl.appointments.Get(id)
	if err != nil {
		return utils.RespondError(c, "Appointment not found", err)
	}
	return c.JSON(appointment)
}

// CreateAppointment godoc
// @Summary Create a new appointment
// @Description Book an appointment; the slot is validated against the doctor's working hours and existing bookings
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body models.Appointment true "Appointment"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /appointments [post]
func (ctrl *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	created, err := ctrl.appointments.Create(&appointment)
	if err != nil {
		return utils.RespondError(c, "Failed to create appointment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateAppointment godoc
// @Summary Update an appointment by ID
// @Description Replace an appointment; moving it re-validates the slot
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param appointment body models.Appointment true "Appointment"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /appointments/{id} [put]
func (ctrl *AppointmentController) UpdateAppointment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
			Error:   err.Error(),
		})
	}
	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	appointment.ID = id
	updated, err := ctrl.appointments.Update(&appointment)
	if err != nil {
		return utils.RespondError(c, "Failed to update appointment", err)
	}
	return c.JSON(updated)
}

// UpdateAppointmentStatus godoc
// @Summary Update the status of an appointment
// @Description Advance the appointment lifecycle; illegal transitions are rejected
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param status body controllers.UpdateStatusRequest true "New status"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id}/status [patch]
func (ctrl *AppointmentController) UpdateAppointmentStatus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
			Error:   err.Error(),
		})
	}
	var body UpdateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	updated, err := ctrl.appointments.UpdateStatus(id, body.Status)
	if err != nil {
		return utils.RespondError(c, "Failed to update appointment status", err)
	}
	return c.JSON(updated)
}

// UpdateStatusRequest is the body of the status patch endpoint.
type UpdateStatusRequest struct {
	Status models.AppointmentStatus `json:"status"`
}

// DeleteAppointment godoc
// @Summary Delete an appointment by ID
// @Description Delete an appointment by ID
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/{id} [delete]
func (ctrl *AppointmentController) DeleteAppointment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid appointment ID",
			Error:   err.Error(),
		})
	}
	if err := ctrl.appointments.Delete(id); err != nil {
		return utils.RespondError(c, "Failed to delete appointment", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAppointmentsByDateRange godoc
// @Summary Get appointments within a date range
// @Description Both range ends are inclusive, RFC3339 timestamps
// @Tags appointments
// @Accept json
// @Produce json
// @Param start query string true "Range start"
// @Param end query string true "Range end"
// @Success 200 {array} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Router /appointments/date-range [get]
func (ctrl *AppointmentController) GetAppointmentsByDateRange(c *fiber.Ctx) error {
	start, err := parseTimeQuery(c, "start")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid start parameter",
			Error:   err.Error(),
		})
	}
	end, err := parseTimeQuery(c, "end")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid end parameter",
			Error:   err.Error(),
		})
	}
	appointments, err := ctrl.appointments.ListByDateRange(start, end)
	if err != nil {
		return utils.RespondError(c, "Failed to fetch appointments", err)
	}
	return c.JSON(appointments)
}

// CheckAvailability godoc
// @Summary Check whether a doctor can take a slot
// @Description Validates the candidate interval against working hours and existing bookings
// @Tags appointments
// @Accept json
// @Produce json
// @Param doctor_id query int true "Doctor ID"
// @Param start query string true "Candidate start, RFC3339"
// @Param duration query int true "Duration in minutes"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /appointments/availability [get]
func (ctrl *AppointmentController) CheckAvailability(c *fiber.Ctx) error {
	doctorID, err := strconv.ParseUint(c.Query("doctor_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid doctor_id parameter",
			Error:   err.Error(),
		})
	}
	start, err := parseTimeQuery(c, "start")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid start parameter",
			Error:   err.Error(),
		})
	}
	duration := c.QueryInt("duration")

	available, err := ctrl.appointments.CheckAvailability(uint(doctorID), start, duration)
	if err != nil {
		return utils.RespondError(c, "Failed to check availability", err)
	}
	return c.JSON(fiber.Map{"available": available})
}
