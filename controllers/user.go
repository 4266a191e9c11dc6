package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medcare/medcare-server/models"
	"github.com/medcare/medcare-server/services"
	"github.com/medcare/medcare-server/utils"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func sanitize(user *models.User) *models.User {
	user.Password = ""
	return user
}

// GetAllUsers godoc
// @Summary Get all staff accounts
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} utils.ErrorResponse
// @Router /users [get]
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	users, err := ctrl.users.List()
	if err != nil {
		return utils.RespondError(c, "Failed to fetch users", err)
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// GetUser godoc
// @Summary Get a staff account by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} utils.ErrorResponse
// @Router /users/{id} [get]
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid user ID",
			Error:   err.Error(),
		})
	}
	user, err := ctrl.users.Get(id)
	if err != nil {
		return utils.RespondError(c, "User not found", err)
	}
	return c.JSON(sanitize(user))
}

// CreateUser godoc
// @Summary Create a staff account
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.User true "User"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Router /users [post]
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	created, err := ctrl.users.Create(&user)
	if err != nil {
		return utils.RespondError(c, "Failed to create user", err)
	}
	return c.Status(fiber.StatusCreated).JSON(sanitize(created))
}

// UpdateUser godoc
// @Summary Update a staff account by ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body models.User true "User"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /users/{id} [put]
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid user ID",
			Error:   err.Error(),
		})
	}
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	user.ID = id
	updated, err := ctrl.users.Update(&user)
	if err != nil {
		return utils.RespondError(c, "Failed to update user", err)
	}
	return c.JSON(sanitize(updated))
}

// DeleteUser godoc
// @Summary Delete a staff account by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid user ID",
			Error:   err.Error(),
		})
	}
	if err := ctrl.users.Delete(id); err != nil {
		return utils.RespondError(c, "Failed to delete user", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
