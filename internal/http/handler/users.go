package handler

import (
	"github.com/gofiber/fiber/v2"

	"erpapi/internal/repository"
	"erpapi/internal/service"
)

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "role"
// @Param tsm query string false "TSM reference id"
// @Param manager query string false "manager reference id"
// @Param status query string false "Active or Inactive"
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.ListResult[model.User]
// @Router /users [get]
func ListUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := pageParams(c)
		if err != nil {
			return badRequest(c, err)
		}
		f := repository.UserFilter{
			Role:    c.Query("role"),
			TSM:     c.Query("tsm"),
			Manager: c.Query("manager"),
			Status:  c.Query("status"),
		}
		res, err := svc.List(c.UserContext(), f, limit, offset)
		if err != nil {
			return respondServiceError(c, err, "user")
		}
		return c.JSON(res)
	}
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.UserInput true "user"
// @Success 201 {object} model.User
// @Failure 400 {object} errorPayload
// @Failure 403 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /users [post]
func CreateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UserInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		u, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err, "user")
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// GetUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "user id"
// @Success 200 {object} model.User
// @Failure 404 {object} errorPayload
// @Router /users/{id} [get]
func GetUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		u, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err, "user")
		}
		return c.JSON(u)
	}
}

// UpdateUser godoc
// @Summary Update a user
// @Description A non-empty password replaces the stored hash.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "user id"
// @Param body body service.UserInput true "changes"
// @Success 200 {object} model.User
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /users/{id} [put]
func UpdateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		var in service.UserInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		u, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondServiceError(c, err, "user")
		}
		return c.JSON(u)
	}
}

// DeactivateUser godoc
// @Summary Deactivate a user
// @Tags users
// @Security BearerAuth
// @Param id path string true "user id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /users/{id} [delete]
func DeactivateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		if err := svc.Deactivate(c.UserContext(), id); err != nil {
			return respondServiceError(c, err, "user")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
