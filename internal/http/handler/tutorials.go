package handler

import (
	"github.com/gofiber/fiber/v2"

	"erpapi/internal/service"
)

// ListTutorials godoc
// @Summary List tutorials
// @Tags tutorials
// @Produce json
// @Security BearerAuth
// @Param category query string false "category"
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.ListResult[model.Tutorial]
// @Router /tutorials [get]
func ListTutorials(svc service.TutorialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := pageParams(c)
		if err != nil {
			return badRequest(c, err)
		}
		res, err := svc.List(c.UserContext(), c.Query("category"), limit, offset)
		if err != nil {
			return respondServiceError(c, err, "tutorial")
		}
		return c.JSON(res)
	}
}

// CreateTutorial godoc
// @Summary Create a tutorial
// @Tags tutorials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.TutorialInput true "tutorial"
// @Success 201 {object} model.Tutorial
// @Failure 400 {object} errorPayload
// @Router /tutorials [post]
func CreateTutorial(svc service.TutorialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.TutorialInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		in.CreatedBy = caller(c)
		t, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err, "tutorial")
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}

// GetTutorial godoc
// @Summary Get a tutorial
// @Tags tutorials
// @Produce json
// @Security BearerAuth
// @Param id path string true "tutorial id"
// @Success 200 {object} model.Tutorial
// @Failure 404 {object} errorPayload
// @Router /tutorials/{id} [get]
func GetTutorial(svc service.TutorialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		t, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err, "tutorial")
		}
		return c.JSON(t)
	}
}

// UpdateTutorial godoc
// @Summary Update a tutorial
// @Tags tutorials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "tutorial id"
// @Param body body service.TutorialInput true "changes"
// @Success 200 {object} model.Tutorial
// @Failure 404 {object} errorPayload
// @Router /tutorials/{id} [put]
func UpdateTutorial(svc service.TutorialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		var in service.TutorialInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		t, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondServiceError(c, err, "tutorial")
		}
		return c.JSON(t)
	}
}

// DeleteTutorial godoc
// @Summary Delete a tutorial
// @Tags tutorials
// @Security BearerAuth
// @Param id path string true "tutorial id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /tutorials/{id} [delete]
func DeleteTutorial(svc service.TutorialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondServiceError(c, err, "tutorial")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
