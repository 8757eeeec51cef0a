package handler

import (
	"github.com/gofiber/fiber/v2"

	"erpapi/internal/repository"
	"erpapi/internal/service"
)

func activityFilter(c *fiber.Ctx) (repository.ActivityFilter, error) {
	f := repository.ActivityFilter{
		ReferenceID: c.Query("reference_id"),
		TSM:         c.Query("tsm"),
		Manager:     c.Query("manager"),
		Status:      c.Query("status"),
	}
	from, err := dateParam(c, "from")
	if err != nil {
		return f, err
	}
	to, err := dateParam(c, "to")
	if err != nil {
		return f, err
	}
	f.From = from
	if !to.IsZero() {
		// inclusive end day
		f.To = to.AddDate(0, 0, 1)
	}
	return f, nil
}

// ListActivities godoc
// @Summary List activities
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param reference_id query string false "owning TSA"
// @Param tsm query string false "TSM"
// @Param manager query string false "manager"
// @Param status query string false "status"
// @Param from query string false "created on or after (YYYY-MM-DD)"
// @Param to query string false "created on or before (YYYY-MM-DD)"
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.ListResult[model.Activity]
// @Failure 400 {object} errorPayload
// @Router /activities [get]
func ListActivities(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := pageParams(c)
		if err != nil {
			return badRequest(c, err)
		}
		f, err := activityFilter(c)
		if err != nil {
			return badRequest(c, err)
		}
		res, err := svc.List(c.UserContext(), f, limit, offset)
		if err != nil {
			return respondServiceError(c, err, "activity")
		}
		return c.JSON(res)
	}
}

// CreateActivity godoc
// @Summary Create an activity
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ActivityInput true "activity"
// @Success 201 {object} model.Activity
// @Failure 400 {object} errorPayload
// @Router /activities [post]
func CreateActivity(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ActivityInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		a, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err, "activity")
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

// GetActivity godoc
// @Summary Get an activity
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path string true "activity id"
// @Success 200 {object} model.Activity
// @Failure 404 {object} errorPayload
// @Router /activities/{id} [get]
func GetActivity(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		a, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err, "activity")
		}
		return c.JSON(a)
	}
}

// UpdateActivity godoc
// @Summary Update an activity
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "activity id"
// @Param body body service.ActivityInput true "changes"
// @Success 200 {object} model.Activity
// @Failure 404 {object} errorPayload
// @Router /activities/{id} [put]
func UpdateActivity(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		var in service.ActivityInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		a, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondServiceError(c, err, "activity")
		}
		return c.JSON(a)
	}
}

// DeleteActivity godoc
// @Summary Delete an activity and its progress
// @Tags activities
// @Security BearerAuth
// @Param id path string true "activity id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /activities/{id} [delete]
func DeleteActivity(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondServiceError(c, err, "activity")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ActivitySummary godoc
// @Summary Activity counts and amounts per status
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param reference_id query string false "owning TSA"
// @Param tsm query string false "TSM"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {array} model.ActivityStatusSummary
// @Router /activities/summary [get]
func ActivitySummary(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := activityFilter(c)
		if err != nil {
			return badRequest(c, err)
		}
		rows, err := svc.Summary(c.UserContext(), f)
		if err != nil {
			return respondServiceError(c, err, "activity")
		}
		return c.JSON(rows)
	}
}

// ListProgress godoc
// @Summary List progress entries of an activity
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path string true "activity id"
// @Success 200 {array} model.Progress
// @Failure 404 {object} errorPayload
// @Router /activities/{id}/progress [get]
func ListProgress(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		rows, err := svc.ListProgress(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err, "activity")
		}
		return c.JSON(rows)
	}
}

// AddProgress godoc
// @Summary Record progress on an activity
// @Description Stores the entry and updates the activity status and amounts in one transaction.
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "activity id"
// @Param body body service.ProgressInput true "progress"
// @Success 201 {object} service.ProgressResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /activities/{id}/progress [post]
func AddProgress(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		var in service.ProgressInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		if in.ReferenceID == "" {
			in.ReferenceID = caller(c)
		}
		res, err := svc.AddProgress(c.UserContext(), id, in)
		if err != nil {
			return respondServiceError(c, err, "activity")
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}
