package handler

import (
	"github.com/gofiber/fiber/v2"

	"erpapi/internal/service"
)

// ListNotifications godoc
// @Summary List my notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "only unread"
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.ListResult[model.Notification]
// @Router /notifications [get]
func ListNotifications(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := pageParams(c)
		if err != nil {
			return badRequest(c, err)
		}
		res, err := svc.List(c.UserContext(), caller(c), c.QueryBool("unread"), limit, offset)
		if err != nil {
			return respondServiceError(c, err, "notification")
		}
		return c.JSON(res)
	}
}

// MarkNotificationRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "notification id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /notifications/{id}/read [put]
func MarkNotificationRead(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		if err := svc.MarkRead(c.UserContext(), id, caller(c)); err != nil {
			return respondServiceError(c, err, "notification")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// MarkAllNotificationsRead godoc
// @Summary Mark all my notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Router /notifications/read-all [put]
func MarkAllNotificationsRead(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.MarkAllRead(c.UserContext(), caller(c))
		if err != nil {
			return respondServiceError(c, err, "notification")
		}
		return c.JSON(fiber.Map{"updated": n})
	}
}

// DeleteNotification godoc
// @Summary Delete a notification
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "notification id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /notifications/{id} [delete]
func DeleteNotification(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		if err := svc.Delete(c.UserContext(), id, caller(c)); err != nil {
			return respondServiceError(c, err, "notification")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
