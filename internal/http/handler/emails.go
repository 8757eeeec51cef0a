package handler

import (
	"github.com/gofiber/fiber/v2"

	"erpapi/internal/service"
)

// SendEmail godoc
// @Summary Send an email
// @Tags emails
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.EmailInput true "message"
// @Success 201 {object} model.Email
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /emails [post]
func SendEmail(svc service.EmailService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.EmailInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		e, err := svc.Send(c.UserContext(), caller(c), in)
		if err != nil {
			return respondServiceError(c, err, "email")
		}
		return c.Status(fiber.StatusCreated).JSON(e)
	}
}

// ListSentEmails godoc
// @Summary List sent emails
// @Tags emails
// @Produce json
// @Security BearerAuth
// @Param sent_by query string false "sender reference id"
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.ListResult[model.Email]
// @Router /emails [get]
func ListSentEmails(svc service.EmailService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := pageParams(c)
		if err != nil {
			return badRequest(c, err)
		}
		res, err := svc.Sent(c.UserContext(), c.Query("sent_by"), limit, offset)
		if err != nil {
			return respondServiceError(c, err, "email")
		}
		return c.JSON(res)
	}
}

// Inbox godoc
// @Summary Latest messages in the shared mailbox
// @Tags emails
// @Produce json
// @Security BearerAuth
// @Param limit query int false "number of messages" default(20)
// @Success 200 {array} model.InboxMessage
// @Failure 503 {object} errorPayload
// @Router /emails/inbox [get]
func Inbox(svc service.EmailService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msgs, err := svc.Inbox(c.UserContext(), c.QueryInt("limit", 20))
		if err != nil {
			return respondServiceError(c, err, "mailbox")
		}
		return c.JSON(msgs)
	}
}
