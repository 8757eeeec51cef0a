package handler

import (
	"github.com/gofiber/fiber/v2"

	"erpapi/internal/repository"
	"erpapi/internal/service"
)

// PublicInquiryRequest is the website contact form.
type PublicInquiryRequest struct {
	service.InquiryInput
	RecaptchaToken string `json:"recaptcha_token"`
}

// ListInquiries godoc
// @Summary List CSR inquiries
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param status query string false "Open, Endorsed or Closed"
// @Param assigned_agent query string false "agent reference id"
// @Param csr_agent query string false "CSR reference id"
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.ListResult[model.Inquiry]
// @Router /inquiries [get]
func ListInquiries(svc service.InquiryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := pageParams(c)
		if err != nil {
			return badRequest(c, err)
		}
		f := repository.InquiryFilter{
			Status:        c.Query("status"),
			AssignedAgent: c.Query("assigned_agent"),
			CSRAgent:      c.Query("csr_agent"),
		}
		res, err := svc.List(c.UserContext(), f, limit, offset)
		if err != nil {
			return respondServiceError(c, err, "inquiry")
		}
		return c.JSON(res)
	}
}

// CreateInquiry godoc
// @Summary Create an inquiry
// @Description Notifies the assigned agent when one is set.
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.InquiryInput true "inquiry"
// @Success 201 {object} model.Inquiry
// @Failure 400 {object} errorPayload
// @Router /inquiries [post]
func CreateInquiry(svc service.InquiryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.InquiryInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		if in.CSRAgent == "" {
			in.CSRAgent = caller(c)
		}
		i, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err, "inquiry")
		}
		return c.Status(fiber.StatusCreated).JSON(i)
	}
}

// CreatePublicInquiry godoc
// @Summary Submit the website contact form
// @Tags inquiries
// @Accept json
// @Produce json
// @Param body body PublicInquiryRequest true "inquiry"
// @Success 201 {object} model.Inquiry
// @Failure 400 {object} errorPayload
// @Failure 429 {object} errorPayload
// @Router /public/inquiries [post]
func CreatePublicInquiry(svc service.InquiryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req PublicInquiryRequest
		if err := bind(c, &req); err != nil {
			return badRequest(c, err)
		}
		i, err := svc.CreatePublic(c.UserContext(), req.InquiryInput, req.RecaptchaToken, c.IP())
		if err != nil {
			return respondServiceError(c, err, "inquiry")
		}
		return c.Status(fiber.StatusCreated).JSON(i)
	}
}

// GetInquiry godoc
// @Summary Get an inquiry
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Param id path string true "inquiry id"
// @Success 200 {object} model.Inquiry
// @Failure 404 {object} errorPayload
// @Router /inquiries/{id} [get]
func GetInquiry(svc service.InquiryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		i, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err, "inquiry")
		}
		return c.JSON(i)
	}
}

// UpdateInquiry godoc
// @Summary Update an inquiry
// @Description Reassigning notifies the new agent.
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "inquiry id"
// @Param body body service.InquiryInput true "changes"
// @Success 200 {object} model.Inquiry
// @Failure 404 {object} errorPayload
// @Router /inquiries/{id} [put]
func UpdateInquiry(svc service.InquiryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		var in service.InquiryInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		i, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondServiceError(c, err, "inquiry")
		}
		return c.JSON(i)
	}
}

// DeleteInquiry godoc
// @Summary Delete an inquiry
// @Tags inquiries
// @Security BearerAuth
// @Param id path string true "inquiry id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /inquiries/{id} [delete]
func DeleteInquiry(svc service.InquiryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondServiceError(c, err, "inquiry")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
