package handler

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"erpapi/internal/export"
	"erpapi/internal/repository"
	"erpapi/internal/service"
)

func accountFilter(c *fiber.Ctx) repository.AccountFilter {
	return repository.AccountFilter{
		ReferenceID: c.Query("reference_id"),
		TSM:         c.Query("tsm"),
		Manager:     c.Query("manager"),
		Status:      c.Query("status"),
		Search:      c.Query("q"),
	}
}

// ListAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param reference_id query string false "owning TSA"
// @Param tsm query string false "TSM"
// @Param manager query string false "manager"
// @Param status query string false "Active or Removed"
// @Param q query string false "company or contact search"
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.ListResult[model.Account]
// @Failure 400 {object} errorPayload
// @Router /accounts [get]
func ListAccounts(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := pageParams(c)
		if err != nil {
			return badRequest(c, err)
		}
		res, err := svc.List(c.UserContext(), accountFilter(c), limit, offset)
		if err != nil {
			return respondServiceError(c, err, "account")
		}
		return c.JSON(res)
	}
}

// CreateAccount godoc
// @Summary Create an account
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.AccountInput true "account"
// @Success 201 {object} model.Account
// @Failure 400 {object} errorPayload
// @Router /accounts [post]
func CreateAccount(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.AccountInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		a, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err, "account")
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

// GetAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "account id"
// @Success 200 {object} model.Account
// @Failure 404 {object} errorPayload
// @Router /accounts/{id} [get]
func GetAccount(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		a, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err, "account")
		}
		return c.JSON(a)
	}
}

// UpdateAccount godoc
// @Summary Update an account
// @Description Blank fields keep their stored value.
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "account id"
// @Param body body service.AccountInput true "changes"
// @Success 200 {object} model.Account
// @Failure 404 {object} errorPayload
// @Router /accounts/{id} [put]
func UpdateAccount(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		var in service.AccountInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		a, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondServiceError(c, err, "account")
		}
		return c.JSON(a)
	}
}

// DeleteAccount godoc
// @Summary Remove an account
// @Description Sets the status to Removed; the row is kept.
// @Tags accounts
// @Security BearerAuth
// @Param id path string true "account id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /accounts/{id} [delete]
func DeleteAccount(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondServiceError(c, err, "account")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// TransferAccounts godoc
// @Summary Transfer accounts to a new owner
// @Description All accounts move or none do.
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.TransferInput true "transfer"
// @Success 200 {object} map[string]int
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /accounts/transfer [post]
func TransferAccounts(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.TransferInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		n, err := svc.Transfer(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err, "account")
		}
		return c.JSON(fiber.Map{"transferred": n})
	}
}

// ExportAccounts godoc
// @Summary Export accounts as a spreadsheet
// @Tags accounts
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Router /accounts/export [get]
func ExportAccounts(svc service.AccountService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := svc.Export(c.UserContext(), &buf, accountFilter(c)); err != nil {
			return respondServiceError(c, err, "account")
		}
		return sendSpreadsheet(c, "accounts", buf.Bytes())
	}
}

func sendSpreadsheet(c *fiber.Ctx, name string, data []byte) error {
	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s-%s.xlsx"`, name, time.Now().UTC().Format("20060102")))
	return c.Send(data)
}
