package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"erpapi/internal/http/middleware"
)

// paramError is a malformed path, query or body value.
type paramError struct {
	code    string
	message string
}

func (e *paramError) Error() string { return e.message }

var (
	errInvalidID     = &paramError{"INVALID_ID", "invalid id format"}
	errInvalidLimit  = &paramError{"INVALID_LIMIT", "invalid limit"}
	errInvalidOffset = &paramError{"INVALID_OFFSET", "invalid offset"}
	errInvalidBody   = &paramError{"INVALID_BODY", "invalid request body"}
	errInvalidDate   = &paramError{"INVALID_DATE", "dates must be YYYY-MM-DD"}
	errFileRequired  = &paramError{"FILE_REQUIRED", "file is required"}
)

// badRequest writes a 400 for a paramError.
func badRequest(c *fiber.Ctx, err error) error {
	var pe *paramError
	if !errors.As(err, &pe) {
		pe = errInvalidBody
	}
	return writeError(c, fiber.StatusBadRequest, pe.code, pe.message)
}

func pageParams(c *fiber.Ctx) (limit, offset int, err error) {
	if limit, err = strconv.Atoi(c.Query("limit", "10")); err != nil {
		return 0, 0, errInvalidLimit
	}
	if offset, err = strconv.Atoi(c.Query("offset", "0")); err != nil {
		return 0, 0, errInvalidOffset
	}
	return limit, offset, nil
}

// pathID returns the :id parameter when it is a UUID.
func pathID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", errInvalidID
	}
	return id, nil
}

func bind(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return errInvalidBody
	}
	return nil
}

// dateParam parses an optional YYYY-MM-DD query value in UTC.
func dateParam(c *fiber.Ctx, key string) (time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

// caller returns the reference id of the authenticated user.
func caller(c *fiber.Ctx) string {
	if claims, ok := middleware.ClaimsFrom(c); ok {
		return claims.ReferenceID
	}
	return ""
}
