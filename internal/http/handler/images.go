package handler

import (
	"github.com/gofiber/fiber/v2"

	"erpapi/internal/service"
)

// uploadImage reads the multipart "file" field and hands it to upload.
func uploadImage(c *fiber.Ctx, what string, upload func(id string, img service.ImageUpload) (any, error)) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, errFileRequired)
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
	}
	defer f.Close()

	res, err := upload(id, service.ImageUpload{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
	})
	if err != nil {
		return respondServiceError(c, err, what)
	}
	return c.JSON(res)
}

// redirectImage sends the client to a pre-signed download link.
func redirectImage(c *fiber.Ctx, what string, url func(id string) (string, error)) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err)
	}
	u, err := url(id)
	if err != nil {
		return respondServiceError(c, err, what)
	}
	return c.Redirect(u, fiber.StatusFound)
}
