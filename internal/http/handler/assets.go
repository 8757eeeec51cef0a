package handler

import (
	"github.com/gofiber/fiber/v2"

	"erpapi/internal/repository"
	"erpapi/internal/service"
)

func assetFilter(c *fiber.Ctx) repository.AssetFilter {
	return repository.AssetFilter{
		Status:     c.Query("status"),
		AssignedTo: c.Query("assigned_to"),
		Department: c.Query("department"),
	}
}

// ListAssets godoc
// @Summary List assets
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param status query string false "Available, Assigned, Defective or Disposed"
// @Param assigned_to query string false "holder"
// @Param department query string false "department"
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.ListResult[model.Asset]
// @Router /assets [get]
func ListAssets(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := pageParams(c)
		if err != nil {
			return badRequest(c, err)
		}
		res, err := svc.List(c.UserContext(), assetFilter(c), limit, offset)
		if err != nil {
			return respondServiceError(c, err, "asset")
		}
		return c.JSON(res)
	}
}

// CreateAsset godoc
// @Summary Create an asset
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.AssetInput true "asset"
// @Success 201 {object} model.Asset
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /assets [post]
func CreateAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.AssetInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		v, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err, "asset")
		}
		return c.Status(fiber.StatusCreated).JSON(v)
	}
}

// GetAsset godoc
// @Summary Get an asset
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path string true "asset id"
// @Success 200 {object} model.Asset
// @Failure 404 {object} errorPayload
// @Router /assets/{id} [get]
func GetAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		v, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err, "asset")
		}
		return c.JSON(v)
	}
}

// UpdateAsset godoc
// @Summary Update an asset
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "asset id"
// @Param body body service.AssetInput true "changes"
// @Success 200 {object} model.Asset
// @Failure 404 {object} errorPayload
// @Router /assets/{id} [put]
func UpdateAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		var in service.AssetInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		v, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondServiceError(c, err, "asset")
		}
		return c.JSON(v)
	}
}

// DeleteAsset godoc
// @Summary Delete an asset and its image
// @Tags assets
// @Security BearerAuth
// @Param id path string true "asset id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /assets/{id} [delete]
func DeleteAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondServiceError(c, err, "asset")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UploadAssetImage godoc
// @Summary Upload an asset photo
// @Description Replaces and deletes any previous photo.
// @Tags assets
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "asset id"
// @Param file formData file true "jpeg, png, webp or gif"
// @Success 200 {object} model.Asset
// @Failure 400 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Router /assets/{id}/image [post]
func UploadAssetImage(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return uploadImage(c, "asset", func(id string, img service.ImageUpload) (any, error) {
			return svc.UploadImage(c.UserContext(), id, img)
		})
	}
}

// AssetImage godoc
// @Summary Redirect to an asset photo
// @Tags assets
// @Security BearerAuth
// @Param id path string true "asset id"
// @Success 302
// @Failure 404 {object} errorPayload
// @Router /assets/{id}/image [get]
func AssetImage(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return redirectImage(c, "asset", func(id string) (string, error) {
			return svc.ImageURL(c.UserContext(), id)
		})
	}
}
