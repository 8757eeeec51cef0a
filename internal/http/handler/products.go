package handler

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"erpapi/internal/repository"
	"erpapi/internal/service"
)

func productFilter(c *fiber.Ctx) repository.ProductFilter {
	return repository.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("q"),
	}
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param category query string false "category"
// @Param q query string false "sku or name search"
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.ListResult[model.Product]
// @Router /products [get]
func ListProducts(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, err := pageParams(c)
		if err != nil {
			return badRequest(c, err)
		}
		res, err := svc.List(c.UserContext(), productFilter(c), limit, offset)
		if err != nil {
			return respondServiceError(c, err, "product")
		}
		return c.JSON(res)
	}
}

// CreateProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ProductInput true "product"
// @Success 201 {object} model.Product
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /products [post]
func CreateProduct(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ProductInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		v, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return respondServiceError(c, err, "product")
		}
		return c.Status(fiber.StatusCreated).JSON(v)
	}
}

// GetProduct godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "product id"
// @Success 200 {object} model.Product
// @Failure 404 {object} errorPayload
// @Router /products/{id} [get]
func GetProduct(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		v, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return respondServiceError(c, err, "product")
		}
		return c.JSON(v)
	}
}

// UpdateProduct godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "product id"
// @Param body body service.ProductInput true "changes"
// @Success 200 {object} model.Product
// @Failure 404 {object} errorPayload
// @Router /products/{id} [put]
func UpdateProduct(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		var in service.ProductInput
		if err := bind(c, &in); err != nil {
			return badRequest(c, err)
		}
		v, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return respondServiceError(c, err, "product")
		}
		return c.JSON(v)
	}
}

// DeleteProduct godoc
// @Summary Delete a product and its image
// @Tags products
// @Security BearerAuth
// @Param id path string true "product id"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /products/{id} [delete]
func DeleteProduct(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return respondServiceError(c, err, "product")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UploadProductImage godoc
// @Summary Upload a product photo
// @Description Replaces and deletes any previous photo.
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "product id"
// @Param file formData file true "jpeg, png, webp or gif"
// @Success 200 {object} model.Product
// @Failure 400 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Router /products/{id}/image [post]
func UploadProductImage(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return uploadImage(c, "product", func(id string, img service.ImageUpload) (any, error) {
			return svc.UploadImage(c.UserContext(), id, img)
		})
	}
}

// ProductImage godoc
// @Summary Redirect to a product photo
// @Tags products
// @Security BearerAuth
// @Param id path string true "product id"
// @Success 302
// @Failure 404 {object} errorPayload
// @Router /products/{id}/image [get]
func ProductImage(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return redirectImage(c, "product", func(id string) (string, error) {
			return svc.ImageURL(c.UserContext(), id)
		})
	}
}

// AdjustStock godoc
// @Summary Receive or issue stock
// @Description A negative delta issues stock; the quantity never drops below zero.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "product id"
// @Param body body service.StockAdjustment true "adjustment"
// @Success 200 {object} model.Product
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /products/{id}/stock [post]
func AdjustStock(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return badRequest(c, err)
		}
		var adj service.StockAdjustment
		if err := bind(c, &adj); err != nil {
			return badRequest(c, err)
		}
		p, err := svc.AdjustStock(c.UserContext(), id, adj)
		if err != nil {
			return respondServiceError(c, err, "product")
		}
		return c.JSON(p)
	}
}

// LowStock godoc
// @Summary Products at or below their reorder level
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Router /products/low-stock [get]
func LowStock(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.LowStock(c.UserContext())
		if err != nil {
			return respondServiceError(c, err, "product")
		}
		return c.JSON(items)
	}
}

// ExportProducts godoc
// @Summary Export inventory as a spreadsheet
// @Tags products
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param category query string false "category"
// @Param q query string false "sku or name search"
// @Success 200 {file} file
// @Router /products/export [get]
func ExportProducts(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := svc.Export(c.UserContext(), &buf, productFilter(c)); err != nil {
			return respondServiceError(c, err, "product")
		}
		return sendSpreadsheet(c, "inventory", buf.Bytes())
	}
}
