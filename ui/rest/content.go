package rest

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	domainContent "github.com/askdrjosh/postpilot/domains/content"
	pkgError "github.com/askdrjosh/postpilot/pkg/error"
	"github.com/askdrjosh/postpilot/pkg/utils"
)

type Content struct {
	Service domainContent.IContentUsecase
}

func InitRestContent(app fiber.Router, service domainContent.IContentUsecase) Content {
	rest := Content{Service: service}
	app.Post("/content/generate", rest.Generate)
	app.Post("/content/regenerate/caption", rest.RegenerateCaption)
	app.Post("/content/regenerate/image", rest.RegenerateImage)
	app.Post("/content/publish", rest.Publish)
	app.Post("/content/schedule", rest.Schedule)
	app.Get("/content/export", rest.ExportCSV)
	app.Get("/content/:id", rest.Get)
	app.Get("/content", rest.List)
	app.Delete("/content", rest.Reset)
	return rest
}

func (controller *Content) Generate(c *fiber.Ctx) error {
	var request domainContent.GenerateRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	item, err := controller.Service.Generate(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success generate content",
		Results: item,
	})
}

func (controller *Content) RegenerateCaption(c *fiber.Ctx) error {
	var request domainContent.RegenerateCaptionRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	item, err := controller.Service.RegenerateCaption(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success regenerate caption",
		Results: item,
	})
}

func (controller *Content) RegenerateImage(c *fiber.Ctx) error {
	var request domainContent.RegenerateImageRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	item, err := controller.Service.RegenerateImage(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success regenerate image",
		Results: item,
	})
}

func (controller *Content) Publish(c *fiber.Ctx) error {
	var request domainContent.PublishRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	item, err := controller.Service.Publish(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success publish content",
		Results: item,
	})
}

func (controller *Content) Schedule(c *fiber.Ctx) error {
	var request domainContent.PublishRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	item, err := controller.Service.Schedule(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success schedule content",
		Results: item,
	})
}

func (controller *Content) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		utils.PanicIfNeeded(pkgError.ValidationError("id must be a positive integer"))
	}

	item, err := controller.Service.Get(c.UserContext(), uint(id))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch content item",
		Results: item,
	})
}

func (controller *Content) List(c *fiber.Ctx) error {
	items, err := controller.Service.List(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch content library",
		Results: items,
	})
}

func (controller *Content) Reset(c *fiber.Ctx) error {
	err := controller.Service.Reset(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success reset content library",
	})
}

func (controller *Content) ExportCSV(c *fiber.Ctx) error {
	raw, err := controller.Service.ExportCSV(c.UserContext())
	utils.PanicIfNeeded(err)

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="content-library.csv"`)
	return c.Send(raw)
}
