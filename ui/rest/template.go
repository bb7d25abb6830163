package rest

import (
	"github.com/gofiber/fiber/v2"

	domainTemplate "github.com/askdrjosh/postpilot/domains/template"
	pkgError "github.com/askdrjosh/postpilot/pkg/error"
	"github.com/askdrjosh/postpilot/pkg/utils"
)

type Template struct {
	Service domainTemplate.ITemplateUsecase
}

func InitRestTemplate(app fiber.Router, service domainTemplate.ITemplateUsecase) Template {
	rest := Template{Service: service}
	app.Post("/templates", rest.Save)
	app.Get("/templates", rest.List)
	app.Post("/templates/:name/apply", rest.Apply)
	return rest
}

func (controller *Template) Save(c *fiber.Ctx) error {
	var request domainTemplate.SaveRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	saved, err := controller.Service.Save(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success save template",
		Results: saved,
	})
}

func (controller *Template) List(c *fiber.Ctx) error {
	templates, err := controller.Service.List(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch templates",
		Results: templates,
	})
}

func (controller *Template) Apply(c *fiber.Ctx) error {
	name := c.Params("name")
	if name == "" {
		utils.PanicIfNeeded(pkgError.ValidationError("name is required"))
	}

	item, err := controller.Service.Apply(c.UserContext(), name)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success apply template",
		Results: item,
	})
}
