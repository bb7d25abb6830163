package rest

import (
	"github.com/gofiber/fiber/v2"

	"github.com/askdrjosh/postpilot/core/config"
	"github.com/askdrjosh/postpilot/core/settings/application"
	"github.com/askdrjosh/postpilot/pkg/utils"
)

type Settings struct {
	Service *application.SettingsService
}

func InitRestSettings(app fiber.Router, service *application.SettingsService) Settings {
	rest := Settings{Service: service}
	app.Get("/settings", rest.GetRuntime)
	app.Get("/settings/brand", rest.GetBrand)
	app.Put("/settings/brand", rest.UpdateBrand)
	return rest
}

func (controller *Settings) GetRuntime(c *fiber.Ctx) error {
	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch runtime settings",
		Results: config.GetAllSettings(),
	})
}

func (controller *Settings) GetBrand(c *fiber.Ctx) error {
	settings, err := controller.Service.GetBrandSettings(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch brand settings",
		Results: settings,
	})
}

func (controller *Settings) UpdateBrand(c *fiber.Ctx) error {
	var request application.BrandSettings
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	err = controller.Service.UpdateBrandSettings(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	settings, err := controller.Service.GetBrandSettings(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success update brand settings",
		Results: settings,
	})
}
