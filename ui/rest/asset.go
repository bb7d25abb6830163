package rest

import (
	"time"

	"github.com/gofiber/fiber/v2"

	domainAsset "github.com/askdrjosh/postpilot/domains/asset"
	pkgError "github.com/askdrjosh/postpilot/pkg/error"
	"github.com/askdrjosh/postpilot/pkg/utils"
)

type Asset struct {
	Service domainAsset.IAssetUsecase
}

func InitRestAsset(app fiber.Router, service domainAsset.IAssetUsecase) Asset {
	rest := Asset{Service: service}
	app.Get("/assets/stats", rest.Stats)
	app.Post("/assets/cleanup", rest.Cleanup)
	app.Post("/assets/logo", rest.UploadLogo)
	return rest
}

func (controller *Asset) Stats(c *fiber.Ctx) error {
	stats, err := controller.Service.Stats(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch asset stats",
		Results: stats,
	})
}

func (controller *Asset) Cleanup(c *fiber.Ctx) error {
	hours := c.QueryInt("older_than_hours", 168)
	if hours < 1 {
		utils.PanicIfNeeded(pkgError.ValidationError("older_than_hours must be at least 1"))
	}

	result, err := controller.Service.Cleanup(c.UserContext(), time.Duration(hours)*time.Hour)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success cleanup generated assets",
		Results: result,
	})
}

func (controller *Asset) UploadLogo(c *fiber.Ctx) error {
	file, err := c.FormFile("logo")
	if err != nil {
		utils.PanicIfNeeded(pkgError.ValidationError("logo file is required"))
	}

	path, err := controller.Service.SaveLogo(c.UserContext(), file)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success upload brand logo",
		Results: map[string]string{"path": path},
	})
}
