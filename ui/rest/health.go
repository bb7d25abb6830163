package rest

import (
	"github.com/gofiber/fiber/v2"

	"github.com/askdrjosh/postpilot/core/config"
	"github.com/askdrjosh/postpilot/infrastructure/valkey"
	"github.com/askdrjosh/postpilot/pkg/utils"
)

type Health struct {
	Config   *config.Config
	VkClient *valkey.Client
}

func InitRestHealth(app fiber.Router, cfg *config.Config, vkClient *valkey.Client) Health {
	rest := Health{Config: cfg, VkClient: vkClient}
	app.Get("/health", rest.Check)
	return rest
}

func (controller *Health) Check(c *fiber.Ctx) error {
	cacheConnected := false
	if controller.VkClient != nil {
		cacheConnected = controller.VkClient.IsConnected()
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Service is healthy",
		Results: map[string]any{
			"version":             controller.Config.App.Version,
			"platform_configured": controller.Config.PlatformConfigured(),
			"text_provider":       controller.Config.AI.TextProvider,
			"cache_connected":     cacheConnected,
		},
	})
}
