package rest

import (
	"github.com/gofiber/fiber/v2"

	domainPublisher "github.com/askdrjosh/postpilot/domains/publisher"
	"github.com/askdrjosh/postpilot/pkg/utils"
)

type Publisher struct {
	Service domainPublisher.IPublisherUsecase
}

func InitRestPublisher(app fiber.Router, service domainPublisher.IPublisherUsecase) Publisher {
	rest := Publisher{Service: service}
	app.Get("/publisher/accounts", rest.ListAccounts)
	app.Get("/publisher/posts", rest.ListPosts)
	return rest
}

func (controller *Publisher) ListAccounts(c *fiber.Ctx) error {
	forceRefresh := c.QueryBool("refresh", false)
	accounts := controller.Service.ListAccounts(c.UserContext(), forceRefresh)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch social accounts",
		Results: accounts,
	})
}

func (controller *Publisher) ListPosts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	posts := controller.Service.ListPosts(c.UserContext(), limit)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch posts",
		Results: posts,
	})
}
