package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	domainContent "github.com/askdrjosh/postpilot/domains/content"
	domainPublisher "github.com/askdrjosh/postpilot/domains/publisher"
)

type ContentHandler struct {
	contentService   domainContent.IContentUsecase
	publisherService domainPublisher.IPublisherUsecase
}

func InitMcpContent(contentService domainContent.IContentUsecase, publisherService domainPublisher.IPublisherUsecase) *ContentHandler {
	return &ContentHandler{
		contentService:   contentService,
		publisherService: publisherService,
	}
}

func (h *ContentHandler) AddContentTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(h.toolGenerate(), h.handleGenerate)
	mcpServer.AddTool(h.toolRegenerateCaption(), h.handleRegenerateCaption)
	mcpServer.AddTool(h.toolListLibrary(), h.handleListLibrary)
	mcpServer.AddTool(h.toolListAccounts(), h.handleListAccounts)
	mcpServer.AddTool(h.toolPublish(), h.handlePublish)
}

func (h *ContentHandler) toolGenerate() mcp.Tool {
	return mcp.NewTool(
		"postpilot_generate_content",
		mcp.WithDescription("Generate a full post draft (topic, caption, image) for the brand Instagram account."),
		mcp.WithTitleAnnotation("Generate Content"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithString("style",
			mcp.Description("Content style: educational, inspirational, funny or mixed."),
		),
		mcp.WithNumber("hashtags",
			mcp.Description("Number of hashtags in the caption (1-10, default 5)."),
		),
		mcp.WithBoolean("use_graphic",
			mcp.Description("Render a local branded text graphic instead of calling the image API."),
		),
	)
}

func (h *ContentHandler) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req := domainContent.GenerateRequest{
		Style:      request.GetString("style", ""),
		Hashtags:   request.GetInt("hashtags", 0),
		UseGraphic: request.GetBool("use_graphic", false),
	}

	item, err := h.contentService.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	fallback := fmt.Sprintf("Generated item %d: %s", item.ID, item.Topic)
	return mcp.NewToolResultStructured(item, fallback), nil
}

func (h *ContentHandler) toolRegenerateCaption() mcp.Tool {
	return mcp.NewTool(
		"postpilot_regenerate_caption",
		mcp.WithDescription("Rewrite only the caption of an existing library item, keeping its topic and image."),
		mcp.WithTitleAnnotation("Regenerate Caption"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithNumber("item_id",
			mcp.Description("The library item ID whose caption should be rewritten."),
			mcp.Required(),
		),
		mcp.WithNumber("hashtags",
			mcp.Description("Number of hashtags in the new caption (1-10, default 5)."),
		),
	)
}

func (h *ContentHandler) handleRegenerateCaption(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	itemID, err := request.RequireInt("item_id")
	if err != nil {
		return nil, err
	}

	item, err := h.contentService.RegenerateCaption(ctx, domainContent.RegenerateCaptionRequest{
		ItemID:   uint(itemID),
		Hashtags: request.GetInt("hashtags", 0),
	})
	if err != nil {
		return nil, err
	}

	fallback := fmt.Sprintf("Regenerated caption for item %d", item.ID)
	return mcp.NewToolResultStructured(item, fallback), nil
}

func (h *ContentHandler) toolListLibrary() mcp.Tool {
	return mcp.NewTool(
		"postpilot_list_library",
		mcp.WithDescription("List every content item in the local library with its pipeline stage."),
		mcp.WithTitleAnnotation("List Content Library"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

func (h *ContentHandler) handleListLibrary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_ = request
	items, err := h.contentService.List(ctx)
	if err != nil {
		return nil, err
	}

	fallback := fmt.Sprintf("Found %d content items", len(items))
	return mcp.NewToolResultStructured(items, fallback), nil
}

func (h *ContentHandler) toolListAccounts() mcp.Tool {
	return mcp.NewTool(
		"postpilot_list_accounts",
		mcp.WithDescription("List the social accounts connected to the publishing platform."),
		mcp.WithTitleAnnotation("List Social Accounts"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

func (h *ContentHandler) handleListAccounts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_ = request
	accounts := h.publisherService.ListAccounts(ctx, false)

	fallback := fmt.Sprintf("Found %d connected accounts", len(accounts))
	return mcp.NewToolResultStructured(accounts, fallback), nil
}

func (h *ContentHandler) toolPublish() mcp.Tool {
	return mcp.NewTool(
		"postpilot_publish",
		mcp.WithDescription("Publish a ready content item to the selected social accounts immediately."),
		mcp.WithTitleAnnotation("Publish Content"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithNumber("item_id",
			mcp.Description("The library item ID to publish."),
			mcp.Required(),
		),
		mcp.WithArray("account_ids",
			mcp.Description("Platform account IDs to publish to. Must not be empty."),
			mcp.Required(),
		),
	)
}

func (h *ContentHandler) handlePublish(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	itemID, err := request.RequireInt("item_id")
	if err != nil {
		return nil, err
	}
	accountIDs := request.GetStringSlice("account_ids", nil)
	if len(accountIDs) == 0 {
		return nil, fmt.Errorf("account_ids must contain at least one account")
	}

	item, err := h.contentService.Publish(ctx, domainContent.PublishRequest{
		ItemID:     uint(itemID),
		AccountIDs: accountIDs,
	})
	if err != nil {
		return nil, err
	}

	fallback := fmt.Sprintf("Published item %d as platform post %s", item.ID, item.PlatformPostID)
	return mcp.NewToolResultStructured(item, fallback), nil
}
