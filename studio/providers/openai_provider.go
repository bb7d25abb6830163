package providers

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/askdrjosh/postpilot/studio"
)

// OpenAIProvider serves both text and image generation through the OpenAI API.
type OpenAIProvider struct {
	client openai.Client
}

func NewOpenAI(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{client: openai.NewClient(option.WithAPIKey(apiKey))}
}

func (p *OpenAIProvider) Complete(ctx context.Context, req studio.TextRequest) (string, error) {
	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.Prompt),
		},
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai completion: empty choice list")
	}
	return completion.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) GenerateImage(ctx context.Context, params studio.ImageParams) (studio.ImageResult, error) {
	genParams := openai.ImageGenerateParams{
		Prompt:  params.Prompt,
		Model:   openai.ImageModel(params.Model),
		Size:    openai.ImageGenerateParamsSize(params.Size),
		Quality: openai.ImageGenerateParamsQuality(params.Quality),
		N:       openai.Int(1),
	}
	if params.Transparent {
		genParams.Background = openai.ImageGenerateParamsBackgroundTransparent
	}

	resp, err := p.client.Images.Generate(ctx, genParams)
	if err != nil {
		return studio.ImageResult{}, fmt.Errorf("openai image generation: %w", err)
	}
	if len(resp.Data) == 0 {
		return studio.ImageResult{}, fmt.Errorf("openai image generation: empty response")
	}
	return studio.ImageResult{
		B64JSON: resp.Data[0].B64JSON,
		URL:     resp.Data[0].URL,
	}, nil
}
