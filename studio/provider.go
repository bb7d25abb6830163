package studio

import "context"

// TextRequest is a single-turn completion request against a text provider.
type TextRequest struct {
	System      string
	Prompt      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// TextProvider is the adapter contract for generative text APIs.
type TextProvider interface {
	Complete(ctx context.Context, req TextRequest) (string, error)
}

// ImageParams is a single image-synthesis request.
type ImageParams struct {
	Prompt      string
	Model       string
	Size        string
	Quality     string
	Transparent bool
}

// ImageResult carries the one generated image, either as a base64 payload or a
// remote URL depending on the API mode.
type ImageResult struct {
	B64JSON string
	URL     string
}

// ImageProvider is the adapter contract for generative image APIs.
type ImageProvider interface {
	GenerateImage(ctx context.Context, params ImageParams) (ImageResult, error)
}

// Brand is the identity every prompt is tailored to.
type Brand struct {
	Tone           string
	TargetAudience string
	Handle         string
}
