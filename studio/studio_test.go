package studio

import (
	"context"
	"errors"
)

type fakeTextProvider struct {
	out string
	err error
}

func (f fakeTextProvider) Complete(_ context.Context, _ TextRequest) (string, error) {
	return f.out, f.err
}

type fakeImageProvider struct {
	result ImageResult
	err    error
}

func (f fakeImageProvider) GenerateImage(_ context.Context, _ ImageParams) (ImageResult, error) {
	return f.result, f.err
}

var errProviderDown = errors.New("provider unavailable")

func newTestStudio(text TextProvider, image ImageProvider, outputDir string) *Studio {
	return New(Options{
		Text:  text,
		Image: image,
		Brand: Brand{
			Tone:           "friendly and professional",
			TargetAudience: "women aged 30-50 who are frustrated with traditional medical approaches to hypothyroid issues",
			Handle:         "askdrjosh",
		},
		TextModel:  "gpt-4o",
		ImageModel: "gpt-image-1",
		OutputDir:  outputDir,
	})
}
