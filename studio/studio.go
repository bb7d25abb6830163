package studio

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Options wires a Studio with its providers and generation parameters.
type Options struct {
	Text  TextProvider
	Image ImageProvider
	Brand Brand

	TextModel    string
	ImageModel   string
	ImageQuality string
	ImageSize    string
	Temperature  float64
	MaxTokens    int

	// OutputDir is where generated PNGs are persisted.
	OutputDir string
}

// Studio produces topics, captions, image prompts and images for the brand.
// All generation methods degrade to a local fallback instead of failing.
type Studio struct {
	text  TextProvider
	image ImageProvider
	brand Brand

	textModel    string
	imageModel   string
	imageQuality string
	imageSize    string
	temperature  float64
	maxTokens    int
	outputDir    string
}

func New(opts Options) *Studio {
	if opts.ImageSize == "" {
		opts.ImageSize = "1024x1024"
	}
	if opts.ImageQuality == "" {
		opts.ImageQuality = "medium"
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 750
	}
	logrus.Debugf("[STUDIO] initialized with text model %s and image model %s", opts.TextModel, opts.ImageModel)
	return &Studio{
		text:         opts.Text,
		image:        opts.Image,
		brand:        opts.Brand,
		textModel:    opts.TextModel,
		imageModel:   opts.ImageModel,
		imageQuality: opts.ImageQuality,
		imageSize:    opts.ImageSize,
		temperature:  opts.Temperature,
		maxTokens:    opts.MaxTokens,
		outputDir:    opts.OutputDir,
	}
}

func pick[T any](items []T) T {
	return items[rand.IntN(len(items))]
}
