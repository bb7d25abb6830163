package studio

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/askdrjosh/postpilot/domains/content"
	"github.com/askdrjosh/postpilot/pkg/utils"
)

// Prompts shorter than this are treated as bare topics and expanded into a
// full scenario before hitting the API.
const minPromptLength = 50

var scenarioTemplates = map[content.Style][]string{
	content.StyleEducational: {
		"Professional photograph of doctor examining patient's thyroid with proper hand position below Adam's apple in naturally lit medical office. Topic: %s",
		"Healthcare provider explaining thyroid anatomy model to attentive patient in realistic consultation room. Topic: %s",
		"Medical professional showing thyroid test results to patient on computer screen in authentic clinical setting. Topic: %s",
	},
	content.StyleInspirational: {
		"Person preparing thyroid-supporting foods (fish, nuts, seaweed) in bright home kitchen with morning light. Topic: %s",
		"Individual doing gentle yoga for thyroid health in serene home setting with natural lighting. Topic: %s",
		"Person taking daily thyroid medication with water in realistic kitchen environment. Topic: %s",
	},
	content.StyleFunny: {
		"Doctor with surprised expression looking at oversized thyroid chart in realistic medical office. Topic: %s",
		"Person dramatically measuring their neck with exaggerated concern in bathroom mirror. Topic: %s",
		"Patient wearing sunglasses indoors at doctor's appointment for thyroid check. Topic: %s",
	},
	content.StyleMixed: {
		"Split scene: doctor's office with thyroid exam on left, healthy meal preparation on right. Topic: %s",
		"Thyroid medication bottles arranged with healthy foods and yoga mat in realistic home setting. Topic: %s",
		"Medical professional and nutritionist discussing thyroid health plan with patient in office. Topic: %s",
	},
}

// ExpandPrompt turns a bare topic into a full photography-style scenario
// prompt keyed by style.
func ExpandPrompt(prompt string, style content.Style) string {
	templates, ok := scenarioTemplates[style]
	if !ok {
		templates = scenarioTemplates[content.StyleEducational]
	}
	scenario := fmt.Sprintf(pick(templates), prompt)

	return fmt.Sprintf(`Create a photorealistic medical image: %s

Important details:
- Use real-looking people with natural expressions and poses
- Show authentic medical/healthcare environment with realistic details
- Incorporate natural lighting with proper shadows and dimension
- Include realistic skin textures and facial features
- Ensure proper medical accuracy in any procedures or examinations shown
- Use professional photography style like seen in medical journals

The image should look completely realistic and professional, like it was taken by a healthcare photographer, not generated by AI.`, scenario)
}

// GenerateImage requests one image from the configured provider, persists it
// under the output directory with a unique name, and returns a displayable
// reference: a local file path, a remote URL, or a placeholder URL on any
// failure. It never returns an empty reference.
func (s *Studio) GenerateImage(ctx context.Context, prompt string, style content.Style, transparent bool) string {
	if len(prompt) < minPromptLength {
		prompt = ExpandPrompt(prompt, style)
	}

	logrus.Infof("[STUDIO] generating image: %s...", truncate(prompt, 100))

	result, err := s.image.GenerateImage(ctx, ImageParams{
		Prompt:      prompt,
		Model:       s.imageModel,
		Size:        s.imageSize,
		Quality:     s.imageQuality,
		Transparent: transparent,
	})
	if err != nil {
		logrus.Warnf("[STUDIO] image generation failed: %v", err)
		return placeholderRef(s.imageSize, prompt)
	}

	switch {
	case result.B64JSON != "":
		path, err := s.saveBase64PNG(result.B64JSON)
		if err != nil {
			logrus.Warnf("[STUDIO] failed to persist generated image: %v", err)
			return placeholderRef(s.imageSize, prompt)
		}
		return path
	case result.URL != "":
		return result.URL
	default:
		logrus.Warn("[STUDIO] provider returned neither payload nor URL")
		return placeholderRef(s.imageSize, prompt)
	}
}

func (s *Studio) saveBase64PNG(b64 string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode image payload: %w", err)
	}
	if err := utils.CreateFolder(s.outputDir); err != nil {
		return "", err
	}
	path := filepath.Join(s.outputDir, fmt.Sprintf("generated-%s.png", uuid.NewString()))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return path, nil
}

// placeholderRef encodes a prefix of the prompt into a placeholder URL so the
// failed generation is still traceable from the UI.
func placeholderRef(size, prompt string) string {
	return fmt.Sprintf("https://via.placeholder.com/%s.png?text=%s", size, url.QueryEscape(truncate(prompt, 50)))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
