package studio

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/askdrjosh/postpilot/domains/content"
)

// GenerateTopic produces a short post title for the given style. On any
// provider failure it falls back to a templated title built from the same
// randomly drawn specific topic, so the caller always gets usable text.
func (s *Studio) GenerateTopic(ctx context.Context, style content.Style) string {
	category := pick(categoryKeys())
	specific := pick(topicCategories[category])
	framework := pick(contentFrameworks[style])
	seed := strings.ReplaceAll(framework, "{topic}", specific)

	prompt := fmt.Sprintf(`You are a thyroid health expert who understands that many patients struggle despite "normal" lab results.

Create a compelling social media topic for %s based on this title idea:
"%s"

The content should be %s in nature and focus on a root-cause approach to thyroid health.
Format as a short, catchy title (max 10 words) that would grab attention on Instagram.`,
		s.brand.TargetAudience, seed, style)

	result, err := s.text.Complete(ctx, TextRequest{
		System:      "You are a medical content specialist focused on root-cause approaches to hypothyroid issues.",
		Prompt:      prompt,
		Model:       s.textModel,
		MaxTokens:   50,
		Temperature: s.temperature,
	})
	if err != nil || strings.TrimSpace(result) == "" {
		logrus.Warnf("[STUDIO] topic generation failed, using fallback: %v", err)
		return fallbackTopic(specific)
	}
	return strings.Trim(strings.TrimSpace(result), `"`)
}

// GenerateTopicFromSource is like GenerateTopic but anchors the title on a
// seed paragraph extracted from an external article.
func (s *Studio) GenerateTopicFromSource(ctx context.Context, style content.Style, seed string) string {
	prompt := fmt.Sprintf(`You are a thyroid health expert writing for %s.

Summarize the following article excerpt into a short, catchy Instagram title (max 10 words)
with a %s angle and a root-cause approach to thyroid health:

%s`, s.brand.TargetAudience, style, seed)

	result, err := s.text.Complete(ctx, TextRequest{
		System:      "You are a medical content specialist focused on root-cause approaches to hypothyroid issues.",
		Prompt:      prompt,
		Model:       s.textModel,
		MaxTokens:   50,
		Temperature: s.temperature,
	})
	if err != nil || strings.TrimSpace(result) == "" {
		logrus.Warnf("[STUDIO] sourced topic generation failed, using fallback: %v", err)
		return s.GenerateTopic(ctx, style)
	}
	return strings.Trim(strings.TrimSpace(result), `"`)
}

func fallbackTopic(specific string) string {
	return fmt.Sprintf("The Truth About %s and Your Thyroid Health", titleCase(specific))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func categoryKeys() []string {
	keys := make([]string, 0, len(topicCategories))
	for k := range topicCategories {
		keys = append(keys, k)
	}
	return keys
}
