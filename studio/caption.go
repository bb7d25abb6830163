package studio

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/askdrjosh/postpilot/domains/content"
)

// minCaptionLength guards against the model returning a truncated or empty
// completion; anything shorter is replaced by the fallback.
const minCaptionLength = 100

// GenerateCaption produces a multi-paragraph Instagram caption for the topic.
// hashtags is clamped to [1,10]. The fallback caption carries exactly that
// many hashtags, so the count contract holds even when the provider is down.
func (s *Studio) GenerateCaption(ctx context.Context, topic string, style content.Style, hashtags int) string {
	hashtags = clampHashtags(hashtags)
	theme := pick(messagingThemes)

	prompt := fmt.Sprintf(`Write an engaging Instagram caption for a post titled "%s".

Target audience: %s
Tone: %s, with a %s focus

Incorporate this key message: "%s"

The caption should:
- Begin with a compelling hook about a common frustration or misconception
- Include 3-4 short paragraphs with line breaks between them
- Emphasize a root-cause approach rather than just medication management
- Validate the reader's experience of feeling unwell despite "normal" labs
- End with a clear call-to-action
- Include %d relevant hashtags at the end

The Instagram account is @%s, a doctor who helps people look beyond conventional approaches to hypothyroid issues.

Make it substantive, specific, and helpful - avoid generic advice.`,
		topic, s.brand.TargetAudience, s.brand.Tone, style, theme, hashtags, s.brand.Handle)

	result, err := s.text.Complete(ctx, TextRequest{
		System:      "You are a social media content creator who specializes in functional medicine approaches to thyroid health. You focus on empowering patients to look beyond labs and medication to find true healing.",
		Prompt:      prompt,
		Model:       s.textModel,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		logrus.Warnf("[STUDIO] caption generation failed, using fallback: %v", err)
		return fallbackCaption(topic, style, hashtags)
	}

	caption := strings.TrimSpace(result)
	if len(caption) < minCaptionLength {
		logrus.Warnf("[STUDIO] caption too short (%d chars), using fallback", len(caption))
		return fallbackCaption(topic, style, hashtags)
	}
	return caption
}

func clampHashtags(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

var fallbackBodies = map[content.Style]string{
	content.StyleEducational: `Ever feel like your body is speaking a language your doctor doesn't understand?

When your labs say "normal" but you feel anything but, it's not in your head. %s - this connection is something conventional medicine often misses.

Your body isn't broken - it's adapting to underlying stressors that standard testing doesn't capture. Understanding this difference is the first step toward true healing.

Book a consultation to discover what might be driving your thyroid symptoms beneath the surface.`,

	content.StyleInspirational: `You're not broken, your body is trying to tell you something.

After seeing countless patients with "perfect" lab results but persistent symptoms, I've learned this truth: %s - this is often where real healing begins.

The conventional approach treats lab numbers, not people. But your experience matters more than what a reference range says is "normal."

Share your thyroid journey in the comments. What symptoms have persisted despite being told everything looks fine?`,

	content.StyleFunny: `When your doctor says "your labs are normal" but your body says "LOL, NOPE!"

%s - Anyone else feel like their thyroid and their doctor are having two completely different conversations?

If your energy levels are sending an SOS but your TSH looks "fine", you're not alone. It's like your body is speaking Italian and your labs are only fluent in French.

Double tap if you've mastered the art of looking functional while feeling like a phone battery at 2%%!`,

	content.StyleMixed: `The gap between "normal" labs and feeling normal is where most thyroid patients live.

%s - If you've tried everything but still struggle with fatigue, brain fog, weight, or mood issues, this might be the missing piece.

I'm passionate about looking beyond numbers on a page to find what your body is actually trying to tell you. Sometimes the most important clues are in the symptoms, not the tests.

What thyroid symptom impacts your life most despite "normal" labs? Let's chat in the comments.`,
}

// fallbackCaption returns a pre-written, style-matched caption templated with
// the topic, ending with exactly n hashtags.
func fallbackCaption(topic string, style content.Style, n int) string {
	body, ok := fallbackBodies[style]
	if !ok {
		body = fallbackBodies[content.StyleMixed]
	}
	tags := hashtagPools[style]
	if len(tags) == 0 {
		tags = hashtagPools[content.StyleMixed]
	}
	return fmt.Sprintf(body, topic) + "\n\n" + strings.Join(tags[:n], " ")
}
