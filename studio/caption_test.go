package studio

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askdrjosh/postpilot/domains/content"
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

func TestFallbackCaptionHashtagCount(t *testing.T) {
	for _, style := range content.Styles {
		for n := 1; n <= 10; n++ {
			caption := fallbackCaption("Topic under test", style, n)
			got := hashtagPattern.FindAllString(caption, -1)
			if len(got) != n {
				t.Fatalf("style %s with %d hashtags: got %d (%v)", style, n, len(got), got)
			}
		}
	}
}

func TestFallbackCaptionContainsTopic(t *testing.T) {
	caption := fallbackCaption("Gut Health And Your Energy", content.StyleEducational, 5)
	if !strings.Contains(caption, "Gut Health And Your Energy") {
		t.Fatalf("fallback caption missing topic: %s", caption)
	}
	if len(caption) < minCaptionLength {
		t.Fatalf("fallback caption shorter than minimum: %d chars", len(caption))
	}
}

func TestGenerateCaptionFallsBackOnError(t *testing.T) {
	s := newTestStudio(fakeTextProvider{err: errProviderDown}, nil, t.TempDir())

	caption := s.GenerateCaption(context.Background(), "Topic under test", content.StyleFunny, 3)
	assert.Contains(t, caption, "Topic under test")
	assert.Len(t, hashtagPattern.FindAllString(caption, -1), 3)
}

func TestGenerateCaptionFallsBackOnShortOutput(t *testing.T) {
	s := newTestStudio(fakeTextProvider{out: "too short"}, nil, t.TempDir())

	caption := s.GenerateCaption(context.Background(), "Topic under test", content.StyleInspirational, 5)
	if len(caption) < minCaptionLength {
		t.Fatalf("expected substantial caption, got %d chars", len(caption))
	}
	assert.Contains(t, caption, "Topic under test")
}

func TestGenerateCaptionUsesProviderOutput(t *testing.T) {
	long := strings.Repeat("An engaging paragraph about thyroid health. ", 5) + "#thyroidhealth"
	s := newTestStudio(fakeTextProvider{out: long}, nil, t.TempDir())

	caption := s.GenerateCaption(context.Background(), "any topic", content.StyleEducational, 5)
	assert.Equal(t, strings.TrimSpace(long), caption)
}

func TestGenerateCaptionClampsHashtagCount(t *testing.T) {
	s := newTestStudio(fakeTextProvider{err: errProviderDown}, nil, t.TempDir())

	caption := s.GenerateCaption(context.Background(), "t", content.StyleMixed, 99)
	assert.Len(t, hashtagPattern.FindAllString(caption, -1), 10)

	caption = s.GenerateCaption(context.Background(), "t", content.StyleMixed, -4)
	assert.Len(t, hashtagPattern.FindAllString(caption, -1), 1)
}

func TestTopicThenCaptionFallbackFlow(t *testing.T) {
	s := newTestStudio(fakeTextProvider{err: errProviderDown}, nil, t.TempDir())
	ctx := context.Background()

	topic := s.GenerateTopic(ctx, content.StyleEducational)
	if topic == "" {
		t.Fatal("expected non-empty topic")
	}

	caption := s.GenerateCaption(ctx, topic, content.StyleEducational, 5)
	tags := hashtagPattern.FindAllString(caption, -1)
	if len(tags) != 5 {
		t.Fatalf("expected 5 hashtags at fallback, got %d: %v", len(tags), tags)
	}
	// hashtags must be the trailing tokens of the caption
	if !strings.HasSuffix(strings.TrimSpace(caption), strings.Join(tags, " ")) {
		t.Fatalf("caption does not end with its hashtags: %q", caption)
	}
}
