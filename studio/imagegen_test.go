package studio

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askdrjosh/postpilot/domains/content"
)

func tinyPNGBase64(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestGenerateImagePersistsPayload(t *testing.T) {
	dir := t.TempDir()
	s := newTestStudio(nil, fakeImageProvider{result: ImageResult{B64JSON: tinyPNGBase64(t)}}, dir)

	ref := s.GenerateImage(context.Background(), strings.Repeat("a detailed prompt ", 5), content.StyleEducational, false)
	require.True(t, strings.HasPrefix(ref, dir), "expected local path, got %q", ref)
	require.Contains(t, ref, "generated-")

	f, err := os.Open(ref)
	require.NoError(t, err)
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Fatalf("persisted image is not a decodable png: %v", err)
	}
}

func TestGenerateImageReturnsURLWhenNoPayload(t *testing.T) {
	s := newTestStudio(nil, fakeImageProvider{result: ImageResult{URL: "https://img.example.com/a.png"}}, t.TempDir())

	ref := s.GenerateImage(context.Background(), strings.Repeat("prompt ", 10), content.StyleMixed, false)
	if ref != "https://img.example.com/a.png" {
		t.Fatalf("expected provider URL passthrough, got %q", ref)
	}
}

func TestGenerateImagePlaceholderOnFailure(t *testing.T) {
	s := newTestStudio(nil, fakeImageProvider{err: errProviderDown}, t.TempDir())

	prompt := strings.Repeat("laboratory still life ", 4)
	ref := s.GenerateImage(context.Background(), prompt, content.StyleEducational, false)

	if !strings.HasPrefix(ref, "https://via.placeholder.com/1024x1024.png?text=") {
		t.Fatalf("expected placeholder reference, got %q", ref)
	}
	encoded := strings.TrimPrefix(ref, "https://via.placeholder.com/1024x1024.png?text=")
	decoded, err := url.QueryUnescape(encoded)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(prompt, decoded), "placeholder text %q is not a prefix of the prompt", decoded)
}

func TestGenerateImageExpandsShortPrompt(t *testing.T) {
	var captured string
	s := newTestStudio(nil, captureImageProvider{captured: &captured}, t.TempDir())

	s.GenerateImage(context.Background(), "gut health", content.StyleInspirational, false)
	if len(captured) < minPromptLength {
		t.Fatalf("short prompt was not expanded: %q", captured)
	}
	if !strings.Contains(captured, "gut health") {
		t.Fatalf("expanded prompt lost the topic: %q", captured)
	}
	if !strings.Contains(captured, "photorealistic") {
		t.Fatalf("expanded prompt missing scenario framing: %q", captured)
	}
}

type captureImageProvider struct {
	captured *string
}

func (c captureImageProvider) GenerateImage(_ context.Context, params ImageParams) (ImageResult, error) {
	*c.captured = params.Prompt
	return ImageResult{URL: "https://img.example.com/x.png"}, nil
}

func TestExpandPromptKeyedByStyle(t *testing.T) {
	for _, style := range content.Styles {
		expanded := ExpandPrompt("short topic", style)
		if !strings.Contains(expanded, "short topic") {
			t.Fatalf("style %s expansion lost the topic", style)
		}
	}
}
