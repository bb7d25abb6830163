package studio

import (
	"context"
	"strings"
	"testing"
)

func TestGenerateTopicFallback(t *testing.T) {
	s := newTestStudio(fakeTextProvider{err: errProviderDown}, nil, t.TempDir())

	for i := 0; i < 20; i++ {
		topic := s.GenerateTopic(context.Background(), "educational")
		if !strings.HasPrefix(topic, "The Truth About ") {
			t.Fatalf("unexpected fallback topic prefix: %q", topic)
		}
		if !strings.HasSuffix(topic, " and Your Thyroid Health") {
			t.Fatalf("unexpected fallback topic suffix: %q", topic)
		}
	}
}

func TestGenerateTopicStripsQuotes(t *testing.T) {
	s := newTestStudio(fakeTextProvider{out: `"A Catchy Thyroid Title"`}, nil, t.TempDir())

	topic := s.GenerateTopic(context.Background(), "funny")
	if topic != "A Catchy Thyroid Title" {
		t.Fatalf("expected quotes stripped, got %q", topic)
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"leaky gut syndrome": "Leaky Gut Syndrome",
		"vitamin D levels":   "Vitamin D Levels",
		"HPA axis dysfunction": "HPA Axis Dysfunction",
	}
	for in, want := range cases {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
