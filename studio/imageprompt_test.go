package studio

import (
	"strings"
	"testing"
)

func TestBuildImagePromptConstraintAlwaysPresent(t *testing.T) {
	topics := []string{
		"thyroid fatigue",
		"what your labs are not telling you",
		"hormone balance after 40",
		"brain fog and focus",
		"something entirely unrelated",
	}
	for _, topic := range topics {
		prompt := BuildImagePrompt(topic)
		if !strings.Contains(prompt, "no text, no labels, no visible human body parts") {
			t.Fatalf("prompt for %q missing constraint: %s", topic, prompt)
		}
		if !strings.Contains(prompt, topic) {
			t.Fatalf("prompt for %q does not reference the topic: %s", topic, prompt)
		}
	}
}

func TestBuildImagePromptThyroidBucketDeterministic(t *testing.T) {
	// bucket choice must be deterministic even though scene choice is random
	for i := 0; i < 50; i++ {
		prompt := BuildImagePrompt("Why your thyroid ignores your lab results")
		if !strings.Contains(prompt, "butterfly") {
			t.Fatalf("thyroid topic escaped the thyroid bucket: %s", prompt)
		}
	}
}

func TestBuildImagePromptLabBucket(t *testing.T) {
	prompt := BuildImagePrompt("understanding your lab panel")
	matched := false
	for _, scene := range sceneBuckets[1].scenes {
		if strings.Contains(prompt, scene) {
			matched = true
		}
	}
	if !matched {
		t.Fatalf("lab topic did not select a lab scene: %s", prompt)
	}
}

func TestBuildImagePromptGeneralFallback(t *testing.T) {
	prompt := BuildImagePrompt("a completely generic subject")
	matched := false
	general := sceneBuckets[len(sceneBuckets)-1]
	for _, scene := range general.scenes {
		if strings.Contains(prompt, scene) {
			matched = true
		}
	}
	if !matched {
		t.Fatalf("unmatched topic did not fall back to general bucket: %s", prompt)
	}
}
