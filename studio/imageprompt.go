package studio

import (
	"fmt"
	"strings"
)

// noHumanConstraint is appended to every composed image prompt so renders stay
// abstract and brand-safe.
const noHumanConstraint = "no text, no labels, no visible human body parts"

var visualStyles = []string{
	"clean medical aesthetic with light teal accents",
	"minimalist wellness scene with soft lighting",
	"functional medicine style with clean lines and blue tones",
	"professional healthcare setting with subtle thyroid imagery",
	"holistic health visual with calming natural elements",
	"modern clinical aesthetic with soothing color palette",
}

type sceneBucket struct {
	name     string
	keywords []string
	scenes   []string
}

// Ordered so a topic mentioning the thyroid always lands in the thyroid
// bucket regardless of what else it mentions.
var sceneBuckets = []sceneBucket{
	{
		name:     "thyroid",
		keywords: []string{"thyroid", "tsh", "hypothyroid"},
		scenes: []string{
			"a stylized butterfly-shaped gland rendered as soft translucent glass surrounded by gentle light",
			"an abstract anatomical illustration of the neck region with a glowing butterfly silhouette",
			"a delicate paper-cut butterfly shape resting among medicinal herbs and smooth stones",
		},
	},
	{
		name:     "lab",
		keywords: []string{"lab", "test", "bloodwork", "panel", "results"},
		scenes: []string{
			"glass vials and beakers filled with softly colored liquids on a bright clinical counter",
			"a clean laboratory bench with petri dishes and a microscope under diffused daylight",
			"rows of labeled-free sample tubes arranged in a minimalist laboratory rack",
		},
	},
	{
		name:     "hormone-balance",
		keywords: []string{"hormone", "cortisol", "adrenal", "insulin", "balance"},
		scenes: []string{
			"a balanced stone cairn beside a still pool of water at dawn",
			"two suspended spheres in perfect equilibrium against a soft gradient sky",
			"an abstract scale made of light holding droplets of colored liquid in balance",
		},
	},
	{
		name:     "mental-focus",
		keywords: []string{"brain", "fog", "focus", "energy", "fatigue", "stress"},
		scenes: []string{
			"morning light breaking through mist over a calm forest clearing",
			"a single candle flame in sharp focus against a softly blurred background",
			"sunbeams cutting through fog above a quiet mountain lake",
		},
	},
	{
		name:     "general",
		keywords: nil,
		scenes: []string{
			"fresh whole foods, leafy greens and nuts arranged on a light wooden table",
			"a serene wellness scene with eucalyptus sprigs, smooth stones and soft towels",
			"a bright minimalist still life of citrus, seeds and a glass of water",
		},
	},
}

// BuildImagePrompt composes a single descriptive sentence for the image API
// from the topic. Pure function, no I/O. Bucket selection is deterministic on
// the topic keywords; the scene and style within the bucket are random.
func BuildImagePrompt(topic string) string {
	lower := strings.ToLower(topic)
	bucket := sceneBuckets[len(sceneBuckets)-1]
	for _, b := range sceneBuckets {
		if matchesKeywords(lower, b.keywords) {
			bucket = b
			break
		}
	}
	scene := pick(bucket.scenes)
	style := pick(visualStyles)
	return fmt.Sprintf("A photorealistic image of %s, %s, evoking the theme %q, with %s in the rendered image.",
		scene, style, topic, noHumanConstraint)
}

func matchesKeywords(topic string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(topic, kw) {
			return true
		}
	}
	return false
}
