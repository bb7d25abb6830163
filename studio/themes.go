package studio

import "github.com/askdrjosh/postpilot/domains/content"

// Messaging themes woven into captions so every post reinforces the same
// root-cause narrative.
var messagingThemes = []string{
	"Normal labs don't always mean normal health - your body might be adapting, not broken",
	"The body's systems are interconnected - thyroid health requires a whole-body approach",
	"Root causes often include gut health, stress, inflammation, and environmental factors",
	"When traditional approaches fail, it's time to look deeper than just thyroid medication",
	"True healing begins with understanding your body's signals, not just managing symptoms",
	"Your thyroid is part of a complex ecosystem - fixing just one part rarely solves everything",
}

// Title frameworks per style. {topic} is replaced with a specific topic
// drawn from topicCategories.
var contentFrameworks = map[content.Style][]string{
	content.StyleEducational: {
		"The hidden connection between {topic} and thyroid function",
		"Why your doctor might be missing this key factor in {topic}",
		"Beyond TSH: Understanding how {topic} affects your energy and metabolism",
		"The science behind {topic} and its impact on cellular thyroid function",
		"What your labs aren't telling you about {topic} and thyroid health",
	},
	content.StyleInspirational: {
		"You're not broken, you're adapting: How understanding {topic} can transform your health",
		"From struggling to thriving: How addressing {topic} changed everything",
		"Beyond medication: The {topic} approach that's helping women reclaim their energy",
		"Your body is trying to protect you: The truth about {topic} and thyroid adaptation",
		"The turning point: When {topic} becomes the missing piece in your thyroid journey",
	},
	content.StyleFunny: {
		"When your thyroid and {topic} are NOT on speaking terms...",
		"That awkward moment when your doctor says you're 'fine' but {topic} says otherwise",
		"Thyroid: 'It's not me, it's {topic}' - A complicated relationship",
		"Trying to fix your thyroid without addressing {topic} is like...",
		"The thyroid-{topic} comedy hour: When your body's communication breaks down",
	},
	content.StyleMixed: {
		"Truth bomb: Why {topic} might be more important than your thyroid medication",
		"The {topic} factor: What every thyroid patient needs to know (but probably hasn't been told)",
		"Surprising ways {topic} might be hijacking your thyroid recovery",
		"Think it's just your thyroid? How {topic} might be the real puppetmaster",
		"The {topic} revolution: Changing how we think about hypothyroidism",
	},
}

var topicCategories = map[string][]string{
	"gut_health": {
		"leaky gut syndrome",
		"gut microbiome imbalance",
		"hidden gut infections",
		"intestinal permeability",
		"food sensitivities",
	},
	"stress_factors": {
		"HPA axis dysfunction",
		"chronic stress response",
		"adrenal fatigue",
		"cortisol dysregulation",
		"stress hormone imbalance",
	},
	"environmental": {
		"environmental toxins",
		"heavy metal exposure",
		"endocrine disruptors",
		"chemical sensitivities",
		"mold exposure",
	},
	"nutrient_status": {
		"iodine balance",
		"selenium deficiency",
		"zinc status",
		"vitamin D levels",
		"B vitamin deficiencies",
	},
	"metabolic_factors": {
		"insulin resistance",
		"blood sugar dysregulation",
		"cellular energy production",
		"metabolic flexibility",
		"mitochondrial function",
	},
	"inflammation": {
		"chronic inflammation",
		"autoimmune triggers",
		"inflammatory diet patterns",
		"immune system regulation",
		"inflammatory pathway activation",
	},
}

// Hashtag pools per style, ordered by relevance. Fallback captions take the
// first N so the hashtag count contract holds for any requested count.
var hashtagPools = map[content.Style][]string{
	content.StyleEducational: {
		"#thyroidhealth", "#hypothyroid", "#rootcause", "#functionalmedicine",
		"#beyondthelabs", "#thyroidfacts", "#guthealth", "#hormonehealth",
		"#wellnessjourney", "#holistichealth",
	},
	content.StyleInspirational: {
		"#thyroidhealing", "#beyondthelabs", "#rootcause", "#hypothyroidjourney",
		"#holistichealth", "#healingjourney", "#youarenotbroken", "#thyroidwarrior",
		"#wellnessmotivation", "#selfhealing",
	},
	content.StyleFunny: {
		"#thyroidhumor", "#normallabs", "#stillexhausted", "#hypothyroidproblems",
		"#doctorjokes", "#thyroidmemes", "#tiredaf", "#brainfoglife",
		"#relatable", "#chronicillnesshumor",
	},
	content.StyleMixed: {
		"#thyroidhealth", "#functionalmedicine", "#rootcause", "#beyondthelabs",
		"#thyroidrecovery", "#hypothyroid", "#holistichealth", "#hormonebalance",
		"#energyrestored", "#wholebodyhealing",
	},
}
