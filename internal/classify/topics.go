package classify

import (
	"regexp"
	"strings"
)

type topicRule struct {
	pattern *regexp.Regexp
	tag     string
}

// Fixed keyword patterns matched against a section's title and prose to
// derive topic tags. Order matters: tags come out in first-match order.
var topicRules = []topicRule{
	{regexp.MustCompile(`alphabet`), "alphabet"},
	{regexp.MustCompile(`pronunciation`), "pronunciation"},
	{regexp.MustCompile(`vowel`), "vowels"},
	{regexp.MustCompile(`consonant`), "consonants"},
	{regexp.MustCompile(`stress`), "stress"},
	{regexp.MustCompile(`\bverb`), "verbs"},
	{regexp.MustCompile(`\bnoun`), "nouns"},
	{regexp.MustCompile(`\badjective`), "adjectives"},
	{regexp.MustCompile(`\bpronoun`), "pronouns"},
	{regexp.MustCompile(`\badverb`), "adverbs"},
	{regexp.MustCompile(`\bpreposition`), "prepositions"},
	{regexp.MustCompile(`accusative`), "accusative"},
	{regexp.MustCompile(`genitive`), "genitive"},
	{regexp.MustCompile(`\bdative\b`), "dative"},
	{regexp.MustCompile(`\blocative\b`), "locative"},
	{regexp.MustCompile(`instrumental`), "instrumental"},
	{regexp.MustCompile(`vocative`), "vocative"},
	{regexp.MustCompile(`\bplural\b`), "plural"},
	{regexp.MustCompile(`past tense`), "past-tense"},
	{regexp.MustCompile(`future tense`), "future-tense"},
	{regexp.MustCompile(`present tense`), "present-tense"},
	{regexp.MustCompile(`\bnumber`), "numbers"},
	{regexp.MustCompile(`\bgender\b`), "gender"},
	{regexp.MustCompile(`color|colour`), "colors"},
	{regexp.MustCompile(`question`), "questions"},
	{regexp.MustCompile(`negation|negative`), "negation"},
	{regexp.MustCompile(`conditional`), "conditionals"},
	{regexp.MustCompile(`relative clause`), "relative-clauses"},
	{regexp.MustCompile(`dialect`), "dialects"},
	{regexp.MustCompile(`comparative`), "comparatives"},
}

// Topics derives deduplicated topic tags from a section title plus its
// content text, capped at maxTags.
func Topics(title, contentText string, maxTags int) []string {
	if maxTags <= 0 {
		maxTags = DefaultConfig().MaxTopics
	}
	combined := strings.ToLower(title + " " + contentText)

	topics := []string{}
	seen := make(map[string]bool)
	for _, r := range topicRules {
		if r.pattern.MatchString(combined) && !seen[r.tag] {
			topics = append(topics, r.tag)
			seen[r.tag] = true
		}
	}
	if len(topics) > maxTags {
		topics = topics[:maxTags]
	}
	return topics
}
