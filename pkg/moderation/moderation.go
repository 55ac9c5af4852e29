// Package moderation is a keyword pre-filter for submitted content. It is a
// deterministic, auditable check, not a classifier: flagged articles are
// routed to human review, never auto-rejected, and false negatives are
// acceptable.
package moderation

import (
	"fmt"
	"regexp"
	"strings"
)

var violenceKeywords = []string{
	"kill", "murder", "attack", "violence", "assault", "weapon", "bomb",
	"terrorist", "terrorism", "shooting", "stab", "blood", "death threat",
}

var hateKeywords = []string{
	"hate", "racist", "discrimination", "slur", "bigot", "prejudice",
	"supremacist", "nazi", "fascist", "xenophob",
}

var explicitKeywords = []string{
	"porn", "nude", "xxx", "nsfw", "explicit", "obscene", "lewd",
}

var spamKeywords = []string{
	"buy now", "click here", "free money", "lottery winner", "urgent",
	"act now", "limited time", "casino", "gambling", "bet now",
	"make money fast", "work from home easy", "100% free",
}

type category struct {
	name     string
	keywords []string
	patterns []*regexp.Regexp
}

// Category order is fixed and determines the order of names in Result.
var categories = []*category{
	{name: "violence", keywords: violenceKeywords},
	{name: "hate", keywords: hateKeywords},
	{name: "explicit", keywords: explicitKeywords},
	{name: "spam", keywords: spamKeywords},
}

func init() {
	for _, c := range categories {
		c.patterns = make([]*regexp.Regexp, len(c.keywords))
		for i, kw := range c.keywords {
			// Word-boundary match: "kill" must not fire inside "skill".
			// Multi-word phrases match literally as a boundary-delimited phrase.
			c.patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(kw)) + `\b`)
		}
	}
}

type Result struct {
	IsFlagged  bool     `json:"is_flagged"`
	Categories []string `json:"categories"`
	Reason     string   `json:"reason"`
}

// Check tests free text against every keyword category and reports which
// categories matched. Pure function of its input.
func Check(text string) Result {
	if text == "" {
		return Result{}
	}

	lower := strings.ToLower(text)

	var matchedCategories []string
	var matchedKeywords []string
	seenKeyword := make(map[string]bool)

	for _, c := range categories {
		matched := false
		for i, p := range c.patterns {
			if p.MatchString(lower) {
				matched = true
				if !seenKeyword[c.keywords[i]] {
					seenKeyword[c.keywords[i]] = true
					matchedKeywords = append(matchedKeywords, c.keywords[i])
				}
			}
		}
		if matched {
			matchedCategories = append(matchedCategories, c.name)
		}
	}

	if len(matchedCategories) == 0 {
		return Result{}
	}

	return Result{
		IsFlagged:  true,
		Categories: matchedCategories,
		Reason: fmt.Sprintf("Content flagged for: %s. Keywords: %s",
			strings.Join(matchedCategories, ", "),
			strings.Join(matchedKeywords, ", ")),
	}
}

// ModerateArticle checks an article's combined text. Callers run this on
// creation and again whenever title or content change.
func ModerateArticle(title, content, excerpt string) Result {
	return Check(fmt.Sprintf("%s %s %s", title, excerpt, content))
}
