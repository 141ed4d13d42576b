package helpers

import (
	"context"
	"regexp"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

var nonSlugChars = regexp.MustCompile("[^a-z0-9]+")

// Slugify derives a URL slug from a title: lowercase, runs of anything
// outside [a-z0-9] collapse to a single dash, leading/trailing dashes trimmed.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

var mentionPattern = regexp.MustCompile(`@(\w+)`)

// ExtractMentions collects @name tokens from note text, in order, without
// duplicates.
func ExtractMentions(text string) []string {
	matches := mentionPattern.FindAllStringSubmatch(text, -1)
	mentions := make([]string, 0, len(matches))
	seen := map[string]bool{}
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		mentions = append(mentions, m[1])
	}
	return mentions
}
