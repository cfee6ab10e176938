package generation

import (
	"regexp"
	"strings"
)

// Models asked for multiple drafts separate them with a dashed rule or a
// "VARIANT n" heading. Either delimiter splits.
var variantSeparatorRe = regexp.MustCompile(`(?i)-{3,}|\n\nVARIANT \d+:?\n\n`)

// SplitVariants cuts generated text into candidate messages, dropping
// blank segments. A text with no delimiters comes back as a single
// trimmed entry.
func SplitVariants(text string) []string {
	pieces := variantSeparatorRe.Split(text, -1)

	variants := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			variants = append(variants, trimmed)
		}
	}
	return variants
}
