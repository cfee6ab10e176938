package prompt

import "regexp"

// placeholderRe matches {{identifier}} tokens. Identifiers are
// alphanumeric/underscore words; anything else between braces is left
// verbatim.
var placeholderRe = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// FillTemplate replaces every {{key}} token with vars[key], or the empty
// string when the key is absent. Substituted values are not re-scanned,
// so a value containing "{{" is inserted literally. The function is total:
// it never fails, for any template and any map.
func FillTemplate(template string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		key := match[2 : len(match)-2]
		return vars[key]
	})
}
