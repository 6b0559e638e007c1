package auditor

import (
	"regexp"
	"strings"
)

// urlPattern matches tokens starting with http://, https:// or www. followed
// by at least one non-whitespace character. Whitespace covers the Unicode
// separators as well as the ASCII control separators.
var urlPattern = regexp.MustCompile( //nolint: gochecknoglobals
	`(?:https?://|www\.)[^\t\n\v\f\r \x{1c}-\x{1f}\x{85}\p{Z}]+`)

// ExtractURLs returns the URL candidates of text in document order,
// duplicates included. A match containing ')' is cut right before the first
// ')' so that the closing part of a Markdown link is dropped; a match without
// ')' is returned verbatim. No other normalization is applied.
func ExtractURLs(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		if i := strings.IndexByte(m, ')'); i >= 0 {
			m = m[:i]
		}
		urls = append(urls, m)
	}

	return urls
}
