package petite

import (
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// Reverse builds a relative URL path from unescaped segments. Each segment is percent-encoded on its own, so a
// segment containing '/' or '?' survives the round trip through [SplitPath]. Colons are encoded too, so the
// result never parses as a URL with a scheme.
func Reverse(segments ...string) string {
	return strings.Join(lo.Map(segments, func(s string, _ int) string {
		return strings.ReplaceAll(url.PathEscape(s), ":", "%3A")
	}), "/")
}
