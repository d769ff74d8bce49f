package petite

import (
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
)

// SplitPath decodes the path of u into its segments. The path is split before decoding, so an encoded slash
// ("%2F") stays inside its segment. A single trailing empty segment, left by a trailing slash, is dropped. The
// root path yields no segments.
func SplitPath(u *url.URL) ([]string, error) {
	escaped := strings.TrimPrefix(u.EscapedPath(), "/")
	if escaped == "" {
		return nil, nil
	}

	raw := strings.Split(escaped, "/")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	segments := make([]string, len(raw))
	for i, s := range raw {
		dec, err := url.PathUnescape(s)
		if err != nil {
			return nil, NewError(CodeInvalid, errors.Wrapf(err, "decode path segment %d", i))
		}

		segments[i] = dec
	}

	return segments, nil
}
