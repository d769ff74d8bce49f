package petite

import (
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
)

// Collector accumulates decoded query pairs into a handler-specific parameter record. Collect is called once per
// pair, in the order the pairs appear in the query string.
type Collector interface {
	Collect(key, value string)
}

// Values is a generic parameter record for handlers that need no typed parameters. Later pairs overwrite
// earlier ones with the same key.
type Values map[string]string

// Collect implements [Collector].
func (v *Values) Collect(key, value string) {
	if *v == nil {
		*v = Values{}
	}

	(*v)[key] = value
}

// ParseQuery decodes a raw, form-encoded query string and feeds each pair to c. Empty pairs are skipped and a
// pair without "=" has an empty value. A malformed escape fails the whole query with [CodeInvalid].
func ParseQuery(raw string, c Collector) error {
	for raw != "" {
		var pair string
		pair, raw, _ = strings.Cut(raw, "&")
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")

		dkey, err := url.QueryUnescape(key)
		if err != nil {
			return NewError(CodeInvalid, errors.Wrapf(err, "decode query key %q", key))
		}

		dvalue, err := url.QueryUnescape(value)
		if err != nil {
			return NewError(CodeInvalid, errors.Wrapf(err, "decode query value for %q", dkey))
		}

		c.Collect(dkey, dvalue)
	}

	return nil
}
