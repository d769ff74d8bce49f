package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Escapable is a value that renders itself as HTML-safe text. The set of implementations is closed: [Literal],
// [Scalar], [Concat] and [Template].
type Escapable interface {
	escapeTo(sb *strings.Builder) error
}

// Literal is text that is asserted to be valid HTML already. It is written verbatim, so it must never hold user
// input.
type Literal string

func (l Literal) escapeTo(sb *strings.Builder) error {
	sb.WriteString(string(l))
	return nil
}

// Scalar holds any value with a textual representation. Its text is always entity encoded.
type Scalar struct {
	Value any
}

// Text wraps a string that must be escaped.
func Text(s string) Scalar { return Scalar{Value: s} }

// Value wraps an arbitrary value, formatted with fmt's default verb, that must be escaped.
func Value(v any) Scalar { return Scalar{Value: v} }

func (s Scalar) escapeTo(sb *strings.Builder) error {
	var str string
	switch v := s.Value.(type) {
	case string:
		str = v
	case fmt.Stringer:
		str = v.String()
	case error:
		str = v.Error()
	default:
		str = fmt.Sprint(v)
	}

	writeEscaped(sb, str)
	return nil
}

// Concat renders each of its children in order without a separator.
type Concat []Escapable

func (c Concat) escapeTo(sb *strings.Builder) error {
	for i, e := range c {
		if e == nil {
			continue
		}

		if err := e.escapeTo(sb); err != nil {
			return errors.Wrapf(err, "concat item %d", i)
		}
	}

	return nil
}

// Escape renders e into a string that is safe to embed in an HTML document body.
func Escape(e Escapable) (string, error) {
	if e == nil {
		return "", nil
	}

	var sb strings.Builder
	if err := e.escapeTo(&sb); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// WriteTo renders e and writes the result to w. Nothing is written when rendering fails.
func WriteTo(w io.Writer, e Escapable) (int64, error) {
	s, err := Escape(e)
	if err != nil {
		return 0, err
	}

	n, err := io.WriteString(w, s)
	if err != nil {
		return int64(n), errors.Wrap(err, "write escaped html")
	}

	return int64(n), nil
}

// EscapeString applies the entity encoding used for [Scalar] values.
func EscapeString(s string) string {
	var sb strings.Builder
	writeEscaped(&sb, s)
	return sb.String()
}

func writeEscaped(sb *strings.Builder, s string) {
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&#39;")
		default:
			sb.WriteByte(c)
		}
	}
}
