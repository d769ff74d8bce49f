package markup

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrMalformedVariableName is the kind of error for a placeholder name outside [A-Za-z0-9_.-]+.
	ErrMalformedVariableName = errors.New("malformed variable name")
	// ErrUndefinedVariable is the kind of error for a placeholder without a binding.
	ErrUndefinedVariable = errors.New("undefined variable")
	// ErrUnterminatedVariable is the kind of error for a '{' without a closing '}'.
	ErrUnterminatedVariable = errors.New("unterminated variable")
	// ErrDuplicateBinding is reported by [Template.Check] when two bindings share a name.
	ErrDuplicateBinding = errors.New("duplicate binding")
)

// TemplateError describes why a pattern could not be rendered. Kind is one of the Err* sentinels in this
// package and can be matched with errors.Is.
type TemplateError struct {
	Kind   error
	Name   string
	Offset int
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template: %s %q at offset %d", e.Kind, e.Name, e.Offset)
}

func (e *TemplateError) Unwrap() error { return e.Kind }

// Binding associates a placeholder name with the value interpolated in its place.
type Binding struct {
	Name  string
	Value Escapable
}

// Bind is shorthand for a [Binding].
func Bind(name string, v Escapable) Binding { return Binding{Name: name, Value: v} }

// Template interpolates bindings into a fixed pattern. In the pattern, "{name}" is replaced by the escaped
// value bound to name, "{{" produces a literal "{" and "}}" a literal "}". The pattern itself is written
// verbatim, so it must already be valid HTML.
//
// When several bindings share a name the first one wins and the others are unreachable; use [Template.Check]
// to detect this.
type Template struct {
	Pattern  string
	Bindings []Binding
}

// NewTemplate creates a template from a pattern and its bindings.
func NewTemplate(pattern string, bindings ...Binding) Template {
	return Template{Pattern: pattern, Bindings: bindings}
}

// Render interpolates bindings into pattern.
func Render(pattern string, bindings ...Binding) (string, error) {
	return Escape(NewTemplate(pattern, bindings...))
}

// Static renders a pattern that has no placeholders and returns it as a [Literal]. It panics if the pattern
// is not valid, which makes it suitable for package-level variables holding embedded pages.
func Static(pattern string) Literal {
	s, err := Render(pattern)
	if err != nil {
		panic("markup: " + err.Error())
	}

	return Literal(s)
}

// Check reports the first problem that would make rendering fail, or a binding that shadows an earlier one
// with the same name.
func (t Template) Check() error {
	seen := make(map[string]struct{}, len(t.Bindings))
	for _, b := range t.Bindings {
		if _, ok := seen[b.Name]; ok {
			return &TemplateError{Kind: ErrDuplicateBinding, Name: b.Name, Offset: -1}
		}
		seen[b.Name] = struct{}{}
	}

	return scan(t.Pattern, func(string) {}, func(name string, offset int) error {
		if _, ok := t.lookup(name); !ok {
			return &TemplateError{Kind: ErrUndefinedVariable, Name: name, Offset: offset}
		}
		return nil
	})
}

func (t Template) escapeTo(sb *strings.Builder) error {
	return scan(t.Pattern, func(text string) {
		sb.WriteString(text)
	}, func(name string, offset int) error {
		v, ok := t.lookup(name)
		if !ok {
			return &TemplateError{Kind: ErrUndefinedVariable, Name: name, Offset: offset}
		}

		if v == nil {
			return nil
		}

		if err := v.escapeTo(sb); err != nil {
			return errors.Wrapf(err, "variable %q", name)
		}

		return nil
	})
}

func (t Template) lookup(name string) (Escapable, bool) {
	for _, b := range t.Bindings {
		if b.Name == name {
			return b.Value, true
		}
	}

	return nil, false
}

// scan walks the pattern left to right, passing literal text to text and each placeholder name (with the
// offset of its opening brace) to variable.
func scan(pattern string, text func(string), variable func(name string, offset int) error) error {
	pos := 0
	for {
		open := strings.IndexByte(pattern[pos:], '{')
		if open < 0 {
			literal(pattern[pos:], text)
			return nil
		}

		literal(pattern[pos:pos+open], text)
		pos += open + 1

		if strings.HasPrefix(pattern[pos:], "{") {
			text("{")
			pos++
			continue
		}

		end := strings.IndexByte(pattern[pos:], '}')
		if end < 0 {
			return &TemplateError{Kind: ErrUnterminatedVariable, Name: pattern[pos:], Offset: pos - 1}
		}

		name := pattern[pos : pos+end]
		if !validName(name) {
			return &TemplateError{Kind: ErrMalformedVariableName, Name: name, Offset: pos - 1}
		}

		if err := variable(name, pos-1); err != nil {
			return err
		}

		pos += end + 1
	}
}

// literal passes s to text with every "}}" collapsed to "}".
func literal(s string, text func(string)) {
	for {
		i := strings.Index(s, "}}")
		if i < 0 {
			if s != "" {
				text(s)
			}
			return
		}

		text(s[:i+1])
		s = s[i+2:]
	}
}

func validName(name string) bool {
	if name == "" {
		return false
	}

	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_', c == '.', c == '-':
		default:
			return false
		}
	}

	return true
}
