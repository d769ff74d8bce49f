package petite

import (
	"fmt"
	"strings"
)

// DubiousFilenameError is returned by [ValidateName] for names with characters outside [A-Za-z0-9_.-].
type DubiousFilenameError struct {
	Name string
}

func (e *DubiousFilenameError) Error() string {
	return fmt.Sprintf("filename %q contains unusual characters; only letters, digits and \"_-.\" are allowed", e.Name)
}

// ValidateName returns name unchanged if it only contains ASCII letters, digits and "_-.". Many good filenames
// fail this check, but the ones that pass never need escaping, which makes them safe to derive from request
// data. Note that "." and ".." pass; callers joining the name onto a directory must handle those.
func ValidateName(name string) (string, error) {
	for i := 0; i < len(name); i++ {
		switch c := name[i]; {
		case c >= '0' && c <= '9', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		case c == '_', c == '.', c == '-':
		default:
			return "", &DubiousFilenameError{Name: name}
		}
	}

	return name, nil
}

// RemoveExtension strips ".ext" from filename, comparing the extension case-insensitively. Given "foo.BAR" and
// "bar" it returns "foo", true.
func RemoveExtension(filename, ext string) (string, bool) {
	idx := len(filename) - len(ext) - 1
	if idx < 0 || filename[idx] != '.' {
		return "", false
	}

	if !strings.EqualFold(filename[idx+1:], ext) {
		return "", false
	}

	return filename[:idx], true
}
