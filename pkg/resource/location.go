package resource

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultNamespace is assumed when a location has no "namespace:" prefix.
const DefaultNamespace = "minecraft"

var ErrInvalidLocation = errors.New("invalid resource location")

var lower = cases.Lower(language.Und)

// Location is a namespaced identifier such as "minecraft:chests/simple_dungeon".
type Location struct {
	Namespace string
	Path      string
}

// Parse normalizes s to lower case, fills in the default namespace and checks
// the characters the game accepts.
func Parse(s string) (Location, error) {
	s = lower.String(strings.TrimSpace(s))

	namespace, path, found := strings.Cut(s, ":")
	if !found {
		namespace, path = DefaultNamespace, s
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	if path == "" {
		return Location{}, fmt.Errorf("%w: %q has an empty path", ErrInvalidLocation, s)
	}
	if !valid(namespace, false) {
		return Location{}, fmt.Errorf("%w: bad namespace %q", ErrInvalidLocation, namespace)
	}
	if !valid(path, true) {
		return Location{}, fmt.Errorf("%w: bad path %q", ErrInvalidLocation, path)
	}
	return Location{Namespace: namespace, Path: path}, nil
}

// MustParse is Parse for package-level constants; it panics on error.
func MustParse(s string) Location {
	loc, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return loc
}

// String renders l as namespace:path.
func (l Location) String() string {
	return l.Namespace + ":" + l.Path
}

// IsZero reports whether l is the empty location.
func (l Location) IsZero() bool { return l == Location{} }

// Compare orders locations by their string form, for slices.SortFunc.
func Compare(a, b Location) int {
	return strings.Compare(a.String(), b.String())
}

// MarshalText encodes l as its String form.
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText parses text with Parse.
func (l *Location) UnmarshalText(text []byte) error {
	loc, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = loc
	return nil
}

func valid(s string, isPath bool) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '_', r == '-', r == '.':
		case r == '/' && isPath:
		default:
			return false
		}
	}
	return true
}
