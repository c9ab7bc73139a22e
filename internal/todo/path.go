package todo

import (
	"strconv"
	"strings"
)

// Path is a 0-based index per tree level, outermost first.
type Path []int

// ParsePath parses a dotted, 1-based path such as "2.1.3".
// Every segment must be a positive decimal integer.
func ParsePath(raw string) (Path, error) {
	if raw == "" {
		return nil, &PathError{Path: raw, Err: ErrInvalidPath}
	}

	segments := strings.Split(raw, ".")
	path := make(Path, 0, len(segments))
	for _, seg := range segments {
		if !isDigits(seg) {
			return nil, &PathError{Path: raw, Err: ErrInvalidPath}
		}
		n, err := strconv.Atoi(seg)
		if err != nil || n < 1 {
			return nil, &PathError{Path: raw, Err: ErrInvalidPath}
		}
		path = append(path, n-1)
	}
	return path, nil
}

// MustParsePath is like ParsePath but panics on malformed input.
// It is meant for tests and literals.
func MustParsePath(raw string) Path {
	p, err := ParsePath(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders the path in its 1-based dotted form.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx + 1)
	}
	return strings.Join(parts, ".")
}

// Child returns a new path addressing the i-th (0-based) child of p.
func (p Path) Child(i int) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, i)
}

// Strconv accepts a leading sign, which is not valid in a path segment.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
