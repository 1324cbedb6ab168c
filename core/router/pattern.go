package router

import (
	"fmt"
	"strings"
)

type segmentKind int

const (
	segLiteral segmentKind = iota
	segString              // {name} - any non-empty segment
	segInt                 // {name:int} - digits only
)

// segment is one compiled element of a route pattern.
type segment struct {
	kind    segmentKind
	literal string // literal text, set for segLiteral
	name    string // parameter name, set for segString/segInt
}

// pattern is a compiled route pattern. Matching is exact on segment count;
// there is no wildcard or prefix matching and no trailing-slash normalization.
type pattern struct {
	raw      string
	segments []segment
}

// compilePattern parses a raw pattern like "/users/{id:int}/posts/{slug}"
// into segments. It rejects malformed placeholders and duplicate parameter
// names at registration time rather than at match time.
func compilePattern(raw string) (pattern, error) {
	if raw == "" || raw[0] != '/' {
		return pattern{}, fmt.Errorf("%w: %q", ErrInvalidPattern, raw)
	}

	p := pattern{raw: raw}
	if raw == "/" {
		return p, nil
	}

	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw[1:], "/") {
		switch {
		case part == "":
			return pattern{}, fmt.Errorf("%w: empty segment in %q", ErrInvalidPattern, raw)

		case strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}"):
			name := part[1 : len(part)-1]
			kind := segString
			if n, ok := strings.CutSuffix(name, ":int"); ok {
				name = n
				kind = segInt
			}
			if name == "" || strings.ContainsAny(name, "{}:") {
				return pattern{}, fmt.Errorf("%w: bad placeholder %q in %q", ErrInvalidPattern, part, raw)
			}
			if _, dup := seen[name]; dup {
				return pattern{}, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, name, raw)
			}
			seen[name] = struct{}{}
			p.segments = append(p.segments, segment{kind: kind, name: name})

		case strings.ContainsAny(part, "{}"):
			return pattern{}, fmt.Errorf("%w: unbalanced braces in %q", ErrInvalidPattern, raw)

		default:
			p.segments = append(p.segments, segment{kind: segLiteral, literal: part})
		}
	}

	return p, nil
}

// match tests a request path against the pattern and extracts parameters.
// The returned map is nil when the pattern has no placeholders.
func (p pattern) match(path string) (map[string]string, bool) {
	if path == "/" {
		return nil, len(p.segments) == 0
	}
	if len(path) == 0 || path[0] != '/' {
		return nil, false
	}

	parts := strings.Split(path[1:], "/")
	if len(parts) != len(p.segments) {
		return nil, false
	}

	var params map[string]string
	for i, seg := range p.segments {
		part := parts[i]
		switch seg.kind {
		case segLiteral:
			if part != seg.literal {
				return nil, false
			}
		case segString:
			if part == "" {
				return nil, false
			}
		case segInt:
			if !isDigits(part) {
				return nil, false
			}
		}
		if seg.kind != segLiteral {
			if params == nil {
				params = make(map[string]string, len(p.segments))
			}
			params[seg.name] = part
		}
	}

	return params, true
}

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
