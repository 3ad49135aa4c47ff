package prompt

import "strings"

type segmentKind int

const (
	segLiteral segmentKind = iota
	segToken
	segBlock
)

type segment struct {
	kind segmentKind
	text string
}

// Template is a compiled prompt template. Compile once with Parse and reuse;
// rendering is a pure function of the DataBag.
type Template struct {
	source   string
	segments []segment
}

// blockNames are the conditional block placeholders the engine synthesizes
// itself rather than reading from the bag. `conditionalSections` is the
// letter-template block combining the ADVO and bail fragments.
var blockNames = map[string]struct{}{
	"conditionalSections": {},
}

// Parse compiles a template string. `{name}` spans where name is a plain
// identifier become tokens (or conditional blocks when the name is a known
// block); any other brace sequence stays literal text.
func Parse(source string) *Template {
	t := &Template{source: source}
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			t.segments = append(t.segments, segment{kind: segLiteral, text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(source); {
		open := strings.IndexByte(source[i:], '{')
		if open < 0 {
			literal.WriteString(source[i:])
			break
		}
		open += i
		literal.WriteString(source[i:open])

		close := strings.IndexByte(source[open:], '}')
		if close < 0 {
			literal.WriteString(source[open:])
			break
		}
		close += open

		name := source[open+1 : close]
		if !isIdentifier(name) {
			literal.WriteString(source[open : open+1])
			i = open + 1
			continue
		}

		flush()
		kind := segToken
		if _, ok := blockNames[name]; ok {
			kind = segBlock
		}
		t.segments = append(t.segments, segment{kind: kind, text: name})
		i = close + 1
	}
	flush()
	return t
}

// Render substitutes the bag into the template. Tokens absent from the bag
// render as empty strings; bag keys absent from the template are ignored. A
// single pass over the compiled segments makes the no-rescan guarantee
// structural: a value that happens to contain `{token}`-shaped text passes
// through verbatim.
func (t *Template) Render(bag DataBag) string {
	var out strings.Builder
	out.Grow(len(t.source))
	for _, seg := range t.segments {
		switch seg.kind {
		case segLiteral:
			out.WriteString(seg.text)
		case segToken:
			out.WriteString(bag.String(seg.text))
		case segBlock:
			out.WriteString(renderBlock(seg.text, bag))
		}
	}
	return out.String()
}

// Source returns the original template text.
func (t *Template) Source() string { return t.source }

// Tokens returns the distinct token names the template references, in first
// occurrence order. Conditional blocks are not included.
func (t *Template) Tokens() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, seg := range t.segments {
		if seg.kind != segToken {
			continue
		}
		if _, dup := seen[seg.text]; dup {
			continue
		}
		seen[seg.text] = struct{}{}
		out = append(out, seg.text)
	}
	return out
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
