// Filename: template/parse.go
// Builds the template syntax tree out of raw document source. Stream
// segmentation (text vs tags vs comments vs raw-text content) is delegated
// to the x/net/html tokenizer; tag internals are re-scanned from the raw
// token bytes because the tokenizer lowercases tag and attribute names,
// which would destroy component-style names like `MyComponent`.
package template

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// voidElements never contain children and never open a context frame.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "param": {},
	"source": {}, "track": {}, "wbr": {},
}

// Parse builds the syntax tree for a template document. Parsing is lenient
// the way browsers are: mismatched end tags pop back to the nearest open
// element and stray end tags are dropped, so a tree always comes back.
func Parse(src string) []Node {
	p := &parser{lines: newLineIndex(src)}
	z := html.NewTokenizer(strings.NewReader(src))
	offset := 0

	for {
		tt := z.Next()
		raw := z.Raw()

		switch tt {
		case html.ErrorToken:
			// With an in-memory reader the only error is io.EOF; truncated
			// markup just ends the document with whatever is open.
			p.closeAll()
			return p.roots

		case html.TextToken:
			p.addText(string(raw), offset)

		case html.StartTagToken, html.SelfClosingTagToken:
			name, attrs := p.parseTag(raw, offset)
			el := &Element{Name: name, Attributes: attrs, Position: p.lines.at(offset)}
			p.append(el)
			_, void := voidElements[strings.ToLower(name)]
			if tt == html.StartTagToken && !void {
				p.stack = append(p.stack, el)
			}

		case html.EndTagToken:
			p.closeElement(tagName(raw))

		case html.CommentToken, html.DoctypeToken:
			// Not part of the analyzed tree.
		}

		offset += len(raw)
	}
}

// TemplateRoot returns the first root-level element named `template`, the
// container of interest in single-file components. Returns nil when the
// document has none.
func TemplateRoot(nodes []Node) *Element {
	for _, n := range nodes {
		if el, ok := n.(*Element); ok && strings.EqualFold(el.Name, "template") {
			return el
		}
	}
	return nil
}

type parser struct {
	lines lineIndex
	roots []Node
	stack []*Element
}

func (p *parser) append(n Node) {
	if len(p.stack) == 0 {
		p.roots = append(p.roots, n)
		return
	}
	top := p.stack[len(p.stack)-1]
	top.Children = append(top.Children, n)
}

// addText splits a raw character-data run around `{{ ... }}` interpolations.
// Only the literal segments become text nodes; each interpolation becomes
// its own node, which also stops literal segments on either side of it from
// merging. Entity decoding happens per segment, after splitting, since the
// mustache delimiters themselves cannot be entity-encoded text.
func (p *parser) addText(s string, offset int) {
	i := 0
	for i < len(s) {
		open := strings.Index(s[i:], "{{")
		if open < 0 {
			p.emitText(s[i:], offset+i)
			return
		}
		open += i
		if open > i {
			p.emitText(s[i:open], offset+i)
		}
		end := strings.Index(s[open+2:], "}}")
		if end < 0 {
			// Unterminated interpolation swallows the rest of the run.
			p.append(&Interpolation{
				Expression: strings.TrimSpace(s[open+2:]),
				Position:   p.lines.at(offset + open),
			})
			return
		}
		end += open + 2
		p.append(&Interpolation{
			Expression: strings.TrimSpace(s[open+2 : end]),
			Position:   p.lines.at(offset + open),
		})
		i = end + 2
	}
}

func (p *parser) emitText(part string, offset int) {
	if part == "" {
		return
	}
	p.appendText(html.UnescapeString(part), p.lines.at(offset))
}

// appendText adds a text node, merging with a preceding text sibling so the
// tokenizer's internal buffering never splits one logical run in two.
func (p *parser) appendText(content string, pos Position) {
	var siblings *[]Node
	if len(p.stack) == 0 {
		siblings = &p.roots
	} else {
		siblings = &p.stack[len(p.stack)-1].Children
	}
	if n := len(*siblings); n > 0 {
		if prev, ok := (*siblings)[n-1].(*Text); ok {
			prev.Content += content
			return
		}
	}
	p.append(&Text{Content: content, Position: pos})
}

// closeElement pops the stack down to (and including) the innermost open
// element with the given name. An end tag that matches nothing is ignored.
func (p *parser) closeElement(name string) {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if strings.EqualFold(p.stack[i].Name, name) {
			p.stack = p.stack[:i]
			return
		}
	}
}

func (p *parser) closeAll() {
	p.stack = p.stack[:0]
}

// tagName extracts the raw-case name from a start or end tag's bytes.
func tagName(raw []byte) string {
	i := 1
	if i < len(raw) && raw[i] == '/' {
		i++
	}
	start := i
	for i < len(raw) && !isTagDelim(raw[i]) {
		i++
	}
	return string(raw[start:i])
}

func isTagDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '/', '>':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// parseTag scans a raw start tag (`<Name key="v" :bound="e">`) for its
// original-case name and attributes, tracking each attribute's byte offset
// so findings point at the key, not the tag.
func (p *parser) parseTag(raw []byte, base int) (string, []Attr) {
	name := tagName(raw)
	i := 1 + len(name)
	var attrs []Attr

	for i < len(raw) {
		for i < len(raw) && (isSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= len(raw) || raw[i] == '>' {
			break
		}

		keyStart := i
		for i < len(raw) && raw[i] != '=' && raw[i] != '>' && !isSpace(raw[i]) {
			i++
		}
		key := string(raw[keyStart:i])
		pos := p.lines.at(base + keyStart)

		for i < len(raw) && isSpace(raw[i]) {
			i++
		}

		var value string
		hasValue := false
		if i < len(raw) && raw[i] == '=' {
			i++
			for i < len(raw) && isSpace(raw[i]) {
				i++
			}
			hasValue = true
			if i < len(raw) && (raw[i] == '"' || raw[i] == '\'') {
				quote := raw[i]
				i++
				valStart := i
				for i < len(raw) && raw[i] != quote {
					i++
				}
				value = string(raw[valStart:i])
				if i < len(raw) {
					i++ // closing quote
				}
			} else {
				valStart := i
				for i < len(raw) && !isSpace(raw[i]) && raw[i] != '>' {
					i++
				}
				value = string(raw[valStart:i])
			}
			value = html.UnescapeString(value)
		}

		if key != "" && key != "/" {
			attrs = append(attrs, classifyAttr(key, value, hasValue, pos))
		}
	}

	return name, attrs
}

// classifyAttr splits the attribute space into the plain/directive union.
// Directive syntax: `v-name`, `v-name:arg`, and the shorthands `:arg`
// (bind), `@arg` (on), `#arg` (slot). Trailing `.modifier` segments are
// peeled off the last component.
func classifyAttr(key, value string, hasValue bool, pos Position) Attr {
	var name, rest string
	switch {
	case strings.HasPrefix(key, "v-"):
		rest = key[2:]
	case strings.HasPrefix(key, ":"):
		name, rest = "bind", key[1:]
	case strings.HasPrefix(key, "@"):
		name, rest = "on", key[1:]
	case strings.HasPrefix(key, "#"):
		name, rest = "slot", key[1:]
	default:
		return &StaticAttr{Name: key, Value: value, HasValue: hasValue, Position: pos}
	}

	var arg string
	if name == "" {
		// Long form: the identifier comes before the optional `:arg`.
		if idx := strings.IndexByte(rest, ':'); idx >= 0 {
			name, arg = rest[:idx], rest[idx+1:]
		} else {
			name = rest
		}
	} else {
		arg = rest
	}

	var mods []string
	if arg != "" {
		arg, mods = splitModifiers(arg)
	} else {
		name, mods = splitModifiers(name)
	}

	var expr Expression
	if hasValue {
		if lit, ok := parseStringLiteral(value); ok {
			expr = &StringLiteral{Value: lit}
		} else {
			expr = &RawExpression{Text: value}
		}
	}

	return &DirectiveAttr{
		Name:       name,
		Argument:   arg,
		Modifiers:  mods,
		Expression: expr,
		Position:   pos,
	}
}

func splitModifiers(s string) (string, []string) {
	parts := strings.Split(s, ".")
	if len(parts) == 1 {
		return s, nil
	}
	return parts[0], parts[1:]
}

// parseStringLiteral decides whether a bound expression is a lone quoted
// string constant and, if so, decodes it. Anything else (identifiers, calls,
// concatenations, template strings) is dynamic and returns false.
func parseStringLiteral(src string) (string, bool) {
	s := strings.TrimSpace(src)
	if len(s) < 2 {
		return "", false
	}
	quote := s[0]
	if quote != '\'' && quote != '"' {
		return "", false
	}

	var b strings.Builder
	i := 1
	for i < len(s) {
		c := s[i]
		switch c {
		case '\\':
			if i+1 >= len(s) {
				return "", false
			}
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				b.WriteByte(s[i+1])
			}
			i += 2
		case quote:
			// The closing quote must end the expression; trailing content
			// means the value is a larger expression, not a literal.
			if i != len(s)-1 {
				return "", false
			}
			return b.String(), true
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", false // unterminated
}

// lineIndex maps byte offsets to line/column positions.
type lineIndex struct {
	starts []int
}

func newLineIndex(src string) lineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{starts: starts}
}

func (l lineIndex) at(offset int) Position {
	line := sort.Search(len(l.starts), func(i int) bool {
		return l.starts[i] > offset
	})
	return Position{
		Line:   line,
		Column: offset - l.starts[line-1],
		Offset: offset,
	}
}
