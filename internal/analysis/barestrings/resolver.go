// Filename: barestrings/resolver.go
// Target-attribute resolution: given a tag name, which attributes must be
// checked. Three strategies union together: exact-name rules, regexp-keyed
// rules, and a one-hop kebab-case to PascalCase alias so rules written
// against component names also cover their custom-element spelling.
package barestrings

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultAttributes targets the accessible-text attributes on every tag,
// plus `placeholder` on inputs and `alt` on images.
func DefaultAttributes() map[string][]string {
	return map[string][]string{
		"/.+/":  {"title", "aria-label", "aria-placeholder", "aria-roledescription", "aria-valuetext"},
		"input": {"placeholder"},
		"img":   {"alt"},
	}
}

// DefaultDirectives is the set of directives whose literal string argument
// is checked.
func DefaultDirectives() []string {
	return []string{"v-text"}
}

type attrSet map[string]struct{}

func (s attrSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s attrSet) addAll(names []string) {
	for _, n := range names {
		s[n] = struct{}{}
	}
}

func (s attrSet) union(other attrSet) {
	for n := range other {
		s[n] = struct{}{}
	}
}

// tagPattern is one regexp-keyed attributes rule.
type tagPattern struct {
	re    *regexp.Regexp
	attrs []string
}

// patternKey matches the `/expr/flags` convention that distinguishes a
// regexp rule key from an exact tag name.
var patternKey = regexp.MustCompile(`^/(.+)/([a-z]*)$`)

// compileTagPattern compiles a `/expr/flags` rule key. The second return is
// false when the key is a plain tag name. Of the source flags only `i`, `s`
// and `m` change matching in Go; `u` and `g` are inherent or irrelevant here.
func compileTagPattern(key string) (*regexp.Regexp, bool, error) {
	m := patternKey.FindStringSubmatch(key)
	if m == nil {
		return nil, false, nil
	}
	expr := m[1]
	for _, f := range m[2] {
		switch f {
		case 'i', 's', 'm':
			expr = fmt.Sprintf("(?%c)%s", f, expr)
		}
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, true, fmt.Errorf("invalid tag pattern %q: %w", key, err)
	}
	return re, true, nil
}

var kebabCase = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

func isKebabCase(name string) bool {
	return kebabCase.MatchString(name)
}

// pascalCase converts a kebab-case name to PascalCase: `my-component`
// becomes `MyComponent`. Pure transformation, ASCII by construction since
// kebab names only contain [a-z0-9-].
func pascalCase(name string) string {
	parts := strings.Split(name, "-")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// resolve computes the target-attribute set for a tag name, memoized for the
// duration of one run. Exact rules and every matching pattern rule
// accumulate; a kebab-case name additionally pulls in the resolution of its
// PascalCase form. That alias hop is single-level: PascalCase names are not
// kebab-case, so the recursion cannot loop.
func (c *checker) resolve(tag string) attrSet {
	if cached, ok := c.cache[tag]; ok {
		return cached
	}

	set := attrSet{}
	if names, ok := c.exact[tag]; ok {
		set.addAll(names)
	}
	for _, p := range c.patterns {
		if p.re.MatchString(tag) {
			set.addAll(p.attrs)
		}
	}
	if isKebabCase(tag) {
		set.union(c.resolve(pascalCase(tag)))
	}

	c.cache[tag] = set
	return set
}
