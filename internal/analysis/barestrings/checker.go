// Filename: barestrings/checker.go
// The rule itself: flags literal, non-parameterized text that looks like
// user-facing natural language left un-internationalized. Text content,
// targeted static attribute values, and string-literal arguments of targeted
// directives are checked; anything dynamic is left alone.
package barestrings

import (
	"sort"

	"go.uber.org/zap"

	"github.com/barelint/barelint/internal/template"
)

// Config is the rule configuration. All three collections are optional;
// zero values fall back to the defaults. The configuration is assumed to be
// schema-validated by the host before it gets here and is never mutated
// during analysis.
type Config struct {
	// Whitelist lists literal substrings that never count as translatable
	// content.
	Whitelist []string
	// Attributes maps a tag selector (exact name or `/pattern/flags`) to the
	// attribute names checked on matching tags.
	Attributes map[string][]string
	// Directives lists canonical directive names (`v-` prefixed) whose
	// literal string argument is checked.
	Directives []string
}

func (c Config) withDefaults() Config {
	if c.Whitelist == nil {
		c.Whitelist = DefaultWhitelist
	}
	if c.Attributes == nil {
		c.Attributes = DefaultAttributes()
	}
	if c.Directives == nil {
		c.Directives = DefaultDirectives()
	}
	return c
}

// Analyzer holds the compiled, immutable form of one rule configuration:
// the whitelist matcher, the attribute-target rules, and the directive set.
// An Analyzer is safe to share across goroutines; all per-run state lives in
// the checker created by Run.
type Analyzer struct {
	whitelist  matcher
	exact      map[string][]string
	patterns   []tagPattern
	directives map[string]struct{}
	logger     *zap.Logger
}

// NewAnalyzer compiles the configuration. Pattern-keyed attribute rules that
// fail to compile are reported here, before any traversal starts.
func NewAnalyzer(cfg Config, logger *zap.Logger) (*Analyzer, error) {
	cfg = cfg.withDefaults()

	a := &Analyzer{
		whitelist:  newMatcher(cfg.Whitelist),
		exact:      make(map[string][]string),
		directives: make(map[string]struct{}, len(cfg.Directives)),
		logger:     logger.Named("barestrings"),
	}

	// Sorted key order keeps pattern evaluation deterministic; the result is
	// a union either way.
	keys := make([]string, 0, len(cfg.Attributes))
	for k := range cfg.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		re, isPattern, err := compileTagPattern(key)
		if err != nil {
			return nil, err
		}
		if isPattern {
			a.patterns = append(a.patterns, tagPattern{re: re, attrs: cfg.Attributes[key]})
		} else {
			a.exact[key] = cfg.Attributes[key]
		}
	}

	for _, d := range cfg.Directives {
		a.directives[d] = struct{}{}
	}

	return a, nil
}

// Run traverses one template tree and reports each bare occurrence exactly
// once, in document order. Every call gets a fresh resolver cache and
// context stack, so one Analyzer can serve many trees, concurrently
// included. The report callback must not be nil.
func (a *Analyzer) Run(nodes []template.Node, report func(Finding)) {
	c := &checker{
		Analyzer: a,
		cache:    make(map[string]attrSet),
		report:   report,
	}
	template.Walk(nodes, c)
	if c.found > 0 {
		a.logger.Debug("bare strings detected", zap.Int("count", c.found))
	}
}

// frame is one element context: the tag's raw name and its resolved
// target-attribute set. Frames stack up exactly as elements nest.
type frame struct {
	name  string
	attrs attrSet
}

// checker is the per-run state: resolver cache, context stack, and the
// finding sink. It implements template.Visitor.
type checker struct {
	*Analyzer
	cache  map[string]attrSet
	stack  []frame
	report func(Finding)
	found  int
}

func (c *checker) emit(f Finding) {
	c.found++
	c.report(f)
}

// EnterElement resolves the element's target attributes once and pushes its
// context frame.
func (c *checker) EnterElement(el *template.Element) {
	c.stack = append(c.stack, frame{name: el.Name, attrs: c.resolve(el.Name)})
}

// ExitElement restores the enclosing element's context.
func (c *checker) ExitElement(*template.Element) {
	c.stack = c.stack[:len(c.stack)-1]
}

// VisitText reports literal text content that survives whitelist stripping.
func (c *checker) VisitText(t *template.Text) {
	if c.whitelist.bare(t.Content) {
		c.emit(Finding{Kind: BareText, Pos: t.Pos()})
	}
}

// VisitAttr checks a static attribute against the innermost element's
// target set, or a directive against the configured directive names. An
// attribute visited with no open element means the traversal order is
// broken, which is a programming error, not a data problem.
func (c *checker) VisitAttr(attr template.Attr) {
	if len(c.stack) == 0 {
		panic("barestrings: attribute visited outside any open element context")
	}
	top := c.stack[len(c.stack)-1]

	switch at := attr.(type) {
	case *template.StaticAttr:
		if !at.HasValue || !top.attrs.has(at.Name) {
			return
		}
		if c.whitelist.bare(at.Value) {
			c.emit(Finding{Kind: BareAttributeValue, Name: at.Name, Pos: at.Pos()})
		}

	case *template.DirectiveAttr:
		name := at.FullName()
		if _, ok := c.directives[name]; !ok {
			return
		}
		// Only a syntactic string-literal constant can be inspected; the
		// runtime value of anything dynamic is unknown.
		lit, ok := at.Expression.(*template.StringLiteral)
		if !ok {
			return
		}
		if c.whitelist.bare(lit.Value) {
			c.emit(Finding{Kind: BareAttributeValue, Name: name, Pos: at.Pos()})
		}
	}
}
