// Filename: barestrings/checker_test.go
package barestrings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/barelint/barelint/internal/template"
)

// analyze parses the source and collects the rule's findings in order.
func analyze(t *testing.T, cfg Config, src string) []Finding {
	t.Helper()
	a, err := NewAnalyzer(cfg, zap.NewNop())
	require.NoError(t, err)

	var findings []Finding
	a.Run(template.Parse(src), func(f Finding) {
		findings = append(findings, f)
	})
	return findings
}

func analyzeDefaults(t *testing.T, src string) []Finding {
	return analyze(t, Config{}, src)
}

func TestBareTextContent(t *testing.T) {
	cfg := Config{Whitelist: []string{"(", ")", "."}}

	t.Run("reports text that survives stripping", func(t *testing.T) {
		findings := analyzeDefaults(t, "<div>(hello).</div>")
		require.Len(t, findings, 1)
		assert.Equal(t, BareText, findings[0].Kind)
		assert.Empty(t, findings[0].Name)
	})

	t.Run("fully whitelisted text is silent", func(t *testing.T) {
		assert.Empty(t, analyze(t, cfg, "<div>().</div>"))
	})

	t.Run("whitespace only text is silent", func(t *testing.T) {
		assert.Empty(t, analyzeDefaults(t, "<div>\n\t  \n</div>"))
	})

	t.Run("interpolations are not text", func(t *testing.T) {
		assert.Empty(t, analyzeDefaults(t, "<div>{{ message }}</div>"))
	})

	t.Run("literal text around an interpolation still reports", func(t *testing.T) {
		findings := analyzeDefaults(t, "<div>Hello {{ name }}</div>")
		require.Len(t, findings, 1)
		assert.Equal(t, BareText, findings[0].Kind)
	})
}

func TestStaticAttributeValues(t *testing.T) {
	t.Run("targeted attribute reports", func(t *testing.T) {
		findings := analyzeDefaults(t, `<input placeholder="Enter name">`)
		require.Len(t, findings, 1)
		assert.Equal(t, BareAttributeValue, findings[0].Kind)
		assert.Equal(t, "placeholder", findings[0].Name)
	})

	t.Run("non-targeted attribute is silent", func(t *testing.T) {
		assert.Empty(t, analyzeDefaults(t, `<input type="text">`))
	})

	t.Run("catch-all pattern applies to every tag", func(t *testing.T) {
		findings := analyzeDefaults(t, `<span aria-label="Close dialog"></span>`)
		require.Len(t, findings, 1)
		assert.Equal(t, "aria-label", findings[0].Name)
	})

	t.Run("valueless attribute is skipped", func(t *testing.T) {
		assert.Empty(t, analyzeDefaults(t, `<input placeholder>`))
	})

	t.Run("whitelisted value is silent", func(t *testing.T) {
		assert.Empty(t, analyzeDefaults(t, `<input placeholder="...">`))
	})
}

func TestDirectiveValues(t *testing.T) {
	t.Run("string literal argument reports", func(t *testing.T) {
		findings := analyzeDefaults(t, `<span v-text="'Hello'"></span>`)
		require.Len(t, findings, 1)
		assert.Equal(t, BareAttributeValue, findings[0].Kind)
		assert.Equal(t, "v-text", findings[0].Name)
	})

	t.Run("identifier argument is silent", func(t *testing.T) {
		assert.Empty(t, analyzeDefaults(t, `<span v-text="greeting"></span>`))
	})

	t.Run("call expression is silent", func(t *testing.T) {
		assert.Empty(t, analyzeDefaults(t, `<span v-text="t('hello')"></span>`))
	})

	t.Run("directive outside the target set is silent", func(t *testing.T) {
		// v-bind is not in the default directive targets even with a
		// literal argument.
		assert.Empty(t, analyzeDefaults(t, `<span :title="'Hello'"></span>`))
	})

	t.Run("valueless directive is skipped", func(t *testing.T) {
		assert.Empty(t, analyzeDefaults(t, `<span v-text></span>`))
	})

	t.Run("configured directive list replaces the default", func(t *testing.T) {
		cfg := Config{Directives: []string{"v-tooltip"}}
		findings := analyze(t, cfg, `<span v-tooltip="'Click me'" v-text="'Hello'"></span>`)
		require.Len(t, findings, 1)
		assert.Equal(t, "v-tooltip", findings[0].Name)
	})
}

func TestKebabPascalAliasEndToEnd(t *testing.T) {
	cfg := Config{Attributes: map[string][]string{"MyComponent": {"label"}}}

	findings := analyze(t, cfg, `<my-component label="Hi"></my-component>`)
	require.Len(t, findings, 1)
	assert.Equal(t, "label", findings[0].Name)

	// The Pascal spelling matches its own rule directly as well.
	findings = analyze(t, cfg, `<MyComponent label="Hi"></MyComponent>`)
	require.Len(t, findings, 1)
}

func TestNestedElementsResolveIndependently(t *testing.T) {
	src := `<div title="Ok"><span title="Hi"></span></div>`
	findings := analyzeDefaults(t, src)

	require.Len(t, findings, 2)
	assert.Equal(t, "title", findings[0].Name)
	assert.Equal(t, "title", findings[1].Name)
	// Document order: the div's attribute first, then the span's.
	assert.Less(t, findings[0].Pos.Offset, findings[1].Pos.Offset)
}

func TestContextRestoredAfterChildExit(t *testing.T) {
	// Only the outer element targets `label`; the inner element's frame must
	// not leak outward.
	cfg := Config{
		Whitelist:  []string{},
		Attributes: map[string][]string{"outer-box": {"label"}},
		Directives: []string{},
	}
	src := `<outer-box label="A"><inner-box label="B"></inner-box><outer-box label="C"></outer-box></outer-box>`

	findings := analyze(t, cfg, src)
	require.Len(t, findings, 2)
	assert.Equal(t, 1, findings[0].Pos.Line)
}

func TestContextStackMirrorsNesting(t *testing.T) {
	a, err := NewAnalyzer(Config{}, zap.NewNop())
	require.NoError(t, err)
	c := &checker{Analyzer: a, cache: make(map[string]attrSet), report: func(Finding) {}}

	div := &template.Element{Name: "div"}
	span := &template.Element{Name: "span"}

	c.EnterElement(div)
	require.Len(t, c.stack, 1)
	before := c.stack[len(c.stack)-1]

	c.EnterElement(span)
	require.Len(t, c.stack, 2)
	assert.Equal(t, "span", c.stack[len(c.stack)-1].name)

	c.ExitElement(span)
	require.Len(t, c.stack, 1)
	after := c.stack[len(c.stack)-1]

	assert.Equal(t, before.name, after.name)
	if diff := cmp.Diff(names(before.attrs), names(after.attrs)); diff != "" {
		t.Errorf("target set changed across child enter/exit (-before +after):\n%s", diff)
	}
}

func TestAttributeVisitWithoutContextPanics(t *testing.T) {
	a, err := NewAnalyzer(Config{}, zap.NewNop())
	require.NoError(t, err)
	c := &checker{Analyzer: a, cache: make(map[string]attrSet), report: func(Finding) {}}

	assert.Panics(t, func() {
		c.VisitAttr(&template.StaticAttr{Name: "title", Value: "Hi", HasValue: true})
	})
}

func TestEveryOccurrenceReportsOnce(t *testing.T) {
	// No deduplication: identical bare strings each produce a finding.
	src := `<div><p>Save</p><p>Save</p></div>`
	findings := analyzeDefaults(t, src)
	require.Len(t, findings, 2)
	assert.NotEqual(t, findings[0].Pos.Offset, findings[1].Pos.Offset)
}

func TestFindingMessages(t *testing.T) {
	assert.Equal(t, "Unexpected non-translated string used", Finding{Kind: BareText}.Message())
	assert.Equal(t,
		"Unexpected non-translated string used in `v-text`",
		Finding{Kind: BareAttributeValue, Name: "v-text"}.Message())
}

func TestCustomWhitelistUnicodeEntry(t *testing.T) {
	cfg := Config{Whitelist: append(append([]string{}, DefaultWhitelist...), "→")}
	assert.Empty(t, analyze(t, cfg, "<div> → </div>"))
}
