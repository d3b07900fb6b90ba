// Filename: cmd/check_test.go
package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/barelint/barelint/internal/analysis/barestrings"
	"github.com/barelint/barelint/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	app := writeFile(t, dir, "App.vue", "<template></template>")
	page := writeFile(t, dir, "sub/page.html", "<div></div>")
	writeFile(t, dir, "sub/readme.md", "not a template")
	writeFile(t, dir, "node_modules/dep/index.html", "<div></div>")
	writeFile(t, dir, ".cache/stale.vue", "<template></template>")

	files, err := collectFiles([]string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{app, page}, files)
}

func TestCollectFilesExplicitFileKept(t *testing.T) {
	dir := t.TempDir()
	// A file named on the command line is analyzed even without a known
	// template extension.
	odd := writeFile(t, dir, "widget.tpl", "<div>Hi</div>")

	files, err := collectFiles([]string{odd})
	require.NoError(t, err)
	assert.Equal(t, []string{odd}, files)
}

func TestCollectFilesMissingPath(t *testing.T) {
	_, err := collectFiles([]string{filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot access")
}

func defaultAnalyzer(t *testing.T) *barestrings.Analyzer {
	t.Helper()
	a, err := barestrings.NewAnalyzer(barestrings.Config{}, zap.NewNop())
	require.NoError(t, err)
	return a
}

func TestCheckFileHTML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "index.html", "<div>\n  Hello world\n</div>\n")

	result, err := checkFile(defaultAnalyzer(t), path)
	require.NoError(t, err)
	require.Len(t, result.Findings, 1)
	f := result.Findings[0]
	assert.Equal(t, "bare-text", f.Kind)
	// The position is the start of the text run, which begins right after
	// the opening tag.
	assert.Equal(t, 1, f.Line)
	assert.Equal(t, "Unexpected non-translated string used", f.Message)
}

func TestCheckFileVueScopesToTemplate(t *testing.T) {
	dir := t.TempDir()
	src := "<template>\n  <p>Hello</p>\n</template>\n<script>\nexport default { name: 'App' }\n</script>\n"
	path := writeFile(t, dir, "App.vue", src)

	result, err := checkFile(defaultAnalyzer(t), path)
	require.NoError(t, err)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, 2, result.Findings[0].Line)
}

func TestCheckFileVueWithoutTemplate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "App.vue", "<script>\nconst s = 'Hello'\n</script>\n")

	result, err := checkFile(defaultAnalyzer(t), path)
	require.NoError(t, err)
	assert.Empty(t, result.Findings)
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.html", "<div>Hello</div>")
	writeFile(t, dir, "b.html", `<input placeholder="Type here">`)
	writeFile(t, dir, "clean.html", `<div :title="msg">{{ msg }}</div>`)
	out := filepath.Join(dir, "report.txt")

	total, err := runCheck(config.RuleConfig{}, []string{dir}, "text", out, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "2 problem(s) found")
}

func TestRunCheckJSONOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.html", "<div>Hello</div>")
	out := filepath.Join(dir, "report.json")

	total, err := runCheck(config.RuleConfig{}, []string{dir}, "json", out, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"total_findings": 1`)
	assert.Contains(t, string(data), `"run_id"`)
}

func TestRunCheckCustomRule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.html", `<custom-block hint="Hi"></custom-block>`)
	out := filepath.Join(dir, "report.txt")

	rule := config.RuleConfig{Attributes: map[string][]string{"custom-block": {"hint"}}}
	total, err := runCheck(rule, []string{dir}, "text", out, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestRunCheckBadFormat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.html", "<div></div>")

	_, err := runCheck(config.RuleConfig{}, []string{dir}, "xml", "", zap.NewNop())
	require.Error(t, err)
}

func TestRuleConfigValidate(t *testing.T) {
	assert.NoError(t, config.RuleConfig{Directives: []string{"v-text", "v-html"}}.Validate())

	err := config.RuleConfig{Directives: []string{"text"}}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v-")
}
