// Filename: cmd/check.go
package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/barelint/barelint/internal/analysis/barestrings"
	"github.com/barelint/barelint/internal/config"
	"github.com/barelint/barelint/internal/observability"
	"github.com/barelint/barelint/internal/reporting"
	"github.com/barelint/barelint/internal/template"
)

// templateExtensions are the file types picked up when walking a directory.
var templateExtensions = map[string]struct{}{
	".vue":  {},
	".html": {},
	".htm":  {},
}

// newCheckCmd creates the `check` command.
func newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Analyzes template files for untranslated user-facing strings",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags through viper so file/env values can be overridden
			// on the command line with the right precedence.
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			var cfg config.Config
			if err := viper.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("failed to unmarshal config: %w", err)
			}
			if err := cfg.Rule.Validate(); err != nil {
				return err
			}

			total, err := runCheck(cfg.Rule, args, viper.GetString("format"), viper.GetString("output"), logger)
			if err != nil {
				return err
			}
			if total > 0 {
				return fmt.Errorf("found %d untranslated string(s)", total)
			}
			return nil
		},
	}

	checkCmd.Flags().StringP("format", "f", "text", "Output format: text, json")
	checkCmd.Flags().StringP("output", "o", "", "Output path (default stdout)")
	return checkCmd
}

// runCheck analyzes every template file reachable from paths and hands the
// results to a reporter. Each file gets its own analysis run; the compiled
// rule configuration is shared, per-run state is not. Returns the total
// finding count.
func runCheck(rule config.RuleConfig, paths []string, format, output string, logger *zap.Logger) (int, error) {
	analyzer, err := barestrings.NewAnalyzer(barestrings.Config{
		Whitelist:  rule.Whitelist,
		Attributes: rule.Attributes,
		Directives: rule.Directives,
	}, logger)
	if err != nil {
		return 0, fmt.Errorf("invalid rule configuration: %w", err)
	}

	files, err := collectFiles(paths)
	if err != nil {
		return 0, err
	}

	reporter, err := reporting.New(format, output)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, path := range files {
		result, err := checkFile(analyzer, path)
		if err != nil {
			logger.Warn("Skipping unreadable file", zap.String("path", path), zap.Error(err))
			continue
		}
		total += len(result.Findings)
		if err := reporter.Write(result); err != nil {
			reporter.Close()
			return total, fmt.Errorf("failed to write report: %w", err)
		}
	}

	if err := reporter.Close(); err != nil {
		return total, fmt.Errorf("failed to finalize report: %w", err)
	}
	return total, nil
}

// checkFile parses one file and runs the rule over its template tree. For
// single-file components only the content of the top-level <template>
// element is analyzed, so script and style blocks never count as text.
func checkFile(analyzer *barestrings.Analyzer, path string) (*reporting.FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	nodes := template.Parse(string(data))
	if strings.EqualFold(filepath.Ext(path), ".vue") {
		if root := template.TemplateRoot(nodes); root != nil {
			nodes = root.Children
		} else {
			nodes = nil
		}
	}

	result := &reporting.FileResult{Path: path, Findings: []reporting.Entry{}}
	analyzer.Run(nodes, func(f barestrings.Finding) {
		result.Findings = append(result.Findings, reporting.Entry{
			Line:    f.Pos.Line,
			Column:  f.Pos.Column,
			Kind:    string(f.Kind),
			Name:    f.Name,
			Message: f.Message(),
		})
	})
	return result, nil
}

// collectFiles expands the argument list: files are taken as given,
// directories are walked for known template extensions. Hidden directories
// and node_modules are skipped.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			name := d.Name()
			if d.IsDir() {
				if name == "node_modules" || (strings.HasPrefix(name, ".") && path != p) {
					return filepath.SkipDir
				}
				return nil
			}
			if _, ok := templateExtensions[strings.ToLower(filepath.Ext(name))]; ok {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", p, err)
		}
	}
	return files, nil
}
