// Filename: barestrings/finding.go
package barestrings

import (
	"fmt"

	"github.com/barelint/barelint/internal/template"
)

// Kind classifies what carried the untranslated string. The values are
// lowercase to keep report output stable.
type Kind string

const (
	// BareText is literal text content between tags.
	BareText Kind = "bare-text"
	// BareAttributeValue is a literal value inside a targeted attribute or
	// directive.
	BareAttributeValue Kind = "bare-attribute-value"
)

// Finding is one occurrence of a bare string. Name carries the attribute or
// directive name for BareAttributeValue and is empty for BareText. Findings
// are handed to the report callback as they are discovered; the analyzer
// keeps no history.
type Finding struct {
	Kind Kind
	Name string
	Pos  template.Position
}

// Message renders the human-readable diagnostic for the finding.
func (f Finding) Message() string {
	if f.Kind == BareAttributeValue {
		return fmt.Sprintf("Unexpected non-translated string used in `%s`", f.Name)
	}
	return "Unexpected non-translated string used"
}
