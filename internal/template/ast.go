// Filename: template/ast.go
// Syntax tree for UI template documents. The shapes here are what the
// analysis packages consume: element nodes with ordered attributes and
// children, text nodes, and a tagged attribute union that separates plain
// attributes from directive bindings.
package template

import "fmt"

// Position locates a node in the source document. Line is 1-based, Column
// is a 0-based byte offset within the line.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Pos returns the position itself, letting any node that embeds Position
// satisfy the Node interface.
func (p Position) Pos() Position { return p }

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is any entry in the template tree.
type Node interface {
	Pos() Position
}

// Element is a tag with its attributes and nested children, in document order.
// Name preserves the casing written in the source (`MyComponent` stays
// `MyComponent`).
type Element struct {
	Name       string
	Attributes []Attr
	Children   []Node
	Position
}

// Text is a run of literal character data. Content is entity-decoded.
// Interpolations are not text: `a {{ msg }} b` parses into two Text nodes
// with an Interpolation between them.
type Text struct {
	Content string
	Position
}

// Interpolation is a `{{ expression }}` segment inside character data. Its
// value is only known at runtime, so static analysis never inspects it.
type Interpolation struct {
	Expression string
	Position
}

// Attr is either a *StaticAttr or a *DirectiveAttr. The two variants carry
// only the fields that apply to their kind, so consumers switch on the
// concrete type instead of probing flags.
type Attr interface {
	Node
	attrNode()
}

// StaticAttr is a plain attribute with an optional literal value.
// HasValue distinguishes `disabled` from `disabled=""`.
type StaticAttr struct {
	Name     string
	Value    string
	HasValue bool
	Position
}

// DirectiveAttr is a directive binding such as `v-text="msg"`,
// `v-bind:title="t"`, or the shorthands `:title`, `@click`, `#default`.
// Name is the directive identifier without the `v-` prefix; Argument is the
// part after the colon, if any. Expression is nil when the directive has no
// value at all.
type DirectiveAttr struct {
	Name       string
	Argument   string
	Modifiers  []string
	Expression Expression
	Position
}

func (*StaticAttr) attrNode()    {}
func (*DirectiveAttr) attrNode() {}

// FullName reconstructs the canonical directive name, e.g. `v-text` or
// `v-bind` for the `:` shorthand.
func (d *DirectiveAttr) FullName() string { return "v-" + d.Name }

// Expression is the value bound to a directive. Only string-literal
// constants are statically known; everything else is opaque.
type Expression interface {
	exprNode()
}

// StringLiteral is a quoted constant such as `'Hello'`. Value holds the
// decoded string with JS-style escapes resolved.
type StringLiteral struct {
	Value string
}

// RawExpression is any bound expression that is not a lone string literal:
// identifiers, calls, template strings, concatenations. Its runtime value is
// unknown to static analysis.
type RawExpression struct {
	Text string
}

func (*StringLiteral) exprNode() {}
func (*RawExpression) exprNode() {}
