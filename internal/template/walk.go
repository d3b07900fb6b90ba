// Filename: template/walk.go
package template

// Visitor receives traversal callbacks from Walk. For each element the order
// is EnterElement, every attribute in document order, the children, then
// ExitElement.
type Visitor interface {
	EnterElement(*Element)
	ExitElement(*Element)
	VisitText(*Text)
	VisitAttr(Attr)
}

// Walk performs a single-pass depth-first traversal of nodes, dispatching to
// the visitor. The traversal is synchronous; the visitor's element
// enter/exit calls always pair up and nest exactly as the tree does.
func Walk(nodes []Node, v Visitor) {
	for _, n := range nodes {
		switch t := n.(type) {
		case *Element:
			v.EnterElement(t)
			for _, a := range t.Attributes {
				v.VisitAttr(a)
			}
			Walk(t.Children, v)
			v.ExitElement(t)
		case *Text:
			v.VisitText(t)
		}
	}
}
