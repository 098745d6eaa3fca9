package regexlib

type nodeType int

const (
	nEmpty  nodeType = iota // ε (empty group)
	nChar                   // single literal
	nConcat                 // sequential composition
	nUnion                  // a|b
	nStar                   // a*
	nPlus                   // a+
)

// astNode is one node of the parsed pattern. Trees are built once per
// Compile call, never mutated, and consumed exactly once by the builder.
type astNode struct {
	typ   nodeType
	left  *astNode
	right *astNode

	ch rune // for nChar
}

func charNode(r rune) *astNode { return &astNode{typ: nChar, ch: r} }
