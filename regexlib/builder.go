package regexlib

// frag is a partially built automaton: one entry and one exit state.
// Fragments are the composition unit of Thompson's construction and are
// absorbed by the parent operator's fragment.
type frag struct {
	start, final StateID
}

// build maps one AST node to its automaton fragment. Composition is by ε
// transitions only; states are never merged. A parser-produced tree can
// always be built, so build has no error path — a malformed tree from a
// non-conforming caller panics.
func build(a *Automaton, node *astNode) frag {
	switch node.typ {
	case nEmpty:
		s1, s2 := a.newState(), a.newState()
		a.addEpsilon(s1, s2)
		return frag{s1, s2}
	case nChar:
		s1, s2 := a.newState(), a.newState()
		a.addTransition(s1, node.ch, s2)
		return frag{s1, s2}
	case nConcat:
		f1 := build(a, node.left)
		f2 := build(a, node.right)
		a.addEpsilon(f1.final, f2.start)
		return frag{f1.start, f2.final}
	case nUnion:
		f1 := build(a, node.left)
		f2 := build(a, node.right)
		start, end := a.newState(), a.newState()
		a.addEpsilon(start, f1.start)
		a.addEpsilon(start, f2.start)
		a.addEpsilon(f1.final, end)
		a.addEpsilon(f2.final, end)
		return frag{start, end}
	case nStar:
		f := build(a, node.left)
		start, end := a.newState(), a.newState()
		a.addEpsilon(start, f.start)
		a.addEpsilon(start, end) // zero occurrences
		a.addEpsilon(f.final, f.start)
		a.addEpsilon(f.final, end)
		return frag{start, end}
	case nPlus:
		// like star but without the zero-skip edge
		f := build(a, node.left)
		start, end := a.newState(), a.newState()
		a.addEpsilon(start, f.start)
		a.addEpsilon(f.final, f.start)
		a.addEpsilon(f.final, end)
		return frag{start, end}
	default:
		panic("regexlib: unknown ast node")
	}
}
