package regexlib

/* ----------- Компиляция ----------- */

// Compile parses pattern and builds its Thompson NFA. On malformed input
// it returns a *SyntaxError and no automaton. The empty pattern is
// rejected; the ε language is spelled "()".
func Compile(pattern string) (*Automaton, error) {
	p, err := newParser(pattern)
	if err != nil {
		return nil, err
	}
	ast, err := p.parse()
	if err != nil {
		return nil, err
	}

	a := &Automaton{}
	f := build(a, ast)
	a.Start, a.Final = f.start, f.final
	return a, nil
}

func MustCompile(pattern string) *Automaton {
	a, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return a
}
