package regexlib

// Рекурсивный спуск по грамматике:
//
//	expr   := term ('|' term)*
//	term   := factor+            // неявная конкатенация
//	factor := primary ('*'|'+')*
//	primary:= CHAR | '(' expr ')'
//
// Оба бинарных оператора сворачиваются влево: a|b|c ⇒ Union(Union(a,b),c).
type parser struct {
	lex  *lexer
	look token
}

func newParser(pat string) (*parser, error) {
	p := &parser{lex: newLexer(pat)}
	if err := p.scan(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) scan() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.look = tok
	return nil
}

func (p *parser) parse() (*astNode, error) {
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.look.typ != tEOF {
		// после полного expr может остаться только лишняя ')'
		return nil, syntaxErr(p.look.pos, "unmatched )")
	}
	return node, nil
}

func (p *parser) parseExpr() (*astNode, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.look.typ == tUnion {
		if err := p.scan(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &astNode{typ: nUnion, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (*astNode, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.look.typ == tChar || p.look.typ == tLParen {
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &astNode{typ: nConcat, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseFactor() (*astNode, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	// постфиксы могут стоять подряд: a*+ допустимо
	for p.look.typ == tStar || p.look.typ == tPlus {
		typ := nStar
		if p.look.typ == tPlus {
			typ = nPlus
		}
		node = &astNode{typ: typ, left: node}
		if err := p.scan(); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (p *parser) parsePrimary() (*astNode, error) {
	switch p.look.typ {
	case tChar:
		node := charNode(p.look.ch)
		if err := p.scan(); err != nil {
			return nil, err
		}
		return node, nil
	case tLParen:
		open := p.look.pos
		if err := p.scan(); err != nil {
			return nil, err
		}
		if p.look.typ == tRParen {
			// пустая группа () — ε
			if err := p.scan(); err != nil {
				return nil, err
			}
			return &astNode{typ: nEmpty}, nil
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.look.typ != tRParen {
			return nil, syntaxErr(open, "unterminated group")
		}
		if err := p.scan(); err != nil {
			return nil, err
		}
		return inner, nil
	case tStar, tPlus, tUnion:
		return nil, syntaxErr(p.look.pos, "operator with no operand")
	case tRParen:
		return nil, syntaxErr(p.look.pos, "unmatched )")
	default:
		return nil, syntaxErr(p.look.pos, "unexpected end of pattern")
	}
}
