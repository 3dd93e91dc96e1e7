package ada

import "strings"

// stepGeneric implements one iteration of Mode GENERIC (spec §4.4):
// collecting formal parameters until the generic subject (package,
// subprogram, task, or protected unit) appears.
func (p *Parser) stepGeneric(parent *Token, pending *[]*Token) (*Token, bool, mode, error) {
	word, err := p.peekWord()
	if err != nil {
		return nil, false, modeGeneric, err
	}

	switch strings.ToLower(word) {
	case "type":
		if _, err := p.matchKeyword("type"); err != nil {
			return nil, false, modeGeneric, err
		}
		name, pos, err := p.readName()
		if err != nil {
			return nil, false, modeGeneric, err
		}
		detached := NewTree()
		formal := newToken(name, Formal, false, detached, pos)
		*pending = append(*pending, formal)
		return nil, false, modeGeneric, p.cur.skipPast(';')

	case "with":
		if _, err := p.matchKeyword("with"); err != nil {
			return nil, false, modeGeneric, err
		}
		kind, err := p.peekWord()
		if err != nil {
			return nil, false, modeGeneric, err
		}
		if !strings.EqualFold(kind, "procedure") && !strings.EqualFold(kind, "function") {
			return nil, false, modeGeneric, p.cur.skipPast(';')
		}
		if _, err := p.matchKeyword(kind); err != nil {
			return nil, false, modeGeneric, err
		}
		name, pos, err := p.readName()
		if err != nil {
			return nil, false, modeGeneric, err
		}
		detached := NewTree()
		formal := newToken(name, Formal, false, detached, pos)
		*pending = append(*pending, formal)

		if ok, err := p.matchLiteral("("); err != nil {
			return nil, false, modeGeneric, err
		} else if ok {
			if _, err := p.parseParenGroup(formal, AutomaticVariable); err != nil {
				return nil, false, modeGeneric, err
			}
		}
		return nil, false, modeGeneric, p.cur.skipPast(';')

	case "package":
		if _, err := p.matchKeyword("package"); err != nil {
			return nil, false, modeGeneric, err
		}
		tok, err := p.parseBlock(parent, Package)
		if err != nil {
			return nil, false, modeGeneric, err
		}
		if tok != nil {
			appendTokens(tok, pending)
		}
		return nil, false, modeRoot, nil

	case "procedure", "function":
		if _, err := p.matchKeyword(word); err != nil {
			return nil, false, modeGeneric, err
		}
		tok, err := p.parseSubprogram(parent, Subprogram)
		if err != nil {
			return nil, false, modeGeneric, err
		}
		if tok != nil {
			appendTokens(tok, pending)
		}
		return nil, false, modeRoot, nil

	case "task":
		if _, err := p.matchKeyword("task"); err != nil {
			return nil, false, modeGeneric, err
		}
		tok, err := p.parseBlock(parent, Task)
		if err != nil {
			return nil, false, modeGeneric, err
		}
		if tok != nil {
			appendTokens(tok, pending)
		}
		return nil, false, modeRoot, nil

	case "protected":
		if _, err := p.matchKeyword("protected"); err != nil {
			return nil, false, modeGeneric, err
		}
		tok, err := p.parseBlock(parent, Protected)
		if err != nil {
			return nil, false, modeGeneric, err
		}
		if tok != nil {
			appendTokens(tok, pending)
		}
		return nil, false, modeRoot, nil

	default:
		return nil, false, modeGeneric, p.cur.skipPast(';')
	}
}
