package ada

import "strings"

// stepDeclarations implements one iteration of Mode DECLARATIONS, the
// declarative region of a block/subprogram (spec §4.4).
func (p *Parser) stepDeclarations(parent *Token, pending *[]*Token) (*Token, bool, mode, error) {
	if matched, consumed, err := p.matchEnd(parent); err != nil {
		return nil, false, modeDeclarations, err
	} else if consumed {
		if matched {
			return nil, true, modeDeclarations, nil
		}
		return nil, false, modeDeclarations, p.cur.skipPast(';')
	}

	word, err := p.peekWord()
	if err != nil {
		return nil, false, modeDeclarations, err
	}

	switch strings.ToLower(word) {
	case "package":
		if _, err := p.matchKeyword("package"); err != nil {
			return nil, false, modeDeclarations, err
		}
		tok, err := p.parseBlock(parent, Package)
		if err != nil {
			return nil, false, modeDeclarations, err
		}
		if tok != nil {
			appendTokens(tok, pending)
		}
		return nil, false, modeDeclarations, nil

	case "procedure", "function":
		if _, err := p.matchKeyword(word); err != nil {
			return nil, false, modeDeclarations, err
		}
		tok, err := p.parseSubprogram(parent, Subprogram)
		if err != nil {
			return nil, false, modeDeclarations, err
		}
		if tok != nil {
			appendTokens(tok, pending)
		}
		return nil, false, modeDeclarations, nil

	case "task":
		if _, err := p.matchKeyword("task"); err != nil {
			return nil, false, modeDeclarations, err
		}
		tok, err := p.parseBlock(parent, Task)
		if err != nil {
			return nil, false, modeDeclarations, err
		}
		if tok != nil {
			appendTokens(tok, pending)
		}
		return nil, false, modeDeclarations, nil

	case "protected":
		if _, err := p.matchKeyword("protected"); err != nil {
			return nil, false, modeDeclarations, err
		}
		tok, err := p.parseBlock(parent, Protected)
		if err != nil {
			return nil, false, modeDeclarations, err
		}
		if tok != nil {
			appendTokens(tok, pending)
		}
		return nil, false, modeDeclarations, nil

	case "generic":
		if _, err := p.matchKeyword("generic"); err != nil {
			return nil, false, modeDeclarations, err
		}
		return nil, false, modeGeneric, nil

	case "type":
		if _, err := p.matchKeyword("type"); err != nil {
			return nil, false, modeDeclarations, err
		}
		if _, err := p.parseType(parent, Type); err != nil {
			return nil, false, modeDeclarations, err
		}
		return nil, false, modeDeclarations, nil

	case "subtype":
		if _, err := p.matchKeyword("subtype"); err != nil {
			return nil, false, modeDeclarations, err
		}
		if _, err := p.parseType(parent, Subtype); err != nil {
			return nil, false, modeDeclarations, err
		}
		return nil, false, modeDeclarations, nil

	case "begin":
		if _, err := p.matchKeyword("begin"); err != nil {
			return nil, false, modeDeclarations, err
		}
		return nil, false, modeCode, nil

	case "entry":
		if _, err := p.matchKeyword("entry"); err != nil {
			return nil, false, modeDeclarations, err
		}
		tok, err := p.parseSubprogram(parent, Entry)
		if err != nil {
			return nil, false, modeDeclarations, err
		}
		if tok != nil {
			appendTokens(tok, pending)
		}
		return nil, false, modeDeclarations, nil

	case "private":
		if _, err := p.matchKeyword("private"); err != nil {
			return nil, false, modeDeclarations, err
		}
		parent.IsPrivate = true
		return nil, false, modeDeclarations, nil

	case "for":
		if _, err := p.matchKeyword("for"); err != nil {
			return nil, false, modeDeclarations, err
		}
		if err := p.cur.skipPastKeyword("use"); err != nil {
			return nil, false, modeDeclarations, err
		}
		if isRec, err := p.kwIs("record"); err != nil {
			return nil, false, modeDeclarations, err
		} else if isRec {
			if _, err := p.matchKeyword("record"); err != nil {
				return nil, false, modeDeclarations, err
			}
			if err := p.cur.skipPastKeyword("record"); err != nil {
				return nil, false, modeDeclarations, err
			}
		}
		return nil, false, modeDeclarations, p.cur.skipPast(';')

	default:
		if _, err := p.parseVariables(parent, Variable); err != nil {
			return nil, false, modeDeclarations, err
		}
		return nil, false, modeDeclarations, nil
	}
}
