package ada

import "strings"

// stepRoot implements one iteration of Mode ROOT (spec §4.4 intro —
// the compilation-unit level). It may rebind parent (for `separate`)
// or switch to GENERIC.
func (p *Parser) stepRoot(parent *Token, pending *[]*Token) (*Token, bool, mode, error) {
	word, err := p.peekWord()
	if err != nil {
		return nil, false, modeRoot, err
	}

	switch strings.ToLower(word) {
	case "package":
		if _, err := p.matchKeyword("package"); err != nil {
			return nil, false, modeRoot, err
		}
		tok, err := p.parseBlock(parent, Package)
		if err != nil {
			return nil, false, modeRoot, err
		}
		if tok != nil {
			appendTokens(tok, pending)
		}
		return nil, false, modeRoot, nil

	case "procedure", "function":
		if _, err := p.matchKeyword(word); err != nil {
			return nil, false, modeRoot, err
		}
		tok, err := p.parseSubprogram(parent, Subprogram)
		if err != nil {
			return nil, false, modeRoot, err
		}
		if tok != nil {
			appendTokens(tok, pending)
		}
		return nil, false, modeRoot, nil

	case "task":
		if _, err := p.matchKeyword("task"); err != nil {
			return nil, false, modeRoot, err
		}
		tok, err := p.parseBlock(parent, Task)
		if err != nil {
			return nil, false, modeRoot, err
		}
		if tok != nil {
			appendTokens(tok, pending)
		}
		return nil, false, modeRoot, nil

	case "protected":
		if _, err := p.matchKeyword("protected"); err != nil {
			return nil, false, modeRoot, err
		}
		tok, err := p.parseBlock(parent, Protected)
		if err != nil {
			return nil, false, modeRoot, err
		}
		if tok != nil {
			appendTokens(tok, pending)
		}
		return nil, false, modeRoot, nil

	case "generic":
		if _, err := p.matchKeyword("generic"); err != nil {
			return nil, false, modeRoot, err
		}
		return nil, false, modeGeneric, nil

	case "separate":
		if _, err := p.matchKeyword("separate"); err != nil {
			return nil, false, modeRoot, err
		}
		if ok, err := p.matchLiteral("("); err != nil {
			return nil, false, modeRoot, err
		} else if !ok {
			// Malformed: recover by skipping to the statement end.
			return nil, false, modeRoot, p.cur.skipPast(';')
		}
		name, pos, err := p.readName()
		if err != nil {
			return nil, false, modeRoot, err
		}
		if _, err := p.matchLiteral(")"); err != nil {
			return nil, false, modeRoot, err
		}
		sentinel := newToken(name, Separate, false, parent, pos)
		return sentinel, false, modeRoot, nil

	default:
		return nil, false, modeRoot, p.cur.skipPast(';')
	}
}
