package ada

import "strings"

// parseBlock handles package / task / protected declarations,
// optionally type-suffixed (spec §4.5).
func (p *Parser) parseBlock(parent *Token, kind Kind) (*Token, error) {
	isSpec := true

	word, err := p.peekWord()
	if err != nil {
		return nil, err
	}
	switch {
	case strings.EqualFold(word, "body"):
		if _, err := p.matchKeyword("body"); err != nil {
			return nil, err
		}
		isSpec = false
	case strings.EqualFold(word, "type"):
		if kind != Task && kind != Protected {
			// Not allowed for this kind; caller's construct is
			// malformed or unrecognised here — fail without creating
			// a token, letting the caller recover.
			return nil, nil
		}
		if _, err := p.matchKeyword("type"); err != nil {
			return nil, err
		}
	}

	name, pos, err := p.readName()
	if err != nil {
		return nil, err
	}
	token := newToken(name, kind, isSpec, parent, pos)

	if ok, err := p.matchLiteral("("); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.parseParenGroup(token, AutomaticVariable); err != nil {
			return token, err
		}
	}

	for {
		if err := p.cur.skipWhitespace(); err != nil {
			return token, err
		}
		if p.cur.atEOF() {
			return token, nil
		}

		if ok, err := p.matchKeyword("is"); err != nil {
			return token, err
		} else if ok {
			if ok2, err := p.matchKeyword("separate"); err != nil {
				return token, err
			} else if ok2 {
				if err := p.cur.skipPast(';'); err != nil {
					return nil, err
				}
				freeToken(parent, token)
				return nil, nil
			}
			if ok2, err := p.matchKeyword("new"); err != nil {
				return token, err
			} else if ok2 {
				if err := p.cur.skipPast(';'); err != nil {
					return token, err
				}
				token.IsSpec = false
				return token, nil
			}
			if err := p.parse(modeDeclarations, token); err != nil {
				return token, err
			}
			token.IsSpec = false
			return token, nil
		}

		if ok, err := p.matchKeyword("renames"); err != nil {
			return token, err
		} else if ok {
			if err := p.cur.skipPast(';'); err != nil {
				return token, err
			}
			return token, nil
		}

		if ok, err := p.matchLiteral(";"); err != nil {
			return token, err
		} else if ok {
			token.IsSpec = true
			return token, nil
		}

		if err := p.cur.skipPastWord(); err != nil {
			return token, err
		}
	}
}
