package ada

// parseSubprogram handles procedure/function/entry declarations
// (spec §4.6).
func (p *Parser) parseSubprogram(parent *Token, kind Kind) (*Token, error) {
	name, pos, err := p.readName()
	if err != nil {
		return nil, err
	}
	token := newToken(name, kind, true, parent, pos)

	if ok, err := p.matchLiteral("("); err != nil {
		return token, err
	} else if ok {
		params, err := p.parseParenGroup(token, AutomaticVariable)
		if err != nil {
			return token, err
		}
		if kind == Entry && len(params) == 0 {
			if ok2, err := p.matchLiteral("("); err != nil {
				return token, err
			} else if ok2 {
				if _, err := p.parseParenGroup(token, AutomaticVariable); err != nil {
					return token, err
				}
			}
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

		if ok, err := p.matchKeyword("do"); err != nil {
			return token, err
		} else if ok {
			if err := p.parse(modeCode, token); err != nil {
				return token, err
			}
			token.IsSpec = false
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
