package ada

// parseType handles type and subtype declarations (spec §4.8).
func (p *Parser) parseType(parent *Token, kind Kind) (*Token, error) {
	name, pos, err := p.readName()
	if err != nil {
		return nil, err
	}
	token := newToken(name, kind, false, parent, pos)

	if ok, err := p.matchLiteral("("); err != nil {
		return token, err
	} else if ok {
		if _, err := p.parseParenGroup(token, AutomaticVariable); err != nil {
			return token, err
		}
	}

	if ok, err := p.matchKeyword("is"); err != nil {
		return token, err
	} else if ok {
		if err := p.cur.skipWhitespace(); err != nil {
			return token, err
		}
		switch {
		case p.cur.current() == '(':
			if _, err := p.matchLiteral("("); err != nil {
				return token, err
			}
			if _, err := p.parseEnumLiterals(token); err != nil {
				return token, err
			}
		default:
			if isRec, err := p.kwIs("record"); err != nil {
				return token, err
			} else if isRec {
				if _, err := p.matchKeyword("record"); err != nil {
					return token, err
				}
				if err := p.parseRecordBody(token); err != nil {
					return token, err
				}
			}
			// Otherwise: a full type definition (derived type,
			// array/access type, ...) with no internal structure this
			// indexer cares about; the common skip to ';' below
			// consumes it.
		}
	} else {
		token.IsSpec = true
	}

	if err := p.cur.skipPast(';'); err != nil {
		return token, err
	}
	return token, nil
}

// parseRecordBody parses record components until `end record`,
// tolerating variant parts: `case ... is` and `when ... =>` are
// skipped, but the component declarations inside a variant's arms
// continue to be parsed as RecordComponent children of the record
// type (spec §4.8 step 2).
func (p *Parser) parseRecordBody(token *Token) error {
	for {
		if err := p.cur.skipWhitespace(); err != nil {
			return err
		}
		if p.cur.atEOF() {
			return nil
		}
		if ok, err := p.matchKeyword("end"); err != nil {
			return err
		} else if ok {
			if _, err := p.matchKeyword("record"); err != nil {
				return err
			}
			return nil
		}
		if ok, err := p.matchKeyword("case"); err != nil {
			return err
		} else if ok {
			if err := p.cur.skipPastKeyword("is"); err != nil {
				return err
			}
			continue
		}
		if ok, err := p.matchKeyword("when"); err != nil {
			return err
		} else if ok {
			if err := p.cur.skipPastString("=>"); err != nil {
				return err
			}
			continue
		}
		if _, err := p.parseVariables(token, RecordComponent); err != nil {
			return err
		}
	}
}
