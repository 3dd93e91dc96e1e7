package ada

import "strings"

// stepExceptions implements one iteration of Mode EXCEPTIONS, the
// `exception when ... => ...` handler region of a block/subprogram
// (spec §4.11).
func (p *Parser) stepExceptions(parent *Token) (*Token, bool, mode, error) {
	if matched, consumed, err := p.matchEnd(parent); err != nil {
		return nil, false, modeExceptions, err
	} else if consumed {
		if matched {
			return nil, true, modeExceptions, nil
		}
		return nil, false, modeExceptions, p.cur.skipPast(';')
	}

	word, err := p.peekWord()
	if err != nil {
		return nil, false, modeExceptions, err
	}

	switch strings.ToLower(word) {
	case "pragma":
		if _, err := p.matchKeyword("pragma"); err != nil {
			return nil, false, modeExceptions, err
		}
		return nil, false, modeExceptions, p.cur.skipPast(';')

	case "when":
		if _, err := p.matchKeyword("when"); err != nil {
			return nil, false, modeExceptions, err
		}
		if _, err := p.parseVariables(parent, AutomaticVariable); err != nil {
			return nil, false, modeExceptions, err
		}
		return nil, false, modeExceptions, nil
	}

	return nil, false, modeExceptions, p.cur.skipPast(';')
}
