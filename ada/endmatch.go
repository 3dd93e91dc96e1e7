package ada

import "strings"

// matchEnd tries to match a frame-closing `end ...;` at the cursor.
// It recognises the bare `end;` / `end loop;` forms, `end
// <parent-name>;`, and `end loop <parent-name>;`. consumedEnd reports
// whether an `end` keyword was consumed at all (so the caller knows
// whether to treat a non-matching `end` as belonging to a nested
// statement it must itself skip past, e.g. `end if;`/`end case;`).
func (p *Parser) matchEnd(parent *Token) (matched bool, consumedEnd bool, err error) {
	ok, err := p.matchKeyword("end")
	if err != nil || !ok {
		return false, false, err
	}
	consumedEnd = true

	if _, err := p.matchKeyword("loop"); err != nil {
		return false, true, err
	}

	if err := p.cur.skipWhitespace(); err != nil {
		return false, true, err
	}
	if p.cur.current() == ';' {
		if _, err := p.matchLiteral(";"); err != nil {
			return false, true, err
		}
		return true, true, nil
	}

	word, err := p.peekWord()
	if err != nil {
		return false, true, err
	}
	if parent.Name != "" && strings.EqualFold(word, parent.Name) {
		if _, err := p.matchKeyword(parent.Name); err != nil {
			return false, true, err
		}
		if err := p.cur.skipPast(';'); err != nil {
			return false, true, err
		}
		return true, true, nil
	}

	return false, true, nil
}
