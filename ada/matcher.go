package ada

import "strings"

// cmp case-insensitively compares literal against the text at the
// cursor, requiring that the character following a match (if any) be
// one of whitespace, '(', ')', ':', ';', or end-of-buffer (spec §4.2).
// A null literal matches vacuously.
func cmp(buf string, literal string) bool {
	if literal == "" {
		return true
	}
	if len(buf) < len(literal) {
		return false
	}
	if !strings.EqualFold(buf[:len(literal)], literal) {
		return false
	}
	if len(buf) == len(literal) {
		return true
	}
	next := buf[len(literal)]
	switch next {
	case ' ', '\t', '(', ')', ':', ';':
		return true
	}
	return false
}

// tryMatch attempts to match word (case-insensitive, boundary-checked,
// except that a single punctuation character needs no boundary) at the
// cursor. On success it records the match's source position as the
// parser's "last match" and advances the cursor past the matched text.
func (p *Parser) tryMatch(word string) (bool, error) {
	if err := p.cur.skipWhitespace(); err != nil {
		return false, err
	}
	if p.cur.atEOF() {
		return false, nil
	}
	rem := p.cur.remaining()
	matched := cmp(rem, word)
	if !matched && len(word) == 1 && !isIdentByte(word[0]) {
		// "(" must match in "(X : T)", where an identifier follows.
		matched = strings.HasPrefix(rem, word)
	}
	if !matched {
		return false, nil
	}
	p.lastMatch = p.cur.pos()
	if err := p.cur.move(len(word)); err != nil {
		return false, err
	}
	return true, nil
}

// matchLiteral matches an arbitrary literal token (e.g. punctuation or
// a fixed word) at the cursor.
func (p *Parser) matchLiteral(s string) (bool, error) { return p.tryMatch(s) }

// matchKeyword matches a reserved word at the cursor.
func (p *Parser) matchKeyword(k string) (bool, error) { return p.tryMatch(k) }
