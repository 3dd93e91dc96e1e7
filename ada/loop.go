package ada

// parseLoopVar reads a single word as a `for` loop's iterator name,
// creates an AutomaticVariable child of parent (the loop token), and
// advances the cursor past the enclosing `loop` keyword (spec §4.9).
func (p *Parser) parseLoopVar(parent *Token) error {
	name, pos, err := p.readName()
	if err != nil {
		return err
	}
	newToken(name, AutomaticVariable, false, parent, pos)
	return p.cur.skipPastKeyword("loop")
}
