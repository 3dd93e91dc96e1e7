package ada

import "strings"

// peekIdentColon reports whether the cursor sits at `<ident> :` (not
// `<ident> :=`) on the current physical line — an Ada statement
// label — without consuming anything.
func (p *Parser) peekIdentColon() (string, bool, error) {
	w, err := p.peekWord()
	if err != nil || w == "" {
		return "", false, err
	}
	switch strings.ToLower(w) {
	case "declare", "begin", "for", "while", "loop", "end", "exception",
		"select", "or", "else", "if", "elsif", "case", "when", "accept",
		"pragma", "with", "use", "generic", "package", "procedure",
		"function", "task", "protected", "entry", "private", "type",
		"subtype", "renames":
		return w, false, nil
	}
	line := p.cur.line
	i := p.cur.offset + len(w)
	for i < len(line) && isAdaWhitespace(line[i]) {
		i++
	}
	if i < len(line) && line[i] == ':' && !(i+1 < len(line) && line[i+1] == '=') {
		return w, true, nil
	}
	return w, false, nil
}

// stepCode implements one iteration of Mode CODE, the executable
// region of a block/subprogram/loop (spec §4.10).
func (p *Parser) stepCode(parent *Token) (*Token, bool, mode, error) {
	if matched, consumed, err := p.matchEnd(parent); err != nil {
		return nil, false, modeCode, err
	} else if consumed {
		if matched {
			return nil, true, modeCode, nil
		}
		return nil, false, modeCode, p.cur.skipPast(';')
	}

	word, err := p.peekWord()
	if err != nil {
		return nil, false, modeCode, err
	}

	switch strings.ToLower(word) {
	case "declare":
		if _, err := p.matchKeyword("declare"); err != nil {
			return nil, false, modeCode, err
		}
		anon := newToken("", Anonymous, false, parent, p.lastMatch)
		if err := p.parse(modeDeclarations, anon); err != nil {
			return nil, false, modeCode, err
		}
		return nil, false, modeCode, nil

	case "begin":
		if _, err := p.matchKeyword("begin"); err != nil {
			return nil, false, modeCode, err
		}
		anon := newToken("", Anonymous, false, parent, p.lastMatch)
		if err := p.parse(modeCode, anon); err != nil {
			return nil, false, modeCode, err
		}
		return nil, false, modeCode, nil

	case "exception":
		if _, err := p.matchKeyword("exception"); err != nil {
			return nil, false, modeCode, err
		}
		return nil, false, modeExceptions, nil

	case "accept":
		if _, err := p.matchKeyword("accept"); err != nil {
			return nil, false, modeCode, err
		}
		// The entry itself was already declared (and tagged) where its
		// spec lives; an accept statement only re-opens it to give its
		// parameters a body scope, so the entry token parseSubprogram
		// builds here never joins the tree — only its parameter
		// children, reparented onto the surrounding code, do.
		detached := NewTree()
		entryTok, err := p.parseSubprogram(detached, Entry)
		if err != nil {
			return nil, false, modeCode, err
		}
		if entryTok != nil {
			appendTokens(parent, &entryTok.Children)
		}
		return nil, false, modeCode, nil

	case "for":
		if _, err := p.matchKeyword("for"); err != nil {
			return nil, false, modeCode, err
		}
		loopTok := newToken("loop", Anonymous, false, parent, p.lastMatch)
		if err := p.parseLoopVar(loopTok); err != nil {
			return nil, false, modeCode, err
		}
		if err := p.parse(modeCode, loopTok); err != nil {
			return nil, false, modeCode, err
		}
		return nil, false, modeCode, nil

	case "while":
		if _, err := p.matchKeyword("while"); err != nil {
			return nil, false, modeCode, err
		}
		loopTok := newToken("loop", Anonymous, false, parent, p.lastMatch)
		if err := p.cur.skipPastKeyword("loop"); err != nil {
			return nil, false, modeCode, err
		}
		if err := p.parse(modeCode, loopTok); err != nil {
			return nil, false, modeCode, err
		}
		return nil, false, modeCode, nil

	case "loop":
		if _, err := p.matchKeyword("loop"); err != nil {
			return nil, false, modeCode, err
		}
		loopTok := newToken("loop", Anonymous, false, parent, p.lastMatch)
		if err := p.parse(modeCode, loopTok); err != nil {
			return nil, false, modeCode, err
		}
		return nil, false, modeCode, nil

	case "select", "or", "else":
		if _, err := p.matchKeyword(word); err != nil {
			return nil, false, modeCode, err
		}
		return nil, false, modeCode, nil

	case "if", "elsif":
		if _, err := p.matchKeyword(word); err != nil {
			return nil, false, modeCode, err
		}
		return nil, false, modeCode, p.cur.skipPastKeyword("then")

	case "case":
		if _, err := p.matchKeyword("case"); err != nil {
			return nil, false, modeCode, err
		}
		return nil, false, modeCode, p.cur.skipPastKeyword("is")

	case "when":
		if _, err := p.matchKeyword("when"); err != nil {
			return nil, false, modeCode, err
		}
		return nil, false, modeCode, p.cur.skipPastString("=>")
	}

	if p.cur.current() == '<' {
		if ok, err := p.matchLiteral("<<"); err != nil {
			return nil, false, modeCode, err
		} else if ok {
			name, pos, err := p.readName()
			if err != nil {
				return nil, false, modeCode, err
			}
			newToken(name, Label, false, parent, pos)
			return nil, false, modeCode, p.cur.skipPastString(">>")
		}
	}

	if name, isLabel, err := p.peekIdentColon(); err != nil {
		return nil, false, modeCode, err
	} else if isLabel {
		pos := p.cur.pos()
		if _, err := p.matchLiteral(name); err != nil {
			return nil, false, modeCode, err
		}
		if _, err := p.matchLiteral(":"); err != nil {
			return nil, false, modeCode, err
		}
		label := newToken(name, Identifier, false, parent, pos)

		next, err := p.peekWord()
		if err != nil {
			return nil, false, modeCode, err
		}
		switch strings.ToLower(next) {
		case "declare":
			if _, err := p.matchKeyword("declare"); err != nil {
				return nil, false, modeCode, err
			}
			return nil, false, modeCode, p.parse(modeDeclarations, label)
		case "begin":
			if _, err := p.matchKeyword("begin"); err != nil {
				return nil, false, modeCode, err
			}
			return nil, false, modeCode, p.parse(modeCode, label)
		case "for":
			if _, err := p.matchKeyword("for"); err != nil {
				return nil, false, modeCode, err
			}
			if err := p.parseLoopVar(label); err != nil {
				return nil, false, modeCode, err
			}
			return nil, false, modeCode, p.parse(modeCode, label)
		case "while":
			if _, err := p.matchKeyword("while"); err != nil {
				return nil, false, modeCode, err
			}
			if err := p.cur.skipPastKeyword("loop"); err != nil {
				return nil, false, modeCode, err
			}
			return nil, false, modeCode, p.parse(modeCode, label)
		case "loop":
			if _, err := p.matchKeyword("loop"); err != nil {
				return nil, false, modeCode, err
			}
			return nil, false, modeCode, p.parse(modeCode, label)
		default:
			freeToken(parent, label)
			return nil, false, modeCode, p.cur.skipPast(';')
		}
	}

	return nil, false, modeCode, p.cur.skipPast(';')
}
