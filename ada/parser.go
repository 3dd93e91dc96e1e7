package ada

import (
	"context"
	"strings"
)

// mode is the parser's current phase within one declarative frame
// (spec §4.4): ROOT, GENERIC, DECLARATIONS, CODE, EXCEPTIONS.
type mode int

const (
	modeRoot mode = iota
	modeGeneric
	modeDeclarations
	modeCode
	modeExceptions
)

// Parser is a mode-switched recursive descent over one Ada
// compilation unit. It owns the cursor, the shared "last match"
// position used to attach anonymous tokens to the keyword that
// introduced them, and the root of the tree it builds.
type Parser struct {
	cur       *Cursor
	lastMatch Position
	root      *Token
	ctx       context.Context
}

func newParser(ctx context.Context, cur *Cursor) *Parser {
	return &Parser{cur: cur, root: NewTree(), ctx: ctx}
}

// parse runs one declarative frame starting in the given mode with the
// given implicit parent, until the enclosing construct ends (`end
// <parent-name>;` or `end loop <parent-name>;`) or input is exhausted.
// Generic formals collected while this frame is in GENERIC mode are
// local to the frame and attached to the next subject created in it.
func (p *Parser) parse(m mode, parent *Token) error {
	var pending []*Token

	for {
		if m == modeRoot && p.ctx != nil {
			if err := p.ctx.Err(); err != nil {
				return err
			}
		}
		if err := p.cur.skipWhitespace(); err != nil {
			if err == errDeepEOF {
				return nil
			}
			return err
		}
		if p.cur.atEOF() {
			return nil
		}

		// Universal prelude: pragma/with/use at statement start are
		// skipped wholesale in every mode except GENERIC, which handles
		// its own `with`.
		if m != modeGeneric {
			if ok, err := p.consumeSkippable(); err != nil {
				return err
			} else if ok {
				continue
			}
		}

		var (
			done     bool
			next     mode
			newParent *Token
			err      error
		)
		switch m {
		case modeRoot:
			newParent, done, next, err = p.stepRoot(parent, &pending)
		case modeGeneric:
			newParent, done, next, err = p.stepGeneric(parent, &pending)
		case modeDeclarations:
			newParent, done, next, err = p.stepDeclarations(parent, &pending)
		case modeCode:
			newParent, done, next, err = p.stepCode(parent)
		case modeExceptions:
			newParent, done, next, err = p.stepExceptions(parent)
		}
		if err != nil {
			if err == errDeepEOF {
				return nil
			}
			return err
		}
		if done {
			return nil
		}
		m = next
		if newParent != nil {
			parent = newParent
		}
	}
}

// consumeSkippable recognises pragma/with/use at statement start (not
// inside GENERIC, which has its own `with` handling) and skips to the
// terminating `;`.
func (p *Parser) consumeSkippable() (bool, error) {
	for _, kw := range []string{"pragma", "with", "use"} {
		ok, err := p.matchKeyword(kw)
		if err != nil {
			return false, err
		}
		if ok {
			return true, p.cur.skipPast(';')
		}
	}
	return false, nil
}

// peekWord returns the next word at the cursor without consuming it.
func (p *Parser) peekWord() (string, error) {
	if err := p.cur.skipWhitespace(); err != nil {
		return "", err
	}
	return p.cur.peekWord(), nil
}

// readName reads an Ada declaration name: a contiguous run of any
// characters other than whitespace, '(' and ';'. Dotted names such as
// Ada.Text_IO are read whole, and a ')' or ':' written directly after
// the name becomes part of it.
func (p *Parser) readName() (string, Position, error) {
	if err := p.cur.skipWhitespace(); err != nil {
		return "", Position{}, err
	}
	pos := p.cur.pos()
	var sb strings.Builder
	for !p.cur.atEOF() {
		b := p.cur.current()
		if b == 0 || isAdaWhitespace(b) || b == '(' || b == ';' {
			break
		}
		sb.WriteByte(b)
		if err := p.cur.move(1); err != nil {
			return "", Position{}, err
		}
	}
	return sb.String(), pos, nil
}

// kwIs reports whether the next word at the cursor equals kw
// (case-insensitively) without consuming it.
func (p *Parser) kwIs(kw string) (bool, error) {
	w, err := p.peekWord()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(w, kw), nil
}
