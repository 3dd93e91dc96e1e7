package ada

import (
	"errors"
	"strings"
)

// errDeepEOF is returned when the cursor has observed 1000 consecutive
// premature end-of-input indications, a bounded-retry safety net
// against infinite loops in structurally broken input (spec §4.1,
// §4.13, §7). The driver treats it as a normal, recoverable unwind:
// whatever tree has been built so far is still emitted.
var errDeepEOF = errors.New("ada: abandoned parse after 1000 premature end-of-input polls")

const maxEOFPolls = 1000

// Cursor maintains a current physical line, a byte offset within it, a
// line number, and an opaque file position, over an abstract
// LineReader (spec §4.1). It is single-threaded state for the
// duration of one file and is not safe for concurrent use.
type Cursor struct {
	reader LineReader

	line     string
	offset   int
	lineNo   int
	filePos  int64
	eof      bool
	eofPolls int
}

func newCursor(r LineReader) *Cursor {
	return &Cursor{reader: r}
}

// pos returns the source position of the cursor's current offset.
func (c *Cursor) pos() Position {
	return Position{Line: c.lineNo, Offset: c.filePos + int64(c.offset)}
}

func (c *Cursor) atEOF() bool { return c.eof }

// readNewLine refills the line buffer from the reader. It skips empty
// physical lines, and on repeated end-of-input indications increments
// a bailout counter, returning errDeepEOF once it reaches 1000.
func (c *Cursor) readNewLine() error {
	for {
		line, ok := c.reader.ReadLine()
		if !ok {
			c.eof = true
			c.line = ""
			c.offset = 0
			c.eofPolls++
			if c.eofPolls >= maxEOFPolls {
				return errDeepEOF
			}
			return nil
		}
		c.eofPolls = 0
		c.lineNo = c.reader.SourceLineNumber()
		c.filePos = c.reader.InputFilePosition()
		c.offset = 0
		if strings.TrimSpace(line) == "" {
			continue
		}
		c.line = line
		c.eof = false
		return nil
	}
}

func (c *Cursor) ensureInit() error {
	if c.line == "" && c.offset == 0 && c.lineNo == 0 && !c.eof {
		return c.readNewLine()
	}
	return nil
}

// current returns the byte at the cursor, or 0 past end-of-line/EOF.
func (c *Cursor) current() byte {
	if c.eof || c.offset >= len(c.line) {
		return 0
	}
	return c.line[c.offset]
}

// remaining returns the unconsumed tail of the current line.
func (c *Cursor) remaining() string {
	if c.eof || c.offset > len(c.line) {
		return ""
	}
	return c.line[c.offset:]
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isAdaWhitespace(b byte) bool {
	return b == ' ' || b == '\t'
}

// atCommentStart reports whether the cursor sits at the start of an
// Ada line comment (`--`), recognised only when preceded by a
// non-identifier character or column 0 (so `Foo--bar` is one
// identifier, never a comment).
func (c *Cursor) atCommentStart() bool {
	if c.offset+1 >= len(c.line) {
		return false
	}
	if c.line[c.offset] != '-' || c.line[c.offset+1] != '-' {
		return false
	}
	if c.offset == 0 {
		return true
	}
	return !isIdentByte(c.line[c.offset-1])
}

// consumeComment advances past a trailing `--` comment by reading the
// next physical line, if the cursor currently sits at one. Comment
// consumption is idempotent: repeated calls are safe.
func (c *Cursor) consumeComment() error {
	for !c.eof && c.atCommentStart() {
		if err := c.readNewLine(); err != nil {
			return err
		}
	}
	return nil
}

// move advances the offset by n bytes; if it reaches end-of-line it
// transparently reads the next line. Comment-aware: consumes any
// comment before and after advancing.
func (c *Cursor) move(n int) error {
	if err := c.consumeComment(); err != nil {
		return err
	}
	for n > 0 && !c.eof {
		remain := len(c.line) - c.offset
		if remain <= 0 {
			if err := c.readNewLine(); err != nil {
				return err
			}
			continue
		}
		step := n
		if step > remain {
			step = remain
		}
		c.offset += step
		n -= step
		if c.offset >= len(c.line) {
			if err := c.readNewLine(); err != nil {
				return err
			}
		}
	}
	return c.consumeComment()
}

// skipWhitespace advances past horizontal whitespace and blank lines,
// comment-aware.
func (c *Cursor) skipWhitespace() error {
	if err := c.ensureInit(); err != nil {
		return err
	}
	for {
		if err := c.consumeComment(); err != nil {
			return err
		}
		if c.eof {
			return nil
		}
		if c.offset >= len(c.line) {
			if err := c.readNewLine(); err != nil {
				return err
			}
			continue
		}
		if isAdaWhitespace(c.line[c.offset]) {
			c.offset++
			continue
		}
		return nil
	}
}

// skipUntilWhitespace advances the cursor to the next whitespace
// boundary (or end-of-line), comment-aware.
func (c *Cursor) skipUntilWhitespace() error {
	if err := c.consumeComment(); err != nil {
		return err
	}
	for !c.eof && c.offset < len(c.line) && !isAdaWhitespace(c.line[c.offset]) {
		if err := c.move(1); err != nil {
			return err
		}
	}
	return c.consumeComment()
}

// skipPastWord advances the cursor past one contiguous identifier-ish
// word (letters, digits, underscore), comment-aware. If the cursor
// does not sit on a word character it advances by one byte.
func (c *Cursor) skipPastWord() error {
	if err := c.skipWhitespace(); err != nil {
		return err
	}
	if c.eof {
		return nil
	}
	if !isIdentByte(c.current()) {
		return c.move(1)
	}
	for !c.eof && isIdentByte(c.current()) {
		if err := c.move(1); err != nil {
			return err
		}
	}
	return nil
}

// peekWord returns the identifier-ish word (letters, digits, underscore)
// starting exactly at the cursor, without consuming it, or "" when the
// cursor is not on a word character. It skips no whitespace or
// comments; callers call skipWhitespace first.
func (c *Cursor) peekWord() string {
	if c.eof || c.offset >= len(c.line) {
		return ""
	}
	i := c.offset
	for i < len(c.line) && isIdentByte(c.line[i]) {
		i++
	}
	return c.line[c.offset:i]
}

// skipPast advances until just after the first unconsumed occurrence
// of literal (a single character such as ";" or ")"), scanning across
// lines, comment-aware.
func (c *Cursor) skipPast(literal byte) error {
	for !c.eof {
		if err := c.consumeComment(); err != nil {
			return err
		}
		if c.eof {
			return nil
		}
		if c.offset >= len(c.line) {
			if err := c.readNewLine(); err != nil {
				return err
			}
			continue
		}
		if c.line[c.offset] == literal {
			return c.move(1)
		}
		if err := c.move(1); err != nil {
			return err
		}
	}
	return nil
}

// skipPastString scans forward until just after the first occurrence
// of the literal multi-byte string s (e.g. "=>"), comment-aware, across
// lines. Parenthesis nesting is not tracked.
func (c *Cursor) skipPastString(s string) error {
	for !c.eof {
		if err := c.consumeComment(); err != nil {
			return err
		}
		if c.eof {
			return nil
		}
		if c.offset >= len(c.line) {
			if err := c.readNewLine(); err != nil {
				return err
			}
			continue
		}
		if strings.HasPrefix(c.remaining(), s) {
			return c.move(len(s))
		}
		if err := c.move(1); err != nil {
			return err
		}
	}
	return nil
}

// skipPastKeyword scans forward, word by word, until a word
// case-insensitively equal to kw has been consumed.
func (c *Cursor) skipPastKeyword(kw string) error {
	for !c.eof {
		if err := c.skipWhitespace(); err != nil {
			return err
		}
		if c.eof {
			return nil
		}
		w := c.peekWord()
		if w == "" {
			if err := c.move(1); err != nil {
				return err
			}
			continue
		}
		if err := c.skipPastWord(); err != nil {
			return err
		}
		if strings.EqualFold(w, kw) {
			return nil
		}
	}
	return nil
}
