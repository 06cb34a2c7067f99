package calculator

// Formula is the plain calculator's editing state: a flat token list and a
// cursor that sits between tokens. The zero value is an empty formula.
type Formula struct {
	toks   []Token
	cursor int
}

// Tokens returns a copy of the formula's tokens.
func (f *Formula) Tokens() []Token {
	return append([]Token(nil), f.toks...)
}

// Len returns the number of tokens.
func (f *Formula) Len() int { return len(f.toks) }

// Cursor returns the cursor offset, in [0, Len()].
func (f *Formula) Cursor() int { return f.cursor }

// InsertToken inserts tok at the cursor and moves the cursor past it.
func (f *Formula) InsertToken(tok Token) {
	f.InsertTokens(tok)
}

// InsertTokens inserts toks at the cursor and moves the cursor past them.
func (f *Formula) InsertTokens(toks ...Token) {
	if len(toks) == 0 {
		return
	}
	r := make([]Token, 0, len(f.toks)+len(toks))
	r = append(r, f.toks[:f.cursor]...)
	r = append(r, toks...)
	r = append(r, f.toks[f.cursor:]...)
	f.toks = r
	f.cursor += len(toks)
}

// DeleteToken removes the token before the cursor. It does nothing at the
// start of the formula.
func (f *Formula) DeleteToken() {
	if f.cursor == 0 {
		return
	}
	r := make([]Token, 0, len(f.toks)-1)
	r = append(r, f.toks[:f.cursor-1]...)
	r = append(r, f.toks[f.cursor:]...)
	f.toks = r
	f.cursor--
}

// MoveCursorLeft moves the cursor one token left, if possible.
func (f *Formula) MoveCursorLeft() {
	if f.cursor > 0 {
		f.cursor--
	}
}

// MoveCursorRight moves the cursor one token right, if possible.
func (f *Formula) MoveCursorRight() {
	if f.cursor < len(f.toks) {
		f.cursor++
	}
}

// SetCursorPosition moves the cursor to pos, clamped to [0, Len()].
func (f *Formula) SetCursorPosition(pos int) {
	switch {
	case pos < 0:
		pos = 0
	case pos > len(f.toks):
		pos = len(f.toks)
	}
	f.cursor = pos
}

// Clear removes all tokens.
func (f *Formula) Clear() {
	f.toks = nil
	f.cursor = 0
}

// Display returns the formula as it appears on screen, with tokens separated
// by spaces.
func (f *Formula) Display() string {
	var b []byte
	for i, tok := range f.toks {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, tok.Display()...)
	}
	return string(b)
}

// Evaluate parses and evaluates the formula with the given variable values.
func (f *Formula) Evaluate(vars map[string]float64) (float64, error) {
	return Evaluate(f.toks, vars)
}
