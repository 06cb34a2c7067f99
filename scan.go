package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Operators contains the runes which scan as operator tokens.
const Operators = "+-*/^×÷−·="

type scanner struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	cfg  scanctx
}

// Scan reads calculator text and returns its tokens. Scanning stops at the
// end of the input or at a whitespace rune selected with StopOn. An empty
// input yields no tokens and no error.
func Scan(src io.RuneScanner, opts ...ScanOption) ([]Token, error) {
	cfg := defaultScan()
	for _, opt := range opts {
		cfg = opt.scanOption(cfg)
	}
	s := scanner{src: src, cfg: cfg}
	var toks []Token
	for {
		tok, err := s.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// ScanString is a shortcut to scan a string.
func ScanString(src string, opts ...ScanOption) ([]Token, error) {
	return Scan(strings.NewReader(src), opts...)
}

// readRune reads a rune from the src and updates the scanner's position info.
func (s *scanner) readRune() (rune, error) {
	r, sz, err := s.src.ReadRune()
	if sz > 0 {
		s.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the scanner's position
// info. Panics if unreading returns an error.
func (s *scanner) unreadRune() {
	if err := s.src.UnreadRune(); err != nil {
		panic(err)
	}
	s.rune--
}

// next scans the next token. At the end of the formula, the error is io.EOF.
func (s *scanner) next() (Token, error) {
	defer s.buf.Reset()
	for {
		r, err := s.readRune()
		if err != nil {
			return Token{}, err
		}
		switch {
		case unicode.IsSpace(r):
			if strings.ContainsRune(s.cfg.wseof, r) {
				return Token{}, io.EOF
			}
			continue
		case '0' <= r && r <= '9', r == '.':
			s.unreadRune()
			if err := s.scanNum(); err != nil {
				return Token{}, err
			}
			text := s.buf.String()
			sup, err := s.scanScript(IsSuperscript)
			if err != nil {
				return Token{}, err
			}
			if sup != "" {
				return Sup(text, FromScript(sup)), nil
			}
			return Num(text), nil
		case r == '_', unicode.IsLetter(r) && !IsSuperscript(r) && !IsSubscript(r):
			s.unreadRune()
			return s.scanIdent()
		case r == '√':
			return Fn("sqrt"), nil
		case r == '(':
			return Open(), nil
		case r == ')':
			return Close(), nil
		case strings.ContainsRune(Operators, r):
			return Op(string(r)), nil
		default:
			// Write the rune so that it shows up in the error message.
			s.buf.WriteRune(r)
			return Token{}, s.error("")
		}
	}
}

func (s *scanner) scanNum() error {
	var dig, dot, e, le, ed bool
	for {
		r, err := s.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if unicode.IsSpace(r) || IsSuperscript(r) || r == '(' || r == ')' {
			s.unreadRune()
			break
		}
		if r == '+' || r == '-' {
			// + or - anywhere other than immediately following an exponent
			// marker means a new token, as it is an operator.
			if !le {
				s.unreadRune()
				break
			}
			le = false
			s.buf.WriteRune(r)
			continue
		}
		if strings.ContainsRune(Operators, r) {
			s.unreadRune()
			break
		}
		s.buf.WriteRune(r)
		switch r {
		case '.':
			if dot || e {
				return s.error("number")
			}
			dot = true
			le = false
		case 'e', 'E':
			if !dig || e {
				return s.error("number")
			}
			e = true
			le = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return s.error("number")
		}
	}
	if (!dig && !ed) || (e && !ed) {
		return s.error("number")
	}
	return nil
}

// scanIdent scans a variable or function name along with any subscript or
// superscript attached to it. An underscore starts an ASCII subscript.
func (s *scanner) scanIdent() (Token, error) {
	var under bool
	var base string
	for {
		r, err := s.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		if r == '_' && !under && s.buf.Len() > 0 {
			under = true
			base = s.buf.String()
			s.buf.Reset()
			continue
		}
		if IsSuperscript(r) || IsSubscript(r) {
			s.unreadRune()
			break
		}
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			s.buf.WriteRune(r)
			continue
		}
		s.unreadRune()
		break
	}
	if under {
		if s.buf.Len() == 0 {
			s.buf.WriteString(base + "_")
			return Token{}, s.error("subscript")
		}
		return Sub(base, s.buf.String()), nil
	}
	name := s.buf.String()
	sub, err := s.scanScript(IsSubscript)
	if err != nil {
		return Token{}, err
	}
	if sub != "" {
		return Sub(name, FromScript(sub)), nil
	}
	sup, err := s.scanScript(IsSuperscript)
	if err != nil {
		return Token{}, err
	}
	if sup != "" {
		return Sup(name, FromScript(sup)), nil
	}
	if s.cfg.funcs[strings.ToLower(name)] {
		return Fn(name), nil
	}
	return Var(name), nil
}

// scanScript scans a run of runes for which is returns true.
func (s *scanner) scanScript(is func(rune) bool) (string, error) {
	var b strings.Builder
	for {
		r, err := s.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return b.String(), nil
			}
			return "", err
		}
		if !is(r) {
			s.unreadRune()
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}

func (s *scanner) error(kind string) error {
	return &LexError{
		Text: s.buf.String(),
		Kind: kind,
		Col:  s.rune,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token being scanned when the invalid rune was encountered,
	// plus the invalid rune.
	Text string
	// Kind is the type of token being scanned. This may be "number",
	// "subscript", or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the position of the error. For text, it is the number of runes
	// scanned up to and including the error. For token lists, it is the
	// 1-based index of the offending token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
