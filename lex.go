package calculator

import (
	"strconv"
	"strings"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

// describe names the token for error messages.
func (t lexToken) describe() string {
	if t.kind == tokenEOF {
		return "end of input"
	}
	return strconv.Quote(t.text)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a numeral.
	tokenNum
	// tokenIdent is a variable name.
	tokenIdent
	// tokenFunc is a function name.
	tokenFunc
	// tokenOp is an arithmetic operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenEquals is the assignment sign.
	tokenEquals
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenFunc:
		return "Func"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenEquals:
		return "Equals"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// glyphs maps display operator glyphs to the ASCII operators the parser
// understands.
var glyphs = strings.NewReplacer(
	"×", "*",
	"÷", "/",
	"−", "-",
	"·", "*",
)

// lex converts user tokens into the parser's token stream, which always ends
// with an EOF token. Positions are 1-based token indices.
func lex(toks []Token) ([]lexToken, error) {
	r := make([]lexToken, 0, len(toks)+1)
	for i, tok := range toks {
		pos := i + 1
		switch tok.Kind {
		case TokenNumber:
			if !IsNumeral(tok.Text) {
				return nil, &LexError{Text: tok.Text, Kind: "number", Col: pos}
			}
			r = append(r, lexToken{text: tok.Text, kind: tokenNum, pos: pos})
		case TokenOperator:
			text := glyphs.Replace(strings.TrimSpace(tok.Text))
			switch text {
			case "=":
				r = append(r, lexToken{text: text, kind: tokenEquals, pos: pos})
			case "(":
				r = append(r, lexToken{text: text, kind: tokenOpen, pos: pos})
			case ")":
				r = append(r, lexToken{text: text, kind: tokenClose, pos: pos})
			default:
				r = append(r, lexToken{text: text, kind: tokenOp, pos: pos})
			}
		case TokenFunction:
			r = append(r, lexToken{text: tok.Text, kind: tokenFunc, pos: pos})
		case TokenVariable:
			r = append(r, lexToken{text: tok.Text, kind: tokenIdent, pos: pos})
		case TokenOpenParen:
			r = append(r, lexToken{text: "(", kind: tokenOpen, pos: pos})
		case TokenCloseParen:
			r = append(r, lexToken{text: ")", kind: tokenClose, pos: pos})
		case TokenSubscript:
			r = append(r, lexToken{text: tok.Text + FromScript(tok.Script), kind: tokenIdent, pos: pos})
		case TokenSuperscript:
			base := lexToken{text: tok.Text, kind: tokenIdent, pos: pos}
			if IsNumeral(tok.Text) {
				base.kind = tokenNum
			}
			r = append(r,
				base,
				lexToken{text: "^", kind: tokenOp, pos: pos},
				lexToken{text: superscriptNumeral(tok.Script), kind: tokenNum, pos: pos},
			)
		default:
			return nil, &LexError{Text: tok.String(), Col: pos}
		}
	}
	return append(r, lexToken{kind: tokenEOF, pos: len(toks) + 1}), nil
}

// superscriptNumeral converts a superscript to an ASCII numeral. A superscript
// that is not a number, such as ⁿ, means squaring.
func superscriptNumeral(script string) string {
	s := FromScript(strings.TrimSpace(script))
	if !IsNumeral(s) {
		return "2"
	}
	return s
}

// IsNumeral reports whether s is a decimal numeral the lexer accepts, such
// as 3, 0.5, or 1e-3.
func IsNumeral(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil && s != "" && !strings.ContainsAny(s, "iInN_xXpP")
}
