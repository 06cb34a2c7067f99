package calculator

import (
	"strconv"
	"strings"
)

// TokenKind identifies the kind of a user-level Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNumber is a numeral, e.g. 3 or 2.5e3.
	TokenNumber
	// TokenOperator is an operator glyph such as +, −, ×, ÷, ^ or =.
	TokenOperator
	// TokenFunction is a function name, e.g. sin or sqrt.
	TokenFunction
	// TokenVariable is a variable or constant name.
	TokenVariable
	// TokenOpenParen and TokenCloseParen group subexpressions.
	TokenOpenParen
	TokenCloseParen
	// TokenSubscript is a base name with a subscript, e.g. v₀.
	TokenSubscript
	// TokenSuperscript is a base with a superscript, e.g. x².
	TokenSuperscript
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenFunction:
		return "Function"
	case TokenVariable:
		return "Variable"
	case TokenOpenParen:
		return "OpenParen"
	case TokenCloseParen:
		return "CloseParen"
	case TokenSubscript:
		return "Subscript"
	case TokenSuperscript:
		return "Superscript"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is one key press worth of formula: a number, an operator, a function,
// a variable, a parenthesis, or a variable with a sub- or superscript.
type Token struct {
	Kind TokenKind
	// Text is the numeral, operator glyph, function name, variable name, or
	// the base of a sub- or superscript.
	Text string
	// Script is the subscript or superscript text. It is empty for other
	// kinds.
	Script string
}

// Num creates a number token.
func Num(text string) Token { return Token{Kind: TokenNumber, Text: text} }

// Op creates an operator token.
func Op(glyph string) Token { return Token{Kind: TokenOperator, Text: glyph} }

// Fn creates a function token.
func Fn(name string) Token { return Token{Kind: TokenFunction, Text: name} }

// Var creates a variable token.
func Var(name string) Token { return Token{Kind: TokenVariable, Text: name} }

// Open creates an opening parenthesis token.
func Open() Token { return Token{Kind: TokenOpenParen, Text: "("} }

// Close creates a closing parenthesis token.
func Close() Token { return Token{Kind: TokenCloseParen, Text: ")"} }

// Sub creates a subscripted variable token.
func Sub(base, script string) Token {
	return Token{Kind: TokenSubscript, Text: base, Script: script}
}

// Sup creates a superscripted token.
func Sup(base, script string) Token {
	return Token{Kind: TokenSuperscript, Text: base, Script: script}
}

// Display returns the text shown for the token on screen.
func (t Token) Display() string {
	switch t.Kind {
	case TokenFunction:
		return FuncDisplay(t.Text)
	case TokenSubscript:
		return t.Text + ToSubscript(t.Script)
	case TokenSuperscript:
		return t.Text + ToSuperscript(t.Script)
	default:
		return t.Text
	}
}

func (t Token) String() string {
	if t.Script != "" {
		return t.Kind.String() + ":" + t.Text + "," + t.Script
	}
	return t.Kind.String() + ":" + t.Text
}

// funcDisplay maps function names to their display glyphs. Functions not
// listed display as their name.
var funcDisplay = map[string]string{
	"sqrt": "√",
}

// FuncDisplay returns the display text for a function name.
func FuncDisplay(name string) string {
	if d, ok := funcDisplay[strings.ToLower(name)]; ok {
		return d
	}
	return name
}

const (
	superscripts = "⁰¹²³⁴⁵⁶⁷⁸⁹⁺⁻⁼⁽⁾ⁿⁱ"
	subscripts   = "₀₁₂₃₄₅₆₇₈₉₊₋₌₍₎ₙᵢ"
	scriptASCII  = "0123456789+-=()ni"
)

var (
	superRunes = []rune(superscripts)
	subRunes   = []rune(subscripts)
	asciiRunes = []rune(scriptASCII)
)

// IsSuperscript reports whether r is a Unicode superscript glyph.
func IsSuperscript(r rune) bool { return strings.ContainsRune(superscripts, r) }

// IsSubscript reports whether r is a Unicode subscript glyph.
func IsSubscript(r rune) bool { return strings.ContainsRune(subscripts, r) }

// mapRunes replaces every rune of s found in from with the rune at the same
// index in to.
func mapRunes(s string, from, to []rune) string {
	return strings.Map(func(r rune) rune {
		for i, f := range from {
			if f == r {
				return to[i]
			}
		}
		return r
	}, s)
}

// FromScript converts Unicode superscript and subscript glyphs in s to their
// ASCII equivalents. Other runes are unchanged.
func FromScript(s string) string {
	return mapRunes(mapRunes(s, superRunes, asciiRunes), subRunes, asciiRunes)
}

// ToSuperscript converts ASCII digits and signs in s to superscript glyphs.
func ToSuperscript(s string) string { return mapRunes(s, asciiRunes, superRunes) }

// ToSubscript converts ASCII digits and signs in s to subscript glyphs.
func ToSubscript(s string) string { return mapRunes(s, asciiRunes, subRunes) }
