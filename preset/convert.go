// Package preset turns pre-authored formulas into formula trees and manages
// catalogs of them.
package preset

import (
	"strings"

	calculator "github.com/qazwsxedcasddc-tech/formula-calculator-sub000"
	"github.com/qazwsxedcasddc-tech/formula-calculator-sub000/tree"
)

// ToElements converts the tokens of a preset formula into a formula tree.
// Everything up to and including the first = is dropped, so that a preset
// such as F = m × a inserts m × a. If nothing follows the =, the whole
// formula is converted. The result is not normalized.
func ToElements(toks []calculator.Token) []tree.Element {
	for i, tok := range toks {
		if isEquals(tok) {
			if i+1 < len(toks) {
				return ConvertTokens(toks[i+1:])
			}
			break
		}
	}
	return ConvertTokens(toks)
}

// ConvertTokens converts tokens to elements. If a division sign appears
// between the first and last tokens, the tokens before the first such sign
// become the numerator of a Fraction and the tokens after it the
// denominator. Only that one division becomes a fraction; later division
// signs stay operators.
func ConvertTokens(toks []calculator.Token) []tree.Element {
	for i := 1; i < len(toks)-1; i++ {
		if op, ok := operatorKind(toks[i]); ok && op == tree.Divide {
			f := tree.NewFraction(convertSimple(toks[:i]), convertSimple(toks[i+1:]))
			return []tree.Element{f}
		}
	}
	return convertSimple(toks)
}

// convertSimple converts each token to one element. Operator symbols with no
// element are dropped.
func convertSimple(toks []calculator.Token) []tree.Element {
	r := make([]tree.Element, 0, len(toks))
	for _, tok := range toks {
		switch tok.Kind {
		case calculator.TokenNumber, calculator.TokenVariable:
			r = append(r, tree.NewVariable(tok.Text))
		case calculator.TokenFunction:
			r = append(r, tree.NewVariableDisplay(tok.Text, calculator.FuncDisplay(tok.Text), nil))
		case calculator.TokenSubscript:
			script := calculator.FromScript(tok.Script)
			r = append(r, tree.NewVariableDisplay(tok.Text+script, tok.Text+calculator.ToSubscript(script), nil))
		case calculator.TokenSuperscript:
			exp := calculator.FromScript(strings.TrimSpace(tok.Script))
			if exp == "" {
				exp = "2"
			}
			r = append(r, tree.NewVariableDisplay(tok.Text, tok.Text, tree.SimpleExponent(exp)))
		case calculator.TokenOperator, calculator.TokenOpenParen, calculator.TokenCloseParen:
			if isEquals(tok) {
				r = append(r, tree.NewEquals())
				continue
			}
			if op, ok := operatorKind(tok); ok {
				r = append(r, tree.NewOperator(op))
			}
		}
	}
	return r
}

// operatorKind maps an operator or parenthesis token to its element operator.
func operatorKind(tok calculator.Token) (tree.OperatorKind, bool) {
	switch tok.Kind {
	case calculator.TokenOpenParen:
		return tree.OpenParen, true
	case calculator.TokenCloseParen:
		return tree.CloseParen, true
	case calculator.TokenOperator:
	default:
		return 0, false
	}
	switch strings.TrimSpace(tok.Text) {
	case "+":
		return tree.Plus, true
	case "-", "−":
		return tree.Minus, true
	case "*", "×", "·":
		return tree.Multiply, true
	case "/", "÷":
		return tree.Divide, true
	case "(":
		return tree.OpenParen, true
	case ")":
		return tree.CloseParen, true
	}
	return 0, false
}

func isEquals(tok calculator.Token) bool {
	return tok.Kind == calculator.TokenOperator && strings.TrimSpace(tok.Text) == "="
}
