// Package calculator implements the linear side of the formula calculator:
// a token model, a lexer that turns user tokens into parser tokens, a
// recursive-descent parser and a float64 evaluator.
//
// Expressions are written the way they appear on a calculator keypad.
// "3 + 4 × 2" is 11. "2^3^2" is "2^(3^2)". "x²" is "x^2", and "v₀" (or
// "v_0") is the single variable "v0". Functions take either a parenthesized
// argument or a single atom, so "sin x" and "sin(x)" are the same.
//
// Unknown variables evaluate to 1 so that partially filled formulas still
// produce a number. Division by zero and logarithms or square roots outside
// their domain are errors rather than infinities.
package calculator
