package calculator

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	name string
	num  float64

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum    // num
	nodeName   // lookup(name)
	nodeCall   // name is the function, left is the argument
	nodeAssign // name is the variable, left is the value

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeName:
		return "Name"
	case nodeCall:
		return "Call"
	case nodeAssign:
		return "Assign"
	case nodeNeg:
		return "Neg"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodePow:
		return "Pow"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false, false)
	return b.String()
}

// binops holds the plain and display glyphs of the binary operators.
var binops = map[nodeKind][2]string{
	nodeAdd: {"+", "+"},
	nodeSub: {"-", "−"},
	nodeMul: {"*", "×"},
	nodeDiv: {"/", "÷"},
	nodePow: {"^", "^"},
}

// fmt writes n fully parenthesized, alternating round and square brackets
// with depth. If alt is true, operators and functions use display glyphs.
func (n *node) fmt(b *strings.Builder, square, alt bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum, nodeName:
		b.WriteString(n.name)
	case nodeCall:
		name := n.name
		if alt {
			name = FuncDisplay(name)
		}
		b.WriteString(name)
		n.left.fmt(b, !square, alt)
	case nodeAssign:
		b.WriteString(n.name + " = ")
		n.left.fmt(b, !square, alt)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square, alt)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		glyph := binops[n.kind][0]
		if alt {
			glyph = binops[n.kind][1]
		}
		n.left.fmt(b, !square, alt)
		b.WriteString(" " + glyph + " ")
		n.right.fmt(b, !square, alt)
	default:
		panic("calculator: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
