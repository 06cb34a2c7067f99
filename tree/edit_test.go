package tree

import "testing"

func TestInsertAt(t *testing.T) {
	cases := []struct {
		name   string
		side   Side
		target int
		want   string
	}{
		{"left-first", Left, 0, "z ··· x + y"},
		{"right-last", Right, 2, "x + y ··· z"},
		{"left-last", Left, 2, "x + z ··· y"},
		{"right-operator", Right, 1, "x + z ··· y"},
		{"top", Top, 2, "x + {z}/{y}"},
		{"bottom", Bottom, 0, "{x}/{z} + y"},
		{"unknown", Left, -1, "x + y"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			seq := sq(vr("x"), op(Plus), vr("y"))
			target := ID(0)
			if c.target >= 0 {
				target = seq[c.target].ID()
			}
			checkFormat(t, InsertAt(seq, vr("z"), target, c.side), c.want)
			checkFormat(t, seq, "x + y")
		})
	}
}

func TestInsertAtFractionClones(t *testing.T) {
	y, z := vr("y"), vr("z")
	got := InsertAt(sq(y), z, y.ID(), Top)
	f, ok := got[0].(Fraction)
	if !ok || len(got) != 1 {
		t.Fatalf("expected one fraction, got %s", Format(got))
	}
	if f.Numerator[0].ID() == z.ID() || f.Denominator[0].ID() == y.ID() {
		t.Errorf("fraction reuses IDs: %v/%v from %v/%v", f.Numerator[0].ID(), f.Denominator[0].ID(), z.ID(), y.ID())
	}
}

func TestInsertAtNested(t *testing.T) {
	a, b := vr("a"), vr("b")
	seq := sq(vr("x"), op(Multiply), frac(sq(a), sq(b)))
	checkFormat(t, InsertAt(seq, vr("c"), b.ID(), Right), "x × {a}/{b ··· c}")
	checkFormat(t, InsertAt(seq, op(Minus), a.ID(), Right), "x × {a}/{b}")
	p := par(a, op(Plus), b)
	checkFormat(t, InsertAt(sq(p), vr("c"), a.ID(), Bottom), "({a}/{c} + b)")
}

func TestInsertAtInvalidSide(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("invalid side did not panic")
		}
	}()
	x := vr("x")
	InsertAt(sq(x), vr("y"), x.ID(), Side(0))
}

func TestAppendElements(t *testing.T) {
	cases := []struct {
		name string
		seq  []Element
		es   []Element
		want string
	}{
		{"operator", sq(vr("x")), sq(op(Plus), vr("y")), "x + y"},
		{"juxtaposed", sq(vr("x")), sq(vr("y")), "x ··· y"},
		{"empty", nil, sq(op(Plus), vr("y")), "y"},
		{"no-content", sq(op(Plus)), sq(vr("x")), "x"},
		{"fraction", sq(vr("x"), op(Divide)), sq(frac(sq(vr("a")), sq(vr("b")))), "x ÷ {a}/{b}"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checkFormat(t, AppendElements(c.seq, c.es), c.want)
		})
	}
}

func TestReplaceEllipsis(t *testing.T) {
	x := vr("x")
	seq := Normalize(sq(x, vr("y")))
	id := seq[1].ID()
	got := ReplaceEllipsis(seq, id, Multiply)
	checkFormat(t, got, "x × y")
	if got[1].ID() == id {
		t.Errorf("operator kept placeholder ID %v", id)
	}
	checkFormat(t, ReplaceEllipsis(seq, x.ID(), Plus), "x ··· y")
	checkFormat(t, ReplaceEllipsis(seq, 0, Plus), "x ··· y")
}

func TestReplaceOperator(t *testing.T) {
	x, plus := vr("x"), op(Plus)
	seq := sq(x, plus, vr("y"))
	got := ReplaceOperator(seq, plus.ID(), Minus)
	checkFormat(t, got, "x − y")
	if got[1].ID() != plus.ID() {
		t.Errorf("operator changed ID from %v to %v", plus.ID(), got[1].ID())
	}
	checkFormat(t, ReplaceOperator(seq, x.ID(), Minus), "x + y")
	checkFormat(t, seq, "x + y")
}

func TestUpdateExponent(t *testing.T) {
	x, plus := vr("x"), op(Plus)
	seq := sq(x, plus, vr("y"))
	exp := SimpleExponent("3")
	got := UpdateExponent(seq, x.ID(), exp)
	exp.Text = "4"
	checkFormat(t, got, "x^3 + y")
	if got[0].ID() != x.ID() {
		t.Errorf("variable changed ID from %v to %v", x.ID(), got[0].ID())
	}
	got = UpdateExponent(got, x.ID(), FractionExponent("1", "2"))
	checkFormat(t, got, "x^(1/2) + y")
	checkFormat(t, UpdateExponent(got, x.ID(), nil), "x + y")
	checkFormat(t, UpdateExponent(seq, plus.ID(), exp), "x + y")
}

func TestWrapInParentheses(t *testing.T) {
	a, y := vr("a"), vr("y")
	seq := sq(vr("x"), op(Plus), y)
	checkFormat(t, WrapInParentheses(seq, y.ID()), "x + (y)")
	checkFormat(t, WrapInParentheses(sq(frac(sq(a), sq(vr("b")))), a.ID()), "{(a)}/{b}")
	checkFormat(t, WrapInParentheses(seq, 0), "x + y")
}

func TestWrapRangeInParentheses(t *testing.T) {
	seq := sq(vr("x"), op(Plus), vr("y"), op(Multiply), vr("z"))
	cases := []struct {
		name       string
		start, end int
		want       string
	}{
		{"all", 0, 4, "(x + y × z)"},
		{"head", 0, 2, "(x + y) × z"},
		{"tail", 2, 4, "x + (y × z)"},
		{"one", 4, 4, "x + y × (z)"},
		{"negative", -1, 2, "x + y × z"},
		{"reversed", 3, 2, "x + y × z"},
		{"past-end", 2, 5, "x + y × z"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checkFormat(t, WrapRangeInParentheses(seq, c.start, c.end), c.want)
		})
	}
}

func TestUnwrapParentheses(t *testing.T) {
	a, x := vr("a"), vr("x")
	p := par(a, op(Plus), vr("b"))
	seq := sq(x, op(Multiply), p)
	got := UnwrapParentheses(seq, p.ID())
	checkFormat(t, got, "x × a + b")
	if got[2].ID() == a.ID() {
		t.Errorf("unwrapped child kept ID %v", a.ID())
	}
	checkFormat(t, UnwrapParentheses(seq, x.ID()), "x × (a + b)")
	q := par(vr("z"))
	checkFormat(t, UnwrapParentheses(sq(vr("y"), q), q.ID()), "y ··· z")
}

func TestAddToParentheses(t *testing.T) {
	x := vr("x")
	p := par(vr("a"))
	seq := sq(x, op(Minus), p)
	checkFormat(t, AddToParentheses(seq, p.ID(), vr("b")), "x − (a ··· b)")
	checkFormat(t, AddToParentheses(seq, p.ID(), op(Plus)), "x − (a)")
	checkFormat(t, AddToParentheses(seq, x.ID(), vr("b")), "x − (a)")
}
