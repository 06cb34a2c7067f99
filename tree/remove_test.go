package tree

import "testing"

func TestRemoveByID(t *testing.T) {
	// build returns a formula and the ID to remove from it.
	cases := []struct {
		name  string
		build func() ([]Element, ID)
		want  string
	}{
		{
			name: "last",
			build: func() ([]Element, ID) {
				y := vr("y")
				return sq(vr("x"), op(Plus), y), y.ID()
			},
			want: "x",
		},
		{
			name: "first",
			build: func() ([]Element, ID) {
				x := vr("x")
				return sq(x, op(Plus), vr("y")), x.ID()
			},
			want: "y",
		},
		{
			name: "middle",
			build: func() ([]Element, ID) {
				y := vr("y")
				return sq(vr("x"), op(Plus), y, op(Multiply), vr("z")), y.ID()
			},
			want: "x ··· z",
		},
		{
			name: "operator",
			build: func() ([]Element, ID) {
				p := op(Plus)
				return sq(vr("x"), p, vr("y")), p.ID()
			},
			want: "x ··· y",
		},
		{
			name: "placeholder",
			build: func() ([]Element, ID) {
				e := ell()
				return sq(vr("x"), e, vr("y")), e.ID()
			},
			want: "x ··· y",
		},
		{
			name: "fraction-keeps",
			build: func() ([]Element, ID) {
				b := vr("b")
				return sq(frac(sq(vr("a"), op(Plus), b), sq(vr("c")))), b.ID()
			},
			want: "{a}/{c}",
		},
		{
			name: "fraction-collapse-numerator",
			build: func() ([]Element, ID) {
				c := vr("c")
				return sq(vr("x"), op(Minus), frac(sq(vr("a"), op(Plus), vr("b")), sq(c))), c.ID()
			},
			want: "x − a ··· b",
		},
		{
			name: "fraction-whole",
			build: func() ([]Element, ID) {
				f := frac(sq(vr("a")), sq(vr("b")))
				return sq(vr("x"), op(Plus), f), f.ID()
			},
			want: "x",
		},
		{
			name: "parentheses-empty",
			build: func() ([]Element, ID) {
				y := vr("y")
				return sq(vr("x"), op(Multiply), par(y)), y.ID()
			},
			want: "x",
		},
		{
			name: "parentheses-keeps",
			build: func() ([]Element, ID) {
				a := vr("a")
				return sq(par(a, op(Plus), vr("b"))), a.ID()
			},
			want: "(b)",
		},
		{
			name: "nested",
			build: func() ([]Element, ID) {
				b := vr("b")
				return sq(vr("x"), op(Divide), frac(sq(vr("a")), sq(par(b)))), b.ID()
			},
			want: "x ÷ a",
		},
		{
			name: "last-element",
			build: func() ([]Element, ID) {
				x := vr("x")
				return sq(x), x.ID()
			},
			want: "",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			seq, id := c.build()
			got := RemoveByID(seq, id)
			checkFormat(t, got, c.want)
			if _, ok := Find(got, id); ok {
				t.Errorf("removed element %v still present", id)
			}
			if err := Validate(got); err != nil {
				t.Errorf("result is invalid: %v", err)
			}
		})
	}
}

func TestRemoveCollapseKeepsSurvivor(t *testing.T) {
	a, r := vr("a"), vr("r")
	got := RemoveByID(sq(frac(sq(a), sq(r))), a.ID())
	checkFormat(t, got, "r")
	if len(got) != 1 || got[0].ID() != r.ID() {
		t.Errorf("survivor changed ID: want %v, got %v", r.ID(), IDs(got))
	}
}

func TestRemoveUnknown(t *testing.T) {
	// An ID not in the tree returns the input as is, without normalizing.
	seq := sq(vr("x"), vr("y"))
	checkFormat(t, RemoveByID(seq, 0), "x y")
}
