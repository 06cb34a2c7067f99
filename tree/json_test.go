package tree

import (
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	seq := sq(NewVariableDisplay("x", "x", SimpleExponent("2")), op(Minus), frac(sq(vr("1")), sq(vr("y"))))
	b, err := Encode(seq)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"kind":"Variable","value":"x","display":"x","exponent":{"kind":"Simple","text":"2"}},` +
		`{"kind":"Operator","op":"Minus"},` +
		`{"kind":"Fraction","numerator":[{"kind":"Variable","value":"1","display":"1"}],` +
		`"denominator":[{"kind":"Variable","value":"y","display":"y"}]}]`
	if string(b) != want {
		t.Errorf("wrong encoding:\nwant %s\ngot  %s", want, b)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	seq := Normalize(sq(
		NewVariableDisplay("v_0", "v₀", FractionExponent("1", "3")),
		op(OpenParen), vr("a"), op(CloseParen),
		eqs(),
		par(vr("b"), op(Divide), frac(sq(vr("c")), nil)),
		vr("d"),
	))
	b, err := Encode(seq)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(got, seq) {
		t.Fatalf("decoded formula differs:\nwant %s\ngot  %s", Format(seq), Format(got))
	}
	old := make(map[ID]bool)
	for _, id := range IDs(seq) {
		old[id] = true
	}
	for _, id := range IDs(got) {
		if old[id] {
			t.Errorf("decoded element reuses ID %v", id)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		field string
	}{
		{"kind", `[{"kind":"Matrix"}]`, "kind"},
		{"op", `[{"kind":"Operator","op":"Modulo"}]`, "op"},
		{"exponent", `[{"kind":"Variable","value":"x","exponent":{"kind":"Cube"}}]`, "exponent kind"},
		{"nested", `[{"kind":"Parentheses","children":[{"kind":"Operator"}]}]`, "op"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Decode([]byte(c.in))
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("want *DecodeError, got %v", err)
			}
			if de.Field != c.field {
				t.Errorf("wrong field: want %q, got %q", c.field, de.Field)
			}
		})
	}
	if _, err := Decode([]byte(`{`)); err == nil {
		t.Error("malformed JSON decoded")
	}
}
