package preset

import (
	"errors"
	"strings"
	"testing"

	calculator "github.com/qazwsxedcasddc-tech/formula-calculator-sub000"
	"github.com/qazwsxedcasddc-tech/formula-calculator-sub000/tree"
)

func TestDefaultPresets(t *testing.T) {
	c := Default()
	if len(c.Presets) == 0 {
		t.Fatal("default catalog is empty")
	}
	for _, p := range c.Presets {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			es, err := p.Elements()
			if err != nil {
				t.Fatalf("couldn't convert %q: %v", p.Formula, err)
			}
			es = tree.Normalize(es)
			if err := tree.Validate(es); err != nil {
				t.Errorf("%q gives invalid formula %s: %v", p.Formula, tree.Format(es), err)
			}
			toks, err := tree.Tokens(es)
			if err != nil {
				t.Fatalf("%q gives formula %s with no tokens: %v", p.Formula, tree.Format(es), err)
			}
			if _, err := calculator.Evaluate(toks, nil); err != nil {
				t.Errorf("%q doesn't evaluate: %v", p.Formula, err)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	c := Default()
	p, err := c.Lookup("OHM'S LAW")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Ohm's law" {
		t.Errorf("wrong preset: %q", p.Name)
	}
	if p.Formula != "V = I × R" {
		t.Errorf("wrong formula: %q", p.Formula)
	}
}

func TestLookupSuggestions(t *testing.T) {
	c := Default()
	cases := []struct {
		name    string
		lookup  string
		suggest string
	}{
		{"ohm", "ohm", "Ohm's law"},
		{"gas", "gas", "Ideal gas law"},
		{"kinetic", "kinetic", "Kinetic energy"},
		{"nothing", "zzz", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Lookup(tc.lookup)
			var nf *NotFoundError
			if !errors.As(err, &nf) {
				t.Fatalf("want *NotFoundError, got %v", err)
			}
			if len(nf.Suggestions) > maxSuggestions {
				t.Errorf("too many suggestions: %q", nf.Suggestions)
			}
			if tc.suggest == "" {
				if len(nf.Suggestions) != 0 {
					t.Errorf("unexpected suggestions %q", nf.Suggestions)
				}
				return
			}
			if len(nf.Suggestions) == 0 || nf.Suggestions[0] != tc.suggest {
				t.Errorf("want %q suggested first, got %q", tc.suggest, nf.Suggestions)
			}
			if !strings.Contains(err.Error(), "did you mean") {
				t.Errorf("error doesn't suggest: %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	src := `
presets:
  - name: Speed
    category: mechanics
    formula: v = d ÷ t
  - name: Weight
    formula: W = m × g
`
	c, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	names := c.Names()
	if len(names) != 2 || names[0] != "Speed" || names[1] != "Weight" {
		t.Errorf("wrong names %q", names)
	}
	if c.Presets[0].Category != "mechanics" || c.Presets[1].Category != "" {
		t.Errorf("wrong categories %q and %q", c.Presets[0].Category, c.Presets[1].Category)
	}
	empty, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(empty.Presets) != 0 {
		t.Errorf("empty document gave %d presets", len(empty.Presets))
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		index  int
		reason string
	}{
		{
			name:   "missing-name",
			src:    "presets:\n  - formula: x\n",
			index:  0,
			reason: "missing name",
		},
		{
			name:   "duplicate",
			src:    "presets:\n  - name: Area\n    formula: x\n  - name: area\n    formula: y\n",
			index:  1,
			reason: "duplicate name",
		},
		{
			name:   "missing-formula",
			src:    "presets:\n  - name: Area\n    formula: \"  \"\n",
			index:  0,
			reason: "missing formula",
		},
		{
			name:   "bad-formula",
			src:    "presets:\n  - name: Area\n    formula: x\n  - name: Money\n    formula: x $ y\n",
			index:  1,
			reason: "$",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(c.src))
			var ce *CatalogError
			if !errors.As(err, &ce) {
				t.Fatalf("want *CatalogError, got %v", err)
			}
			if ce.Index != c.index || !strings.Contains(ce.Reason, c.reason) {
				t.Errorf("want %q at %d, got %v", c.reason, c.index, err)
			}
		})
	}
}

func TestLoadUnknownField(t *testing.T) {
	src := "presets:\n  - name: Area\n    formula: x\n    colour: red\n"
	_, err := Load(strings.NewReader(src))
	if err == nil {
		t.Fatal("unknown field accepted")
	}
	var ce *CatalogError
	if errors.As(err, &ce) {
		t.Errorf("unknown field reported as a preset error: %v", err)
	}
}
