package preset

import (
	_ "embed"
	"errors"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"

	calculator "github.com/qazwsxedcasddc-tech/formula-calculator-sub000"
	"github.com/qazwsxedcasddc-tech/formula-calculator-sub000/tree"
)

// Preset is a named formula offered for insertion.
type Preset struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category,omitempty"`
	Description string `yaml:"description,omitempty"`
	// Formula is calculator text, e.g. "F = m × a".
	Formula string `yaml:"formula"`
}

// Tokens scans the preset's formula.
func (p *Preset) Tokens() ([]calculator.Token, error) {
	return calculator.ScanString(p.Formula)
}

// Elements converts the preset's formula to a formula tree with ToElements.
func (p *Preset) Elements() ([]tree.Element, error) {
	toks, err := p.Tokens()
	if err != nil {
		return nil, err
	}
	return ToElements(toks), nil
}

// Catalog is an ordered set of presets with unique names.
type Catalog struct {
	Presets []Preset `yaml:"presets"`
}

//go:embed presets.yaml
var defaultYAML string

var defaultCatalog = func() *Catalog {
	c, err := Load(strings.NewReader(defaultYAML))
	if err != nil {
		panic("preset: bad default catalog: " + err.Error())
	}
	return c
}()

// Default returns the built-in catalog. Callers must not modify it.
func Default() *Catalog {
	return defaultCatalog
}

// Load reads a catalog in YAML. Unknown fields are rejected. Every preset
// must have a name that no other preset has, ignoring case, and a formula
// that scans without error. An empty document is an empty catalog.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Catalog
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	seen := make(map[string]bool, len(c.Presets))
	for i := range c.Presets {
		p := &c.Presets[i]
		switch key := strings.ToLower(p.Name); {
		case p.Name == "":
			return nil, &CatalogError{Index: i, Reason: "missing name"}
		case seen[key]:
			return nil, &CatalogError{Index: i, Name: p.Name, Reason: "duplicate name"}
		default:
			seen[key] = true
		}
		if strings.TrimSpace(p.Formula) == "" {
			return nil, &CatalogError{Index: i, Name: p.Name, Reason: "missing formula"}
		}
		if _, err := p.Tokens(); err != nil {
			return nil, &CatalogError{Index: i, Name: p.Name, Reason: err.Error()}
		}
	}
	return &c, nil
}

// Names returns the names of the presets in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a preset by name, ignoring case. If there is none, the error
// is a *NotFoundError suggesting similar names.
func (c *Catalog) Lookup(name string) (*Preset, error) {
	for i := range c.Presets {
		if strings.EqualFold(c.Presets[i].Name, name) {
			return &c.Presets[i], nil
		}
	}
	return nil, &NotFoundError{Name: name, Suggestions: c.suggest(name)}
}

// maxSuggestions is the most names a NotFoundError suggests.
const maxSuggestions = 3

// suggest returns the preset names that contain name as a fuzzy match, best
// first.
func (c *Catalog) suggest(name string) []string {
	if name == "" {
		return nil
	}
	ranks := fuzzy.RankFindFold(name, c.Names())
	sort.Sort(ranks)
	var r []string
	for _, rank := range ranks {
		if len(r) == maxSuggestions {
			break
		}
		r = append(r, rank.Target)
	}
	return r
}

// CatalogError describes an invalid preset in a catalog.
type CatalogError struct {
	// Index is the position of the preset in the catalog.
	Index int
	// Name is the preset's name, if it has one.
	Name string
	// Reason describes the problem.
	Reason string
}

func (err *CatalogError) Error() string {
	r := "preset " + strconv.Itoa(err.Index)
	if err.Name != "" {
		r += " (" + strconv.Quote(err.Name) + ")"
	}
	return r + ": " + err.Reason
}

// NotFoundError is returned when a catalog has no preset with a name.
type NotFoundError struct {
	Name string
	// Suggestions lists similar preset names, best first.
	Suggestions []string
}

func (err *NotFoundError) Error() string {
	r := "no preset named " + strconv.Quote(err.Name)
	if len(err.Suggestions) == 0 {
		return r
	}
	q := make([]string, len(err.Suggestions))
	for i, s := range err.Suggestions {
		q[i] = strconv.Quote(s)
	}
	return r + "; did you mean " + strings.Join(q, " or ") + "?"
}
