package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	calc "github.com/qazwsxedcasddc-tech/formula-calculator-sub000"
	"github.com/qazwsxedcasddc-tech/formula-calculator-sub000/preset"
	"github.com/qazwsxedcasddc-tech/formula-calculator-sub000/tree"
)

func main() {
	log.SetFlags(0)
	var (
		inname, pname, catname string
		with                   [][2]string
		nl, echo, list, show   bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.Func("given", "name=value variable definition (any number of times)", addwith)
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate formulas")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.StringVar(&pname, "preset", "", "evaluate the named preset formula instead of reading input")
	flag.StringVar(&catname, "catalog", "", "YAML preset catalog (default built in)")
	flag.BoolVar(&list, "list", false, "list the presets in the catalog")
	flag.BoolVar(&show, "tree", false, "print each formula as an editor tree")
	flag.Parse()

	cat, err := catalog(catname)
	if err != nil {
		log.Fatal(err)
	}
	if list {
		for _, p := range cat.Presets {
			fmt.Printf("%s\t%s\t%s\n", p.Name, p.Category, p.Formula)
		}
		return
	}

	ctx := calc.NewContext()
	for _, d := range with {
		nm := d[0]
		vl := d[1]
		r, err := calc.EvalString(vl)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		ctx = ctx.Clone(calc.SetVar(nm, r))
	}

	if pname != "" {
		p, err := cat.Lookup(pname)
		if err != nil {
			log.Fatal(err)
		}
		els, err := p.Elements()
		if err != nil {
			log.Fatalf("preset %q: %v", p.Name, err)
		}
		els = tree.Normalize(els)
		if err := tree.Validate(els); err != nil {
			log.Fatalf("preset %q: %v", p.Name, err)
		}
		if show {
			fmt.Println(tree.Format(els))
		}
		toks, err := tree.Tokens(els)
		if err != nil {
			log.Fatalf("preset %q: %v", p.Name, err)
		}
		run(ctx, toks, echo)
		return
	}

	var ins []io.RuneScanner
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	var opts []calc.ScanOption
	if nl {
		opts = append(opts, calc.StopOn('\n'))
	}
	for _, in := range ins {
		for {
			// First check whether we're done with the input.
			if _, _, err := in.ReadRune(); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				log.Fatal(err)
			}
			in.UnreadRune()
			toks, err := calc.Scan(in, opts...)
			if err != nil {
				log.Fatal(err)
			}
			if len(toks) == 0 {
				continue
			}
			if show {
				fmt.Println(tree.Format(tree.Normalize(preset.ConvertTokens(toks))))
			}
			run(ctx, toks, echo)
		}
	}
}

// run parses and evaluates one formula and prints the result. Evaluation
// errors are printed in place of the result.
func run(ctx *calc.Context, toks []calc.Token, echo bool) {
	a, err := calc.Parse(toks)
	if err != nil {
		log.Fatal(err)
	}
	if echo {
		fmt.Printf("%v : ", a)
	}
	r, err := ctx.Eval(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(calc.FormatResult(r))
}

func catalog(name string) (*preset.Catalog, error) {
	if name == "" {
		return preset.Default(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return preset.Load(f)
}

func infile(inname string, std bool) (io.RuneScanner, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
