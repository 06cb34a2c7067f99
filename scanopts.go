package calculator

import (
	"strconv"
	"strings"
	"unicode"
)

// ScanOption is an option for scanning text into tokens.
type ScanOption interface {
	scanOption(scanctx) scanctx
}

type (
	funcsopt []string
	nofuncs  struct{}
	eofopt   string
)

// scanctx holds the configuration for a single scan.
type scanctx struct {
	// funcs is the set of lowercase identifiers scanned as function names.
	funcs map[string]bool
	// wseof is a string containing the whitespace characters that end the
	// scan.
	wseof string
}

// ScanFuncs adds names that scan as function tokens instead of variables.
// Matching is case-insensitive.
func ScanFuncs(names ...string) ScanOption {
	return funcsopt(names)
}

func (o funcsopt) scanOption(s scanctx) scanctx {
	m := make(map[string]bool, len(s.funcs)+len(o))
	for k := range s.funcs {
		m[k] = true
	}
	for _, name := range o {
		m[strings.ToLower(name)] = true
	}
	s.funcs = m
	return s
}

// DisableDefaultFuncs makes the default function names scan as variables.
// Functions added by a later ScanFuncs are still recognized.
func DisableDefaultFuncs() ScanOption {
	return nofuncs{}
}

func (nofuncs) scanOption(s scanctx) scanctx {
	s.funcs = map[string]bool{}
	return s
}

// StopOn tells the scanner to treat a list of whitespace characters as ending
// the formula, so that a single reader can hold several formulas. StopOn
// overrides any previous StopOn. With no arguments, scanning continues to EOF.
func StopOn(chars ...rune) ScanOption {
	v := make([]rune, 0, len(chars))
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("calculator: cannot stop on " + strconv.QuoteRune(r))
		}
		if strings.ContainsRune(string(v), r) {
			continue
		}
		v = append(v, r)
	}
	return eofopt(v)
}

func (o eofopt) scanOption(s scanctx) scanctx {
	s.wseof = string(o)
	return s
}

// defaultScan returns the scan configuration used before options apply.
func defaultScan() scanctx {
	m := make(map[string]bool, len(globalfuncs))
	for k := range globalfuncs {
		m[k] = true
	}
	return scanctx{funcs: m}
}
