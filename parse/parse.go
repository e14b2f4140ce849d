// Package parse reads expressions from text. It accepts the usual infix
// notation, and reads back anything rendered in the factor.Parse
// format.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/matherr"
	"zappem.net/pub/math/symalg/terms"
)

var tok = regexp.MustCompile(`^(#[\p{L}0-9_\-]+|\p{L}[\p{L}0-9]*(_[\p{L}0-9]+)?|[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?|[-+*/^(),{}]|[½⅓⅔¼¾⅕⅖⅗⅘∞])`)

var glyphs = map[string]float64{
	"½": 1.0 / 2,
	"⅓": 1.0 / 3,
	"⅔": 2.0 / 3,
	"¼": 1.0 / 4,
	"¾": 3.0 / 4,
	"⅕": 1.0 / 5,
	"⅖": 2.0 / 5,
	"⅗": 3.0 / 5,
	"⅘": 4.0 / 5,
}

// token is a lexical token and its byte offset in the input.
type token struct {
	text string
	pos  int
}

// split tokenizes the input.
func split(line string) ([]token, error) {
	var toks []token
	for i := 0; i < len(line); {
		r, n := utf8.DecodeRuneInString(line[i:])
		if unicode.IsSpace(r) {
			i += n
			continue
		}
		loc := tok.FindStringIndex(line[i:])
		if loc == nil {
			return nil, matherr.Parsingf("unexpected %q at offset %d", r, i)
		}
		toks = append(toks, token{text: line[i : i+loc[1]], pos: i})
		i += loc[1]
	}
	return toks, nil
}

// Parser turns text into expressions. Identifiers are resolved through
// its scope; unknown ones become new variables of that scope.
type Parser struct {
	scope *factor.Scope
	raw   bool
}

// Option adjusts a Parser.
type Option func(*Parser)

// Raw makes the parser build expressions exactly as written, without
// applying any rules.
func Raw() Option {
	return func(p *Parser) { p.raw = true }
}

var _ terms.Parser = (*Parser)(nil)

// New returns a parser resolving symbols in s.
func New(s *factor.Scope, opts ...Option) *Parser {
	p := &Parser{scope: s}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Parse reads a single expression.
func (p *Parser) Parse(text string) (terms.Expression, error) {
	toks, err := split(text)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, matherr.Parsingf("empty expression")
	}
	st := &state{p: p, toks: toks}
	e, err := st.expr()
	if err != nil {
		return nil, err
	}
	if t, ok := st.peek(); ok {
		return nil, matherr.Parsingf("unexpected %q at offset %d", t.text, t.pos)
	}
	return e, nil
}

// build assembles an operation, normalizing it unless the parser is raw.
func (p *Parser) build(k factor.Kind, xs ...terms.Expression) (terms.Expression, error) {
	op, err := terms.NewOperation(k, xs...)
	if err != nil {
		return nil, err
	}
	if p.raw {
		return op, nil
	}
	return terms.Normalize(op), nil
}

// variable creates a variable for an unknown label, splitting off any
// subscript.
func (p *Parser) variable(label string) terms.Expression {
	sym, sub, found := strings.Cut(label, "_")
	if found {
		return p.scope.NewVariable(sym, factor.Subscripted(sub))
	}
	return p.scope.NewVariable(sym)
}

// state is the cursor of one Parse call.
type state struct {
	p    *Parser
	toks []token
	pos  int
}

func (st *state) peek() (token, bool) {
	if st.pos >= len(st.toks) {
		return token{}, false
	}
	return st.toks[st.pos], true
}

func (st *state) peekIs(text string) bool {
	t, ok := st.peek()
	return ok && t.text == text
}

func (st *state) next() (token, error) {
	t, ok := st.peek()
	if !ok {
		return token{}, matherr.Parsingf("unexpected end of expression")
	}
	st.pos++
	return t, nil
}

func (st *state) expect(text string) error {
	t, err := st.next()
	if err != nil {
		return matherr.Parsingf("missing %q at end of expression", text)
	}
	if t.text != text {
		return matherr.Parsingf("got %q at offset %d, want %q", t.text, t.pos, text)
	}
	return nil
}

// expr := term (('+'|'-') term)*
func (st *state) expr() (terms.Expression, error) {
	e, err := st.term()
	if err != nil {
		return nil, err
	}
	for {
		k := factor.KindSum
		switch {
		case st.peekIs("+"):
		case st.peekIs("-"):
			k = factor.KindDifference
		default:
			return e, nil
		}
		st.pos++
		r, err := st.term()
		if err != nil {
			return nil, err
		}
		if e, err = st.p.build(k, e, r); err != nil {
			return nil, err
		}
	}
}

// startsPrimary reports whether t can open an implicitly multiplied
// factor, as in 2x.
func startsPrimary(t token) bool {
	switch t.text {
	case "(", "{", "∞":
		return true
	}
	if _, ok := glyphs[t.text]; ok {
		return true
	}
	r, _ := utf8.DecodeRuneInString(t.text)
	return r == '#' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// term := unary (('*'|'/') unary | power)*
func (st *state) term() (terms.Expression, error) {
	e, err := st.unary()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := st.peek()
		if !ok {
			return e, nil
		}
		var r terms.Expression
		k := factor.KindProduct
		switch {
		case t.text == "*" || t.text == "/":
			if t.text == "/" {
				k = factor.KindQuotient
			}
			st.pos++
			r, err = st.unary()
		case startsPrimary(t):
			r, err = st.power()
		default:
			return e, nil
		}
		if err != nil {
			return nil, err
		}
		if e, err = st.p.build(k, e, r); err != nil {
			return nil, err
		}
	}
}

// unary := '-' unary | power
//
// A minus directly before a number that is not raised to a power is
// part of the number.
func (st *state) unary() (terms.Expression, error) {
	if !st.peekIs("-") {
		return st.power()
	}
	st.pos++
	if t, ok := st.peek(); ok && isNumber(t.text) {
		after := st.pos + 1
		if after >= len(st.toks) || st.toks[after].text != "^" {
			st.pos++
			f, err := number(t)
			if err != nil {
				return nil, err
			}
			return factor.Num(-f), nil
		}
	}
	e, err := st.unary()
	if err != nil {
		return nil, err
	}
	if v, ok := e.(*factor.Value); ok && !st.p.raw {
		return factor.Num(-v.Float()), nil
	}
	return st.p.build(factor.KindProduct, factor.Int(-1), e)
}

// power := primary ('^' unary)?
func (st *state) power() (terms.Expression, error) {
	base, err := st.primary()
	if err != nil {
		return nil, err
	}
	if !st.peekIs("^") {
		return base, nil
	}
	st.pos++
	exp, err := st.unary()
	if err != nil {
		return nil, err
	}
	return st.p.build(factor.KindExponentiation, base, exp)
}

func isNumber(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r == '.' || unicode.IsDigit(r)
}

func number(t token) (float64, error) {
	f, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		return 0, matherr.Parsingf("bad number %q at offset %d", t.text, t.pos)
	}
	return f, nil
}

// functions maps the named operations to their kinds.
var functions = map[string]factor.Kind{
	"log":      factor.KindLogarithm,
	"simplify": factor.KindSimplify,
	"expand":   factor.KindExpand,
}

func (st *state) primary() (terms.Expression, error) {
	t, err := st.next()
	if err != nil {
		return nil, err
	}
	switch {
	case t.text == "(":
		e, err := st.expr()
		if err != nil {
			return nil, err
		}
		if err := st.expect(")"); err != nil {
			return nil, err
		}
		return e, nil
	case t.text == "{":
		xs, err := st.list("}")
		if err != nil {
			return nil, err
		}
		return st.p.build(factor.KindSet, xs...)
	case t.text == "∞":
		return factor.Infinity, nil
	case isNumber(t.text):
		f, err := number(t)
		if err != nil {
			return nil, err
		}
		return factor.Num(f), nil
	case strings.HasPrefix(t.text, "#"):
		e, ok := st.p.scope.Lookup(t.text)
		if !ok {
			return nil, matherr.Parsingf("unknown identifier %q at offset %d", t.text, t.pos)
		}
		return e, nil
	}
	if f, ok := glyphs[t.text]; ok {
		return factor.Num(f), nil
	}
	if k, ok := functions[t.text]; ok && st.peekIs("(") {
		st.pos++
		xs, err := st.list(")")
		if err != nil {
			return nil, err
		}
		return st.p.build(k, xs...)
	}
	if r, _ := utf8.DecodeRuneInString(t.text); !unicode.IsLetter(r) {
		return nil, matherr.Parsingf("unexpected %q at offset %d", t.text, t.pos)
	}
	if e, ok := st.p.scope.Lookup(t.text); ok {
		return e, nil
	}
	return st.p.variable(t.text), nil
}

// list reads comma separated expressions up to the closing token.
func (st *state) list(closing string) ([]terms.Expression, error) {
	var xs []terms.Expression
	if st.peekIs(closing) {
		st.pos++
		return xs, nil
	}
	for {
		e, err := st.expr()
		if err != nil {
			return nil, err
		}
		xs = append(xs, e)
		t, err := st.next()
		if err != nil {
			return nil, matherr.Parsingf("missing %q at end of expression", closing)
		}
		switch t.text {
		case ",":
		case closing:
			return xs, nil
		default:
			return nil, matherr.Parsingf("got %q at offset %d, want \",\" or %q", t.text, t.pos, closing)
		}
	}
}
