package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"

	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/matherr"
	"zappem.net/pub/math/symalg/parse"
	"zappem.net/pub/math/symalg/terms"
)

// errExit ends a session.
var errExit = errors.New("exit")

// binding is an assigned variable and its value.
type binding struct {
	v *factor.Variable
	e terms.Expression
}

// session holds the state of one interactive run: the symbols seen so
// far and the values assigned to some of them.
type session struct {
	scope  *factor.Scope
	parser *parse.Parser
	vars   map[string]binding
	format factor.Format
	passes int
	out    io.Writer
}

func newSession(f factor.Format, passes int, out io.Writer) *session {
	s := factor.NewScope()
	return &session{
		scope:  s,
		parser: parse.New(s),
		vars:   make(map[string]binding),
		format: f,
		passes: passes,
		out:    out,
	}
}

// lineReader supplies input lines. It is satisfied by the lined
// terminal reader.
type lineReader interface {
	ReadString() (string, error)
}

// scanner reads lines from a non-terminal input.
type scanner struct {
	*bufio.Scanner
}

func newScanner(r io.Reader) *scanner {
	return &scanner{bufio.NewScanner(r)}
}

func (s *scanner) ReadString() (string, error) {
	if s.Scan() {
		return s.Text(), nil
	}
	if err := s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// run executes lines until the input ends or an exit command is read.
// Failed lines are reported and the session continues.
func (s *session) run(r lineReader, prompt bool) error {
	for {
		if prompt {
			fmt.Fprint(s.out, "> ")
		}
		line, err := r.ReadString()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.exec(line); err != nil {
			if err == errExit {
				return nil
			}
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#") && (len(line) == 1 || unicode.IsSpace(rune(line[1])))
}

// exec runs one line of input.
func (s *session) exec(line string) error {
	line = strings.TrimSpace(line)
	switch {
	case line == "" || isComment(line):
		return nil
	case line == "exit":
		fmt.Fprintln(s.out, "exiting")
		return errExit
	case line == "list":
		s.list()
		return nil
	}
	if name, rhs, ok := strings.Cut(line, ":="); ok {
		return s.assign(strings.TrimSpace(name), strings.TrimSpace(rhs))
	}
	if rest, ok := strings.CutPrefix(line, "classify "); ok {
		return s.classify(rest)
	}
	e, err := s.eval(line)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, " %s\n", e.Text(s.format))
	return nil
}

// names returns the assigned names in order.
func (s *session) names() []string {
	ks := maps.Keys(s.vars)
	slices.Sort(ks)
	return ks
}

func (s *session) list() {
	for _, k := range s.names() {
		fmt.Fprintf(s.out, " %s := %s\n", k, s.vars[k].e.Text(s.format))
	}
}

// assign binds name to the value of rhs. An empty rhs removes the
// binding.
func (s *session) assign(name, rhs string) error {
	x, err := s.parser.Parse(name)
	if err != nil {
		return err
	}
	v, ok := x.(*factor.Variable)
	if !ok {
		return matherr.Parsingf("invalid assignment to %q", name)
	}
	if rhs == "" {
		delete(s.vars, name)
		return nil
	}
	e, err := s.eval(rhs)
	if err != nil {
		return err
	}
	if _, self := terms.Substituted(e, v, v); self {
		return matherr.Calculationf("%s cannot be defined in terms of itself", name)
	}
	s.vars[name] = binding{v: v, e: e}
	log.Debugf("%s := %v", name, e)
	return nil
}

// eval reads an expression, replaces assigned variables with their
// values and normalizes the result. "subst e, t, r" replaces t with r
// in e.
func (s *session) eval(text string) (terms.Expression, error) {
	if rest, ok := strings.CutPrefix(text, "subst "); ok {
		return s.subst(rest)
	}
	e, err := s.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return s.resolve(e), nil
}

func (s *session) subst(text string) (terms.Expression, error) {
	args := splitArgs(text)
	if len(args) != 3 {
		return nil, matherr.Parsingf("usage: subst <expression>, <target>, <replacement>")
	}
	e, err := s.eval(args[0])
	if err != nil {
		return nil, err
	}
	target, err := s.parser.Parse(args[1])
	if err != nil {
		return nil, err
	}
	repl, err := s.eval(args[2])
	if err != nil {
		return nil, err
	}
	return terms.NormalizeN(terms.Substitute(e, target, repl), s.passes), nil
}

// resolve substitutes assigned values until nothing changes. Each
// round can expose more assigned variables, and there are never more
// useful rounds than bindings.
func (s *session) resolve(e terms.Expression) terms.Expression {
	names := s.names()
	for round := 0; round <= len(names); round++ {
		changed := false
		for _, k := range names {
			b := s.vars[k]
			if x, hit := terms.Substituted(e, b.v, b.e); hit {
				e, changed = x, true
			}
		}
		if !changed {
			break
		}
	}
	return terms.NormalizeN(e, s.passes)
}

// splitArgs splits text at the commas that are not nested inside
// parentheses or braces.
func splitArgs(text string) []string {
	var args []string
	depth, start := 0, 0
	for i, r := range text {
		switch r {
		case '(', '{':
			depth++
		case ')', '}':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(text[start:i]))
				start = i + 1
			}
		}
	}
	return append(args, strings.TrimSpace(text[start:]))
}

func (s *session) classify(text string) error {
	e, err := s.eval(text)
	if err != nil {
		return err
	}
	cs, err := terms.Classify(e)
	if err != nil {
		return err
	}
	for _, c := range cs {
		sign := ""
		if c.Negated {
			sign = "-"
		}
		fmt.Fprintf(s.out, " %s%s: %v (level %d)\n", sign, c.Expression.Text(s.format), c.Class, c.Level())
	}
	return nil
}
