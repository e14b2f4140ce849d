package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/matherr"
	"zappem.net/pub/math/symalg/terms"
)

func TestSession(t *testing.T) {
	var out bytes.Buffer
	s := newSession(factor.Default, terms.MaxPasses, &out)
	vs := []struct {
		line, want string
	}{
		{"x + x", " 2x\n"},
		{"# a comment", ""},
		{"y := 3", ""},
		{"y + y", " 6\n"},
		{"z := x + y", ""},
		{"z - x", " 3\n"},
		{"list", " y := 3\n z := x + 3\n"},
		{"y :=", ""},
		{"y", " y\n"},
		{"subst x^2, x, y + 1", " (y + 1)^2\n"},
		{"classify 2x", " 2x: polynomial term (level 6)\n"},
		{"classify -x", " -x: intrinsic irreducible (level 9)\n -x: single variable coefficientless polynomial term (level 8)\n"},
	}
	for i, v := range vs {
		out.Reset()
		if err := s.exec(v.line); err != nil {
			t.Errorf("[%d] %q failed: %v", i, v.line, err)
			continue
		}
		if got := out.String(); got != v.want {
			t.Errorf("[%d] %q got=%q want=%q", i, v.line, got, v.want)
		}
	}
}

func TestSessionErrors(t *testing.T) {
	var out bytes.Buffer
	s := newSession(factor.Default, terms.MaxPasses, &out)
	err := s.exec("x := x + 1")
	require.True(t, errors.Is(err, matherr.ErrCalculation), "self reference: %v", err)
	err = s.exec("2 := x")
	require.True(t, errors.Is(err, matherr.ErrParsing), "assigning a number: %v", err)
	err = s.exec("x +")
	require.True(t, errors.Is(err, matherr.ErrParsing), "dangling operator: %v", err)
	err = s.exec("subst x, y")
	require.True(t, errors.Is(err, matherr.ErrParsing), "short subst: %v", err)
	err = s.exec("classify {x}")
	require.True(t, errors.Is(err, matherr.ErrClassification), "classify a set: %v", err)
	require.Equal(t, errExit, s.exec("exit"))
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	s := newSession(factor.LaTeX, terms.MaxPasses, &out)
	in := "x/2\nx +\n\nexit\nx\n"
	require.NoError(t, s.run(newScanner(strings.NewReader(in)), false))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, ` \frac{x}{2}`, lines[0])
	require.True(t, strings.HasPrefix(lines[1], "error: "), lines[1])
	require.Equal(t, "exiting", lines[2])
}

func TestSplitArgs(t *testing.T) {
	require.Equal(t, []string{"log(2, x)", "x", "{a, b}"}, splitArgs("log(2, x), x ,{a, b}"))
	require.Equal(t, []string{"x"}, splitArgs("x"))
}

func TestSelectKinds(t *testing.T) {
	require.Equal(t, []factor.Kind{factor.KindSum, factor.KindLogarithm}, selectKinds([]string{"logarithm", "SUM"}))
	require.Len(t, selectKinds(nil), len(factor.Kinds()))
}
