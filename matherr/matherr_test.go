package matherr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	vs := []struct {
		err  error
		kind error
		msg  string
	}{
		{Calculationf("empty list of %d", 0), ErrCalculation, "empty list of 0: calculation error"},
		{Classificationf("set"), ErrClassification, "set: classification error"},
		{Parsingf("bad %q", "x+"), ErrParsing, `bad "x+": parsing error`},
		{Logicf("arity"), ErrLogic, "arity: logic error"},
		{Simplificationf("set"), ErrSimplification, "set: simplification error"},
		{Unsupportedf("trinary"), ErrUnsupported, "trinary: not implemented"},
	}
	for i, v := range vs {
		require.True(t, errors.Is(v.err, v.kind), "[%d] kind", i)
		require.True(t, errors.Is(v.err, ErrMath), "[%d] base", i)
		require.Equal(t, v.msg, v.err.Error(), "[%d] message", i)
	}
	if errors.Is(Parsingf("x"), ErrLogic) {
		t.Error("parsing error matched logic kind")
	}
}
