// Package factor defines the irreducible leaves of an expression tree:
// numbers, variables, constants and the imaginary unit. It also holds
// the Expression interface shared by every node, the rendering formats
// and the Scope registry of symbols.
package factor

import (
	"fmt"
	"math"

	"zappem.net/pub/math/symalg/matherr"
)

// Expression is a node of an expression tree. The number of children
// equals Arity() and never changes after construction.
type Expression interface {
	// Kind returns the node kind discriminant.
	Kind() Kind
	// Arity returns the number of operands.
	Arity() int
	// Child returns the i-th operand.
	Child(i int) Expression
	// Children returns a copy of the operand list.
	Children() []Expression
	// Text renders the node in format f.
	Text(f Format) string
	// String renders the node in the Default format.
	String() string
}

// Format selects a textual rendering of an expression.
type Format int

const (
	// Default is the human readable form.
	Default Format = iota
	// LaTeX renders for typesetting.
	LaTeX
	// Parse is fully parenthesized and can be parsed back.
	Parse
	// FullID is Default but with unabbreviated identifiers.
	FullID
	numFormats
)

var formatNames = [numFormats]string{"default", "latex", "parse", "full"}

// String names the format.
func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Valid is true for supported formats.
func (f Format) Valid() bool {
	return f >= 0 && f < numFormats
}

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return Default, matherr.Parsingf("unsupported format %q", name)
}

// Render renders e in format f, rejecting unsupported formats.
func Render(e Expression, f Format) (string, error) {
	if !f.Valid() {
		return "", matherr.Parsingf("unsupported format %v", f)
	}
	if e == nil {
		return "", matherr.Parsingf("nothing to render")
	}
	return e.Text(f), nil
}

// leaf supplies the operand accessors of childless nodes.
type leaf struct{}

func (leaf) Arity() int             { return 0 }
func (leaf) Children() []Expression { return nil }
func (leaf) Child(i int) Expression { panic(fmt.Sprintf("leaf has no operand %d", i)) }

// TryLift promotes a Go number to a Value. Expressions are returned as
// is.
func TryLift(x interface{}) (Expression, error) {
	switch v := x.(type) {
	case Expression:
		if v == nil {
			return nil, matherr.Calculationf("nil expression")
		}
		return v, nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return Num(float64(v)), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		return Num(float64(v)), nil
	case float32:
		return Num(float64(v)), nil
	case float64:
		return Num(v), nil
	}
	return nil, matherr.Calculationf("cannot use %T as an expression", x)
}

// Lift is TryLift for callers that only pass numbers or expressions.
// It panics on any other type.
func Lift(x interface{}) Expression {
	e, err := TryLift(x)
	if err != nil {
		panic(err)
	}
	return e
}

// AsFloat casts e to a number. Only Values and Constants that carry a
// discrete value can be cast.
func AsFloat(e Expression) (float64, error) {
	switch v := e.(type) {
	case *Value:
		return v.num, nil
	case *Constant:
		if v.value != nil {
			return v.value.num, nil
		}
	}
	return 0, matherr.Calculationf("cannot cast %v to a number", e)
}

// AsInt casts e to an integer. The underlying number must be integral.
func AsInt(e Expression) (int64, error) {
	f, err := AsFloat(e)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, matherr.Calculationf("%v is not an integer", e)
	}
	return int64(f), nil
}
