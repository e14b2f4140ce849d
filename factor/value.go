package factor

import (
	"math"
	"strconv"
)

// Value is a numeric leaf. A Value holding an integral number is an
// Integer.
type Value struct {
	leaf
	num float64
}

// Num returns a Value holding f. Negative zero is stored as zero.
func Num(f float64) *Value {
	if f == 0 {
		f = 0
	}
	return &Value{num: f}
}

// Int returns an Integer Value.
func Int(n int64) *Value {
	return &Value{num: float64(n)}
}

// Float returns the payload of v.
func (v *Value) Float() float64 { return v.num }

// IsInteger is true when v holds an integral number.
func (v *Value) IsInteger() bool {
	return !math.IsInf(v.num, 0) && v.num == math.Trunc(v.num)
}

// Kind reports KindInteger for integral values, KindValue otherwise.
func (v *Value) Kind() Kind {
	if v.IsInteger() {
		return KindInteger
	}
	return KindValue
}

// fraction is a unit fraction with a dedicated rendering.
type fraction struct {
	num, den int
	glyph    string
}

var fractions = []fraction{
	{1, 2, "½"},
	{1, 3, "⅓"},
	{2, 3, "⅔"},
	{1, 4, "¼"},
	{3, 4, "¾"},
	{1, 5, "⅕"},
	{2, 5, "⅖"},
	{3, 5, "⅗"},
	{4, 5, "⅘"},
}

// lookupFraction finds the common fraction equal to the magnitude f.
func lookupFraction(f float64) (fraction, bool) {
	for _, x := range fractions {
		if math.Abs(f-float64(x.num)/float64(x.den)) < 1e-12 {
			return x, true
		}
	}
	return fraction{}, false
}

// Text renders v. Common fractions use glyphs (Default) or \frac
// (LaTeX).
func (v *Value) Text(f Format) string {
	x := v.num
	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 0):
		switch f {
		case LaTeX:
			return sign + `\infty`
		case Parse:
			return sign + "Infinity"
		}
		return sign + "∞"
	}
	if f == Parse {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	if fr, ok := lookupFraction(x); ok {
		if f == LaTeX {
			return sign + `\frac{` + strconv.Itoa(fr.num) + "}{" + strconv.Itoa(fr.den) + "}"
		}
		return sign + fr.glyph
	}
	if v.IsInteger() {
		return sign + strconv.FormatFloat(x, 'f', -1, 64)
	}
	return sign + strconv.FormatFloat(x, 'g', -1, 64)
}

// String renders v in the Default format.
func (v *Value) String() string { return v.Text(Default) }
