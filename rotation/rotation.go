// Package rotation generates matrices for 3D rotations.
//
// The sine and cosine of an angle θ are the variables s_θ and c_θ of
// the scope the matrix is built in.
package rotation

import (
	"zappem.net/pub/math/symalg/factor"
	"zappem.net/pub/math/symalg/matrix"
	"zappem.net/pub/math/symalg/terms"
)

// trig returns the variable fn_theta, creating it if s does not hold it
// yet.
func trig(s *factor.Scope, fn, theta string) terms.Expression {
	if e, ok := s.Lookup(fn + "_" + theta); ok {
		return e
	}
	return s.NewVariable(fn, factor.Subscripted(theta))
}

// Cos returns the cosine variable of theta.
func Cos(s *factor.Scope, theta string) terms.Expression { return trig(s, "c", theta) }

// Sin returns the sine variable of theta.
func Sin(s *factor.Scope, theta string) terms.Expression { return trig(s, "s", theta) }

// rotation places the sine and cosine of theta around the fixed axis.
func rotation(s *factor.Scope, theta string, axis int) *matrix.Matrix {
	m, _ := matrix.NewMatrix(3, 3)
	c, sn := Cos(s, theta), Sin(s, theta)
	i, j := (axis+1)%3, (axis+2)%3

	m.Set(axis, axis, factor.Int(1))
	m.Set(i, i, c)
	m.Set(j, j, c)

	m.Set(i, j, terms.Neg(sn))
	m.Set(j, i, sn)
	return m
}

// A matrix for rotating anticlockwise around the X-axis.
func RX(s *factor.Scope, theta string) *matrix.Matrix {
	return rotation(s, theta, 0)
}

// A matrix for rotating anticlockwise around the Y-axis.
func RY(s *factor.Scope, theta string) *matrix.Matrix {
	return rotation(s, theta, 1)
}

// A matrix for rotating anticlockwise around the Z-axis.
func RZ(s *factor.Scope, theta string) *matrix.Matrix {
	return rotation(s, theta, 2)
}

// Pythagoras returns the substitution target c_θ^2 and its
// replacement 1 - s_θ^2.
func Pythagoras(s *factor.Scope, theta string) (target, repl terms.Expression) {
	return terms.NewPower(Cos(s, theta), factor.Int(2)), terms.Sub(1, terms.Pow(Sin(s, theta), 2))
}
