// Package matherr catalogues the errors raised by the algebra packages.
//
// Every error produced here satisfies errors.Is(err, ErrMath) and also
// matches its specialized kind, for example errors.Is(err, ErrParsing).
package matherr

import (
	"github.com/pkg/errors"
)

// kind is a specialized math error. It unwraps to ErrMath.
type kind struct {
	name string
}

func (k *kind) Error() string { return k.name }

// Unwrap makes every specialized kind match ErrMath.
func (k *kind) Unwrap() error { return ErrMath }

var (
	// ErrMath is the base of all errors in this module.
	ErrMath = errors.New("math error")

	// ErrCalculation reports malformed numeric operands, such as an
	// empty operand list or a cast of a non-numeric node.
	ErrCalculation error = &kind{"calculation error"}

	// ErrClassification reports that no classification could be
	// determined for a node.
	ErrClassification error = &kind{"classification error"}

	// ErrParsing reports an unsupported format or an unparseable string.
	ErrParsing error = &kind{"parsing error"}

	// ErrLogic reports a proposition, transform or rule that failed to
	// bind at construction.
	ErrLogic error = &kind{"logic error"}

	// ErrSimplification reports a generic-form or grouping conversion
	// with no defined result.
	ErrSimplification error = &kind{"simplification error"}

	// ErrUnsupported marks operations that are deliberately not
	// implemented.
	ErrUnsupported error = &kind{"not implemented"}
)

// Calculationf returns a calculation error with a formatted message.
func Calculationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCalculation, format, args...)
}

// Classificationf returns a classification error with a formatted message.
func Classificationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrClassification, format, args...)
}

// Parsingf returns a parsing error with a formatted message.
func Parsingf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrParsing, format, args...)
}

// Logicf returns a logic error with a formatted message.
func Logicf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrLogic, format, args...)
}

// Simplificationf returns a simplification error with a formatted message.
func Simplificationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrSimplification, format, args...)
}

// Unsupportedf returns an error for an operation that is not implemented.
func Unsupportedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnsupported, format, args...)
}
