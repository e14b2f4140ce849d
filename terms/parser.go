package terms

// Parser compiles text into an expression.
type Parser interface {
	Parse(text string) (Expression, error)
}
