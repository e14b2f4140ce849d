package factor

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Identity describes a Variable or Constant. Only ID takes part in
// equality; the other fields are presentation.
type Identity struct {
	ID          string
	Symbol      string
	Name        string
	Subscript   string
	Description string
}

// Option adjusts the Identity of a new symbol.
type Option func(*Identity)

// Named sets the long name of a symbol.
func Named(name string) Option {
	return func(id *Identity) { id.Name = name }
}

// Subscripted sets the subscript of a symbol.
func Subscripted(sub string) Option {
	return func(id *Identity) { id.Subscript = sub }
}

// Described attaches a free text description to a symbol.
func Described(text string) Option {
	return func(id *Identity) { id.Description = text }
}

// WithID overrides the generated identifier.
func WithID(key string) Option {
	return func(id *Identity) { id.ID = key }
}

// abbreviate shortens s to 5 runes and an ellipsis.
func abbreviate(s string) string {
	if utf8.RuneCountInString(s) <= 5 {
		return s
	}
	r := []rune(s)
	return string(r[:5]) + "…"
}

var (
	isValidLabel     = regexp.MustCompile(`^[\p{L}][\p{L}0-9]*$`).MatchString
	isValidSubscript = regexp.MustCompile(`^[\p{L}0-9]+$`).MatchString
)

// ValidSymbol confirms that a symbol can be written in parse-friendly
// text and read back.
func ValidSymbol(token string) bool {
	return isValidLabel(token)
}

var latexSymbols = map[string]string{
	"π": `\pi`,
	"∞": `\infty`,
	"α": `\alpha`,
	"β": `\beta`,
	"γ": `\gamma`,
	"θ": `\theta`,
	"φ": `\phi`,
}

// Label is the key a symbol is looked up by: its symbol, with any
// subscript appended after an underscore.
func (id Identity) Label() string {
	if id.Symbol == "" {
		return ""
	}
	if id.Subscript == "" {
		return id.Symbol
	}
	return id.Symbol + "_" + id.Subscript
}

// text renders an identity. unknown is used when there is nothing to
// show at all.
func (id Identity) text(f Format, unknown string) string {
	if id.Symbol != "" {
		switch f {
		case LaTeX:
			s := id.Symbol
			if l, ok := latexSymbols[s]; ok {
				s = l
			}
			if id.Subscript != "" {
				s += "_{" + id.Subscript + "}"
			}
			return s
		case Parse:
			if ValidSymbol(id.Symbol) && (id.Subscript == "" || isValidSubscript(id.Subscript)) {
				return id.Label()
			}
		default:
			return id.Label()
		}
	}
	if f == Parse && id.ID != "" {
		return "#" + id.ID
	}
	if id.Name != "" {
		if f == LaTeX {
			return `\mathrm{` + abbreviate(id.Name) + "}"
		}
		return abbreviate(id.Name)
	}
	if id.ID != "" {
		if f == FullID {
			return "#" + id.ID
		}
		return "#" + abbreviate(id.ID)
	}
	return unknown
}

// Variable is a named unknown. Two variables are the same variable
// exactly when their identifiers match.
type Variable struct {
	leaf
	id Identity
}

// Kind returns KindVariable.
func (*Variable) Kind() Kind { return KindVariable }

// Identity returns the description of v.
func (v *Variable) Identity() Identity { return v.id }

// ID returns the identifier of v.
func (v *Variable) ID() string { return v.id.ID }

// Text renders v.
func (v *Variable) Text(f Format) string { return v.id.text(f, "[UNKNOWN VARIABLE]") }

// String renders v in the Default format.
func (v *Variable) String() string { return v.Text(Default) }

// Constant is a named constant, optionally carrying a discrete value.
type Constant struct {
	leaf
	id      Identity
	value   *Value
	special bool
}

// Kind returns KindConstant.
func (*Constant) Kind() Kind { return KindConstant }

// Identity returns the description of c.
func (c *Constant) Identity() Identity { return c.id }

// ID returns the identifier of c.
func (c *Constant) ID() string { return c.id.ID }

// Value returns the discrete value of c, or nil for a generic constant.
func (c *Constant) Value() *Value { return c.value }

// IsGeneric is true for constants without a discrete value.
func (c *Constant) IsGeneric() bool { return c.value == nil }

// IsSpecial is true for the named irrational and transcendental
// constants and for infinities.
func (c *Constant) IsSpecial() bool {
	return c.special || c.IsInfinite()
}

// IsInfinite is true when c carries an infinite value.
func (c *Constant) IsInfinite() bool {
	return c.value != nil && math.IsInf(c.value.num, 0)
}

// Text renders c.
func (c *Constant) Text(f Format) string { return c.id.text(f, "[UNKNOWN CONSTANT]") }

// String renders c in the Default format.
func (c *Constant) String() string { return c.Text(Default) }

// ImaginaryUnit is the square root of -1. There is only one, I.
type ImaginaryUnit struct {
	leaf
}

// I is the imaginary unit.
var I = &ImaginaryUnit{}

// Kind returns KindImaginaryUnit.
func (*ImaginaryUnit) Kind() Kind { return KindImaginaryUnit }

// Text renders the imaginary unit.
func (*ImaginaryUnit) Text(Format) string { return "i" }

// String returns "i".
func (*ImaginaryUnit) String() string { return "i" }

// newIdentity assembles an identity from a symbol and options.
func newIdentity(symbol string, opts []Option) Identity {
	id := Identity{Symbol: strings.TrimSpace(symbol)}
	for _, o := range opts {
		o(&id)
	}
	return id
}
