package factor

import (
	"math"
	"slices"
	"sync"

	"golang.org/x/exp/maps"

	"zappem.net/pub/math/symalg/ident"
	"zappem.net/pub/math/symalg/matherr"
)

// The conventional constants are shared by every scope so that they
// compare equal everywhere.
var (
	// GenericC is the generic constant "C". It is also the placeholder
	// used for coefficients in generic forms.
	GenericC = &Constant{id: Identity{ID: "generic-constant-C", Symbol: "C", Description: "an arbitrary constant"}}
	// GenericK is the second generic constant "K".
	GenericK = &Constant{id: Identity{ID: "generic-constant-K", Symbol: "K", Description: "an arbitrary constant"}}
	// Pi is the ratio of a circle's circumference to its diameter.
	Pi = &Constant{id: Identity{ID: "pi", Symbol: "π", Name: "Pi"}, value: Num(math.Pi), special: true}
	// E is Euler's number.
	E = &Constant{id: Identity{ID: "euler", Symbol: "e", Name: "Euler"}, value: Num(math.E), special: true}
	// Infinity is positive infinity.
	Infinity = &Constant{id: Identity{ID: "infinity", Symbol: "∞", Name: "Infinity"}, value: Num(math.Inf(1))}
)

// Scope is a registry of the variables and constants in use, keyed by
// identifier. It is safe for concurrent use.
type Scope struct {
	ids ident.Supplier

	mu      sync.RWMutex
	byID    map[string]Expression
	byLabel map[string]Expression

	x, y, z *Variable
}

// NewScope creates a scope holding the conventional variables x, y and
// z, and the constants C, K, π, e, ∞ and i. Identifiers come from
// ident.Default.
func NewScope() *Scope {
	return NewScopeWith(ident.Default)
}

// NewScopeWith creates a conventional scope drawing identifiers from
// ids.
func NewScopeWith(ids ident.Supplier) *Scope {
	s := &Scope{
		ids:     ids,
		byID:    make(map[string]Expression),
		byLabel: make(map[string]Expression),
	}
	s.x = s.NewVariable("x")
	s.y = s.NewVariable("y")
	s.z = s.NewVariable("z")
	for _, c := range []*Constant{GenericC, GenericK, Pi, E, Infinity} {
		_ = s.Register(c)
	}
	return s
}

// X returns the conventional variable x.
func (s *Scope) X() *Variable { return s.x }

// Y returns the conventional variable y.
func (s *Scope) Y() *Variable { return s.y }

// Z returns the conventional variable z.
func (s *Scope) Z() *Variable { return s.z }

// nextID draws a fresh identifier.
func (s *Scope) nextID() string {
	if s == nil || s.ids == nil {
		return ident.Default.Next()
	}
	return s.ids.Next()
}

// NewVariable creates a variable and registers it. A nil scope creates
// an unregistered variable.
func (s *Scope) NewVariable(symbol string, opts ...Option) *Variable {
	id := newIdentity(symbol, opts)
	if id.ID == "" {
		id.ID = s.nextID()
	}
	v := &Variable{id: id}
	if s != nil {
		_ = s.Register(v)
	}
	return v
}

// NewConstant creates a constant and registers it. A nil value makes a
// generic constant.
func (s *Scope) NewConstant(symbol string, value *Value, opts ...Option) *Constant {
	id := newIdentity(symbol, opts)
	if id.ID == "" {
		id.ID = s.nextID()
	}
	c := &Constant{id: id, value: value}
	if s != nil {
		_ = s.Register(c)
	}
	return c
}

// Register inserts, or overwrites, a variable or constant.
func (s *Scope) Register(e Expression) error {
	var id Identity
	switch v := e.(type) {
	case *Variable:
		id = v.id
	case *Constant:
		id = v.id
	default:
		return matherr.Calculationf("only variables and constants can be registered, not %v", e)
	}
	if id.ID == "" {
		return matherr.Calculationf("cannot register %v without an identifier", e)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[id.ID] = e
	if l := id.Label(); l != "" {
		s.byLabel[l] = e
	}
	if id.Name != "" {
		s.byLabel[id.Name] = e
	}
	return nil
}

// Lookup finds a symbol. The conventional names are answered directly;
// otherwise key is tried as an identifier (with or without a leading
// "#") and then as a label or name.
func (s *Scope) Lookup(key string) (Expression, bool) {
	switch key {
	case "x":
		return s.x, true
	case "y":
		return s.y, true
	case "z":
		return s.z, true
	case "C":
		return GenericC, true
	case "K":
		return GenericK, true
	case "π", "pi":
		return Pi, true
	case "e":
		return E, true
	case "∞", "Infinity", "inf":
		return Infinity, true
	case "i":
		return I, true
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(key) > 1 && key[0] == '#' {
		e, ok := s.byID[key[1:]]
		return e, ok
	}
	if e, ok := s.byID[key]; ok {
		return e, true
	}
	e, ok := s.byLabel[key]
	return e, ok
}

// Len returns the number of registered symbols.
func (s *Scope) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Labels returns the sorted labels and names that Lookup resolves.
func (s *Scope) Labels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ks := maps.Keys(s.byLabel)
	slices.Sort(ks)
	return ks
}
