package factor

// Kind discriminates the closed set of expression node kinds.
type Kind int

const (
	KindValue Kind = iota
	KindInteger
	KindVariable
	KindConstant
	KindImaginaryUnit
	KindSum
	KindDifference
	KindProduct
	KindQuotient
	KindExponentiation
	KindLogarithm
	KindSet
	KindSimplify
	KindExpand
	numKinds
)

// ArityClass groups kinds by the number of operands they take.
type ArityClass int

const (
	Leaf ArityClass = iota
	Unary
	Binary
	Trinary
	Variadic
)

// Properties are the algebraic traits declared by a node kind.
type Properties struct {
	Name            string
	Class           ArityClass
	Commutative     bool
	Anticommutative bool
	Associative     bool
	Idempotent      bool
}

var properties = [numKinds]Properties{
	KindValue:          {Name: "Value", Class: Leaf},
	KindInteger:        {Name: "Integer", Class: Leaf},
	KindVariable:       {Name: "Variable", Class: Leaf},
	KindConstant:       {Name: "Constant", Class: Leaf},
	KindImaginaryUnit:  {Name: "ImaginaryUnit", Class: Leaf},
	KindSum:            {Name: "Sum", Class: Binary, Commutative: true, Associative: true},
	KindDifference:     {Name: "Difference", Class: Binary},
	KindProduct:        {Name: "Product", Class: Binary, Commutative: true, Associative: true},
	KindQuotient:       {Name: "Quotient", Class: Binary},
	KindExponentiation: {Name: "Exponentiation", Class: Binary},
	KindLogarithm:      {Name: "Logarithm", Class: Binary},
	KindSet:            {Name: "Set", Class: Variadic},
	KindSimplify:       {Name: "Simplify", Class: Unary, Idempotent: true},
	KindExpand:         {Name: "Expand", Class: Unary, Idempotent: true},
}

// Properties returns the traits of k.
func (k Kind) Properties() Properties {
	if k < 0 || k >= numKinds {
		return Properties{Name: "Unknown"}
	}
	return properties[k]
}

// String returns the kind name.
func (k Kind) String() string {
	return k.Properties().Name
}

// IsLeaf is true for kinds without operands.
func (k Kind) IsLeaf() bool {
	return k >= 0 && k < numKinds && properties[k].Class == Leaf
}

// IsValue is true for numeric leaves.
func (k Kind) IsValue() bool {
	return k == KindValue || k == KindInteger
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, numKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}
